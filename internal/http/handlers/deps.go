package handlers

import (
	"medcatalog/internal/config"
	"medcatalog/internal/repos"
	"medcatalog/internal/services"
)

type Deps struct {
	Auth                *services.AuthService
	ListingHandler      *ListingHandler
	ConsultationHandler *ConsultationHandler
	PageHandler         *PageHandler
}

func NewDeps(stores *repos.Stores, cfg config.Config) *Deps {
	auth := services.NewAuthService(cfg.AdminPassword, cfg.AdminPasswordHash)
	catalogSvc := services.NewCatalogService(stores.Listings)
	consultSvc := services.NewConsultationService(stores.Consultations)

	return &Deps{
		Auth:                auth,
		ListingHandler:      &ListingHandler{Catalog: catalogSvc, BodyLimit: cfg.BodyLimit},
		ConsultationHandler: &ConsultationHandler{Consultations: consultSvc, BodyLimit: cfg.BodyLimit},
		PageHandler:         &PageHandler{Catalog: catalogSvc},
	}
}
