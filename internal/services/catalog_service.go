package services

import (
	"context"

	"medcatalog/internal/domain"
	"medcatalog/internal/repos"
	"medcatalog/internal/validate"
)

// CatalogService validates listing payloads before they reach the store.
type CatalogService struct {
	Listings *repos.ListingRepo
}

func NewCatalogService(listings *repos.ListingRepo) *CatalogService {
	return &CatalogService{Listings: listings}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Listing, error) {
	return s.Listings.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Listing, error) {
	return s.Listings.Get(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, payload any) (domain.Listing, error) {
	f, err := validate.Listing(payload)
	if err != nil {
		return domain.Listing{}, err
	}
	return s.Listings.Create(ctx, f)
}

func (s *CatalogService) Update(ctx context.Context, id string, payload any) (domain.Listing, error) {
	f, err := validate.Listing(payload)
	if err != nil {
		return domain.Listing{}, err
	}
	return s.Listings.Update(ctx, id, f)
}

func (s *CatalogService) Delete(ctx context.Context, id string) (domain.Listing, error) {
	return s.Listings.Delete(ctx, id)
}
