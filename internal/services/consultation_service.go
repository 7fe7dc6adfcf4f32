package services

import (
	"context"

	"medcatalog/internal/domain"
	"medcatalog/internal/repos"
	"medcatalog/internal/validate"
)

type ConsultationService struct {
	Consultations *repos.ConsultationRepo
}

func NewConsultationService(consultations *repos.ConsultationRepo) *ConsultationService {
	return &ConsultationService{Consultations: consultations}
}

func (s *ConsultationService) List(ctx context.Context) ([]domain.Consultation, error) {
	return s.Consultations.List(ctx)
}

func (s *ConsultationService) Get(ctx context.Context, id string) (domain.Consultation, error) {
	return s.Consultations.Get(ctx, id)
}

// Create ignores any submitted status; new consultations start pending.
func (s *ConsultationService) Create(ctx context.Context, payload any) (domain.Consultation, error) {
	n, err := validate.NewConsultation(payload)
	if err != nil {
		return domain.Consultation{}, err
	}
	return s.Consultations.Create(ctx, n)
}

func (s *ConsultationService) Update(ctx context.Context, id string, payload any) (domain.Consultation, error) {
	p, err := validate.ConsultationUpdate(payload)
	if err != nil {
		return domain.Consultation{}, err
	}
	return s.Consultations.Update(ctx, id, p)
}

func (s *ConsultationService) Delete(ctx context.Context, id string) (domain.Consultation, error) {
	return s.Consultations.Delete(ctx, id)
}
