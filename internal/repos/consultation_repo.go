package repos

import (
	"context"
	"time"

	"medcatalog/internal/domain"
)

const KindConsultations = "consultations"

type ConsultationRepo struct{ c *Collection[domain.Consultation] }

func NewConsultationRepo(doc Document) *ConsultationRepo {
	return &ConsultationRepo{c: NewCollection[domain.Consultation](doc)}
}

func (r *ConsultationRepo) List(ctx context.Context) ([]domain.Consultation, error) {
	return r.c.List(ctx)
}

func (r *ConsultationRepo) Get(ctx context.Context, id string) (domain.Consultation, error) {
	return r.c.Get(ctx, id)
}

// Create stores a new consultation in the pending state.
func (r *ConsultationRepo) Create(ctx context.Context, n domain.NewConsultation) (domain.Consultation, error) {
	return r.c.Create(ctx, func(id string, now time.Time) domain.Consultation {
		return domain.Consultation{
			ID:        id,
			Name:      n.Name,
			Email:     n.Email,
			Phone:     n.Phone,
			Message:   n.Message,
			Status:    domain.StatusPending,
			Notes:     n.Notes,
			CreatedAt: domain.Timestamp(now),
		}
	})
}

func (r *ConsultationRepo) Update(ctx context.Context, id string, p domain.ConsultationPatch) (domain.Consultation, error) {
	return r.c.Update(ctx, id, func(c *domain.Consultation, _ time.Time) {
		p.Apply(c)
	})
}

func (r *ConsultationRepo) Delete(ctx context.Context, id string) (domain.Consultation, error) {
	return r.c.Delete(ctx, id)
}
