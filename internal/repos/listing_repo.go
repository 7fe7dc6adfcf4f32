package repos

import (
	"context"
	"time"

	"medcatalog/internal/domain"
)

const KindListings = "listings"

type ListingRepo struct{ c *Collection[domain.Listing] }

func NewListingRepo(doc Document) *ListingRepo {
	return &ListingRepo{c: NewCollection[domain.Listing](doc)}
}

// List and Get serve a missing highlights array as an empty one.
func (r *ListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	out, err := r.c.List(ctx)
	for i := range out {
		withHighlights(&out[i])
	}
	return out, err
}

func (r *ListingRepo) Get(ctx context.Context, id string) (domain.Listing, error) {
	l, err := r.c.Get(ctx, id)
	if err != nil {
		return l, err
	}
	withHighlights(&l)
	return l, nil
}

func withHighlights(l *domain.Listing) {
	if l.Highlights == nil {
		l.Highlights = []string{}
	}
}

// Create stores a new listing; createdAt and updatedAt are equal.
func (r *ListingRepo) Create(ctx context.Context, f domain.ListingFields) (domain.Listing, error) {
	return r.c.Create(ctx, func(id string, now time.Time) domain.Listing {
		ts := domain.Timestamp(now)
		l := domain.Listing{ID: id, CreatedAt: ts, UpdatedAt: ts}
		f.Apply(&l)
		return l
	})
}

// Update overwrites the writable fields; id and createdAt are kept and
// updatedAt never moves backwards.
func (r *ListingRepo) Update(ctx context.Context, id string, f domain.ListingFields) (domain.Listing, error) {
	return r.c.Update(ctx, id, func(l *domain.Listing, now time.Time) {
		f.Apply(l)
		if ts := domain.Timestamp(now); ts > l.UpdatedAt {
			l.UpdatedAt = ts
		}
	})
}

func (r *ListingRepo) Delete(ctx context.Context, id string) (domain.Listing, error) {
	return r.c.Delete(ctx, id)
}
