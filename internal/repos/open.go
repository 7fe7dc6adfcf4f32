package repos

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"medcatalog/internal/config"
)

// Stores bundles the per-kind repositories over one backend.
type Stores struct {
	Listings      *ListingRepo
	Consultations *ConsultationRepo
	close         func() error
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open builds both repositories on the backend named by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case "", "file":
		return &Stores{
			Listings:      NewListingRepo(NewFileDocument(cfg.DataDir, KindListings)),
			Consultations: NewConsultationRepo(NewFileDocument(cfg.DataDir, KindConsultations)),
		}, nil
	case "sqlite":
		db, err := OpenDB(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.DBDSN, err)
		}
		return &Stores{
			Listings:      NewListingRepo(NewSQLiteDocument(db, KindListings)),
			Consultations: NewConsultationRepo(NewSQLiteDocument(db, KindConsultations)),
			close:         db.Close,
		}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		return &Stores{
			Listings:      NewListingRepo(NewRedisDocument(client, KindListings)),
			Consultations: NewConsultationRepo(NewRedisDocument(client, KindConsultations)),
			close:         client.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
