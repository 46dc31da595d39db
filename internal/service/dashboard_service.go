package service

import (
	"context"
	"encoding/json"
	"time"

	"invencost/internal/costing"
	"invencost/internal/dashboard"
	"invencost/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DashboardCacheKey is where the serialized summary lives in Redis. Writes
// to products or ingredients delete it; otherwise it expires on its own.
const DashboardCacheKey = "cache:dashboard"

const dashboardCacheTTL = 30 * time.Second

// DashboardService assembles the dashboard summary from both collections.
type DashboardService interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
}

type dashboardService struct {
	products    repository.ProductRepository
	ingredients repository.IngredientRepository
	rdb         *redis.Client
}

func NewDashboardService(products repository.ProductRepository, ingredients repository.IngredientRepository, rdb *redis.Client) DashboardService {
	return &dashboardService{products: products, ingredients: ingredients, rdb: rdb}
}

func (s *dashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		costing.Apply(&products[i])
	}
	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := dashboard.Compute(products, ingredients)
	s.toCache(ctx, &summary)
	return &summary, nil
}

func (s *dashboardService) fromCache(ctx context.Context) *dashboard.Summary {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, DashboardCacheKey).Bytes()
	if err != nil {
		return nil // miss or Redis down — recompute
	}
	var summary dashboard.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		log.Warn().Err(err).Msg("corrupt dashboard cache entry, recomputing")
		return nil
	}
	return &summary
}

func (s *dashboardService) toCache(ctx context.Context, summary *dashboard.Summary) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, DashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("dashboard cache write failed")
	}
}
