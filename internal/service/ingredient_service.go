package service

import (
	"context"
	"errors"

	"invencost/internal/dto"
	"invencost/internal/model"
	"invencost/internal/repository"
	"invencost/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// IngredientService defines the business logic contract for ingredients.
type IngredientService interface {
	List(ctx context.Context) ([]model.Ingredient, error)
	Get(ctx context.Context, id uint) (*model.Ingredient, error)
	Create(ctx context.Context, req dto.CreateIngredientRequest) (*model.Ingredient, error)
	Update(ctx context.Context, id uint, req dto.UpdateIngredientRequest) (*model.Ingredient, error)
	Delete(ctx context.Context, id uint) error
}

type ingredientService struct {
	repo       repository.IngredientRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
}

func NewIngredientService(repo repository.IngredientRepository, rdb *redis.Client, dispatcher *worker.Dispatcher) IngredientService {
	return &ingredientService{repo: repo, rdb: rdb, dispatcher: dispatcher}
}

func (s *ingredientService) List(ctx context.Context) ([]model.Ingredient, error) {
	return s.repo.List(ctx)
}

func (s *ingredientService) Get(ctx context.Context, id uint) (*model.Ingredient, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return ing, err
}

func (s *ingredientService) Create(ctx context.Context, req dto.CreateIngredientRequest) (*model.Ingredient, error) {
	ing := &model.Ingredient{
		Name:         req.Name,
		CostPrice:    req.CostPrice,
		CurrentStock: req.CurrentStock,
		Unit:         req.Unit,
	}
	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, ing)
	return ing, nil
}

func (s *ingredientService) Update(ctx context.Context, id uint, req dto.UpdateIngredientRequest) (*model.Ingredient, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	ing.Name = req.Name
	ing.CostPrice = req.CostPrice
	ing.CurrentStock = req.CurrentStock
	ing.Unit = req.Unit

	if err := s.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, ing)
	return ing, nil
}

func (s *ingredientService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	used, err := s.repo.CountRecipeUsages(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return ErrInUse
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// afterWrite invalidates the cached dashboard and, when stock dropped under
// the threshold, enqueues a low-stock alert email.
func (s *ingredientService) afterWrite(ctx context.Context, ing *model.Ingredient) {
	s.invalidateDashboard(ctx)

	if !ing.LowStock() || s.dispatcher == nil {
		return
	}
	payload := worker.LowStockAlertPayload{
		IngredientID: ing.ID,
		Name:         ing.Name,
		CurrentStock: ing.CurrentStock,
		Unit:         ing.Unit,
	}
	if err := s.dispatcher.EnqueueLowStockAlert(ctx, payload); err != nil {
		// Alerting is best-effort; the write already succeeded.
		log.Warn().Err(err).Uint("ingredient_id", ing.ID).Msg("failed to enqueue low-stock alert")
	}
}

func (s *ingredientService) invalidateDashboard(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DashboardCacheKey).Err(); err != nil {
		log.Debug().Err(err).Msg("dashboard cache invalidation failed")
	}
}
