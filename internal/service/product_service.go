package service

import (
	"context"
	"errors"
	"fmt"

	"invencost/internal/costing"
	"invencost/internal/dto"
	"invencost/internal/model"
	"invencost/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService defines the business logic contract for products. Every
// product leaving this layer carries its derived cost and margin.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo        repository.ProductRepository
	ingredients repository.IngredientRepository
	rdb         *redis.Client
}

func NewProductService(repo repository.ProductRepository, ingredients repository.IngredientRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, ingredients: ingredients, rdb: rdb}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		costing.Apply(&products[i])
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	costing.Apply(p)
	return p, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	lines, err := s.buildRecipe(ctx, req.Recipe)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Recipes:     lines,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)

	// Reload so recipe lines carry their ingredients for cost derivation.
	return s.Get(ctx, p.ID)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// buildRecipe resolves the requested lines against the ingredient table.
// An ingredient may appear at most once per recipe.
func (s *productService) buildRecipe(ctx context.Context, reqLines []dto.RecipeLineRequest) ([]model.ProductRecipe, error) {
	if len(reqLines) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(reqLines))
	seen := make(map[uint]bool, len(reqLines))
	for _, line := range reqLines {
		if seen[line.IngredientID] {
			return nil, fmt.Errorf("%w: el ingrediente %d aparece más de una vez en la receta", ErrDuplicate, line.IngredientID)
		}
		seen[line.IngredientID] = true
		ids = append(ids, line.IngredientID)
	}

	found, err := s.ingredients.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Ingredient, len(found))
	for _, ing := range found {
		byID[ing.ID] = ing
	}

	lines := make([]model.ProductRecipe, 0, len(reqLines))
	for _, line := range reqLines {
		ing, ok := byID[line.IngredientID]
		if !ok {
			return nil, fmt.Errorf("%w: ingrediente %d no encontrado", ErrNotFound, line.IngredientID)
		}
		lines = append(lines, model.ProductRecipe{
			IngredientID: ing.ID,
			Ingredient:   ing,
			Quantity:     line.Quantity,
		})
	}
	return lines, nil
}

func (s *productService) invalidateDashboard(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DashboardCacheKey).Err(); err != nil {
		log.Debug().Err(err).Msg("dashboard cache invalidation failed")
	}
}
