package repository

import (
	"context"

	"invencost/internal/model"

	"gorm.io/gorm"
)

// IngredientRepository defines the data access contract for ingredients.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type IngredientRepository interface {
	Create(ctx context.Context, ing *model.Ingredient) error
	FindByID(ctx context.Context, id uint) (*model.Ingredient, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	Update(ctx context.Context, ing *model.Ingredient) error
	Delete(ctx context.Context, id uint) error
	CountRecipeUsages(ctx context.Context, id uint) (int64, error)
}

type ingredientRepo struct{ db *gorm.DB }

func NewIngredientRepository(db *gorm.DB) IngredientRepository { return &ingredientRepo{db: db} }

func (r *ingredientRepo) Create(ctx context.Context, ing *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *ingredientRepo) FindByID(ctx context.Context, id uint) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.db.WithContext(ctx).First(&ing, id).Error
	return &ing, err
}

func (r *ingredientRepo) FindByIDs(ctx context.Context, ids []uint) ([]model.Ingredient, error) {
	var out []model.Ingredient
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *ingredientRepo) List(ctx context.Context) ([]model.Ingredient, error) {
	var out []model.Ingredient
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *ingredientRepo) Update(ctx context.Context, ing *model.Ingredient) error {
	return r.db.WithContext(ctx).Save(ing).Error
}

func (r *ingredientRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Ingredient{}, id).Error
}

// CountRecipeUsages tells whether any product recipe still references the
// ingredient; deletion is blocked while the count is non-zero.
func (r *ingredientRepo) CountRecipeUsages(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductRecipe{}).Where("ingredient_id = ?", id).Count(&n).Error
	return n, err
}
