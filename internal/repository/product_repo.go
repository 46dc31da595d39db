package repository

import (
	"context"

	"invencost/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products. Reads
// always preload the recipe lines with their ingredients so cost and margin
// can be derived without further queries.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

// Create persists the product and its recipe lines in one transaction.
func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Recipes.Ingredient").
		First(&p, id).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := r.db.WithContext(ctx).
		Preload("Recipes.Ingredient").
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// Delete removes the product and its recipe lines.
func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
}
