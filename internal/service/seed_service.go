package service

import (
	"context"
	"fmt"

	"invencost/internal/model"
	"invencost/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SeedService loads the demo catalog. Seeding is idempotent: each collection
// is only populated when it is empty, so re-running the endpoint is safe.
type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	ingredients repository.IngredientRepository
	products    repository.ProductRepository
}

func NewSeedService(ingredients repository.IngredientRepository, products repository.ProductRepository) SeedService {
	return &seedService{ingredients: ingredients, products: products}
}

type ingredientSeed struct {
	name  string
	cost  string
	stock string
	unit  string
}

type recipeSeed struct {
	ingredient string
	quantity   string
}

type productSeed struct {
	name        string
	description string
	price       string
	stock       int
	recipe      []recipeSeed
}

var ingredientCatalog = []ingredientSeed{
	{"Huevos", "0.33", "12", "unidad"},
	{"Patatas", "1.20", "10", "kg"},
	{"Cebolla", "1.50", "5", "kg"},
	{"Aceite de Oliva", "8.50", "2", "L"},
	{"Sal", "0.80", "20", "kg"},
	{"Pimienta", "3.50", "1", "kg"},
	{"Harina", "0.95", "10", "kg"},
	{"Azúcar", "1.10", "10", "kg"},
	{"Mantequilla", "4.20", "5", "kg"},
	{"Leche", "0.85", "10", "L"},
	{"Tomate", "2.20", "8", "kg"},
	{"Ajo", "6.00", "2", "kg"},
	{"Pimiento Rojo", "3.50", "5", "kg"},
	{"Pimiento Verde", "2.80", "5", "kg"},
	{"Carne Picada", "8.50", "5", "kg"},
	{"Pollo", "6.50", "5", "kg"},
	{"Queso", "12.00", "3", "kg"},
	{"Jamón Serrano", "28.00", "2", "kg"},
	{"Pan", "1.20", "20", "unidad"},
	{"Levadura", "1.50", "1", "kg"},
	{"Aceitunas", "4.50", "3", "kg"},
	{"Atún en Lata", "3.20", "20", "unidad"},
	{"Anchoas", "12.00", "5", "kg"},
	{"Limón", "2.50", "10", "kg"},
	{"Perejil", "3.00", "1", "kg"},
	{"Orégano", "8.00", "1", "kg"},
	{"Albahaca", "4.50", "1", "kg"},
	{"Aceite de Girasol", "2.80", "5", "L"},
	{"Vinagre", "1.50", "5", "L"},
	{"Mayonesa", "2.20", "10", "unidad"},
	{"Azafrán", "45.00", "1", "kg"},
	{"Pepino", "2.00", "8", "kg"},
	{"Judías Verdes", "3.50", "5", "kg"},
	{"Arroz", "1.80", "15", "kg"},
}

var productCatalog = []productSeed{
	{
		name:        "Tortilla de Patatas",
		description: "Tortilla española tradicional con patatas y cebolla",
		price:       "8.50", stock: 10,
		recipe: []recipeSeed{
			{"Huevos", "4"}, {"Patatas", "0.5"}, {"Cebolla", "0.2"},
			{"Aceite de Oliva", "0.05"}, {"Sal", "0.01"},
		},
	},
	{
		name:        "Paella Valenciana",
		description: "Paella tradicional con pollo, judías verdes y arroz",
		price:       "12.00", stock: 8,
		recipe: []recipeSeed{
			{"Pollo", "0.3"}, {"Tomate", "0.2"}, {"Pimiento Rojo", "0.1"},
			{"Ajo", "0.02"}, {"Aceite de Oliva", "0.03"}, {"Sal", "0.01"},
			{"Azafrán", "0.001"}, {"Judías Verdes", "0.2"}, {"Arroz", "0.3"},
		},
	},
	{
		name:        "Gazpacho Andaluz",
		description: "Sopa fría tradicional andaluza con tomate, pepino y pimiento",
		price:       "6.50", stock: 15,
		recipe: []recipeSeed{
			{"Tomate", "0.5"}, {"Pimiento Rojo", "0.2"}, {"Pimiento Verde", "0.1"},
			{"Pepino", "0.2"}, {"Ajo", "0.01"}, {"Aceite de Oliva", "0.05"},
			{"Vinagre", "0.02"}, {"Sal", "0.01"},
		},
	},
	{
		name:        "Croquetas de Jamón",
		description: "Croquetas caseras de jamón serrano",
		price:       "9.50", stock: 12,
		recipe: []recipeSeed{
			{"Jamón Serrano", "0.2"}, {"Harina", "0.1"}, {"Leche", "0.25"},
			{"Mantequilla", "0.05"}, {"Aceite de Girasol", "0.1"},
			{"Sal", "0.01"}, {"Pimienta", "0.001"},
		},
	},
	{
		name:        "Ensaladilla Rusa",
		description: "Ensaladilla rusa tradicional con patatas, huevo y mayonesa",
		price:       "7.00", stock: 10,
		recipe: []recipeSeed{
			{"Patatas", "0.3"}, {"Huevos", "2"}, {"Mayonesa", "0.1"},
			{"Aceitunas", "0.05"}, {"Sal", "0.01"},
		},
	},
	{
		name:        "Salmorejo Cordobés",
		description: "Salmorejo tradicional cordobés con tomate y pan",
		price:       "6.00", stock: 12,
		recipe: []recipeSeed{
			{"Tomate", "0.6"}, {"Pan", "0.15"}, {"Aceite de Oliva", "0.08"},
			{"Ajo", "0.01"}, {"Sal", "0.01"}, {"Huevos", "1"}, {"Jamón Serrano", "0.05"},
		},
	},
	{
		name:        "Tortilla Francesa",
		description: "Tortilla simple de huevos",
		price:       "4.50", stock: 20,
		recipe: []recipeSeed{
			{"Huevos", "2"}, {"Aceite de Girasol", "0.01"}, {"Sal", "0.005"},
		},
	},
	{
		name:        "Pan con Tomate",
		description: "Pan tostado con tomate y aceite de oliva",
		price:       "3.50", stock: 25,
		recipe: []recipeSeed{
			{"Pan", "1"}, {"Tomate", "0.1"}, {"Aceite de Oliva", "0.01"},
			{"Ajo", "0.005"}, {"Sal", "0.002"},
		},
	},
}

func (s *seedService) Seed(ctx context.Context) error {
	existing, err := s.ingredients.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, row := range ingredientCatalog {
			ing := &model.Ingredient{
				Name:         row.name,
				CostPrice:    decimal.RequireFromString(row.cost),
				CurrentStock: decimal.RequireFromString(row.stock),
				Unit:         row.unit,
			}
			if err := s.ingredients.Create(ctx, ing); err != nil {
				return fmt.Errorf("seed ingrediente %q: %w", row.name, err)
			}
		}
		existing, err = s.ingredients.List(ctx)
		if err != nil {
			return err
		}
		log.Info().Int("count", len(existing)).Msg("ingredient catalog seeded")
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	byName := make(map[string]model.Ingredient, len(existing))
	for _, ing := range existing {
		byName[ing.Name] = ing
	}

	for _, row := range productCatalog {
		desc := row.description
		p := &model.Product{
			Name:        row.name,
			Description: &desc,
			Price:       decimal.RequireFromString(row.price),
			Stock:       row.stock,
		}
		for _, line := range row.recipe {
			ing, ok := byName[line.ingredient]
			if !ok {
				// Skip lines whose ingredient is missing; a partial
				// catalog still yields a usable demo product.
				continue
			}
			p.Recipes = append(p.Recipes, model.ProductRecipe{
				IngredientID: ing.ID,
				Quantity:     decimal.RequireFromString(line.quantity),
			})
		}
		if err := s.products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed producto %q: %w", row.name, err)
		}
	}
	log.Info().Int("count", len(productCatalog)).Msg("product catalog seeded")
	return nil
}
