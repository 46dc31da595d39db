package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEmptyCatalog(t *testing.T) {
	ingredients := newIngredientRepoStub()
	products := newProductRepoStub()
	svc := NewSeedService(ingredients, products)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	ings, err := ingredients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ings, len(ingredientCatalog))

	prods, err := products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, prods, len(productCatalog))

	// Every seeded product carries recipe lines resolved to real ingredients.
	for _, p := range prods {
		assert.NotEmpty(t, p.Recipes, "producto %s sin receta", p.Name)
		for _, line := range p.Recipes {
			assert.NotZero(t, line.IngredientID)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ingredients := newIngredientRepoStub()
	products := newProductRepoStub()
	svc := NewSeedService(ingredients, products)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	ings, _ := ingredients.List(ctx)
	prods, _ := products.List(ctx)
	assert.Len(t, ings, len(ingredientCatalog))
	assert.Len(t, prods, len(productCatalog))
}
