package service

import (
	"context"
	"sort"

	"invencost/internal/model"

	"gorm.io/gorm"
)

// In-memory repository stubs. They honor the same contracts as the GORM
// implementations, including gorm.ErrRecordNotFound on misses.

type userRepoStub struct {
	nextID uint
	users  map[uint]*model.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: make(map[uint]*model.User)}
}

func (r *userRepoStub) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *userRepoStub) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepoStub) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepoStub) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepoStub) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepoStub) Update(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type ingredientRepoStub struct {
	nextID      uint
	ingredients map[uint]*model.Ingredient
	usages      map[uint]int64
}

func newIngredientRepoStub() *ingredientRepoStub {
	return &ingredientRepoStub{
		ingredients: make(map[uint]*model.Ingredient),
		usages:      make(map[uint]int64),
	}
}

func (r *ingredientRepoStub) Create(_ context.Context, ing *model.Ingredient) error {
	r.nextID++
	ing.ID = r.nextID
	cp := *ing
	r.ingredients[ing.ID] = &cp
	return nil
}

func (r *ingredientRepoStub) FindByID(_ context.Context, id uint) (*model.Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ing
	return &cp, nil
}

func (r *ingredientRepoStub) FindByIDs(_ context.Context, ids []uint) ([]model.Ingredient, error) {
	var out []model.Ingredient
	for _, id := range ids {
		if ing, ok := r.ingredients[id]; ok {
			out = append(out, *ing)
		}
	}
	return out, nil
}

func (r *ingredientRepoStub) List(_ context.Context) ([]model.Ingredient, error) {
	out := make([]model.Ingredient, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		out = append(out, *ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ingredientRepoStub) Update(_ context.Context, ing *model.Ingredient) error {
	cp := *ing
	r.ingredients[ing.ID] = &cp
	return nil
}

func (r *ingredientRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.ingredients, id)
	return nil
}

func (r *ingredientRepoStub) CountRecipeUsages(_ context.Context, id uint) (int64, error) {
	return r.usages[id], nil
}

type productRepoStub struct {
	nextID   uint
	products map[uint]*model.Product
}

func newProductRepoStub() *productRepoStub {
	return &productRepoStub{products: make(map[uint]*model.Product)}
}

func (r *productRepoStub) Create(_ context.Context, p *model.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *productRepoStub) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *productRepoStub) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}
