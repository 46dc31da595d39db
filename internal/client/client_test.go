package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invencost/internal/dto"
	"invencost/internal/model"
	"invencost/internal/recipe"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := NewMemoryStore()
	return New(srv.URL, store), store
}

func TestLoginStoresSessionAndBroadcasts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana", req.Username)
		json.NewEncoder(w).Encode(dto.AuthResponse{Token: "tok-1", Type: "Bearer", Username: "ana"})
	})
	c, store := newTestClient(t, mux)

	var states []AuthState
	c.Auth.Subscribe(func(s AuthState) { states = append(states, s) })

	require.NoError(t, c.Login(context.Background(), "ana", "secret"))

	token, username, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "ana", username)
	// Initial (logged out) state replayed on subscribe, then the login.
	require.Len(t, states, 2)
	assert.False(t, states[0].LoggedIn)
	assert.True(t, states[1].LoggedIn)
	assert.Equal(t, "ana", states[1].Username)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredients", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Ingredient{})
	})
	c, store := newTestClient(t, mux)
	require.NoError(t, store.Save("tok-2", "ana"))

	_, err := c.Ingredients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-2", gotAuth)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Token inválido o expirado"})
	})
	c, store := newTestClient(t, mux)
	require.NoError(t, store.Save("stale", "ana"))

	_, err := c.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAuth))

	_, _, ok := store.Load()
	assert.False(t, ok, "stale session should be dropped")
	state, _ := c.Auth.Current()
	assert.False(t, state.LoggedIn)
}

func TestProductsRetriesOnceOnServerError(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]model.Product{{Name: "Paella Valenciana"}})
	})
	c, _ := newTestClient(t, mux)

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestProductsDoesNotRetryValidationErrors(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/7", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "recurso no encontrado"})
	})
	c, _ := newTestClient(t, mux)

	_, err := c.Product(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, int32(1), calls.Load())
}

func TestIngredientListIsCached(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredients", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode([]model.Ingredient{{ID: 1, Name: "Harina"}})
	})
	c, _ := newTestClient(t, mux)

	ctx := context.Background()
	first, err := c.Ingredients(ctx)
	require.NoError(t, err)
	second, err := c.Ingredients(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestIngredientWriteInvalidatesCache(t *testing.T) {
	var listCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredients", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.Ingredient{ID: 2, Name: "Sal"})
			return
		}
		listCalls.Add(1)
		json.NewEncoder(w).Encode([]model.Ingredient{{ID: 1, Name: "Harina"}})
	})
	c, _ := newTestClient(t, mux)

	ctx := context.Background()
	_, err := c.Ingredients(ctx)
	require.NoError(t, err)
	_, err = c.CreateIngredient(ctx, dto.CreateIngredientRequest{})
	require.NoError(t, err)
	_, err = c.Ingredients(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), listCalls.Load(), "create should invalidate the cached list")
}

func TestErrorNormalization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"detail": "el recurso ya existe"})
	})
	c, _ := newTestClient(t, mux)

	_, err := c.CreateIngredient(context.Background(), dto.CreateIngredientRequest{})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDuplicate))
	assert.Contains(t, err.Error(), "el recurso ya existe")
}

func TestNetworkErrorKind(t *testing.T) {
	c := New("http://127.0.0.1:1", NewMemoryStore()) // nothing listens here

	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
}

func TestCreateProductSubmitsComposedRecipe(t *testing.T) {
	var got dto.CreateProductRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Product{ID: 9, Name: got.Name})
	})
	c, _ := newTestClient(t, mux)

	// Compose the recipe locally the way the CLI does: duplicates and unknown
	// ingredients never reach the wire.
	catalog := []model.Ingredient{
		{ID: 1, Name: "Harina", CostPrice: decimal.RequireFromString("0.95")},
		{ID: 2, Name: "Tomate", CostPrice: decimal.RequireFromString("1.80")},
	}
	editor := recipe.NewEditor(catalog)
	require.NoError(t, editor.AddLine(1, decimal.RequireFromString("0.3")))
	require.NoError(t, editor.AddLine(2, decimal.RequireFromString("0.2")))
	assert.ErrorIs(t, editor.AddLine(1, decimal.NewFromInt(1)), recipe.ErrDuplicate)
	assert.Equal(t, "0.645", editor.TotalCost().String())

	req := dto.CreateProductRequest{Name: "Pizza", Price: decimal.RequireFromString("9.50")}
	for _, line := range editor.Lines() {
		req.Recipe = append(req.Recipe, dto.RecipeLineRequest{
			IngredientID: line.IngredientID, Quantity: line.Quantity,
		})
	}
	p, err := c.CreateProduct(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, uint(9), p.ID)

	require.Len(t, got.Recipe, 2)
	assert.Equal(t, uint(1), got.Recipe[0].IngredientID)
	assert.Equal(t, "0.3", got.Recipe[0].Quantity.String())
	assert.Equal(t, uint(2), got.Recipe[1].IngredientID)
}

func TestUpdateIngredientInvalidatesCache(t *testing.T) {
	var listCalls atomic.Int32
	var got dto.UpdateIngredientRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredients", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		json.NewEncoder(w).Encode([]model.Ingredient{{ID: 3, Name: "Sal"}})
	})
	mux.HandleFunc("/api/ingredients/3", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(model.Ingredient{ID: 3, Name: got.Name, Unit: got.Unit})
	})
	c, _ := newTestClient(t, mux)

	ctx := context.Background()
	_, err := c.Ingredients(ctx)
	require.NoError(t, err)

	ing, err := c.UpdateIngredient(ctx, 3, dto.UpdateIngredientRequest{
		Name: "Sal marina", CostPrice: decimal.NewFromInt(2), Unit: "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sal marina", ing.Name)
	assert.Equal(t, "Sal marina", got.Name)

	_, err = c.Ingredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), listCalls.Load(), "update should invalidate the cached list")
}

func TestUpdateProfileSendsPartialEdit(t *testing.T) {
	var got dto.UpdateProfileRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(dto.ProfileResponse{ID: 1, Username: "ana", FirstName: got.FirstName})
	})
	c, _ := newTestClient(t, mux)

	nombre := "Ana"
	p, err := c.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FirstName: &nombre})
	require.NoError(t, err)

	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Ana", *got.FirstName)
	assert.Nil(t, got.Email, "untouched fields travel as null")
	require.NotNil(t, p.FirstName)
	assert.Equal(t, "Ana", *p.FirstName)
}

func TestChangePasswordSendsBothPasswords(t *testing.T) {
	var got dto.ChangePasswordRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/change-password", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"message": "Contraseña actualizada correctamente"})
	})
	c, _ := newTestClient(t, mux)

	require.NoError(t, c.ChangePassword(context.Background(), "vieja", "nueva-clave"))
	assert.Equal(t, "vieja", got.CurrentPassword)
	assert.Equal(t, "nueva-clave", got.NewPassword)
}

func TestLogout(t *testing.T) {
	c, store := newTestClient(t, http.NewServeMux())
	require.NoError(t, store.Save("tok", "ana"))
	c.Auth.Publish(AuthState{LoggedIn: true, Username: "ana"})

	require.NoError(t, c.Logout())

	_, _, ok := store.Load()
	assert.False(t, ok)
	state, _ := c.Auth.Current()
	assert.False(t, state.LoggedIn)
}
