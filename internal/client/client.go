// Package client is the Go API client for the invencost backend. It carries
// the session token, normalizes errors into a small Kind taxonomy, retries
// transient read failures once, and caches the ingredient catalog briefly so
// recipe forms don't hammer the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"invencost/internal/dashboard"
	"invencost/internal/dto"
	"invencost/internal/model"
	"invencost/internal/pubsub"

	"github.com/cenkalti/backoff/v4"
	gocache "github.com/patrickmn/go-cache"
)

const (
	ingredientCacheKey = "ingredients"
	ingredientCacheTTL = time.Minute
)

// AuthState is broadcast on every login / logout.
type AuthState struct {
	LoggedIn bool
	Username string
}

// Client talks to one invencost server on behalf of one user session.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
	cache   *gocache.Cache

	// Auth publishes session changes; subscribers get the current state
	// immediately.
	Auth *pubsub.Broker[AuthState]
}

// New builds a client against baseURL (e.g. "http://localhost:8080").
// The store may already hold a session from a previous run.
func New(baseURL string, store TokenStore) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
		cache:   gocache.New(ingredientCacheTTL, 5*time.Minute),
		Auth:    pubsub.NewBroker[AuthState](),
	}
	if _, username, ok := store.Load(); ok {
		c.Auth.Publish(AuthState{LoggedIn: true, Username: username})
	} else {
		c.Auth.Publish(AuthState{})
	}
	return c
}

// ── Auth ────────────────────────────────────────────────────────────────────

func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return err
	}
	if err := c.store.Save(resp.Token, resp.Username); err != nil {
		return &Error{Kind: KindUnknown, Message: "No se pudo guardar la sesión.", Detail: err.Error()}
	}
	c.Auth.Publish(AuthState{LoggedIn: true, Username: resp.Username})
	return nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	var resp dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return err
	}
	if err := c.store.Save(resp.Token, resp.Username); err != nil {
		return &Error{Kind: KindUnknown, Message: "No se pudo guardar la sesión.", Detail: err.Error()}
	}
	c.Auth.Publish(AuthState{LoggedIn: true, Username: resp.Username})
	return nil
}

// Logout discards the session locally. The token is stateless, so there is
// nothing to revoke server-side.
func (c *Client) Logout() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.Auth.Publish(AuthState{})
	return nil
}

// ── Ingredients ─────────────────────────────────────────────────────────────

// Ingredients lists the catalog. Results are cached for a minute; writes
// through this client invalidate the cache.
func (c *Client) Ingredients(ctx context.Context) ([]model.Ingredient, error) {
	if cached, ok := c.cache.Get(ingredientCacheKey); ok {
		return cached.([]model.Ingredient), nil
	}
	var out []model.Ingredient
	if err := c.do(ctx, http.MethodGet, "/api/ingredients", nil, &out); err != nil {
		return nil, err
	}
	c.cache.SetDefault(ingredientCacheKey, out)
	return out, nil
}

func (c *Client) Ingredient(ctx context.Context, id uint) (*model.Ingredient, error) {
	var out model.Ingredient
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/ingredients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateIngredient(ctx context.Context, req dto.CreateIngredientRequest) (*model.Ingredient, error) {
	var out model.Ingredient
	if err := c.do(ctx, http.MethodPost, "/api/ingredients", req, &out); err != nil {
		return nil, err
	}
	c.cache.Delete(ingredientCacheKey)
	return &out, nil
}

func (c *Client) UpdateIngredient(ctx context.Context, id uint, req dto.UpdateIngredientRequest) (*model.Ingredient, error) {
	var out model.Ingredient
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/ingredients/%d", id), req, &out); err != nil {
		return nil, err
	}
	c.cache.Delete(ingredientCacheKey)
	return &out, nil
}

func (c *Client) DeleteIngredient(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/ingredients/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.Delete(ingredientCacheKey)
	return nil
}

// ── Products ────────────────────────────────────────────────────────────────

// Products lists all products with server-derived cost and margin. Reads are
// retried once on network or 5xx failures.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.doWithRetry(ctx, http.MethodGet, "/api/products", nil, &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id uint) (*model.Product, error) {
	var out model.Product
	if err := c.doWithRetry(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// ── Dashboard ───────────────────────────────────────────────────────────────

func (c *Client) Dashboard(ctx context.Context) (*dashboard.Summary, error) {
	var out dashboard.Summary
	if err := c.doWithRetry(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Profile ─────────────────────────────────────────────────────────────────

func (c *Client) Profile(ctx context.Context) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, new string) error {
	return c.do(ctx, http.MethodPost, "/api/user/change-password",
		dto.ChangePasswordRequest{CurrentPassword: current, NewPassword: new}, nil)
}

// ── Admin ───────────────────────────────────────────────────────────────────

func (c *Client) Seed(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/admin/seed", nil, nil)
}

// ── Transport ───────────────────────────────────────────────────────────────

// doWithRetry runs do and retries exactly once, immediately, when the
// failure looks transient (network error or 5xx). Client-side errors are
// permanent and surface as-is.
func (c *Client) doWithRetry(ctx context.Context, method, path string, body, out interface{}) error {
	op := func() error {
		err := c.do(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		if IsKind(err, KindNetwork) || IsKind(err, KindServer) {
			return err
		}
		return backoff.Permanent(err)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 1), ctx)
	err := backoff.Retry(op, policy)
	if perm, ok := err.(*backoff.PermanentError); ok {
		return perm.Err
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnknown, Message: "No se pudo serializar la petición.", Detail: err.Error()}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindUnknown, Message: "Petición inválida.", Detail: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, _, ok := c.store.Load(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail := readDetail(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			// The token is stale; drop the session so the UI can re-login.
			_ = c.store.Clear()
			c.Auth.Publish(AuthState{})
		}
		return normalize(resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindUnknown, Message: "Respuesta ilegible del servidor.", Detail: err.Error()}
	}
	return nil
}

// readDetail extracts the "detail" field from an apierror envelope; returns
// "" when the body is not one.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Detail
}
