package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/observability"
	"github.com/spec-kit/restaurant-service/internal/service"
	"github.com/spec-kit/restaurant-service/internal/worker"
)

// Minimal in-memory repositories so the full route stack can run
// without Postgres or Redis.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.Category
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.NewString()
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubCategoryRepo) GetByName(_ context.Context, name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.categories, id)
	return nil
}

type stubMenuRepo struct {
	mu    sync.Mutex
	items map[string]*domain.MenuItem
}

func (r *stubMenuRepo) Create(_ context.Context, i *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i.ID = uuid.NewString()
	clone := *i
	r.items[i.ID] = &clone
	return nil
}

func (r *stubMenuRepo) Update(_ context.Context, i *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[i.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *i
	r.items[i.ID] = &clone
	return nil
}

func (r *stubMenuRepo) GetByID(_ context.Context, id string) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.items[id]; ok {
		clone := *i
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubMenuRepo) List(_ context.Context, categoryID string) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MenuItem, 0, len(r.items))
	for _, i := range r.items {
		if categoryID == "" || i.CategoryID == categoryID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

type stubCartRepo struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

func (r *stubCartRepo) Get(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &domain.Cart{UserID: userID, Lines: append([]domain.CartLine{}, r.carts[userID]...)}, nil
}

func (r *stubCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.UserID] = append([]domain.CartLine{}, cart.Lines...)
	return nil
}

func (r *stubCartRepo) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

type stubOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = uuid.NewString()
	clone := *o
	clone.Items = append([]domain.OrderItem{}, o.Items...)
	r.orders[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context, _, _ int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.Status = status
		return nil
	}
	return pgx.ErrNoRows
}

type stubBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = uuid.NewString()
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListAll(_ context.Context, _, _ int) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		b.Status = status
		return nil
	}
	return pgx.ErrNoRows
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{
			Name:        "restaurant-service",
			Env:         "development",
			Version:     "test",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 24,
			BcryptCost:    bcrypt.MinCost,
			AdminEmail:    "admin@resto.test",
			AdminPassword: "supersecret",
		},
	}

	pool := worker.NewHashPool(2)
	t.Cleanup(pool.Close)

	userRepo := &stubUserRepo{users: make(map[string]*domain.User)}
	categoryRepo := &stubCategoryRepo{categories: make(map[string]*domain.Category)}
	menuRepo := &stubMenuRepo{items: make(map[string]*domain.MenuItem)}
	cartRepo := &stubCartRepo{carts: make(map[string][]domain.CartLine)}
	orderRepo := &stubOrderRepo{orders: make(map[string]*domain.Order)}
	bookingRepo := &stubBookingRepo{bookings: make(map[string]*domain.Booking)}

	authService := service.NewAuthService(cfg, service.AuthDependencies{UserRepo: userRepo, HashPool: pool})
	menuService := service.NewMenuService(categoryRepo, menuRepo)
	cartService := service.NewCartService(cartRepo, menuRepo)
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo: orderRepo,
		CartRepo:  cartRepo,
		MenuRepo:  menuRepo,
	})
	bookingService := service.NewBookingService(bookingRepo, nil)

	guard := auth.NewSessionGuard(authService.TokenManager(), authService.AdminEmail())
	cookies := auth.NewCookieWriter(cfg.App.IsProduction(), cfg.Auth.TokenTTL())

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), cfg.App.CORSOrigins, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, nil, nil),
		Auth:       handlers.NewAuthHandler(authService, cookies),
		Categories: handlers.NewCategoryHandler(menuService),
		Menu:       handlers.NewMenuHandler(menuService),
		Cart:       handlers.NewCartHandler(cartService),
		Orders:     handlers.NewOrderHandler(orderService),
		Bookings:   handlers.NewBookingHandler(bookingService),
		Guard:      guard,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, cookie string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestRegisterLoginFlow(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw123"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])
	// Registration does not log the user in.
	assert.Empty(t, resp.Cookies())

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw456"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "missing@x.com", "password": "pw123"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User does not exist", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "a@x.com", "password": "pw123"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, "a@x.com", user["email"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	cookie := sessionCookie(t, resp)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 24*60*60, cookie.MaxAge)
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please fill all the fields", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestProfileRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not Authorized", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/auth/profile", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["message"])

	doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw123"})
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "a@x.com", "password": "pw123"})
	token := sessionCookie(t, resp).Value

	resp, body = doJSON(t, app, http.MethodGet, "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Alice", user["name"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/auth/is-auth", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User logged out successfully", body["message"])

	cleared := sessionCookie(t, resp)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.HttpOnly)
	assert.True(t, cleared.Expires.Before(time.Now()))

	// A client that dropped the cookie is back to unauthenticated.
	resp, body = doJSON(t, app, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not Authorized", body["message"])
}

func TestAdminLoginAndGating(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/admin-login", "",
		map[string]string{"email": "admin@resto.test", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/admin-login", "",
		map[string]string{"email": "admin@resto.test", "password": "supersecret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Admin logged in successfully", body["message"])
	admin := body["admin"].(map[string]any)
	assert.Equal(t, "admin@resto.test", admin["email"])
	adminToken := sessionCookie(t, resp).Value

	// A regular user's valid token must not pass the admin gate.
	doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw123"})
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "a@x.com", "password": "pw123"})
	userToken := sessionCookie(t, resp).Value

	resp, body = doJSON(t, app, http.MethodPost, "/api/category", userToken,
		map[string]string{"name": "Pizza"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Admins only", body["message"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/category", "",
		map[string]string{"name": "Pizza"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/category", adminToken,
		map[string]string{"name": "Pizza"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestOrderingFlow(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/admin-login", "",
		map[string]string{"email": "admin@resto.test", "password": "supersecret"})
	adminToken := sessionCookie(t, resp).Value

	_, body := doJSON(t, app, http.MethodPost, "/api/category", adminToken,
		map[string]string{"name": "Mains"})
	categoryID := body["category"].(map[string]any)["id"].(string)

	_, body = doJSON(t, app, http.MethodPost, "/api/menu", adminToken, map[string]any{
		"category_id": categoryID,
		"name":        "Pizza Margherita",
		"price_cents": 1200,
	})
	itemID := body["item"].(map[string]any)["id"].(string)

	// Menu is publicly readable.
	resp, body = doJSON(t, app, http.MethodGet, "/api/menu", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["items"], 1)

	doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw123"})
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "a@x.com", "password": "pw123"})
	userToken := sessionCookie(t, resp).Value

	// Cart requires a session.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/cart", "",
		map[string]any{"menu_item_id": itemID, "quantity": 2})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/cart", userToken,
		map[string]any{"menu_item_id": itemID, "quantity": 2})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/order", userToken,
		map[string]string{"delivery_address": "1 Main St"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	order := body["order"].(map[string]any)
	assert.Equal(t, "PLACED", order["status"])
	assert.Equal(t, float64(2400), order["total_cents"])
	orderID := order["id"].(string)

	// Cart was consumed by the order.
	_, body = doJSON(t, app, http.MethodGet, "/api/cart", userToken, nil)
	assert.Empty(t, body["cart"].(map[string]any)["lines"])

	// Admin advances the order.
	resp, body = doJSON(t, app, http.MethodPut, "/api/order/"+orderID+"/status", adminToken,
		map[string]string{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "CONFIRMED", body["order"].(map[string]any)["status"])

	// The status endpoint is admin-only.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/order/"+orderID+"/status", userToken,
		map[string]string{"status": "DELIVERED"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw123"})
	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "a@x.com", "password": "pw123"})
	userToken := sessionCookie(t, resp).Value

	resp, body := doJSON(t, app, http.MethodPost, "/api/booking", userToken,
		map[string]any{"date": "2026-12-31", "time": "19:00", "guests": 4})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	booking := body["booking"].(map[string]any)
	assert.Equal(t, "PENDING", booking["status"])
	bookingID := booking["id"].(string)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/booking", userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/booking/all", userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	respAdmin, _ := doJSON(t, app, http.MethodPost, "/api/auth/admin-login", "",
		map[string]string{"email": "admin@resto.test", "password": "supersecret"})
	adminToken := sessionCookie(t, respAdmin).Value

	resp, body = doJSON(t, app, http.MethodPut, "/api/booking/"+bookingID+"/status", adminToken,
		map[string]string{"status": "CONFIRMED"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "CONFIRMED", body["booking"].(map[string]any)["status"])
}

func TestAdminSessionHasNoProfile(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/admin-login", "",
		map[string]string{"email": "admin@resto.test", "password": "supersecret"})
	adminToken := sessionCookie(t, resp).Value

	// The static admin has no account row; profile reports not found.
	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/profile", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", body["message"])
}

func TestErrorEnvelopeShape(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/menu/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	msg, ok := body["message"].(string)
	require.True(t, ok)
	assert.False(t, strings.Contains(strings.ToLower(msg), "sql"))
	assert.False(t, strings.Contains(strings.ToLower(msg), "pgx"))
}
