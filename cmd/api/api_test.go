package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Beka01247/dormeats/internal/auth"
	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/media"
	"github.com/Beka01247/dormeats/internal/metrics"
	"github.com/Beka01247/dormeats/internal/mocks"
	"github.com/Beka01247/dormeats/internal/queue"
	"github.com/Beka01247/dormeats/internal/ratelimiter"
	"github.com/Beka01247/dormeats/internal/repo"
	"github.com/Beka01247/dormeats/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeDatabase struct {
	pingErr error
}

func (f fakeDatabase) Ping(context.Context) error  { return f.pingErr }
func (f fakeDatabase) Close(context.Context) error { return nil }

type testDeps struct {
	stores    *mocks.StoreRepository
	audits    *mocks.StoreStatusAuditRepository
	foods     *mocks.FoodRepository
	dashboard *mocks.DashboardRepository
	tasks     *mocks.FoodImportTaskRepository
	uploader  *mocks.Uploader
	broker    *mocks.Broker
}

type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestApplication(t *testing.T, cfg config) (*application, testDeps) {
	t.Helper()

	d := testDeps{
		stores:    mocks.NewStoreRepository(t),
		audits:    mocks.NewStoreStatusAuditRepository(t),
		foods:     mocks.NewFoodRepository(t),
		dashboard: mocks.NewDashboardRepository(t),
		tasks:     mocks.NewFoodImportTaskRepository(t),
		uploader:  mocks.NewUploader(t),
		broker:    mocks.NewBroker(t),
	}

	logger := zap.NewNop().Sugar()
	tx := passthroughTx{}

	storeService := service.NewStoreService(d.stores, d.audits, d.uploader, d.broker, tx, logger)

	app := &application{
		config:           cfg,
		logger:           logger,
		rateLimiter:      ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		authenticator:    auth.NewAuthenticator(auth.Config{Secret: "test-secret", Issuer: "dormeats"}),
		metrics:          metrics.New(),
		storage:          fakeDatabase{},
		broker:           d.broker,
		storeService:     storeService,
		foodService:      service.NewFoodService(d.foods, d.stores, d.uploader, logger),
		dashboardService: service.NewDashboardService(d.dashboard, tx, logger),
		importService:    service.NewImportService(d.tasks, d.foods, d.stores, nil, d.broker, tx, logger),
		sessionService:   service.NewSessionService(storeService),
	}

	return app, d
}

func token(t *testing.T, app *application, userID, role string) string {
	t.Helper()

	tok, err := app.authenticator.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func newRequest(t *testing.T, method, path, tok string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app, _ := newTestApplication(t, config{})
		rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/health", "", nil), app.mount())

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"healthy"`)
	})

	t.Run("database down", func(t *testing.T) {
		app, _ := newTestApplication(t, config{})
		app.storage = fakeDatabase{pingErr: errors.New("no primary")}
		rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/health", "", nil), app.mount())

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestAuthentication(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", want: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := newRequest(t, http.MethodGet, "/api/v1/me", "", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := executeRequest(req, mux)

			assert.Equal(t, tc.want, rr.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rr.Body.String())
		})
	}
}

func TestSessionHandler(t *testing.T) {
	app, d := newTestApplication(t, config{})
	d.stores.On("GetByOwnerID", mock.Anything, "seller-1").Return(nil, fmt.Errorf("store %w", repo.ErrNotFound)).Once()

	rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/me", token(t, app, "seller-1", auth.RoleSeller), nil), app.mount())
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data service.Session `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, service.HomeStoreRegistration, body.Data.Home)
	assert.Equal(t, domain.StoreStatusNone, body.Data.StoreStatus)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/admin/dashboard", token(t, app, "seller-1", auth.RoleSeller), nil), app.mount())

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRegisterStoreHandler(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		app, _ := newTestApplication(t, config{})
		rr := executeRequest(newRequest(t, http.MethodPost, "/api/v1/stores", token(t, app, "seller-1", auth.RoleSeller), StorePayload{Name: "Noodle Bar"}), app.mount())

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		app, d := newTestApplication(t, config{})
		d.stores.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("store %w", repo.ErrConflict)).Once()

		payload := StorePayload{Name: "Noodle Bar", Location: "Dorm B"}
		rr := executeRequest(newRequest(t, http.MethodPost, "/api/v1/stores", token(t, app, "seller-1", auth.RoleSeller), payload), app.mount())

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("admins do not own stores", func(t *testing.T) {
		app, _ := newTestApplication(t, config{})
		payload := StorePayload{Name: "Noodle Bar", Location: "Dorm B"}
		rr := executeRequest(newRequest(t, http.MethodPost, "/api/v1/stores", token(t, app, "admin-1", auth.RoleAdmin), payload), app.mount())

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestGetStoreHandler(t *testing.T) {
	app, d := newTestApplication(t, config{})
	mux := app.mount()
	tok := token(t, app, "seller-1", auth.RoleSeller)

	rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/stores/not-an-id", tok, nil), mux)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	missing := primitive.NewObjectID()
	d.stores.On("GetByID", mock.Anything, missing).Return(nil, fmt.Errorf("store %w", repo.ErrNotFound)).Once()
	rr = executeRequest(newRequest(t, http.MethodGet, "/api/v1/stores/"+missing.Hex(), tok, nil), mux)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateFoodHandler_PendingStore(t *testing.T) {
	app, d := newTestApplication(t, config{})
	store := &domain.Store{ID: primitive.NewObjectID(), OwnerID: "seller-1", Status: domain.StoreStatusPending}
	d.stores.On("GetByID", mock.Anything, store.ID).Return(store, nil).Once()

	payload := map[string]any{"name": "Pad Thai", "price": 45}
	rr := executeRequest(newRequest(t, http.MethodPost, "/api/v1/stores/"+store.ID.Hex()+"/foods", token(t, app, "seller-1", auth.RoleSeller), payload), app.mount())

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "store is not approved")
}

func TestListFoodsHandler(t *testing.T) {
	app, d := newTestApplication(t, config{})
	storeID := primitive.NewObjectID()
	d.foods.On("ListByStore", mock.Anything, storeID, true).Return([]domain.Food{{Name: "Pad Thai", StoreID: storeID, Available: true}}, nil).Once()

	rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/stores/"+storeID.Hex()+"/foods?available=true", token(t, app, "buyer-1", auth.RoleSeller), nil), app.mount())

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Pad Thai")
}

func TestSetFoodAvailabilityHandler(t *testing.T) {
	app, d := newTestApplication(t, config{})
	store := &domain.Store{ID: primitive.NewObjectID(), OwnerID: "seller-1", Status: domain.StoreStatusApproved}
	food := &domain.Food{ID: primitive.NewObjectID(), StoreID: store.ID, Available: true}
	d.foods.On("GetByID", mock.Anything, food.ID).Return(food, nil).Once()
	d.stores.On("GetByID", mock.Anything, store.ID).Return(store, nil).Once()
	d.foods.On("SetAvailability", mock.Anything, food.ID, false).Return(nil).Once()

	rr := executeRequest(newRequest(t, http.MethodPatch, "/api/v1/foods/"+food.ID.Hex()+"/availability", token(t, app, "seller-1", auth.RoleSeller), map[string]bool{"available": false}), app.mount())

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestUploadFoodImageHandler_RejectsNonImages(t *testing.T) {
	app, d := newTestApplication(t, config{})
	store := &domain.Store{ID: primitive.NewObjectID(), OwnerID: "seller-1", Status: domain.StoreStatusApproved}
	food := &domain.Food{ID: primitive.NewObjectID(), StoreID: store.ID}
	d.foods.On("GetByID", mock.Anything, food.ID).Return(food, nil).Once()
	d.stores.On("GetByID", mock.Anything, store.ID).Return(store, nil).Once()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "menu.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("just some text"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/v1/foods/"+food.ID.Hex()+"/image", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token(t, app, "seller-1", auth.RoleSeller))

	rr := executeRequest(req, app.mount())
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unsupported image type")
}

func TestStoreQRHandler(t *testing.T) {
	app, d := newTestApplication(t, config{frontendURL: "https://dormeats.app"})
	store := &domain.Store{ID: primitive.NewObjectID(), Status: domain.StoreStatusApproved}
	d.stores.On("GetByID", mock.Anything, store.ID).Return(store, nil).Once()

	rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/stores/"+store.ID.Hex()+"/qr", token(t, app, "buyer-1", auth.RoleSeller), nil), app.mount())

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

func TestUpdateStoreStatusHandler(t *testing.T) {
	app, d := newTestApplication(t, config{})
	mux := app.mount()
	tok := token(t, app, "admin-1", auth.RoleAdmin)
	store := &domain.Store{ID: primitive.NewObjectID(), OwnerID: "seller-1", Status: domain.StoreStatusPending}

	rr := executeRequest(newRequest(t, http.MethodPatch, "/api/v1/admin/stores/"+store.ID.Hex()+"/status", tok, map[string]string{"status": "NONE"}), mux)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	d.stores.On("GetByID", mock.Anything, store.ID).Return(store, nil).Once()
	d.broker.On("Publish", mock.Anything, queue.QueueStoreStatus, mock.Anything).Return(nil).Once()

	rr = executeRequest(newRequest(t, http.MethodPatch, "/api/v1/admin/stores/"+store.ID.Hex()+"/status", tok, map[string]string{"status": "APPROVED", "reason": "menu checked"}), mux)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestDashboardHandler(t *testing.T) {
	app, d := newTestApplication(t, config{})
	d.dashboard.On("GetLatestStats", mock.Anything).Return(nil, fmt.Errorf("dashboard stats %w", repo.ErrNotFound)).Once()
	d.dashboard.On("ListTopStores", mock.Anything, 3).Return(nil, errors.New("cursor killed")).Once()

	rr := executeRequest(newRequest(t, http.MethodGet, "/api/v1/admin/dashboard?top=3", token(t, app, "admin-1", auth.RoleAdmin), nil), app.mount())
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data domain.DashboardView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Len(t, body.Data.Stats.WeeklyOrders, domain.DaysPerWeek)
	assert.Empty(t, body.Data.TopStores)
	assert.NotEmpty(t, body.Data.Error)
}

func TestRecordStatsHandler(t *testing.T) {
	app, d := newTestApplication(t, config{})
	mux := app.mount()
	tok := token(t, app, "admin-1", auth.RoleAdmin)

	short := map[string]any{
		"weeklyRevenue": []float64{1, 2, 3, 4, 5, 6},
		"weeklyOrders":  []int64{1, 2, 3, 4, 5, 6, 7},
	}
	rr := executeRequest(newRequest(t, http.MethodPut, "/api/v1/admin/dashboard/stats", tok, short), mux)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "weeklyRevenue needs 7 entries")

	d.dashboard.On("UpsertStats", mock.Anything, mock.MatchedBy(func(s *domain.AdminDashboardStats) bool {
		return s.WeekStart.Equal(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)) && s.NewUsers == 4
	})).Return(nil).Once()

	full := map[string]any{
		"weekStart":     "2026-10-15",
		"weeklyRevenue": []float64{1, 2, 3, 4, 5, 6, 7},
		"weeklyOrders":  []int64{1, 2, 3, 4, 5, 6, 7},
		"newUsers":      4,
	}
	rr = executeRequest(newRequest(t, http.MethodPut, "/api/v1/admin/dashboard/stats", tok, full), mux)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestCreateImportTaskHandler_Unavailable(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	storeID := primitive.NewObjectID()

	rr := executeRequest(newRequest(t, http.MethodPost, "/api/v1/stores/"+storeID.Hex()+"/imports", token(t, app, "seller-1", auth.RoleSeller), map[string]string{"spreadsheet_id": "sheet-1"}), app.mount())

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	app, _ := newTestApplication(t, config{
		rateLimiter: ratelimiter.Config{RequestsPerTimeFrame: 1, TimeFrame: time.Minute, Enabled: true},
	})
	mux := app.mount()

	req := newRequest(t, http.MethodGet, "/api/v1/health", "", nil)
	req.RemoteAddr = "10.0.0.7:5000"

	rr := executeRequest(req, mux)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = newRequest(t, http.MethodGet, "/api/v1/health", "", nil)
	req.RemoteAddr = "10.0.0.7:5001"

	rr = executeRequest(req, mux)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	executeRequest(newRequest(t, http.MethodGet, "/api/v1/health", "", nil), mux)
	rr := executeRequest(newRequest(t, http.MethodGet, "/metrics", "", nil), mux)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `route="/api/v1/health"`))
}

func TestUpdateFoodHandler_KeepsOmittedFields(t *testing.T) {
	app, d := newTestApplication(t, config{})
	store := &domain.Store{ID: primitive.NewObjectID(), OwnerID: "seller-1", Status: domain.StoreStatusApproved}
	food := &domain.Food{ID: primitive.NewObjectID(), Name: "Pad Thai", Price: 45, Description: "rice noodles", StoreID: store.ID, Available: false}
	d.foods.On("GetByID", mock.Anything, food.ID).Return(food, nil).Once()
	d.stores.On("GetByID", mock.Anything, store.ID).Return(store, nil).Once()
	d.foods.On("Update", mock.Anything, mock.MatchedBy(func(f *domain.Food) bool {
		return f.Price == 50 && !f.Available && f.Description == "rice noodles"
	})).Return(nil).Once()

	payload := map[string]any{"name": "Pad Thai", "price": 50}
	rr := executeRequest(newRequest(t, http.MethodPatch, "/api/v1/foods/"+food.ID.Hex(), token(t, app, "seller-1", auth.RoleSeller), payload), app.mount())

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data domain.Food `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.False(t, body.Data.Available)
	assert.Equal(t, 50.0, body.Data.Price)
}

func imageUploadRequest(t *testing.T, path, tok string, size int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "big.png")
	require.NoError(t, err)
	data := make([]byte, size)
	copy(data, []byte("\x89PNG\r\n\x1a\n"))
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tok)
	return req
}

func TestUploadImage_TooLarge(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()
	tok := token(t, app, "seller-1", auth.RoleSeller)
	path := "/api/v1/stores/" + primitive.NewObjectID().Hex() + "/image"

	for _, size := range []int{media.MaxImageSize + 1, media.MaxImageSize + 2<<20} {
		rr := executeRequest(imageUploadRequest(t, path, tok, size), mux)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code, "size %d", size)
		assert.JSONEq(t, `{"error":"file is too large"}`, rr.Body.String())
	}
}

func TestSwaggerUI(t *testing.T) {
	app, _ := newTestApplication(t, config{addr: ":8080"})
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/api/v1/swagger/index.html", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)
	page := strings.ReplaceAll(rr.Body.String(), `\/`, "/")
	assert.Contains(t, page, `url: "/api/v1/swagger/doc.json"`)

	rr = executeRequest(httptest.NewRequest(http.MethodGet, docsURL, nil), mux)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"basePath": "/api/v1"`)
}
