package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/foods/{food_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/foods/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/foods/{food_id}", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestCounters(t *testing.T) {
	m := New()

	m.MessageProcessed("store-status", nil)
	m.MessageProcessed("store-status", errors.New("boom"))
	m.MessageProcessed("store-status", nil)
	m.ImageUploaded("food", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.messages.WithLabelValues("store-status", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.messages.WithLabelValues("store-status", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.imageUploads.WithLabelValues("food", "success")))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.MessageProcessed("food-import", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dormeats_worker_messages_processed_total")
}
