package health

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func ok() Pinger { return pingFunc(func(context.Context) error { return nil }) }

func TestLiveness(t *testing.T) {
	h := &Handler{Log: log.New(io.Discard, "", 0)}
	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	down := pingFunc(func(context.Context) error { return errors.New("no route to host") })

	cases := []struct {
		name    string
		db, st  Pinger
		code    int
		contain string
	}{
		{"ready", ok(), ok(), http.StatusOK, `"ready"`},
		{"db down", down, ok(), http.StatusServiceUnavailable, "no route to host"},
		{"storage down", ok(), down, http.StatusServiceUnavailable, "no route to host"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Handler{Log: log.New(io.Discard, "", 0), DB: tc.db, Storage: tc.st}
			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/v1/readyz", nil))

			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.contain)
		})
	}
}
