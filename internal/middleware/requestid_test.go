package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID(t *testing.T) {
	t.Run("assigns a fresh id", func(t *testing.T) {
		var fromCtx string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = RequestIDFromCtx(r.Context())
		})

		handler := RequestID(inner)

		req := httptest.NewRequest(http.MethodGet, "/rpc/post.all", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if fromCtx == "" {
			t.Fatal("no request id in context")
		}
		if got := rr.Header().Get("X-Request-Id"); got != fromCtx {
			t.Errorf("header id %q != context id %q", got, fromCtx)
		}
	})

	t.Run("keeps an incoming id", func(t *testing.T) {
		var fromCtx string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = RequestIDFromCtx(r.Context())
		})

		handler := RequestID(inner)

		req := httptest.NewRequest(http.MethodGet, "/rpc/post.all", nil)
		req.Header.Set("X-Request-Id", "upstream-id-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if fromCtx != "upstream-id-123" {
			t.Errorf("context id = %q, want the incoming header value", fromCtx)
		}
	})

	t.Run("ids differ across requests", func(t *testing.T) {
		ids := map[string]bool{}
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ids[RequestIDFromCtx(r.Context())] = true
		})

		handler := RequestID(inner)
		for range 5 {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		}

		if len(ids) != 5 {
			t.Errorf("got %d distinct ids across 5 requests", len(ids))
		}
	})
}

func TestRequestIDFromCtx_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromCtx(req.Context()); got != "" {
		t.Errorf("got %q without middleware, want empty", got)
	}
}
