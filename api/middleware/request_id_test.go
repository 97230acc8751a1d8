package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	handler := RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if resp.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a minted request id header")
	}
}

func TestRequestIDEchoesInboundID(t *testing.T) {
	handler := RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set(requestIDHeader, "edge-proxy-id")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if got := resp.Header().Get(requestIDHeader); got != "edge-proxy-id" {
		t.Fatalf("expected inbound id echoed, got %q", got)
	}
}
