package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = chimiddleware.GetReqID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return ctxID, resp.Header().Get(chimiddleware.RequestIDHeader)
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	ctxID, headerID := serveRequestID(t, "client-id-42")
	if ctxID != "client-id-42" {
		t.Fatalf("expected context id client-id-42, got %q", ctxID)
	}
	if headerID != ctxID {
		t.Fatalf("expected response header %q, got %q", ctxID, headerID)
	}
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "missing", incoming: ""},
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "control character", incoming: "abc\x01def"},
		{name: "non ascii", incoming: "idé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctxID, headerID := serveRequestID(t, tt.incoming)
			if ctxID == tt.incoming {
				t.Fatalf("expected a generated id, got the incoming one")
			}
			if _, err := uuid.Parse(ctxID); err != nil {
				t.Fatalf("expected UUID, got %q: %v", ctxID, err)
			}
			if headerID != ctxID {
				t.Fatalf("expected response header %q, got %q", ctxID, headerID)
			}
		})
	}
}

func TestValidRequestIDBoundaries(t *testing.T) {
	if !validRequestID(strings.Repeat("x", maxRequestIDLength)) {
		t.Fatal("expected max-length id to be valid")
	}
	if !validRequestID(" ~") {
		t.Fatal("expected printable ASCII boundaries to be valid")
	}
	if validRequestID("a\x7f") {
		t.Fatal("expected DEL to be rejected")
	}
}
