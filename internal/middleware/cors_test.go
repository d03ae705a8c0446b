package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsRequest(t *testing.T, origins []string, origin, method string) *httptest.ResponseRecorder {
	t.Helper()

	handler := CORS(origins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(method, "/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCORS_WildcardEchoesOrigin(t *testing.T) {
	rr := corsRequest(t, []string{"*"}, "https://app.example", http.MethodGet)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Credentials") != "" {
		t.Fatal("wildcard match must not allow credentials")
	}
}

func TestCORS_ExplicitOriginAllowsCredentials(t *testing.T) {
	rr := corsRequest(t, []string{"https://app.example"}, "https://app.example", http.MethodGet)

	if rr.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("explicit origin should allow credentials")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	rr := corsRequest(t, []string{"https://app.example"}, "https://evil.example", http.MethodGet)

	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("disallowed origin should get no CORS headers")
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	rr := corsRequest(t, []string{"*"}, "https://app.example", http.MethodOptions)

	if rr.Code != http.StatusOK {
		t.Fatalf("preflight should return 200, got %d", rr.Code)
	}
}
