package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	assetservice "assetverse/contexts/asset-management/asset-service"
	"assetverse/contexts/asset-management/asset-service/adapters/identity"
	"assetverse/contexts/asset-management/asset-service/adapters/memory"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	httptransport "assetverse/contexts/asset-management/asset-service/transport/http"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

type failingHealth struct{}

func (failingHealth) Ping(context.Context) error { return errors.New("db down") }

func newTestServer(t *testing.T) (*Server, *identity.JWTVerifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	verifier := identity.NewJWTVerifier(testSecret)
	module := assetservice.NewInMemoryModule(memory.Seed{
		Users: []entities.User{
			{Email: "hr@acme.io", Name: "Hana", Role: entities.RoleHR, CompanyName: "Acme", PackageLimit: 5},
			{Email: "alice@acme.io", Name: "Alice", Role: entities.RoleEmployee},
		},
		Assets: []entities.Asset{{
			AssetID:           "a1",
			ProductName:       "Laptop",
			ProductType:       entities.ProductTypeReturnable,
			ProductQuantity:   2,
			AvailableQuantity: 2,
			HREmail:           "hr@acme.io",
			CompanyName:       "Acme",
			DateAdded:         time.Now().UTC(),
		}},
	}, assetservice.External{Verifier: verifier, SiteDomain: "https://assetverse.test"}, nil)
	return New(module, Options{Health: module.Store}), verifier
}

func token(t *testing.T, verifier *identity.JWTVerifier, email string) string {
	t.Helper()
	signed, err := verifier.Sign(email, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func do(server *Server, method string, path string, auth string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	server.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) httptransport.ErrorResponse {
	t.Helper()
	var resp httptransport.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rr.Body.String(), err)
	}
	return resp
}

func TestRootAndHealth(t *testing.T) {
	server, _ := newTestServer(t)

	rr := do(server, http.MethodGet, "/", "", nil)
	if rr.Code != http.StatusOK || rr.Body.String() != "hello" {
		t.Fatalf("unexpected root response %d %q", rr.Code, rr.Body.String())
	}
	rr = do(server, http.MethodGet, "/healthz", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected healthy, got %d", rr.Code)
	}

	server.health = failingHealth{}
	rr = do(server, http.MethodGet, "/healthz", "", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	server, _ := newTestServer(t)

	for _, auth := range []string{"", "Basic abc", "Bearer ", "Bearer not-a-jwt"} {
		rr := do(server, http.MethodGet, "/my-requests", auth, nil)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("auth %q: expected 401, got %d body=%s", auth, rr.Code, rr.Body.String())
		}
		if resp := decodeError(t, rr); resp.Code != "unauthorized" || resp.Message != "unauthorized access" {
			t.Fatalf("unexpected error body %+v", resp)
		}
	}
}

func TestHRRoutesRejectEmployees(t *testing.T) {
	server, verifier := newTestServer(t)

	rr := do(server, http.MethodGet, "/assets", token(t, verifier, "alice@acme.io"), nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = do(server, http.MethodGet, "/assets?limit=1", token(t, verifier, "hr@acme.io"), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for hr, got %d body=%s", rr.Code, rr.Body.String())
	}
	var page httptransport.ListAssetsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.TotalAssets != 1 || page.Assets[0].ID != "a1" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	server, verifier := newTestServer(t)
	alice := token(t, verifier, "alice@acme.io")
	hr := token(t, verifier, "hr@acme.io")

	rr := do(server, http.MethodPost, "/asset-requests", alice, []byte(`{"assetId":"a1","requesterName":"Alice"}`))
	if rr.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", rr.Code, rr.Body.String())
	}
	var submitted httptransport.SubmitRequestResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("decode submit: %v", err)
	}

	rr = do(server, http.MethodPatch, "/requests/approve/"+submitted.InsertedID, hr, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("approve: %d %s", rr.Code, rr.Body.String())
	}
	rr = do(server, http.MethodPatch, "/requests/approve/"+submitted.InsertedID, hr, nil)
	if rr.Code != http.StatusConflict || decodeError(t, rr).Code != "invalid_state_transition" {
		t.Fatalf("expected 409 on second approve, got %d %s", rr.Code, rr.Body.String())
	}

	rr = do(server, http.MethodPatch, "/requests/return/"+submitted.InsertedID, alice, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("return: %d %s", rr.Code, rr.Body.String())
	}
	rr = do(server, http.MethodPatch, "/requests/approve/missing", hr, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown request, got %d", rr.Code)
	}
}

func TestValidationErrors(t *testing.T) {
	server, verifier := newTestServer(t)

	rr := do(server, http.MethodPost, "/users", "", []byte(`{"name":"No Email"}`))
	if rr.Code != http.StatusBadRequest || decodeError(t, rr).Code != "validation_failed" {
		t.Fatalf("expected 400 validation_failed, got %d %s", rr.Code, rr.Body.String())
	}
	rr = do(server, http.MethodPatch, "/payment-success", token(t, verifier, "hr@acme.io"), nil)
	if rr.Code != http.StatusBadRequest || decodeError(t, rr).Code != "payment_session_missing" {
		t.Fatalf("expected 400 payment_session_missing, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestUserRoleReturnsNullForUnknown(t *testing.T) {
	server, verifier := newTestServer(t)

	rr := do(server, http.MethodGet, "/users/ghost@acme.io/role", token(t, verifier, "alice@acme.io"), nil)
	if rr.Code != http.StatusOK || rr.Body.String() != `{"role":null}` {
		t.Fatalf("unexpected role response %d %s", rr.Code, rr.Body.String())
	}
}

func TestMapDomainErrorDefaultsToInternal(t *testing.T) {
	status, code, message := mapDomainError(errors.New("boom"))
	if status != http.StatusInternalServerError || code != "internal_error" || message != "internal server error" {
		t.Fatalf("unexpected mapping %d %s %s", status, code, message)
	}
}
