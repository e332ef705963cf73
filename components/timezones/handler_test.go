package timezones

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

type handlerResponse struct {
	Data []model.OptionDescriptor `json:"data"`
}

func serve(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, handlerResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var payload handlerResponse
	if rec.Code == http.StatusOK && method == http.MethodGet {
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return rec, payload
}

func TestNewHandler_EmptyQueryReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(WithZones([]string{"UTC"}))

	rec, payload := serve(t, h, http.MethodGet, "/api/timezones")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_SearchMarksSelectedAndClampsLimit(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"America/Chicago", "America/New_York", "Europe/Paris", "UTC"}),
		WithLimits(0, 2),
	)

	_, payload := serve(t, h, http.MethodGet, "/api/timezones?q=America&selected=America/New_York&limit=10")
	want := []model.OptionDescriptor{
		{Label: "America/Chicago", Value: "America/Chicago"},
		{Label: "America/New_York", Value: "America/New_York", Selected: true},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHandler_CustomQueryParams(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC", "Europe/Paris"}),
		WithParams("search", "", "l"),
	)

	_, payload := serve(t, h, http.MethodGet, "/api/timezones?search=utc&l=5")
	want := []model.OptionDescriptor{{Label: "UTC", Value: "UTC"}}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC"}),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	rec, _ := serve(t, h, http.MethodGet, "/api/timezones?q=utc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(WithZones([]string{"UTC"}))

	rec, _ := serve(t, h, http.MethodPost, "/api/timezones?q=utc")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestNewHandler_NegativeLimitReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(WithZones([]string{"UTC"}))

	rec, payload := serve(t, h, http.MethodGet, "/api/timezones?q=utc&limit=-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}
