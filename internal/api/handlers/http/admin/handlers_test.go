package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"emergencyAPI/internal/api/handlers/http/admin"
	mock_admin "emergencyAPI/internal/api/handlers/http/admin/mocks"
	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type envelope[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors"`
}

type mocks struct {
	facilities *mock_admin.MockFacilities
	stats      *mock_admin.MockStatsGetter
	directory  *mock_admin.MockDirectoryReloader
}

func newHandler(t *testing.T) (*admin.Handler, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		facilities: mock_admin.NewMockFacilities(ctrl),
		stats:      mock_admin.NewMockStatsGetter(ctrl),
		directory:  mock_admin.NewMockDirectoryReloader(ctrl),
	}
	return admin.NewHandler(newTestLogger(), m.facilities, m.stats, m.directory), m
}

func TestAdminFacilityCreate_OK(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	reqBody := `{"name":"Central Police","phone":"123","address":"Av 1","description":"24h","category_id":1,"lat":4.6,"lng":-74.08}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/facilities", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	m.facilities.EXPECT().
		Create(gomock.Any(), domain.CreateFacilityRequest{
			Name: "Central Police", Phone: "123", Address: "Av 1", Description: "24h",
			CategoryID: 1, Lat: 4.6, Lng: -74.08,
		}).
		Return(int64(42), nil).
		Times(1)

	h.AdminFacilityCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[envelope[map[string]int64]](t, rr)
	if got.Data["id"] != 42 {
		t.Fatalf("expected id=42 got=%v", got.Data)
	}
}

func TestAdminFacilityCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	m.facilities.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/facilities", bytes.NewBufferString(`{"name":`))
	rr := httptest.NewRecorder()
	h.AdminFacilityCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminFacilityCreate_OutOfRange_400(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	m.facilities.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	reqBody := `{"name":"x","phone":"1","address":"a","description":"d","category_id":1,"lat":91,"lng":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/facilities", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()
	h.AdminFacilityCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	got := decodeJSON[envelope[any]](t, rr)
	if len(got.Errors) != 1 {
		t.Fatalf("expected one field error, got %v", got.Errors)
	}
}

func TestAdminFacilityList_CapsLimit(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	m.facilities.EXPECT().
		List(gomock.Any(), 2, 100).
		Return([]domain.Facility{{ID: 1, Name: "Police", Location: domain.MustPoint(-74.08, 4.6)}}, int64(101), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/facilities?page=2&limit=500", nil)
	rr := httptest.NewRecorder()
	h.AdminFacilityList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	got := decodeJSON[envelope[domain.ListFacilitiesResponse]](t, rr)
	if got.Data.Total != 101 || got.Data.Limit != 100 || len(got.Data.Facilities) != 1 {
		t.Fatalf("unexpected list: %+v", got.Data)
	}
	if got.Data.Facilities[0].Coordinates.Lat != 4.6 {
		t.Fatalf("coordinates not rendered: %+v", got.Data.Facilities[0])
	}
}

func TestAdminFacilityGet(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	m.facilities.EXPECT().Get(gomock.Any(), int64(7)).Return(&domain.Facility{ID: 7, Name: "Hospital"}, nil).Times(1)
	m.facilities.EXPECT().Get(gomock.Any(), int64(8)).Return(nil, fmt.Errorf("x: %w", e.ErrNotFound)).Times(1)

	rr := httptest.NewRecorder()
	h.AdminFacilityGet(rr, addChiURLParam(httptest.NewRequest(http.MethodGet, "/x", nil), "id", "7"))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if got := decodeJSON[envelope[domain.FacilityView]](t, rr); got.Data.Category != "Unknown" {
		t.Fatalf("expected fallback category, got %+v", got.Data)
	}

	rr = httptest.NewRecorder()
	h.AdminFacilityGet(rr, addChiURLParam(httptest.NewRequest(http.MethodGet, "/x", nil), "id", "8"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.AdminFacilityGet(rr, addChiURLParam(httptest.NewRequest(http.MethodGet, "/x", nil), "id", "abc"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminFacilityDelete(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	m.facilities.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil).Times(1)

	rr := httptest.NewRecorder()
	h.AdminFacilityDelete(rr, addChiURLParam(httptest.NewRequest(http.MethodDelete, "/x", nil), "id", "3"))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}

func TestAdminStats(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	m.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.ReportStats{CreatedCount: 4, PendingDeletion: 1, Minutes: 60}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.AdminStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	got := decodeJSON[envelope[domain.ReportStats]](t, rr)
	if got.Data.CreatedCount != 4 || got.Data.PendingDeletion != 1 {
		t.Fatalf("unexpected stats %+v", got.Data)
	}

	rr = httptest.NewRecorder()
	h.AdminStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=0", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminStats_Unexpected_500(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	m.stats.EXPECT().GetStats(gomock.Any(), gomock.Any()).Return(nil, e.ErrUnexpected).Times(1)

	rr := httptest.NewRecorder()
	h.AdminStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=5", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
}

func TestAdminDirectoryReload(t *testing.T) {
	t.Parallel()
	h, m := newHandler(t)

	gomock.InOrder(
		m.directory.EXPECT().Reload(gomock.Any()).Return(nil),
		m.directory.EXPECT().Reload(gomock.Any()).Return(errors.New("db down")),
	)

	rr := httptest.NewRecorder()
	h.AdminDirectoryReload(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.AdminDirectoryReload(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
}
