package public

import (
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	geojson "github.com/paulmach/go.geojson"

	"emergencyAPI/internal/domain"
)

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func wantsGeoJSON(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), "geojson")
}

func reportViews(reports []*domain.Report) []domain.ReportView {
	out := make([]domain.ReportView, 0, len(reports))
	for _, r := range reports {
		out = append(out, domain.NewReportView(r))
	}
	return out
}

func reportsCollection(reports []*domain.Report) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range reports {
		f := geojson.NewPointFeature([]float64{r.Location.Lng(), r.Location.Lat()})
		f.ID = r.ID.String()
		f.SetProperty("title", r.Title)
		f.SetProperty("description", r.Description)
		f.SetProperty("emergency_level", string(r.EmergencyLevel))
		f.SetProperty("category_id", r.CategoryID)
		f.SetProperty("category", r.CategoryName)
		f.SetProperty("reported_at", r.ReportedAt)
		f.SetProperty("delete_requests", r.DeleteRequestCount)
		if r.PhotoURL != nil {
			f.SetProperty("photo_url", *r.PhotoURL)
		}
		fc.AddFeature(f)
	}
	return fc
}

func sitesCollection(sites []domain.FacilityView) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range sites {
		f := geojson.NewPointFeature([]float64{s.Coordinates.Lng, s.Coordinates.Lat})
		f.ID = s.ID
		f.SetProperty("name", s.Name)
		f.SetProperty("phone", s.Phone)
		f.SetProperty("address", s.Address)
		f.SetProperty("category", s.Category)
		if s.DistanceM != nil {
			f.SetProperty("distance_m", *s.DistanceM)
		}
		fc.AddFeature(f)
	}
	return fc
}
