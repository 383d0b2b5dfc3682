package public

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emergencyAPI/internal/auth"
	"emergencyAPI/internal/domain"
	"emergencyAPI/internal/middleware"
	"emergencyAPI/internal/render"
	"emergencyAPI/internal/service"
	"emergencyAPI/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	Register(ctx context.Context, req domain.RegisterReportRequest, authorID uuid.UUID) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateReportRequest, requesterID uuid.UUID) error
	DeleteDirectly(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
	RequestDeletion(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (domain.DeletionOutcome, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Report, error)
	FindNearby(ctx context.Context, req domain.LocationRequest, radiusMeters float64) ([]*domain.Report, error)
	Categories(ctx context.Context) ([]domain.ReportCategory, error)
}

type Directory interface {
	Nearest(ctx context.Context, req domain.LocationRequest) ([]domain.FacilityView, error)
	Within(ctx context.Context, req domain.LocationRequest, radiusMeters float64) ([]domain.FacilityView, error)
}

type Uploads interface {
	UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
}

type Handler struct {
	logger    *slog.Logger
	Reports   Reports
	Directory Directory
	Uploads   Uploads
	radius    float64
}

// NewHandler builds the authenticated endpoints. radiusMeters is the
// search radius of the nearby reports endpoint.
func NewHandler(logger *slog.Logger, reports Reports, directory Directory, uploads Uploads, radiusMeters float64) *Handler {
	if radiusMeters <= 0 {
		radiusMeters = domain.DefaultSearchRadiusMeters
	}
	return &Handler{
		logger:    logger,
		Reports:   reports,
		Directory: directory,
		Uploads:   uploads,
		radius:    radiusMeters,
	}
}

func (h *Handler) RegisterReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegisterReportRequest
	if !middleware.BindJSON(w, r, &req) {
		l.Warn("invalid register body")
		return
	}

	id, err := h.Reports.Register(r.Context(), req, auth.UserID(r.Context()))
	if err != nil {
		render.Error(w, l, r, err)
		return
	}

	l.Info("report registered", slog.String("id", id.String()))
	render.OK(w, http.StatusCreated, "Report registered", map[string]string{"id": id.String()})
}

// ReportsNearby lists reports within the configured radius. With
// ?format=geojson the answer is a FeatureCollection.
func (h *Handler) ReportsNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.LocationRequest
	if !middleware.BindJSON(w, r, &req) {
		return
	}

	reports, err := h.Reports.FindNearby(r.Context(), req, h.radius)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}

	l.Debug("reports nearby", slog.Int("count", len(reports)))
	if wantsGeoJSON(r) {
		render.GeoJSON(w, l, reportsCollection(reports))
		return
	}
	render.OK(w, http.StatusOK, "Reports found", reportViews(reports))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	report, err := h.Reports.Get(r.Context(), id)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}
	render.OK(w, http.StatusOK, "Report found", domain.NewReportView(report))
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateReportRequest
	if !middleware.BindJSON(w, r, &req) {
		return
	}

	if err := h.Reports.Update(r.Context(), id, req, auth.UserID(r.Context())); err != nil {
		render.Error(w, l, r, err)
		return
	}
	render.OK(w, http.StatusOK, "Report updated", nil)
}

func (h *Handler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.DeleteRequestRequest
	if !middleware.BindJSON(w, r, &req) {
		return
	}

	outcome, err := h.Reports.RequestDeletion(r.Context(), req.ReportID, auth.UserID(r.Context()))
	if err != nil {
		render.Error(w, l, r, err)
		return
	}

	message := "Delete request registered"
	if outcome.Deleted {
		message = "Report deleted"
	}
	render.OK(w, http.StatusOK, message, outcome)
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	if err := h.Reports.DeleteDirectly(r.Context(), id, auth.UserID(r.Context())); err != nil {
		render.Error(w, l, r, err)
		return
	}
	render.OK(w, http.StatusOK, "Report deleted", nil)
}

func (h *Handler) MyReports(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	reports, err := h.Reports.ListByAuthor(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		render.Error(w, l, r, err)
		return
	}
	render.OK(w, http.StatusOK, "Reports found", reportViews(reports))
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	categories, err := h.Reports.Categories(r.Context())
	if err != nil {
		render.Error(w, l, r, err)
		return
	}
	render.OK(w, http.StatusOK, "Categories found", categories)
}

func (h *Handler) EmergencySitesNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.LocationRequest
	if !middleware.BindJSON(w, r, &req) {
		return
	}

	sites, err := h.Directory.Nearest(r.Context(), req)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}
	render.OK(w, http.StatusOK, "Emergency sites found", sites)
}

// EmergencySitesWithin lists every site within ?radius meters (default:
// the reports radius) of ?latitude,?longitude.
func (h *Handler) EmergencySitesWithin(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	req := domain.LocationRequest{Latitude: q.Get("latitude"), Longitude: q.Get("longitude")}

	radius := h.radius
	if s := strings.TrimSpace(q.Get("radius")); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			render.Fail(w, http.StatusBadRequest, "Invalid fields", "radius must be a number")
			return
		}
		radius = v
	}

	sites, err := h.Directory.Within(r.Context(), req, radius)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}
	if wantsGeoJSON(r) {
		render.GeoJSON(w, l, sitesCollection(sites))
		return
	}
	render.OK(w, http.StatusOK, "Emergency sites found", sites)
}

// UploadImage accepts a multipart form with a "file" field.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		l.Warn("multipart parse failed", slog.Any("error", err))
		render.Fail(w, http.StatusBadRequest, "Invalid fields", "a multipart form with a file field is required")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		render.Fail(w, http.StatusBadRequest, "Invalid fields", "file is required")
		return
	}
	defer file.Close()

	url, err := h.Uploads.UploadImage(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}

	l.Info("image uploaded", slog.String("file", header.Filename), slog.Int64("size", header.Size))
	render.OK(w, http.StatusOK, "Image uploaded", map[string]string{"url": url})
}

func (h *Handler) reportID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "reportId")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log(r).Warn("invalid report id", slog.String("id", raw))
		render.Error(w, h.log(r), r, e.Wrap("report id "+strconv.Quote(raw), e.ErrInvalidArgument))
		return uuid.Nil, false
	}
	return id, true
}
