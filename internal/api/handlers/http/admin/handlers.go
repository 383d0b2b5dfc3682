package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"emergencyAPI/internal/domain"
	"emergencyAPI/internal/middleware"
	"emergencyAPI/internal/render"
	"emergencyAPI/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Facilities interface {
	Create(ctx context.Context, req domain.CreateFacilityRequest) (int64, error)
	List(ctx context.Context, page, limit int) ([]domain.Facility, int64, error)
	Get(ctx context.Context, id int64) (*domain.Facility, error)
	Delete(ctx context.Context, id int64) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error)
}

type DirectoryReloader interface {
	Reload(ctx context.Context) error
}

type Handler struct {
	logger     *slog.Logger
	Facilities Facilities
	Stats      StatsGetter
	Directory  DirectoryReloader
}

func NewHandler(logger *slog.Logger, facilities Facilities, stats StatsGetter, directory DirectoryReloader) *Handler {
	return &Handler{
		logger:     logger,
		Facilities: facilities,
		Stats:      stats,
		Directory:  directory,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminFacilityCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminFacilityCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateFacilityRequest
	if !middleware.BindJSON(w, r, &req) {
		return
	}

	l.Info("creating facility",
		slog.String("name", req.Name),
		slog.Int64("category_id", req.CategoryID),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	id, err := h.Facilities.Create(r.Context(), req)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}

	l.Info("facility created", slog.Int64("id", id))
	render.OK(w, http.StatusCreated, "Facility created", map[string]int64{"id": id})
}

func (h *Handler) AdminFacilityList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminFacilityList", slog.String("query", r.URL.RawQuery))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	items, total, err := h.Facilities.List(r.Context(), page, limit)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}

	views := make([]domain.FacilityView, 0, len(items))
	for _, f := range items {
		views = append(views, domain.NewFacilityView(f))
	}

	l.Info("facilities listed", slog.Int("count", len(views)), slog.Int64("total", total))
	render.OK(w, http.StatusOK, "Facilities found", domain.ListFacilitiesResponse{
		Facilities: views,
		Page:       page,
		Limit:      limit,
		Total:      total,
	})
}

func (h *Handler) AdminFacilityGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.facilityID(w, r)
	if !ok {
		return
	}

	f, err := h.Facilities.Get(r.Context(), id)
	if err != nil {
		render.Error(w, l, r, err)
		return
	}
	render.OK(w, http.StatusOK, "Facility found", domain.NewFacilityView(*f))
}

func (h *Handler) AdminFacilityDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.facilityID(w, r)
	if !ok {
		return
	}

	if err := h.Facilities.Delete(r.Context(), id); err != nil {
		render.Error(w, l, r, err)
		return
	}

	l.Info("facility deleted", slog.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		render.Fail(w, http.StatusBadRequest, "Invalid fields", "minutes must be 1-1440")
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		render.Error(w, l, r, err)
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	render.OK(w, http.StatusOK, "Stats", stats)
}

func (h *Handler) AdminDirectoryReload(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if err := h.Directory.Reload(r.Context()); err != nil {
		render.Error(w, l, r, err)
		return
	}
	l.Info("directory reloaded")
	render.OK(w, http.StatusOK, "Directory reloaded", nil)
}

func (h *Handler) facilityID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		render.Error(w, h.log(r), r, e.Wrap("facility id "+strconv.Quote(idStr), e.ErrInvalidArgument))
		return 0, false
	}
	return id, true
}
