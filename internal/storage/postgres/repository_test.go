//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"emergencyAPI/internal/domain"
	"emergencyAPI/internal/quorum"
	"emergencyAPI/pkg/e"
)

var (
	testPool *pgxpool.Pool
	testPG   *Postgres
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Twice on purpose: the schema must be re-runnable.
	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, testPool, logger); err != nil {
			fmt.Println("Migrate:", err)
			testPool.Close()
			_ = tc.Terminate(ctx)
			os.Exit(1)
		}
	}
	testPG = newFromPool(testPool, logger)

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateReports(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE reports CASCADE`)
	if err != nil {
		t.Fatalf("truncate reports: %v", err)
	}
}

func truncateSites(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE emergency_sites`)
	if err != nil {
		t.Fatalf("truncate emergency_sites: %v", err)
	}
}

func newReport(author uuid.UUID, lng, lat float64) *domain.Report {
	return &domain.Report{
		ID:             uuid.New(),
		Title:          "Fire",
		Description:    "Smoke on the corner",
		Location:       domain.MustPoint(lng, lat),
		Address:        "Calle 10",
		EmergencyLevel: domain.EmergencyHigh,
		CategoryID:     1,
		AuthorID:       author,
		ReportedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestReport_CreateAndGet_WithPhoto(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	r := newReport(uuid.New(), -74.08175, 4.60971)
	url := "https://img.example.com/fire.jpg"
	r.PhotoURL = &url

	if err := testPG.Reports.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := testPG.Reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.AuthorID != r.AuthorID || got.Title != r.Title || got.EmergencyLevel != domain.EmergencyHigh {
		t.Fatalf("fields mismatch: got=%+v", got)
	}
	if got.Location.Lat() != 4.60971 || got.Location.Lng() != -74.08175 {
		t.Fatalf("location mismatch: %s", got.Location)
	}
	if got.CategoryName != "Fire" {
		t.Fatalf("category name=%q", got.CategoryName)
	}
	if got.PhotoURL == nil || *got.PhotoURL != url {
		t.Fatalf("photo mismatch: %v", got.PhotoURL)
	}
	if got.DeleteRequestCount != 0 || len(got.DeleteRequestUserIDs) != 0 || got.UpdatedAt != nil {
		t.Fatalf("unexpected initial state: %+v", got)
	}
}

func TestReport_Create_RollsBackWhenPhotoFails(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	r := newReport(uuid.New(), 0, 0)
	tooLong := "https://img.example.com/" + strings.Repeat("a", 600)
	r.PhotoURL = &tooLong

	if err := testPG.Reports.Create(ctx, r); err == nil {
		t.Fatalf("expected error")
	}

	_, err := testPG.Reports.Get(ctx, r.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("partial report visible after rollback: %v", err)
	}
}

func TestReport_Create_UnknownCategory(t *testing.T) {
	truncateReports(t)

	r := newReport(uuid.New(), 0, 0)
	r.CategoryID = 9999

	err := testPG.Reports.Create(context.Background(), r)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReport_Modify_SaveAndDelete(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	r := newReport(uuid.New(), 0, 0)
	if err := testPG.Reports.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	voter := uuid.New()
	err := testPG.Reports.Modify(ctx, r.ID, func(cur *domain.Report) (domain.WriteOp, error) {
		cur.Title = "Fire (contained)"
		cur.DeleteRequestUserIDs = append(cur.DeleteRequestUserIDs, voter)
		cur.DeleteRequestCount = len(cur.DeleteRequestUserIDs)
		now := time.Now().UTC()
		cur.UpdatedAt = &now
		return domain.WriteSave, nil
	})
	if err != nil {
		t.Fatalf("Modify save: %v", err)
	}

	got, _ := testPG.Reports.Get(ctx, r.ID)
	if got.Title != "Fire (contained)" || got.Version != 1 || got.UpdatedAt == nil {
		t.Fatalf("save not applied: %+v", got)
	}
	if len(got.DeleteRequestUserIDs) != 1 || got.DeleteRequestUserIDs[0] != voter || got.DeleteRequestCount != 1 {
		t.Fatalf("votes not stored: %+v", got)
	}

	// Callback errors roll back.
	boom := errors.New("boom")
	err = testPG.Reports.Modify(ctx, r.ID, func(cur *domain.Report) (domain.WriteOp, error) {
		cur.Title = "changed"
		return domain.WriteSave, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	got, _ = testPG.Reports.Get(ctx, r.ID)
	if got.Title != "Fire (contained)" {
		t.Fatalf("failed callback changed the row: %+v", got)
	}

	err = testPG.Reports.Modify(ctx, r.ID, func(*domain.Report) (domain.WriteOp, error) {
		return domain.WriteDelete, nil
	})
	if err != nil {
		t.Fatalf("Modify delete: %v", err)
	}
	if _, err := testPG.Reports.Get(ctx, r.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	err = testPG.Reports.Modify(ctx, r.ID, func(*domain.Report) (domain.WriteOp, error) {
		t.Fatalf("callback must not run for a missing report")
		return domain.WriteNone, nil
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReport_Modify_VotesMustMatchCount(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	r := newReport(uuid.New(), 0, 0)
	if err := testPG.Reports.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := testPG.Reports.Modify(ctx, r.ID, func(cur *domain.Report) (domain.WriteOp, error) {
		cur.DeleteRequestCount = 5
		return domain.WriteSave, nil
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected check constraint violation, got %v", err)
	}
}

func TestReport_Modify_ConcurrentVotesAreSerialised(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	r := newReport(uuid.New(), 0, 0)
	if err := testPG.Reports.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tracker := quorum.NewTracker(1000)
	const voters = 20

	var wg sync.WaitGroup
	errs := make(chan error, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := uuid.New()
			errs <- testPG.Reports.Modify(ctx, r.ID, func(cur *domain.Report) (domain.WriteOp, error) {
				if _, err := tracker.Request(cur, user); err != nil {
					return domain.WriteNone, err
				}
				return domain.WriteSave, nil
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Modify: %v", err)
		}
	}

	got, err := testPG.Reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DeleteRequestCount != voters || len(got.DeleteRequestUserIDs) != voters {
		t.Fatalf("lost votes: count=%d voters=%d", got.DeleteRequestCount, len(got.DeleteRequestUserIDs))
	}
	if got.Version != voters {
		t.Fatalf("expected version %d, got %d", voters, got.Version)
	}
}

func TestReport_Modify_CancelledMidTransactionKeepsVotes(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	r := newReport(uuid.New(), 0, 0)
	if err := testPG.Reports.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tracker := quorum.NewTracker(quorum.DefaultThreshold)
	first := uuid.New()
	err := testPG.Reports.Modify(ctx, r.ID, func(cur *domain.Report) (domain.WriteOp, error) {
		if _, err := tracker.Request(cur, first); err != nil {
			return domain.WriteNone, err
		}
		return domain.WriteSave, nil
	})
	if err != nil {
		t.Fatalf("first vote: %v", err)
	}

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	err = testPG.Reports.Modify(cctx, r.ID, func(cur *domain.Report) (domain.WriteOp, error) {
		if _, err := tracker.Request(cur, uuid.New()); err != nil {
			return domain.WriteNone, err
		}
		cancel()
		return domain.WriteSave, nil
	})
	if err == nil {
		t.Fatalf("expected error after cancellation")
	}

	got, err := testPG.Reports.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DeleteRequestCount != 1 || len(got.DeleteRequestUserIDs) != 1 || got.DeleteRequestUserIDs[0] != first {
		t.Fatalf("partial vote recorded: count=%d voters=%v", got.DeleteRequestCount, got.DeleteRequestUserIDs)
	}
	if got.Version != 1 {
		t.Fatalf("expected version 1, got %d", got.Version)
	}
}

func TestReport_Create_CancelledContextLeavesNoRows(t *testing.T) {
	truncateReports(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	photo := "https://img.example/fire.jpg"
	r := newReport(uuid.New(), 0, 0)
	r.PhotoURL = &photo
	if err := testPG.Reports.Create(ctx, r); err == nil {
		t.Fatalf("expected error for cancelled context")
	}

	var reports, photos int
	bg := context.Background()
	if err := testPool.QueryRow(bg, `SELECT count(*) FROM reports WHERE id = $1`, r.ID).Scan(&reports); err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if err := testPool.QueryRow(bg, `SELECT count(*) FROM photos_reports WHERE report_id = $1`, r.ID).Scan(&photos); err != nil {
		t.Fatalf("count photos: %v", err)
	}
	if reports != 0 || photos != 0 {
		t.Fatalf("partial report created: reports=%d photos=%d", reports, photos)
	}
}

func TestReport_FindWithin(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	atOrigin := newReport(uuid.New(), 0, 0)
	far := newReport(uuid.New(), 1, 1)
	for _, r := range []*domain.Report{atOrigin, far} {
		if err := testPG.Reports.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := testPG.Reports.FindWithin(ctx, domain.MustPoint(0, 0), 3000)
	if err != nil {
		t.Fatalf("FindWithin: %v", err)
	}
	if len(got) != 1 || got[0].ID != atOrigin.ID {
		t.Fatalf("expected only the origin report, got %d", len(got))
	}

	got, err = testPG.Reports.FindWithin(ctx, domain.MustPoint(0, 0), 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("zero radius must include the exact point: got=%d err=%v", len(got), err)
	}

	got, err = testPG.Reports.FindWithin(ctx, domain.MustPoint(1.02, 1), 3000)
	if err != nil || len(got) != 1 || got[0].ID != far.ID {
		t.Fatalf("expected the far report only, got=%d err=%v", len(got), err)
	}
}

func TestReport_ListByAuthor(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	author := uuid.New()
	for _, r := range []*domain.Report{newReport(author, 0, 0), newReport(author, 1, 1), newReport(uuid.New(), 2, 2)} {
		if err := testPG.Reports.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := testPG.Reports.ListByAuthor(ctx, author)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}

	got, err = testPG.Reports.ListByAuthor(ctx, uuid.New())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got=%v err=%v", got, err)
	}
}

func TestCategory_GetAndList(t *testing.T) {
	ctx := context.Background()

	c, err := testPG.Categories.GetCategoryByID(ctx, 1)
	if err != nil || c.Name != "Fire" {
		t.Fatalf("GetCategoryByID: c=%+v err=%v", c, err)
	}

	if _, err := testPG.Categories.GetCategoryByID(ctx, 9999); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := testPG.Categories.ListCategories(ctx)
	if err != nil || len(all) != 5 {
		t.Fatalf("ListCategories: len=%d err=%v", len(all), err)
	}
}

func TestFacility_CRUD(t *testing.T) {
	truncateSites(t)
	ctx := context.Background()

	f := &domain.Facility{
		Name:        "Central Police",
		Phone:       "123",
		Address:     "Av. 1",
		Description: "24h",
		CategoryID:  1,
		Location:    domain.MustPoint(-74.08, 4.6),
	}
	if err := testPG.Facilities.Create(ctx, f); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.ID == 0 {
		t.Fatalf("expected id set")
	}

	got, err := testPG.Facilities.Get(ctx, f.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CategoryLabel != "Police" || got.Location.Lat() != 4.6 || got.Location.Lng() != -74.08 {
		t.Fatalf("unexpected facility: %+v", got)
	}

	items, total, err := testPG.Facilities.List(ctx, 1, 10)
	if err != nil || total != 1 || len(items) != 1 {
		t.Fatalf("List: items=%d total=%d err=%v", len(items), total, err)
	}

	all, err := testPG.Facilities.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListAll: %d err=%v", len(all), err)
	}

	if err := testPG.Facilities.Delete(ctx, f.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := testPG.Facilities.Delete(ctx, f.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFacility_Create_UnknownCategory(t *testing.T) {
	truncateSites(t)

	f := &domain.Facility{Name: "x", Phone: "1", Address: "a", CategoryID: 999, Location: domain.MustPoint(0, 0)}
	if err := testPG.Facilities.Create(context.Background(), f); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStats_Counts(t *testing.T) {
	truncateReports(t)
	ctx := context.Background()

	pending := newReport(uuid.New(), 0, 0)
	quiet := newReport(uuid.New(), 0, 0)
	for _, r := range []*domain.Report{pending, quiet} {
		if err := testPG.Reports.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	err := testPG.Reports.Modify(ctx, pending.ID, func(cur *domain.Report) (domain.WriteOp, error) {
		_, err := quorum.NewTracker(3).Request(cur, uuid.New())
		return domain.WriteSave, err
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}

	created, err := testPG.Stats.CountCreatedSince(ctx, 60)
	if err != nil || created != 2 {
		t.Fatalf("CountCreatedSince: %d err=%v", created, err)
	}

	n, err := testPG.Stats.CountPendingDeletion(ctx)
	if err != nil || n != 1 {
		t.Fatalf("CountPendingDeletion: %d err=%v", n, err)
	}

	if _, err := testPG.Stats.CountCreatedSince(ctx, 0); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
