package geo

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"
)

func facility(id, cat int64, lng, lat float64) domain.Facility {
	return domain.Facility{ID: id, CategoryID: cat, Location: domain.MustPoint(lng, lat)}
}

func report(lng, lat float64) *domain.Report {
	return &domain.Report{ID: uuid.New(), Location: domain.MustPoint(lng, lat)}
}

func TestDistance(t *testing.T) {
	origin := domain.MustPoint(0, 0)

	assert.Equal(t, 0.0, Distance(origin, origin))

	// One degree along the equator.
	d := Distance(origin, domain.MustPoint(1, 0))
	assert.InDelta(t, 111195, d, 1)

	// (0,0) -> (1,1) is roughly 157 km.
	d = Distance(origin, domain.MustPoint(1, 1))
	assert.InDelta(t, 157249, d, 100)

	a := domain.MustPoint(-74.08175, 4.60971)
	b := domain.MustPoint(-75.56359, 6.25184)
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestNearestPerCategory_Scenario(t *testing.T) {
	const catA, catB = 1, 2
	facilities := []domain.Facility{
		facility(1, catA, 0, 0),
		facility(2, catA, 10, 10),
		facility(3, catB, 1, 1),
	}

	got, err := NearestPerCategory(domain.MustPoint(0, 0), facilities, Distance)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[catA].ID)
	assert.Equal(t, int64(3), got[catB].ID)
}

func TestNearestPerCategory_Empty(t *testing.T) {
	got, err := NearestPerCategory(domain.MustPoint(0, 0), nil, Distance)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNearestPerCategory_TieGoesToLowestID(t *testing.T) {
	facilities := []domain.Facility{
		facility(9, 1, 0.5, 0.5),
		facility(4, 1, -0.5, -0.5),
		facility(7, 1, 0.5, 0.5),
	}

	for i := 0; i < 5; i++ {
		rand.New(rand.NewSource(int64(i))).Shuffle(len(facilities), func(a, b int) {
			facilities[a], facilities[b] = facilities[b], facilities[a]
		})
		got, err := NearestPerCategory(domain.MustPoint(0, 0), facilities, Distance)
		require.NoError(t, err)
		assert.Equal(t, int64(4), got[1].ID)
	}
}

func TestNearestPerCategory_TieChainIndependentOfOrder(t *testing.T) {
	// Consecutive gaps are inside the tolerance, the outer pair is not.
	fixed := map[int64]float64{3: 0, 2: 0.8e-6, 1: 1.6e-6}
	dist := func(a, _ domain.Point) float64 { return fixed[int64(a.Lng())] }

	orders := [][]int64{{3, 2, 1}, {1, 2, 3}, {2, 1, 3}, {2, 3, 1}}
	for _, order := range orders {
		facilities := make([]domain.Facility, 0, len(order))
		for _, id := range order {
			facilities = append(facilities, facility(id, 1, float64(id), 0))
		}

		got, err := NearestPerCategory(domain.MustPoint(0, 0), facilities, dist)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got[1].ID, "order %v", order)
	}
}

func TestNearestPerCategory_InvalidUserPoint(t *testing.T) {
	_, err := NearestPerCategory(domain.Point{}, []domain.Facility{facility(1, 1, 0, 0)}, Distance)
	assert.ErrorIs(t, err, e.ErrPrecondition)
}

func TestNearestPerCategory_MinimumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	facilities := make([]domain.Facility, 0, 300)
	for i := 0; i < 300; i++ {
		facilities = append(facilities, facility(int64(i+1), int64(rng.Intn(5)+1), rng.Float64()*2-1, rng.Float64()*2-1))
	}
	user := domain.MustPoint(0.1, -0.2)

	got, err := NearestPerCategory(user, facilities, Distance)
	require.NoError(t, err)

	represented := map[int64]bool{}
	for _, f := range facilities {
		represented[f.CategoryID] = true
	}
	assert.Len(t, got, len(represented))

	for _, f := range facilities {
		best := got[f.CategoryID]
		assert.LessOrEqual(t, Distance(best.Location, user), Distance(f.Location, user)+TieToleranceMeters)
	}
}

func TestNearestList_SortedByCategory(t *testing.T) {
	facilities := []domain.Facility{
		facility(1, 3, 0, 0),
		facility(2, 1, 0, 0),
		facility(3, 2, 0, 0),
	}
	got, err := NearestList(domain.MustPoint(0, 0), facilities, Distance)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].Facility.CategoryID)
	assert.Equal(t, int64(2), got[1].Facility.CategoryID)
	assert.Equal(t, int64(3), got[2].Facility.CategoryID)
}

func TestFindWithin_Scenario(t *testing.T) {
	reports := []*domain.Report{report(0, 0)}

	got, err := FindWithin(domain.MustPoint(0, 0), 3000, reports, Distance)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = FindWithin(domain.MustPoint(0, 0), 0, reports, Distance)
	require.NoError(t, err)
	assert.Len(t, got, 1, "boundary is inclusive")

	got, err = FindWithin(domain.MustPoint(1, 1), 3000, reports, Distance)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindWithin_InvalidRadius(t *testing.T) {
	reports := []*domain.Report{report(0, 0)}

	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := FindWithin(domain.MustPoint(0, 0), r, reports, Distance)
		assert.ErrorIs(t, err, e.ErrInvalidArgument)
		assert.ErrorIs(t, err, e.ErrInvalidInput)
	}
}

func TestFindWithin_ExactSubsetAndIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	reports := make([]*domain.Report, 0, 200)
	for i := 0; i < 200; i++ {
		reports = append(reports, report(rng.Float64()*0.1, rng.Float64()*0.1))
	}
	origin := domain.MustPoint(0.05, 0.05)

	first, err := FindWithin(origin, 3000, reports, Distance)
	require.NoError(t, err)
	second, err := FindWithin(origin, 3000, reports, Distance)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	in := map[uuid.UUID]bool{}
	for _, r := range first {
		in[r.ID] = true
	}
	for _, r := range reports {
		assert.Equal(t, Distance(r.Location, origin) <= 3000, in[r.ID])
	}
}

func TestFacilityIndex_WithinMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	facilities := make([]domain.Facility, 0, 500)
	for i := 0; i < 500; i++ {
		facilities = append(facilities, facility(int64(i+1), int64(rng.Intn(3)+1), -74+rng.Float64()*0.2, 4.5+rng.Float64()*0.2))
	}
	ix, err := NewFacilityIndex(facilities, Distance)
	require.NoError(t, err)
	assert.Equal(t, 500, ix.Size())

	origin := domain.MustPoint(-73.9, 4.6)
	for _, radius := range []float64{0, 500, 3000, 10000} {
		got, err := ix.Within(origin, radius)
		require.NoError(t, err)
		want, err := FindWithin(origin, radius, facilities, Distance)
		require.NoError(t, err)

		assert.Equal(t, ids(want), matchIDs(got), "radius %v", radius)
		for _, m := range got {
			assert.LessOrEqual(t, m.Meters, radius)
		}
	}
}

func TestFacilityIndex_AcrossAntimeridian(t *testing.T) {
	ix, err := NewFacilityIndex([]domain.Facility{facility(1, 1, 179.99, 0)}, Distance)
	require.NoError(t, err)

	got, err := ix.Within(domain.MustPoint(-179.99, 0), 5000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].Facility.ID)
}

func TestFacilityIndex_Nearest(t *testing.T) {
	ix, err := NewFacilityIndex([]domain.Facility{
		facility(1, 1, 0, 0),
		facility(2, 1, 10, 10),
		facility(3, 2, 1, 1),
	}, Distance)
	require.NoError(t, err)

	got, err := ix.Nearest(domain.MustPoint(0, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Facility.ID)
	assert.Equal(t, int64(3), got[1].Facility.ID)
}

func ids(fs []domain.Facility) []int64 {
	out := make([]int64, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.ID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func matchIDs(ms []Match) []int64 {
	fs := make([]domain.Facility, 0, len(ms))
	for _, m := range ms {
		fs = append(fs, m.Facility)
	}
	return ids(fs)
}
