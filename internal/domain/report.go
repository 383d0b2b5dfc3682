package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"emergencyAPI/pkg/e"
)

// DefaultSearchRadiusMeters is the radius used by the nearby reports endpoint.
const DefaultSearchRadiusMeters = 3000.0

type EmergencyLevel string

const (
	EmergencyLow      EmergencyLevel = "low"
	EmergencyMedium   EmergencyLevel = "medium"
	EmergencyHigh     EmergencyLevel = "high"
	EmergencyCritical EmergencyLevel = "critical"
)

var levelAliases = map[string]EmergencyLevel{
	"low":      EmergencyLow,
	"baja":     EmergencyLow,
	"medium":   EmergencyMedium,
	"media":    EmergencyMedium,
	"high":     EmergencyHigh,
	"alta":     EmergencyHigh,
	"critical": EmergencyCritical,
	"critica":  EmergencyCritical,
}

// ParseEmergencyLevel lowercases s, strips accents and maps it onto the
// closed set of levels. Spanish names are accepted as aliases.
func ParseEmergencyLevel(s string) (EmergencyLevel, error) {
	lvl, ok := levelAliases[foldLevel(s)]
	if !ok {
		return "", fmt.Errorf("%q: %w", s, e.ErrInvalidEmergencyLevel)
	}
	return lvl, nil
}

func (l EmergencyLevel) Valid() bool {
	switch l {
	case EmergencyLow, EmergencyMedium, EmergencyHigh, EmergencyCritical:
		return true
	}
	return false
}

func foldLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	return strings.TrimFunc(s, unicode.IsSpace)
}

type ReportCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Report struct {
	ID                   uuid.UUID      `json:"id"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Location             Point          `json:"-"`
	Address              string         `json:"address"`
	EmergencyLevel       EmergencyLevel `json:"emergency_level"`
	CategoryID           int64          `json:"category_id"`
	CategoryName         string         `json:"category,omitempty"`
	AuthorID             uuid.UUID      `json:"author_id"`
	ReportedAt           time.Time      `json:"reported_at"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            *time.Time     `json:"updated_at,omitempty"`
	PhotoURL             *string        `json:"photo_url,omitempty"`
	DeleteRequestUserIDs []uuid.UUID    `json:"-"`
	DeleteRequestCount   int            `json:"delete_request_count"`
	Version              int64          `json:"-"`
}

// HasDeleteRequestFrom reports whether userID already voted to delete r.
func (r *Report) HasDeleteRequestFrom(userID uuid.UUID) bool {
	for _, id := range r.DeleteRequestUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// WriteOp tells the report store what to do with a report after a
// mutation callback returns.
type WriteOp int

const (
	WriteNone WriteOp = iota
	WriteSave
	WriteDelete
)

func (o WriteOp) String() string {
	switch o {
	case WriteSave:
		return "save"
	case WriteDelete:
		return "delete"
	default:
		return "none"
	}
}

func (r *Report) Point() Point { return r.Location }
