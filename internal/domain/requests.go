package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegisterReportRequest struct {
	Title          string    `json:"title" validate:"required,notblank,max=200"`
	Description    string    `json:"description" validate:"required,notblank"`
	CategoryID     int64     `json:"category_id" validate:"required,min=1"`
	EmergencyLevel string    `json:"emergency_level" validate:"required,emergency_level"`
	ReportedAt     time.Time `json:"reported_at" validate:"required"`
	Latitude       string    `json:"latitude" validate:"required,latstr"`
	Longitude      string    `json:"longitude" validate:"required,lngstr"`
	Address        string    `json:"address" validate:"max=200"`
	PhotoURL       *string   `json:"photo_url" validate:"omitempty,url,max=200"`
}

type UpdateReportRequest struct {
	Title          string  `json:"title" validate:"required,notblank,max=200"`
	Description    string  `json:"description" validate:"required,notblank"`
	EmergencyLevel *string `json:"emergency_level" validate:"omitempty,emergency_level"`
}

type DeleteRequestRequest struct {
	ReportID uuid.UUID `json:"report_id" validate:"required"`
}

type LocationRequest struct {
	Latitude  string `json:"latitude" validate:"required,latstr"`
	Longitude string `json:"longitude" validate:"required,lngstr"`
}

// DeletionOutcome is the result of a crowd deletion vote.
type DeletionOutcome struct {
	ReportID uuid.UUID `json:"report_id"`
	Deleted  bool      `json:"deleted"`
	Count    int       `json:"count"`
}

type ReportView struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	EmergencyLevel EmergencyLevel `json:"emergency_level"`
	Address        string         `json:"address,omitempty"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	CategoryID     int64          `json:"category_id"`
	Category       string         `json:"category"`
	ReportedAt     time.Time      `json:"reported_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
	Photos         []string       `json:"photos"`
	DeleteRequests int            `json:"delete_requests"`
}

func NewReportView(r *Report) ReportView {
	photos := make([]string, 0, 1)
	if r.PhotoURL != nil && *r.PhotoURL != "" {
		photos = append(photos, *r.PhotoURL)
	}
	return ReportView{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		EmergencyLevel: r.EmergencyLevel,
		Address:        r.Address,
		Latitude:       r.Location.Lat(),
		Longitude:      r.Location.Lng(),
		CategoryID:     r.CategoryID,
		Category:       r.CategoryName,
		ReportedAt:     r.ReportedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Photos:         photos,
		DeleteRequests: r.DeleteRequestCount,
	}
}

type FacilityView struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Description string      `json:"description"`
	CategoryID  int64       `json:"category_id"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	DistanceM   *float64    `json:"distance_m,omitempty"`
}

func NewFacilityView(f Facility) FacilityView {
	category := f.CategoryLabel
	if category == "" {
		category = "Unknown"
	}
	return FacilityView{
		ID:          f.ID,
		Name:        f.Name,
		Phone:       f.Phone,
		Address:     f.Address,
		Description: f.Description,
		CategoryID:  f.CategoryID,
		Category:    category,
		Coordinates: f.Location.Coordinates(),
	}
}

type CreateFacilityRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Phone       string  `json:"phone" validate:"required,max=200"`
	Address     string  `json:"address" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=500"`
	CategoryID  int64   `json:"category_id" validate:"required,min=1"`
	Lat         float64 `json:"lat" validate:"lat"`
	Lng         float64 `json:"lng" validate:"lng"`
}

type ListFacilitiesResponse struct {
	Facilities []FacilityView `json:"facilities"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int64          `json:"total"`
}

type ReportStats struct {
	CreatedCount    int64 `json:"created_count"`
	PendingDeletion int64 `json:"pending_deletion"`
	Minutes         int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}
