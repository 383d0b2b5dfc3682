package domain

type FacilityCategory struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Facility is an emergency site listed in the directory: a police station,
// a hospital, a fire station.
type Facility struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Location      Point  `json:"-"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	CategoryID    int64  `json:"category_id"`
	CategoryLabel string `json:"category"`
}

func (f Facility) Point() Point { return f.Location }

// CachedFacility is the flat form stored in the directory cache.
type CachedFacility struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	CategoryID    int64   `json:"category_id"`
	CategoryLabel string  `json:"category"`
}

func (f Facility) Cached() CachedFacility {
	return CachedFacility{
		ID:            f.ID,
		Name:          f.Name,
		Phone:         f.Phone,
		Lat:           f.Location.Lat(),
		Lng:           f.Location.Lng(),
		Address:       f.Address,
		Description:   f.Description,
		CategoryID:    f.CategoryID,
		CategoryLabel: f.CategoryLabel,
	}
}

func (c CachedFacility) Facility() (Facility, error) {
	p, err := NewPoint(c.Lng, c.Lat)
	if err != nil {
		return Facility{}, err
	}
	return Facility{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Location:      p,
		Address:       c.Address,
		Description:   c.Description,
		CategoryID:    c.CategoryID,
		CategoryLabel: c.CategoryLabel,
	}, nil
}
