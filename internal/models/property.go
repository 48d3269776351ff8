package models

import (
	"time"
)

const (
	PropertyTypeApartment = "apartment"
	PropertyTypeVilla     = "villa"
)

// Sort keys accepted by the dynamic search. Anything else falls back to the
// store's natural order.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortDateAsc   = "date_asc"
	SortDateDesc  = "date_desc"
	SortYearAsc   = "year_asc"
	SortYearDesc  = "year_desc"
)

type Property struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	City          string     `json:"city"`
	Price         float64    `json:"price"`
	PropertyType  string     `json:"property_type"`
	SquareMeter   float64    `json:"square_meter"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	LivingRooms   int        `json:"living_rooms"`
	Balconies     int        `json:"balconies"`
	ParkingSpaces int        `json:"parking_spaces"`
	Furnished     bool       `json:"furnished"`
	YearBuilt     int        `json:"year_built"`
	IsForRent     bool       `json:"is_for_rent"`
	IsApproved    bool       `json:"is_approved"`
	Images        []string   `json:"images"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type PropertyImage struct {
	ID         int    `json:"id"`
	PropertyID int    `json:"property_id"`
	ImageURL   string `json:"image_url"`
}

// PropertyModel is a 360° viewer asset attached to a property.
type PropertyModel struct {
	ID         int    `json:"id"`
	PropertyID int    `json:"property_id"`
	ModelURL   string `json:"model_url"`
}

// PropertyFilter is the dynamic search request. Nil pointer / zero value means
// the filter is absent and imposes no constraint.
type PropertyFilter struct {
	IsRent        *bool    `json:"is_rent,omitempty"`
	City          string   `json:"city,omitempty"`
	PropertyType  string   `json:"property_type,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	MinYear       *int     `json:"min_year,omitempty"`
	MaxYear       *int     `json:"max_year,omitempty"`
	Furnished     *bool    `json:"furnished,omitempty"`
	ExcludeUserID int      `json:"exclude_user_id,omitempty"`
	SortBy        string   `json:"sort_by,omitempty"`
}

/// PropertyUpdate carries a partial update: only non-nil fields are written.
type PropertyUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	City          *string  `json:"city,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	PropertyType  *string  `json:"property_type,omitempty"`
	SquareMeter   *float64 `json:"square_meter,omitempty"`
	Bedrooms      *int     `json:"bedrooms,omitempty"`
	Bathrooms     *int     `json:"bathrooms,omitempty"`
	LivingRooms   *int     `json:"living_rooms,omitempty"`
	Balconies     *int     `json:"balconies,omitempty"`
	ParkingSpaces *int     `json:"parking_spaces,omitempty"`
	Furnished     *bool    `json:"furnished,omitempty"`
	YearBuilt     *int     `json:"year_built,omitempty"`
	IsForRent     *bool    `json:"is_for_rent,omitempty"`
}
