package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestParsePropertyFilter_FullQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/property/search?is_rent=true&city=Beirut&property_type=apartment&min_price=50000&max_price=200000&min_year=2000&max_year=2020&furnished=false&sort_by=price_desc", nil)

	filter, err := parsePropertyFilter(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filter.IsRent == nil || !*filter.IsRent {
		t.Error("expected is_rent true")
	}
	if filter.City != "Beirut" {
		t.Errorf("expected city Beirut, got %q", filter.City)
	}
	if filter.PropertyType != "apartment" {
		t.Errorf("expected property_type apartment, got %q", filter.PropertyType)
	}
	if filter.MinPrice == nil || *filter.MinPrice != 50000 {
		t.Errorf("unexpected min_price %v", filter.MinPrice)
	}
	if filter.MaxPrice == nil || *filter.MaxPrice != 200000 {
		t.Errorf("unexpected max_price %v", filter.MaxPrice)
	}
	if filter.MinYear == nil || *filter.MinYear != 2000 {
		t.Errorf("unexpected min_year %v", filter.MinYear)
	}
	if filter.MaxYear == nil || *filter.MaxYear != 2020 {
		t.Errorf("unexpected max_year %v", filter.MaxYear)
	}
	if filter.Furnished == nil || *filter.Furnished {
		t.Error("expected furnished false")
	}
	if filter.SortBy != "price_desc" {
		t.Errorf("expected sort_by price_desc, got %q", filter.SortBy)
	}
}

func TestParsePropertyFilter_EmptyQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/property/search", nil)

	filter, err := parsePropertyFilter(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.IsRent != nil || filter.MinPrice != nil || filter.MaxPrice != nil ||
		filter.MinYear != nil || filter.MaxYear != nil || filter.Furnished != nil {
		t.Errorf("expected all optional fields unset, got %+v", filter)
	}
	if filter.City != "" || filter.PropertyType != "" || filter.SortBy != "" {
		t.Errorf("expected empty string fields, got %+v", filter)
	}
}

func TestParsePropertyFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad is_rent", "is_rent=maybe"},
		{"bad min_price", "min_price=cheap"},
		{"bad max_price", "max_price=12x"},
		{"bad min_year", "min_year=nineteen"},
		{"bad max_year", "max_year=20.5"},
		{"bad furnished", "furnished=kinda"},
		{"price range inverted", "min_price=200000&max_price=100000"},
		{"year range inverted", "min_year=2020&max_year=2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/property/search?"+tt.query, nil)
			if _, err := parsePropertyFilter(r); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParsePropertyFilter_UnknownSortPassedThrough(t *testing.T) {
	r := httptest.NewRequest("GET", "/property/search?sort_by=not_a_real_sort", nil)

	filter, err := parsePropertyFilter(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.SortBy != "not_a_real_sort" {
		t.Errorf("sort_by altered during parsing: %q", filter.SortBy)
	}
}
