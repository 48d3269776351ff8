package repositories

import (
	"strings"
	"testing"

	"aqarBack/internal/models"
)

func boolPtr(b bool) *bool       { return &b }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func TestBuildPropertyFilter_EmptyFilterOnlyApprovalGate(t *testing.T) {
	conditions, params, orderBy := buildPropertyFilter(models.PropertyFilter{})

	if len(conditions) != 1 || conditions[0] != "p.is_approved = TRUE" {
		t.Fatalf("expected only the approval gate, got %v", conditions)
	}
	if len(params) != 0 {
		t.Fatalf("expected no params, got %v", params)
	}
	if orderBy != "" {
		t.Fatalf("expected natural order, got %q", orderBy)
	}
}

func TestBuildPropertyFilter_SingleConditions(t *testing.T) {
	cases := []struct {
		name      string
		filter    models.PropertyFilter
		wantCond  string
		wantParam interface{}
	}{
		{"rent flag", models.PropertyFilter{IsRent: boolPtr(true)}, "p.is_for_rent = ?", true},
		{"city exact match", models.PropertyFilter{City: "Beirut"}, "p.city = ?", "Beirut"},
		{"property type", models.PropertyFilter{PropertyType: models.PropertyTypeVilla}, "p.property_type = ?", "villa"},
		{"min price inclusive", models.PropertyFilter{MinPrice: floatPtr(100000)}, "p.price >= ?", 100000.0},
		{"max price inclusive", models.PropertyFilter{MaxPrice: floatPtr(250000)}, "p.price <= ?", 250000.0},
		{"min year inclusive", models.PropertyFilter{MinYear: intPtr(2000)}, "p.year_built >= ?", 2000},
		{"max year inclusive", models.PropertyFilter{MaxYear: intPtr(2020)}, "p.year_built <= ?", 2020},
		{"furnished", models.PropertyFilter{Furnished: boolPtr(false)}, "p.furnished = ?", false},
		{"exclude owner", models.PropertyFilter{ExcludeUserID: 7}, "p.user_id <> ?", 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conditions, params, _ := buildPropertyFilter(tc.filter)

			if len(conditions) != 2 {
				t.Fatalf("expected condition plus approval gate, got %v", conditions)
			}
			if conditions[0] != tc.wantCond {
				t.Errorf("expected condition %q, got %q", tc.wantCond, conditions[0])
			}
			if conditions[len(conditions)-1] != "p.is_approved = TRUE" {
				t.Errorf("approval gate missing from %v", conditions)
			}
			if len(params) != 1 || params[0] != tc.wantParam {
				t.Errorf("expected param %v, got %v", tc.wantParam, params)
			}
		})
	}
}

func TestBuildPropertyFilter_CombinationIsConjunction(t *testing.T) {
	filter := models.PropertyFilter{
		IsRent:        boolPtr(false),
		City:          "Beirut",
		PropertyType:  models.PropertyTypeApartment,
		MinPrice:      floatPtr(50000),
		MaxPrice:      floatPtr(300000),
		MinYear:       intPtr(1990),
		MaxYear:       intPtr(2024),
		Furnished:     boolPtr(true),
		ExcludeUserID: 3,
	}

	conditions, params, _ := buildPropertyFilter(filter)

	// every present filter plus the approval gate, nothing else
	if len(conditions) != 10 {
		t.Fatalf("expected 10 conditions, got %d: %v", len(conditions), conditions)
	}
	if len(params) != 9 {
		t.Fatalf("expected 9 params, got %d: %v", len(params), params)
	}

	joined := strings.Join(conditions, " AND ")
	for _, want := range []string{
		"p.is_for_rent = ?", "p.city = ?", "p.property_type = ?",
		"p.price >= ?", "p.price <= ?", "p.year_built >= ?", "p.year_built <= ?",
		"p.furnished = ?", "p.user_id <> ?", "p.is_approved = TRUE",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing condition %q in %q", want, joined)
		}
	}
}

func TestBuildPropertyFilter_SortKeys(t *testing.T) {
	cases := []struct {
		sortBy string
		want   string
	}{
		{models.SortPriceAsc, " ORDER BY p.price ASC"},
		{models.SortPriceDesc, " ORDER BY p.price DESC"},
		{models.SortDateAsc, " ORDER BY p.created_at ASC"},
		{models.SortDateDesc, " ORDER BY p.created_at DESC"},
		{models.SortYearAsc, " ORDER BY p.year_built ASC"},
		{models.SortYearDesc, " ORDER BY p.year_built DESC"},
		// unrecognized keys fall back to natural order, not an error
		{"", ""},
		{"price", ""},
		{"PRICE_ASC", ""},
		{"garbage;DROP TABLE", ""},
	}

	for _, tc := range cases {
		_, _, orderBy := buildPropertyFilter(models.PropertyFilter{SortBy: tc.sortBy})
		if orderBy != tc.want {
			t.Errorf("sortBy %q: expected %q, got %q", tc.sortBy, tc.want, orderBy)
		}
	}
}

func TestBuildPropertyFilter_ZeroExcludeUserIDIgnored(t *testing.T) {
	conditions, _, _ := buildPropertyFilter(models.PropertyFilter{ExcludeUserID: 0})
	for _, c := range conditions {
		if c == "p.user_id <> ?" {
			t.Fatalf("zero exclude_user_id must not add a condition: %v", conditions)
		}
	}
}
