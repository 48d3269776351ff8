package cache

import (
	"context"
	"strings"
	"testing"

	"aqarBack/internal/models"
)

func TestKey_Deterministic(t *testing.T) {
	minPrice := 50000.0
	filter := models.PropertyFilter{City: "Beirut", MinPrice: &minPrice, SortBy: "price_desc"}

	first := Key(filter)
	second := Key(filter)
	if first != second {
		t.Errorf("same filter produced different keys: %s vs %s", first, second)
	}
	if !strings.HasPrefix(first, searchKeyPrefix) {
		t.Errorf("key %s missing prefix %s", first, searchKeyPrefix)
	}
}

func TestKey_DistinctFilters(t *testing.T) {
	keys := map[string]string{
		"empty":      Key(models.PropertyFilter{}),
		"beirut":     Key(models.PropertyFilter{City: "Beirut"}),
		"tripoli":    Key(models.PropertyFilter{City: "Tripoli"}),
		"sorted":     Key(models.PropertyFilter{City: "Beirut", SortBy: "price_asc"}),
		"anonymized": Key(models.PropertyFilter{City: "Beirut", ExcludeUserID: 7}),
	}

	seen := make(map[string]string)
	for name, key := range keys {
		if prev, ok := seen[key]; ok {
			t.Errorf("filters %q and %q collide on key %s", name, prev, key)
		}
		seen[key] = name
	}
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *SearchCache
	ctx := context.Background()

	var dest []models.Property
	hit, err := c.Get(ctx, "property:search:any", &dest)
	if err != nil {
		t.Fatalf("nil cache Get returned error: %v", err)
	}
	if hit {
		t.Error("nil cache reported a hit")
	}
	if err := c.Set(ctx, "property:search:any", dest); err != nil {
		t.Errorf("nil cache Set returned error: %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Errorf("nil cache Invalidate returned error: %v", err)
	}
}

func TestNewSearchCache_DefaultTTL(t *testing.T) {
	c := NewSearchCache(nil, 0)
	if c.TTL <= 0 {
		t.Errorf("expected positive default TTL, got %v", c.TTL)
	}
}
