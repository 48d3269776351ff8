package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"aqarBack/internal/models"
)

func TestAttachImages_PreservesInputOrder(t *testing.T) {
	properties := []models.Property{
		{ID: 3}, {ID: 1}, {ID: 2},
	}

	fetch := func(ctx context.Context, propertyID int) ([]string, error) {
		// finish out of order to prove completion order does not matter
		time.Sleep(time.Duration(propertyID) * time.Millisecond)
		return []string{fmt.Sprintf("img-%d", propertyID)}, nil
	}

	if err := attachImages(context.Background(), properties, fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, wantID := range []int{3, 1, 2} {
		if properties[i].ID != wantID {
			t.Fatalf("property order changed at %d: %+v", i, properties)
		}
		want := fmt.Sprintf("img-%d", wantID)
		if len(properties[i].Images) != 1 || properties[i].Images[0] != want {
			t.Errorf("property %d: expected [%s], got %v", wantID, want, properties[i].Images)
		}
	}
}

func TestAttachImages_ZeroImagesStaysEmptyNonNil(t *testing.T) {
	properties := []models.Property{{ID: 1}}

	fetch := func(ctx context.Context, propertyID int) ([]string, error) {
		return []string{}, nil
	}

	if err := attachImages(context.Background(), properties, fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if properties[0].Images == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(properties[0].Images) != 0 {
		t.Fatalf("expected no images, got %v", properties[0].Images)
	}
}

func TestAttachImages_SingleFailureFailsComposition(t *testing.T) {
	properties := []models.Property{{ID: 1}, {ID: 2}, {ID: 3}}
	storeErr := errors.New("store failure")

	var mu sync.Mutex
	calls := 0
	fetch := func(ctx context.Context, propertyID int) ([]string, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		if propertyID == 2 {
			return nil, storeErr
		}
		return []string{"ok"}, nil
	}

	err := attachImages(context.Background(), properties, fetch)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store failure to propagate, got %v", err)
	}
	if calls == 0 {
		t.Fatal("fetch never called")
	}
}

func TestAttachImages_EmptyInput(t *testing.T) {
	fetch := func(ctx context.Context, propertyID int) ([]string, error) {
		t.Fatal("fetch must not be called for empty input")
		return nil, nil
	}
	if err := attachImages(context.Background(), nil, fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
