package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetImageURLsByPropertyID_AscendingOrderByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PropertyImageRepository{DB: db}

	rows := sqlmock.NewRows([]string{"id", "property_id", "image_url"}).
		AddRow(10, 1, "https://cdn.example/a.jpg").
		AddRow(11, 1, "https://cdn.example/b.jpg").
		AddRow(12, 1, "https://cdn.example/c.jpg")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE property_id = ? ORDER BY id ASC")).
		WithArgs(1).
		WillReturnRows(rows)

	urls, err := repo.GetImageURLsByPropertyID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://cdn.example/a.jpg", "https://cdn.example/b.jpg", "https://cdn.example/c.jpg"}
	if len(urls) != len(want) {
		t.Fatalf("expected %d urls, got %d", len(want), len(urls))
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], urls[i])
		}
	}
}

func TestGetImageURLsByPropertyID_NoImagesYieldsEmptyNonNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PropertyImageRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE property_id = ? ORDER BY id ASC")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id", "image_url"}))

	urls, err := repo.GetImageURLsByPropertyID(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if urls == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(urls) != 0 {
		t.Fatalf("expected no urls, got %v", urls)
	}
}
