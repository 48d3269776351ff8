package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aqarBack/internal/models"
)

func TestAdjustPredictedPrice(t *testing.T) {
	furnished := true
	unfurnished := false
	currentYear := 2026

	tests := []struct {
		name      string
		furnished *bool
		yearBuilt *int
		expected  float64
	}{
		{"no adjustments", nil, nil, 100000},
		{"furnished no discount", &furnished, nil, 100000},
		{"unfurnished discount", &unfurnished, nil, 90000},
		{"new building", nil, intPtr(2024), 100000},
		{"age nine years", nil, intPtr(2017), 100000},
		{"age ten years", nil, intPtr(2016), 95000},
		{"age twenty years", nil, intPtr(2006), 90000},
		{"age thirty years", nil, intPtr(1996), 85000},
		{"age forty years", nil, intPtr(1986), 80000},
		{"age sixty years", nil, intPtr(1966), 80000},
		{"unfurnished and old", &unfurnished, intPtr(1986), 72000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustPredictedPrice(100000, tt.furnished, tt.yearBuilt, currentYear)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPriceStatus(t *testing.T) {
	tests := []struct {
		name      string
		actual    float64
		predicted float64
		expected  string
	}{
		{"well below margin", 80000, 100000, models.PriceStatusUnderpriced},
		{"lower boundary is fair", 90000, 100000, models.PriceStatusFair},
		{"equal is fair", 100000, 100000, models.PriceStatusFair},
		{"upper boundary is fair", 110000, 100000, models.PriceStatusFair},
		{"well above margin", 120000, 100000, models.PriceStatusOverpriced},
		{"just below lower boundary", 89999, 100000, models.PriceStatusUnderpriced},
		{"just above upper boundary", 110001, 100000, models.PriceStatusOverpriced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := priceStatus(tt.actual, tt.predicted)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestPredictionClient_Estimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		var req models.PredictionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]float64{"predicted_price": 125000})
	}))
	defer srv.Close()

	client := NewPredictionClient(srv.Client(), srv.URL)
	got, err := client.Estimate(context.Background(), models.PredictionRequest{City: "Beirut"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 125000 {
		t.Errorf("expected 125000, got %v", got)
	}
}

func TestPredictionClient_EstimatorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewPredictionClient(srv.Client(), srv.URL)
	if _, err := client.Estimate(context.Background(), models.PredictionRequest{}); err == nil {
		t.Fatal("expected error for estimator failure")
	}
}

func TestPredictionClient_Unconfigured(t *testing.T) {
	client := NewPredictionClient(nil, "")
	if _, err := client.Estimate(context.Background(), models.PredictionRequest{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
}

func intPtr(v int) *int { return &v }
