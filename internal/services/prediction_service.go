package services

import (
	"context"
	"time"

	"aqarBack/internal/models"
)

// fairPriceMargin is the tolerance band around the estimate inside which a
// listing counts as fairly priced.
const fairPriceMargin = 0.1

type PredictionService struct {
	Client *PredictionClient
}

// EstimatePrice calls the external estimator, adjusts the raw estimate for
// furnishing and property age, and classifies the asking price against it.
func (s *PredictionService) EstimatePrice(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error) {
	predicted, err := s.Client.Estimate(ctx, req)
	if err != nil {
		return models.PredictionResult{}, err
	}

	predicted = adjustPredictedPrice(predicted, req.Furnished, req.YearBuilt, time.Now().Year())

	return models.PredictionResult{
		PredictedPrice: predicted,
		PriceStatus:    priceStatus(req.Price, predicted),
	}, nil
}

// adjustPredictedPrice applies the furnishing discount and age depreciation
// tiers to the raw model estimate.
func adjustPredictedPrice(predicted float64, furnished *bool, yearBuilt *int, currentYear int) float64 {
	if furnished != nil && !*furnished {
		predicted *= 0.9
	}

	if yearBuilt != nil {
		age := currentYear - *yearBuilt
		switch {
		case age >= 40:
			predicted *= 0.8
		case age >= 30:
			predicted *= 0.85
		case age >= 20:
			predicted *= 0.9
		case age >= 10:
			predicted *= 0.95
		}
	}

	return predicted
}

// priceStatus compares the asking price to the adjusted estimate. Prices on
// the margin boundary count as fair.
func priceStatus(actual, predicted float64) string {
	marginValue := predicted * fairPriceMargin
	switch {
	case actual < predicted-marginValue:
		return models.PriceStatusUnderpriced
	case actual > predicted+marginValue:
		return models.PriceStatusOverpriced
	default:
		return models.PriceStatusFair
	}
}
