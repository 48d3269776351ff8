package models

// PredictionRequest is the feature vector sent to the price estimator.
// Furnished and YearBuilt are optional and only affect post-processing.
type PredictionRequest struct {
	City          string  `json:"city"`
	SquareMeter   float64 `json:"square_meter"`
	PropertyType  string  `json:"property_type"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	LivingRooms   int     `json:"living_rooms"`
	Balconies     int     `json:"balconies"`
	ParkingSpaces int     `json:"parking_spaces"`
	Furnished     *bool   `json:"furnished,omitempty"`
	YearBuilt     *int    `json:"year_built,omitempty"`
	Price         float64 `json:"price"`
}

const (
	PriceStatusUnderpriced = "Underpriced"
	PriceStatusOverpriced  = "Overpriced"
	PriceStatusFair        = "Fairly Priced"
)

type PredictionResult struct {
	PredictedPrice float64 `json:"predicted_price"`
	PriceStatus    string  `json:"price_status"`
}
