package types

import "encoding/json"

// PredictPriceRequest also the body forwarded to the prediction service
type PredictPriceRequest struct {
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	DepartureDate string `json:"departureDate"`
}

// Prediction 价格预测结果，嵌套字段原样透传
type Prediction struct {
	PredictedPrice    float64         `json:"predicted_price"`
	Confidence        float64         `json:"confidence"`
	UrgencyLevel      string          `json:"urgency_level"`
	Recommendation    string          `json:"recommendation"`
	PriceFactors      json.RawMessage `json:"price_factors,omitempty"`
	PredictionDetails json.RawMessage `json:"prediction_details,omitempty"`
	FlightContext     json.RawMessage `json:"flight_context,omitempty"`
}

type PredictPriceResponse struct {
	Success    bool        `json:"success"`
	Prediction *Prediction `json:"prediction"`
}

type PredictionHealthResponse struct {
	Backend   string `json:"backend"`
	MLService any    `json:"ml_service"`
	Error     string `json:"error,omitempty"`
}
