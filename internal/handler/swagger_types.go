package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// PredictRequest represents the /predict request body.
type PredictRequest struct {
	Text string `json:"text" example:"WIN a FREE prize now, call 0800"`
}

// PredictResponse represents the /predict response body.
type PredictResponse struct {
	Label string `json:"label" example:"spam"`
}

// AnalyzeAllResponse represents the /analyze-all response body.
type AnalyzeAllResponse struct {
	FinalLabel string  `json:"final_label" example:"spam"`
	Text       string  `json:"text" example:"恭喜中獎 請回電"`
	TotalScore float64 `json:"total_score" example:"0.9731"`
}

// ReadinessResponse represents the /readyz response body.
type ReadinessResponse struct {
	Status       string `json:"status" example:"ok"`
	ModelVersion string `json:"model_version,omitempty" example:"2024.06-1"`
	OCREnabled   bool   `json:"ocr_enabled" example:"true"`
	Error        string `json:"error,omitempty" example:"model not loaded"`
}
