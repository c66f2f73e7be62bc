package models

// FortuneResponse represents the body returned by GET /api/fortune
type FortuneResponse struct {
	Fortune string `json:"fortune"`
}
