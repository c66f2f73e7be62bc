package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GHutch55/fortune/backend/api/v1/models"
)

// Drawer produces one fortune per call.
type Drawer interface {
	Draw() string
}

// FortuneHandler serves random fortunes
type FortuneHandler struct {
	Fortunes Drawer
}

// GetFortune handles GET /api/fortune
func (h *FortuneHandler) GetFortune(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	question := strings.TrimSpace(r.URL.Query().Get("question"))
	// The question is accepted but does not influence the draw.
	_ = question

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.FortuneResponse{Fortune: h.Fortunes.Draw()})
}
