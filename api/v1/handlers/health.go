package handlers

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Fortunes int    `json:"fortunes"`
}

// Sizer reports how many fortunes are loaded.
type Sizer interface {
	Size() int
}

func HealthHandler(corpus Sizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := healthResponse{
			Status:   "ok",
			Message:  "Fortune API is running",
			Fortunes: corpus.Size(),
		}

		json.NewEncoder(w).Encode(response)
	}
}
