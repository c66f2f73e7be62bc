package handlers

import (
	"encoding/json"
	"net/http"
)

const Version = "1.0.0"

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"name":    "Fortune API",
		"version": Version,
		"status":  "stable",
		"routes": map[string]string{
			"health": "/health",
			"api":    "/api",
		},
	}
	json.NewEncoder(w).Encode(response)
}
