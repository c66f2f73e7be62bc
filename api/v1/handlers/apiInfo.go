package handlers

import (
	"encoding/json"
	"net/http"
)

func ApiInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"message": "Fortune API v" + Version,
		"endpoints": map[string]string{
			"fortune": "GET /api/fortune?question=<optional>",
		},
	}
	json.NewEncoder(w).Encode(response)
}
