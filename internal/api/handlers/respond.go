package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/mahmoodhamdi/scraper-api/internal/service"
)

// Envelope is the success shape every endpoint returns.
type Envelope struct {
	Message    string              `json:"message"`
	Data       interface{}         `json:"data"`
	Pagination *service.Pagination `json:"pagination,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondData(w http.ResponseWriter, status int, message string, data interface{}) {
	respondJSON(w, status, Envelope{Message: message, Data: data})
}

func respondPage(w http.ResponseWriter, status int, message string, data interface{}, p service.Pagination) {
	respondJSON(w, status, Envelope{Message: message, Data: data, Pagination: &p})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// upstreamMessage maps a scrape failure to a stable client-facing message.
// The raw error stays in the server log.
func upstreamMessage(err error) string {
	var statusErr *liquipedia.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Failed to fetch page. Status: %d", statusErr.StatusCode)
	}
	var transportErr *liquipedia.TransportError
	if errors.As(err, &transportErr) {
		return "Failed to reach Liquipedia"
	}
	return "Internal server error"
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func queryBool(r *http.Request, key string) bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
