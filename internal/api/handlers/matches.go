package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mahmoodhamdi/scraper-api/internal/service"
)

type MatchHandler struct {
	matchService *service.MatchService
}

func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Game == "" {
		respondError(w, http.StatusBadRequest, "Missing 'game' in request body")
		return
	}

	sections, err := h.matchService.GetMatches(r.Context(), req.Game, req.Force)
	if err != nil {
		log.Printf("ERROR [matches.Get] game=%s: %v", req.Game, err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}

	respondData(w, http.StatusOK, "Matches fetched successfully", sections)
}
