package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mahmoodhamdi/scraper-api/internal/service"
)

type TournamentHandler struct {
	tournamentService *service.TournamentService
}

func NewTournamentHandler(tournamentService *service.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

// ScrapeRequest is the shared body of the scrape-by-game endpoints. Date is
// only honored where the route documents it.
type ScrapeRequest struct {
	Game  string `json:"game"`
	Force bool   `json:"force"`
	Date  string `json:"date"`
}

func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Game == "" {
		respondError(w, http.StatusBadRequest, "Missing 'game' in request body")
		return
	}

	sections, err := h.tournamentService.GetTournaments(r.Context(), req.Game, req.Force)
	if err != nil {
		log.Printf("ERROR [tournaments.Get] game=%s: %v", req.Game, err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}

	respondData(w, http.StatusOK, "Tournaments fetched successfully", sections)
}
