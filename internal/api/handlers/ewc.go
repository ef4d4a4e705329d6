package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/service"
)

type EWCHandler struct {
	ewcService *service.EWCService
}

func NewEWCHandler(ewcService *service.EWCService) *EWCHandler {
	return &EWCHandler{ewcService: ewcService}
}

// GroupMatches returns one game's group-stage schedule keyed by group title.
func (h *EWCHandler) GroupMatches(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Game == "" {
		respondError(w, http.StatusBadRequest, "Missing 'game' in request body")
		return
	}

	groups, err := h.ewcService.GetGroupMatches(r.Context(), req.Game, req.Force, req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFilter) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [ewc.GroupMatches] game=%s: %v", req.Game, err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}

	respondData(w, http.StatusOK, "Group matches fetched successfully", groups)
}

type AllMatchesData struct {
	Matches     []domain.AggregatedMatch `json:"matches"`
	FailedGames []string                 `json:"failed_games"`
}

// AllMatches aggregates the group stage across every tracked game into one
// sorted, paginated listing.
func (h *EWCHandler) AllMatches(w http.ResponseWriter, r *http.Request) {
	opts := service.AllMatchesOptions{
		Force:   queryBool(r, "force"),
		Game:    r.URL.Query().Get("game"),
		Group:   r.URL.Query().Get("group"),
		Date:    r.URL.Query().Get("date"),
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "per_page", service.DefaultPerPage),
	}

	result, err := h.ewcService.GetAllMatches(r.Context(), opts)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFilter) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [ewc.AllMatches]: %v", err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}

	data := AllMatchesData{Matches: result.Matches, FailedGames: result.FailedGames}
	respondPage(w, http.StatusOK, "Matches fetched successfully", data, result.Pagination)
}

type MatchDaysData struct {
	Days        []domain.MatchDay `json:"days"`
	FailedGames []string          `json:"failed_games"`
}

// MatchesByDay returns the aggregate schedule grouped by calendar day.
func (h *EWCHandler) MatchesByDay(w http.ResponseWriter, r *http.Request) {
	opts := service.DayMatchesOptions{
		Force: queryBool(r, "force"),
		Game:  r.URL.Query().Get("game"),
		Group: r.URL.Query().Get("group"),
		Date:  r.URL.Query().Get("date"),
	}

	days, failed, err := h.ewcService.GetMatchesByDay(r.Context(), opts)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFilter) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [ewc.MatchesByDay]: %v", err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}

	respondData(w, http.StatusOK, "Matches fetched successfully", MatchDaysData{Days: days, FailedGames: failed})
}

func (h *EWCHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.ewcService.GetEvents(r.Context(), queryBool(r, "live"))
	if err != nil {
		log.Printf("ERROR [ewc.Events]: %v", err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	respondData(w, http.StatusOK, "Events fetched successfully", events)
}

func (h *EWCHandler) Games(w http.ResponseWriter, r *http.Request) {
	games, err := h.ewcService.GetGames(r.Context(), queryBool(r, "live"))
	if err != nil {
		log.Printf("ERROR [ewc.Games]: %v", err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	respondData(w, http.StatusOK, "Games fetched successfully", games)
}

func (h *EWCHandler) Teams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.ewcService.GetTeams(r.Context(), queryBool(r, "live"))
	if err != nil {
		log.Printf("ERROR [ewc.Teams]: %v", err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	respondData(w, http.StatusOK, "Teams fetched successfully", teams)
}

func (h *EWCHandler) Prizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.ewcService.GetPrizeDistribution(r.Context(), queryBool(r, "live"))
	if err != nil {
		log.Printf("ERROR [ewc.Prizes]: %v", err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}
	if prizes == nil {
		prizes = []domain.PrizeDistribution{}
	}
	respondData(w, http.StatusOK, "Prize distribution fetched successfully", prizes)
}

func (h *EWCHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.ewcService.GetInfo(r.Context(), queryBool(r, "live"))
	if err != nil {
		if errors.Is(err, domain.ErrInfoNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("ERROR [ewc.Info]: %v", err)
		respondError(w, http.StatusInternalServerError, upstreamMessage(err))
		return
	}
	respondData(w, http.StatusOK, "Tournament info fetched successfully", info)
}
