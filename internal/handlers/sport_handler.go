package handlers

import (
	"errors"

	"sport-predict/internal/models"
	"sport-predict/internal/repository"
	"sport-predict/internal/validation"

	"github.com/gin-gonic/gin"
)

type SportHandler struct {
	repo *repository.Repository
}

func NewSportHandler(repo *repository.Repository) *SportHandler {
	return &SportHandler{repo: repo}
}

// GetSports returns every sport
// GET /api/v1/sports
func (h *SportHandler) GetSports(c *gin.Context) {
	sports, err := h.repo.ListSports(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch sports", err)
		return
	}
	respondOK(c, sports)
}

// lookupSport resolves the :id path parameter, writing the error response
// itself when the sport cannot be returned.
func (h *SportHandler) lookupSport(c *gin.Context) (*models.Sport, bool) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondBadRequest(c, "Invalid sport ID", []string{validation.MsgInvalidID})
		return nil, false
	}

	sport, err := h.repo.GetSportByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Sport not found")
		return nil, false
	}
	if err != nil {
		respondError(c, "Failed to fetch sport", err)
		return nil, false
	}
	return sport, true
}

// GetSport returns a single sport
// GET /api/v1/sports/:id
func (h *SportHandler) GetSport(c *gin.Context) {
	sport, ok := h.lookupSport(c)
	if !ok {
		return
	}
	respondOK(c, sport)
}

// GetSportTeams returns the teams of a sport
// GET /api/v1/sports/:id/teams
func (h *SportHandler) GetSportTeams(c *gin.Context) {
	sport, ok := h.lookupSport(c)
	if !ok {
		return
	}

	teams, err := h.repo.ListTeamsBySport(c.Request.Context(), sport.ID)
	if err != nil {
		respondError(c, "Failed to fetch teams", err)
		return
	}
	respondOK(c, teams)
}

// GetSportMatches returns a page of the sport's matches
// GET /api/v1/sports/:id/matches
func (h *SportHandler) GetSportMatches(c *gin.Context) {
	sport, ok := h.lookupSport(c)
	if !ok {
		return
	}

	filters, ok := pageFilters(c)
	if !ok {
		return
	}
	filters.Sport = sport.Name
	listMatches(c, h.repo, filters)
}
