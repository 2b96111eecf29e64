package handlers

import (
	"errors"

	"sport-predict/internal/models"
	"sport-predict/internal/repository"
	"sport-predict/internal/validation"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	repo *repository.Repository
}

func NewTeamHandler(repo *repository.Repository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// GetTeams returns every team with its sport name
// GET /api/v1/teams
func (h *TeamHandler) GetTeams(c *gin.Context) {
	teams, err := h.repo.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to fetch teams", err)
		return
	}
	respondOK(c, teams)
}

func (h *TeamHandler) lookupTeam(c *gin.Context) (*models.TeamRow, bool) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondBadRequest(c, "Invalid team ID", []string{validation.MsgInvalidID})
		return nil, false
	}

	team, err := h.repo.GetTeamByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Team not found")
		return nil, false
	}
	if err != nil {
		respondError(c, "Failed to fetch team", err)
		return nil, false
	}
	return team, true
}

// GetTeam returns a single team
// GET /api/v1/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, ok := h.lookupTeam(c)
	if !ok {
		return
	}
	respondOK(c, team)
}

// GetTeamMatches returns a page of matches the team plays, home or away
// GET /api/v1/teams/:id/matches
func (h *TeamHandler) GetTeamMatches(c *gin.Context) {
	team, ok := h.lookupTeam(c)
	if !ok {
		return
	}

	filters, ok := pageFilters(c)
	if !ok {
		return
	}
	filters.TeamID = team.ID
	listMatches(c, h.repo, filters)
}
