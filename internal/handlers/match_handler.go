package handlers

import (
	"errors"
	"strconv"
	"strings"

	"sport-predict/internal/models"
	"sport-predict/internal/repository"
	"sport-predict/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

type MatchHandler struct {
	repo *repository.Repository
}

func NewMatchHandler(repo *repository.Repository) *MatchHandler {
	return &MatchHandler{repo: repo}
}

// applyPage copies validated limit/offset strings onto filters, keeping the
// defaults for absent values.
func applyPage(filters *models.MatchFilters, limit, offset string) {
	filters.Limit = defaultLimit
	filters.Offset = defaultOffset
	if limit != "" {
		filters.Limit, _ = strconv.Atoi(limit)
	}
	if offset != "" {
		filters.Offset, _ = strconv.Atoi(offset)
	}
}

// pageFilters validates the limit/offset query of a path-scoped listing
func pageFilters(c *gin.Context) (models.MatchFilters, bool) {
	var filters models.MatchFilters
	input := validation.FilterInput{
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
	}
	if result := validation.ValidateMatchFilters(input); !result.IsValid() {
		respondBadRequest(c, "Invalid filters", result.Errors)
		return filters, false
	}
	applyPage(&filters, input.Limit, input.Offset)
	return filters, true
}

// listMatches writes one page of matches with its pagination metadata
func listMatches(c *gin.Context, repo *repository.Repository, filters models.MatchFilters) {
	ctx := c.Request.Context()

	matches, err := repo.ListMatches(ctx, filters)
	if err != nil {
		respondError(c, "Failed to fetch matches", err)
		return
	}

	total, err := repo.CountMatches(ctx, filters)
	if err != nil {
		respondError(c, "Failed to fetch matches", err)
		return
	}

	respondPage(c, matches, newPagination(total, filters.Limit, filters.Offset, len(matches)))
}

// GetMatches returns a filtered page of matches
// GET /api/v1/matches?sport=&status=&limit=&offset=
func (h *MatchHandler) GetMatches(c *gin.Context) {
	input := validation.FilterInput{
		Sport:  c.QueryArray("sport"),
		Status: c.Query("status"),
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
	}
	if result := validation.ValidateMatchFilters(input); !result.IsValid() {
		respondBadRequest(c, "Invalid filters", result.Errors)
		return
	}

	filters := models.MatchFilters{Status: models.MatchStatus(input.Status)}
	if len(input.Sport) == 1 {
		filters.Sport = input.Sport[0]
	}
	applyPage(&filters, input.Limit, input.Offset)

	listMatches(c, h.repo, filters)
}

// GetMatch returns a single match
// GET /api/v1/matches/:id
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		respondBadRequest(c, "Invalid match ID", []string{validation.MsgInvalidID})
		return
	}

	match, err := h.repo.GetMatchByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, "Match not found")
		return
	}
	if err != nil {
		respondError(c, "Failed to fetch match", err)
		return
	}
	respondOK(c, match)
}

// GetMatchesBySport returns matches of a sport looked up case-insensitively.
// An unknown sport yields an empty page.
// GET /api/v1/matches/sport/:sportName
func (h *MatchHandler) GetMatchesBySport(c *gin.Context) {
	name := c.Param("sportName")
	if result := validation.ValidateSportName(name); !result.IsValid() {
		respondBadRequest(c, "Invalid sport name", result.Errors)
		return
	}

	filters, ok := pageFilters(c)
	if !ok {
		return
	}

	sport, err := h.repo.GetSportByName(c.Request.Context(), strings.TrimSpace(name))
	if errors.Is(err, repository.ErrNotFound) {
		respondPage(c, []models.MatchRow{}, newPagination(0, filters.Limit, filters.Offset, 0))
		return
	}
	if err != nil {
		respondError(c, "Failed to fetch sport", err)
		return
	}

	filters.Sport = sport.Name
	listMatches(c, h.repo, filters)
}

// GetMatchesByStatus returns matches in the given status
// GET /api/v1/matches/status/:status
func (h *MatchHandler) GetMatchesByStatus(c *gin.Context) {
	status := c.Param("status")
	if result := validation.ValidateStatus(status); !result.IsValid() {
		respondBadRequest(c, "Invalid status. Must be one of: scheduled, in_progress, completed", nil)
		return
	}

	filters, ok := pageFilters(c)
	if !ok {
		return
	}
	filters.Status = models.MatchStatus(status)
	listMatches(c, h.repo, filters)
}
