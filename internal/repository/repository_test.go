package repository

import (
	"context"
	"testing"

	"sport-predict/internal/models"
	"sport-predict/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepository(t *testing.T) *Repository {
	return NewRepository(testutils.NewSeededDB(t))
}

func matchIDs(rows []models.MatchRow) []uint {
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestListMatches(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	t.Run("no filters returns everything ordered by date", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{})
		require.NoError(t, err)
		require.Len(t, rows, 12)
		assert.Equal(t, []uint{11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, matchIDs(rows))
		for i := 1; i < len(rows); i++ {
			assert.False(t, rows[i].MatchDate.Before(rows[i-1].MatchDate))
		}
	})

	t.Run("rows carry joined names", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{Limit: 1, Offset: 2})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, uint(1), rows[0].ID)
		assert.Equal(t, "Football", rows[0].SportName)
		assert.Equal(t, "Kansas City Chiefs", rows[0].HomeTeamName)
		assert.Equal(t, "Buffalo Bills", rows[0].AwayTeamName)
	})

	t.Run("sport filter is case insensitive", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{Sport: "sOcCeR"})
		require.NoError(t, err)
		assert.Len(t, rows, 5)
		for _, r := range rows {
			assert.Equal(t, "Soccer", r.SportName)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{Status: models.MatchStatusCompleted})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].HomeScore)
		assert.Equal(t, 1, rows[0].AwayScore)
	})

	t.Run("team filter matches home or away", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{TeamID: 9})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{7, 10, 11}, matchIDs(rows))
	})

	t.Run("filters are combined", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{Sport: "basketball", Status: models.MatchStatusScheduled})
		require.NoError(t, err)
		assert.Equal(t, []uint{4, 5, 6}, matchIDs(rows))
	})

	t.Run("limit and offset", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{Limit: 5, Offset: 10})
		require.NoError(t, err)
		assert.Equal(t, []uint{9, 10}, matchIDs(rows))
	})

	t.Run("offset without limit is ignored", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{Offset: 5})
		require.NoError(t, err)
		assert.Len(t, rows, 12)
	})

	t.Run("unknown sport yields an empty slice", func(t *testing.T) {
		rows, err := repo.ListMatches(ctx, models.MatchFilters{Sport: "Cricket"})
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestCountMatches(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	tests := []struct {
		filters models.MatchFilters
		want    int64
	}{
		{models.MatchFilters{}, 12},
		{models.MatchFilters{Limit: 2, Offset: 4}, 12},
		{models.MatchFilters{Sport: "FOOTBALL"}, 3},
		{models.MatchFilters{Status: models.MatchStatusScheduled}, 10},
		{models.MatchFilters{TeamID: 5}, 2},
		{models.MatchFilters{Sport: "Hockey"}, 0},
	}

	for _, tt := range tests {
		total, err := repo.CountMatches(ctx, tt.filters)
		require.NoError(t, err)
		assert.Equal(t, tt.want, total, "%+v", tt.filters)
	}
}

func TestGetMatchByID(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	match, err := repo.GetMatchByID(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusInProgress, match.Status)
	assert.Equal(t, "Miami Heat", match.HomeTeamName)
	assert.Equal(t, "Los Angeles Lakers", match.AwayTeamName)

	_, err = repo.GetMatchByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSports(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	sports, err := repo.ListSports(ctx)
	require.NoError(t, err)
	names := make([]string, len(sports))
	for i, s := range sports {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Baseball", "Basketball", "Football", "Hockey", "Soccer"}, names)

	sport, err := repo.GetSportByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Soccer", sport.Name)

	sport, err = repo.GetSportByName(ctx, "hockey")
	require.NoError(t, err)
	assert.Equal(t, uint(5), sport.ID)

	_, err = repo.GetSportByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetSportByName(ctx, "Cricket")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeams(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 12)
	assert.Equal(t, "Boston Celtics", teams[0].Name)
	assert.Equal(t, "Basketball", teams[0].SportName)
	assert.Equal(t, "Manchester City", teams[11].Name)

	team, err := repo.GetTeamByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", team.Name)
	assert.Equal(t, "Soccer", team.SportName)
	require.NotNil(t, team.LogoURL)
	assert.Equal(t, "https://example.com/arsenal.png", *team.LogoURL)

	_, err = repo.GetTeamByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	bySport, err := repo.ListTeamsBySport(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bySport, 4)

	soccer, err := repo.ListTeamsBySport(ctx, 3)
	require.NoError(t, err)
	got := make([]string, len(soccer))
	for i, team := range soccer {
		got[i] = team.Name
	}
	assert.Equal(t, []string{"Arsenal", "Chelsea", "Liverpool", "Manchester City"}, got)

	none, err := repo.ListTeamsBySport(ctx, 4)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUsers(t *testing.T) {
	repo := newSeededRepository(t)
	ctx := context.Background()

	admin, err := repo.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, uint(1), admin.ID)
	assert.NotEmpty(t, admin.PasswordHash)

	user, err := repo.GetUserByID(ctx, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, user.Username)

	_, err = repo.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
