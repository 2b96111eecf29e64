package database

import (
	"time"

	"sport-predict/internal/models"
)

var mockSports = []models.Sport{
	{ID: 1, Name: "Football", Description: "American Football"},
	{ID: 2, Name: "Basketball", Description: "Basketball"},
	{ID: 3, Name: "Soccer", Description: "Association Football"},
	{ID: 4, Name: "Baseball", Description: "Major League Baseball"},
	{ID: 5, Name: "Hockey", Description: "Ice Hockey"},
}

func logo(name string) *string {
	url := "https://example.com/" + name + ".png"
	return &url
}

var mockTeams = []models.Team{
	{ID: 1, Name: "Kansas City Chiefs", SportID: 1, LogoURL: logo("chiefs")},
	{ID: 2, Name: "Buffalo Bills", SportID: 1, LogoURL: logo("bills")},
	{ID: 3, Name: "Dallas Cowboys", SportID: 1, LogoURL: logo("cowboys")},
	{ID: 4, Name: "Green Bay Packers", SportID: 1, LogoURL: logo("packers")},

	{ID: 5, Name: "Los Angeles Lakers", SportID: 2, LogoURL: logo("lakers")},
	{ID: 6, Name: "Boston Celtics", SportID: 2, LogoURL: logo("celtics")},
	{ID: 7, Name: "Golden State Warriors", SportID: 2, LogoURL: logo("warriors")},
	{ID: 8, Name: "Miami Heat", SportID: 2, LogoURL: logo("heat")},

	{ID: 9, Name: "Manchester City", SportID: 3, LogoURL: logo("mancity")},
	{ID: 10, Name: "Arsenal", SportID: 3, LogoURL: logo("arsenal")},
	{ID: 11, Name: "Liverpool", SportID: 3, LogoURL: logo("liverpool")},
	{ID: 12, Name: "Chelsea", SportID: 3, LogoURL: logo("chelsea")},
}

// gameDate returns the local wall-clock time daysFromToday days after now at
// hour:minute, stored in UTC.
func gameDate(now time.Time, daysFromToday, hour, minute int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+daysFromToday, hour, minute, 0, 0, now.Location()).UTC()
}

// mockMatches builds the fixture list relative to now
func mockMatches(now time.Time) []models.Match {
	scheduled := func(id, sportID, home, away uint, days, hour, minute int) models.Match {
		return models.Match{
			ID:         id,
			SportID:    sportID,
			HomeTeamID: home,
			AwayTeamID: away,
			MatchDate:  gameDate(now, days, hour, minute),
			Status:     models.MatchStatusScheduled,
		}
	}

	matches := []models.Match{
		scheduled(1, 1, 1, 2, 0, 20, 0),
		scheduled(2, 1, 3, 4, 1, 18, 30),
		scheduled(3, 1, 2, 3, 2, 21, 0),
		scheduled(4, 2, 5, 6, 3, 19, 30),
		scheduled(5, 2, 7, 8, 4, 22, 0),
		scheduled(6, 2, 6, 7, 5, 20, 0),
		scheduled(7, 3, 9, 10, 6, 15, 0),
		scheduled(8, 3, 11, 12, 7, 17, 30),
		scheduled(9, 3, 10, 11, 8, 20, 0),
		scheduled(10, 3, 12, 9, 9, 16, 0),
	}

	completed := scheduled(11, 3, 9, 11, -2, 17, 0)
	completed.Status = models.MatchStatusCompleted
	completed.HomeScore, completed.AwayScore = 2, 1

	live := scheduled(12, 2, 8, 5, 0, 0, 30)
	live.Status = models.MatchStatusInProgress
	live.HomeScore, live.AwayScore = 54, 61

	return append(matches, completed, live)
}
