package sampler

import (
	"time"

	"github.com/okian/gully/internal/domain/model"
)

// Seed data for a fresh session. The roster's plain point sum matches the
// current user's base board points so the trend line, the board, and the
// team card all start from the same number.

// SeedTeam returns the user's starting roster. V Sooryavanshi captains,
// T Rew is vice-captain.
func SeedTeam(contestID string) model.Team {
	return model.Team{
		ID:            "team-1",
		Name:          "T1",
		ContestID:     contestID,
		CaptainID:     "p1",
		ViceCaptainID: "p2",
		Players: []model.Player{
			{ID: "p1", Name: "V Sooryavanshi", Role: model.RoleBatsman, Team: "IN-U19", Points: 40.5, Price: 10.5, SelectedBy: 89.2, RecentPerformance: []float64{32, 41, 12, 40.5}},
			{ID: "p2", Name: "T Rew", Role: model.RoleAllRounder, Team: "EN-U19", Points: 12, Price: 9.0, SelectedBy: 72.4, RecentPerformance: []float64{18, 9, 22, 12}},
			{ID: "p3", Name: "A French", Role: model.RoleBowler, Team: "EN-U19", Points: 13.5, Price: 8.5, SelectedBy: 85.7, RecentPerformance: []float64{11, 25, 8, 13.5}},
			{ID: "p4", Name: "S Morgan", Role: model.RoleBatsman, Team: "EN-U19", Points: 8, Price: 8.0, SelectedBy: 68.3},
			{ID: "p5", Name: "B Mayes", Role: model.RoleBowler, Team: "EN-U19", Points: 6, Price: 7.5, SelectedBy: 54.1},
			{ID: "p6", Name: "J Cox", Role: model.RoleWicketKeeper, Team: "EN-U19", Points: 5, Price: 8.0, SelectedBy: 61.9},
			{ID: "p7", Name: "H Ahmed", Role: model.RoleBowler, Team: "IN-U19", Points: 5, Price: 7.0, SelectedBy: 47.2},
			{ID: "p8", Name: "L Dickson", Role: model.RoleBatsman, Team: "EN-U19", Points: 4, Price: 7.5, SelectedBy: 39.8},
			{ID: "p9", Name: "R Patel", Role: model.RoleAllRounder, Team: "IN-U19", Points: 4, Price: 8.5, SelectedBy: 58.6},
			{ID: "p10", Name: "D Seales", Role: model.RoleBowler, Team: "IN-U19", Points: 4, Price: 7.0, SelectedBy: 33.4},
			{ID: "p11", Name: "N Khan", Role: model.RoleBatsman, Team: "IN-U19", Points: 4, Price: 7.5, SelectedBy: 44.7},
		},
	}
}

// SeedTeams returns every lineup the user entered into the contest. The
// first entry is the primary roster; the variants reuse most of it with
// different captaincy picks and a few substitutions.
func SeedTeams(contestID string) []model.Team {
	primary := SeedTeam(contestID)

	second := primary.Clone()
	second.ID = "team-2"
	second.Name = "T2"
	second.CaptainID = "p2"
	second.ViceCaptainID = "p3"
	second.Players = append(second.Players[:9:9],
		model.Player{ID: "p12", Name: "N Gilchrist", Role: model.RoleBowler, Team: "EN-U19", Points: 3.5, Price: 7.0, SelectedBy: 28.1},
		model.Player{ID: "p13", Name: "K Sharma", Role: model.RoleBatsman, Team: "IN-U19", Points: 3, Price: 7.0, SelectedBy: 21.5},
	)

	third := model.Team{
		ID:            "team-3",
		Name:          "T3",
		ContestID:     contestID,
		CaptainID:     "p4",
		ViceCaptainID: "p6",
		Players: []model.Player{
			primary.Players[0], // p1
			primary.Players[2], // p3
			primary.Players[3], // p4
			primary.Players[4], // p5
			primary.Players[5], // p6
			primary.Players[7], // p8
			primary.Players[9], // p10
			second.Players[9],  // p12
			second.Players[10], // p13
			{ID: "p14", Name: "M Rahman", Role: model.RoleAllRounder, Team: "IN-U19", Points: 2.5, Price: 7.5, SelectedBy: 17.9},
			{ID: "p15", Name: "O Kelsall", Role: model.RoleWicketKeeper, Team: "EN-U19", Points: 2, Price: 7.0, SelectedBy: 12.3},
		},
	}

	return []model.Team{primary, second, third}
}

// SeedMatch returns the starting scoreboard for the tracked fixture.
func SeedMatch() model.Match {
	return model.Match{
		ID:          "match-1",
		HomeTeam:    "IN-U19",
		AwayTeam:    "EN-U19",
		HomeScore:   "27-2",
		AwayScore:   "0-0",
		Status:      model.MatchLive,
		CurrentOver: 5,
		CurrentBall: 2,
		LastUpdate:  "Match in progress",
		Live:        true,
	}
}

// SeedContest returns the contest record for the given id.
func SeedContest(id string, now time.Time) model.Contest {
	return model.Contest{
		ID:            id,
		Name:          "Mega Contest",
		PrizePool:     1000000,
		EntryFee:      49,
		TotalSpots:    100000,
		FilledSpots:   98764,
		Live:          true,
		WinnerPayouts: []float64{100000, 50000, 25000},
		StartTime:     now.Add(-30 * time.Minute),
		EndTime:       now.Add(3 * time.Hour),
	}
}

// SeedDreamTeam returns the best-possible lineup baseline.
func SeedDreamTeam(now time.Time) model.DreamTeam {
	return model.DreamTeam{TotalPoints: 187.5, LastUpdated: now}
}

// liveUpdateTemplate seeds one commentary entry; effects reference the
// roster ids from SeedTeam.
type liveUpdateTemplate struct {
	kind    model.EventKind
	message string
	effects []model.PointsEffect
}

var liveUpdateTemplates = []liveUpdateTemplate{
	{kind: model.KindBoundary, message: "V Sooryavanshi drives through the covers for four", effects: []model.PointsEffect{{PlayerID: "p1", Points: 4}}},
	{kind: model.KindWicket, message: "A French strikes! Batsman caught behind", effects: []model.PointsEffect{{PlayerID: "p3", Points: 25}}},
	{kind: model.KindBoundary, message: "S Morgan clears the rope at long-on", effects: []model.PointsEffect{{PlayerID: "p4", Points: 6}}},
	{kind: model.KindMilestone, message: "T Rew brings up a composed fifty", effects: []model.PointsEffect{{PlayerID: "p2", Points: 8}}},
	{kind: model.KindPlayerPerformance, message: "B Mayes bowls a maiden over under pressure", effects: []model.PointsEffect{{PlayerID: "p5", Points: 4}}},
	{kind: model.KindWicket, message: "D Seales rattles the stumps with a yorker", effects: []model.PointsEffect{{PlayerID: "p10", Points: 25}}},
}
