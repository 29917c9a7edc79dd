// Package model contains domain records passed between layers.
package model

import (
	"fmt"
	"time"
)

// EventKind enumerates the kinds of synthetic match events.
type EventKind string

// Event kinds.
const (
	KindWicket            EventKind = "wicket"
	KindBoundary          EventKind = "boundary"
	KindMilestone         EventKind = "milestone"
	KindRankChange        EventKind = "rank_change"
	KindPlayerPerformance EventKind = "player_performance"
)

// Polarity classifies an event's effect on the viewing user.
type Polarity string

// Polarity values.
const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
	Neutral  Polarity = "neutral"
)

// PolarityOf derives a polarity from a signed point delta. A zero delta is
// neutral; the caller may override for kinds with their own convention.
func PolarityOf(pointsChange float64) Polarity {
	switch {
	case pointsChange > 0:
		return Positive
	case pointsChange < 0:
		return Negative
	default:
		return Neutral
	}
}

// Event is a synthetic match event produced by the sampler.
type Event struct {
	ID           string    `json:"id"`
	Kind         EventKind `json:"kind"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	PointsChange float64   `json:"points_change"`
	RankChange   int       `json:"rank_change"`
	PlayerName   string    `json:"player_name,omitempty"`
	Polarity     Polarity  `json:"polarity"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks the event invariants: a rank_change event carries no point
// delta, and the polarity never contradicts the sign of a nonzero delta.
func (e Event) Validate() error {
	if e.Kind == KindRankChange && e.PointsChange != 0 {
		return fmt.Errorf("%w: rank_change event with points delta %v", ErrInconsistentEvent, e.PointsChange)
	}
	if e.PointsChange > 0 && e.Polarity == Negative {
		return fmt.Errorf("%w: positive delta marked negative", ErrInconsistentEvent)
	}
	if e.PointsChange < 0 && e.Polarity == Positive {
		return fmt.Errorf("%w: negative delta marked positive", ErrInconsistentEvent)
	}
	return nil
}

// Role is a cricket roster role. Every roster player maps to exactly one.
type Role string

// Recognized roster roles.
const (
	RoleWicketKeeper Role = "wicket-keeper"
	RoleBatsman      Role = "batsman"
	RoleAllRounder   Role = "all-rounder"
	RoleBowler       Role = "bowler"
)

// Valid reports whether r is one of the four recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleWicketKeeper, RoleBatsman, RoleAllRounder, RoleBowler:
		return true
	}
	return false
}

// Player is a selectable cricket player.
type Player struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Role              Role      `json:"role"`
	Team              string    `json:"team"`
	Points            float64   `json:"points"`
	Price             float64   `json:"price"`
	SelectedBy        float64   `json:"selected_by"`
	RecentPerformance []float64 `json:"recent_performance,omitempty"`
}

// Team is a user-selected roster of eleven players with a designated
// captain and vice-captain. Captain and vice-captain IDs must reference
// roster members.
type Team struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Players       []Player `json:"players"`
	CaptainID     string   `json:"captain_id"`
	ViceCaptainID string   `json:"vice_captain_id"`
	TotalPoints   float64  `json:"total_points"`
	Rank          int      `json:"rank"`
	ContestID     string   `json:"contest_id"`
}

// HasPlayer reports whether id references a roster member.
func (t Team) HasPlayer(id string) bool {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func (t Team) Clone() Team {
	out := t
	out.Players = make([]Player, len(t.Players))
	copy(out.Players, t.Players)
	for i := range out.Players {
		if rp := t.Players[i].RecentPerformance; rp != nil {
			out.Players[i].RecentPerformance = append([]float64(nil), rp...)
		}
	}
	return out
}

// LeaderboardEntry is one ranked row of the contest leaderboard.
// Rank is 1-based and unique within a snapshot; at most one entry carries
// the current-user flag.
type LeaderboardEntry struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	TeamName      string  `json:"team_name"`
	Points        float64 `json:"points"`
	Rank          int     `json:"rank"`
	RankChange    int     `json:"rank_change"`
	IsCurrentUser bool    `json:"is_current_user"`
}

// PointsSample is one point on the user-versus-leader trend line.
type PointsSample struct {
	At           time.Time `json:"at"`
	UserPoints   float64   `json:"user_points"`
	LeaderPoints float64   `json:"leader_points"`
	Event        string    `json:"event,omitempty"`
	RankChange   int       `json:"rank_change,omitempty"`
	Explanation  string    `json:"explanation,omitempty"`
}

// MatchStatus enumerates the lifecycle of a match.
type MatchStatus string

// Match statuses.
const (
	MatchLive      MatchStatus = "live"
	MatchUpcoming  MatchStatus = "upcoming"
	MatchCompleted MatchStatus = "completed"
)

// Match is the live scoreboard state for the fixture the contest tracks.
type Match struct {
	ID          string      `json:"id"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	HomeScore   string      `json:"home_score"`
	AwayScore   string      `json:"away_score"`
	Status      MatchStatus `json:"status"`
	CurrentOver int         `json:"current_over"`
	CurrentBall int         `json:"current_ball"`
	LastUpdate  string      `json:"last_update"`
	Live        bool        `json:"live"`
}

// PointsEffect records a per-player point delta attached to a live update.
type PointsEffect struct {
	PlayerID string  `json:"player_id"`
	Points   float64 `json:"points"`
}

// LiveUpdate is one entry of the chronological commentary feed.
type LiveUpdate struct {
	ID        string         `json:"id"`
	Kind      EventKind      `json:"kind"`
	Message   string         `json:"message"`
	Effects   []PointsEffect `json:"effects,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// PlayerTag marks a delta-feed player's scoring role.
type PlayerTag string

// Delta-feed role tags.
const (
	TagCaptain     PlayerTag = "C"
	TagViceCaptain PlayerTag = "VC"
	TagRegular     PlayerTag = "Regular"
)

// DeltaEvent is one entry of the live delta-tracker feed. Point deltas are
// already multiplied for the captain tag; the rank delta sign always agrees
// with the positivity flag.
type DeltaEvent struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	PointsChange float64   `json:"points_change"`
	RankChange   int       `json:"rank_change"`
	PlayerName   string    `json:"player_name"`
	PlayerTag    PlayerTag `json:"player_tag"`
	Positive     bool      `json:"positive"`
	CreatedAt    time.Time `json:"created_at"`
}

// RankShift explains one rank movement in ownership terms.
type RankShift struct {
	ID              string    `json:"id"`
	Kind            EventKind `json:"kind"`
	PlayerName      string    `json:"player_name"`
	PlayerTeam      string    `json:"player_team"`
	Description     string    `json:"description"`
	PointsGained    float64   `json:"points_gained"`
	OldRank         int       `json:"old_rank"`
	NewRank         int       `json:"new_rank"`
	PlayersAffected int       `json:"players_affected"`
	OwnershipPct    float64   `json:"ownership_pct"`
	Overtaken       int       `json:"overtaken"`
	Positive        bool      `json:"positive"`
	CreatedAt       time.Time `json:"created_at"`
}

// Notification wraps an event with its read flag. Dismissal removes the
// record entirely rather than toggling state.
type Notification struct {
	Event Event `json:"event"`
	Read  bool  `json:"read"`
}

// Contest is the fantasy pool the user has entered.
type Contest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PrizePool     float64   `json:"prize_pool"`
	EntryFee      float64   `json:"entry_fee"`
	TotalSpots    int       `json:"total_spots"`
	FilledSpots   int       `json:"filled_spots"`
	Live          bool      `json:"live"`
	WinnerPayouts []float64 `json:"winner_payouts,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// DreamTeam is the best-possible lineup baseline shown for comparison.
type DreamTeam struct {
	Players     []Player  `json:"players,omitempty"`
	TotalPoints float64   `json:"total_points"`
	LastUpdated time.Time `json:"last_updated"`
}
