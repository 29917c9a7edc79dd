// Package aggregate computes the derived numbers the contest view shows:
// leader gaps, percentiles, multiplied team totals, formation breakdowns,
// and lineup comparisons. Everything here is pure computation over domain
// records.
package aggregate

import (
	"fmt"

	"github.com/okian/gully/internal/domain/model"
)

// Default multiplier constants.
const (
	defaultCaptainMultiplier     = 2.0
	defaultViceCaptainMultiplier = 1.5
	percentScale                 = 100
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithMultipliers sets the captain and vice-captain point multipliers.
func WithMultipliers(captain, vice float64) Option {
	return func(c *Calculator) {
		if captain > 0 && vice > 0 {
			c.captainMult = captain
			c.viceMult = vice
		}
	}
}

// Calculator carries the multiplier configuration for team totals. The
// zero-configuration calculator uses the standard captain 2x / vice 1.5x
// scheme.
type Calculator struct {
	captainMult float64
	viceMult    float64
}

// New creates a calculator with the configuration options applied.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		captainMult: defaultCaptainMultiplier,
		viceMult:    defaultViceCaptainMultiplier,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TeamTotalPoints sums the roster's points with the captain and
// vice-captain multipliers applied. The captain and vice-captain must be
// distinct roster members.
func (c *Calculator) TeamTotalPoints(team model.Team) (float64, error) {
	if len(team.Players) == 0 {
		return 0, fmt.Errorf("%w: empty roster", ErrInvalidRoster)
	}
	if team.CaptainID == team.ViceCaptainID {
		return 0, fmt.Errorf("%w: captain and vice-captain are the same player", ErrInvalidRoster)
	}
	if !team.HasPlayer(team.CaptainID) {
		return 0, fmt.Errorf("%w: captain %q not in roster", ErrInvalidRoster, team.CaptainID)
	}
	if !team.HasPlayer(team.ViceCaptainID) {
		return 0, fmt.Errorf("%w: vice-captain %q not in roster", ErrInvalidRoster, team.ViceCaptainID)
	}

	var total float64
	for i := range team.Players {
		p := &team.Players[i]
		switch p.ID {
		case team.CaptainID:
			total += p.Points * c.captainMult
		case team.ViceCaptainID:
			total += p.Points * c.viceMult
		default:
			total += p.Points
		}
	}
	return total, nil
}

// LeaderPoints returns the highest point total on the board, or the
// fallback when the board is empty.
func LeaderPoints(board []model.LeaderboardEntry, fallback float64) float64 {
	if len(board) == 0 {
		return fallback
	}
	leader := board[0].Points
	for _, row := range board[1:] {
		if row.Points > leader {
			leader = row.Points
		}
	}
	return leader
}

// PointsDifference returns how far the user trails the leader. A negative
// result means the user leads.
func PointsDifference(userPoints, leaderPoints float64) float64 {
	return leaderPoints - userPoints
}

// RankPercentile returns the share of participants ranked below the given
// 1-based rank. Rank 1 of 100 is the 99th percentile; last place is the
// 0th.
func RankPercentile(rank, total int) (float64, error) {
	if total <= 0 {
		return 0, ErrNoParticipants
	}
	if rank < 1 || rank > total {
		return 0, fmt.Errorf("%w: rank %d of %d", ErrNoParticipants, rank, total)
	}
	return float64(total-rank) / float64(total) * percentScale, nil
}

// PerformancePercentage returns the user's points as a share of the
// leader's.
func PerformancePercentage(userPoints, leaderPoints float64) (float64, error) {
	if leaderPoints == 0 {
		return 0, ErrZeroLeaderPoints
	}
	return userPoints / leaderPoints * percentScale, nil
}

// BestEntry returns the highest-scoring row of the board.
func BestEntry(board []model.LeaderboardEntry) (model.LeaderboardEntry, error) {
	if len(board) == 0 {
		return model.LeaderboardEntry{}, ErrNoParticipants
	}
	best := board[0]
	for _, row := range board[1:] {
		if row.Points > best.Points {
			best = row
		}
	}
	return best, nil
}

// WorstEntry returns the lowest-scoring row of the board.
func WorstEntry(board []model.LeaderboardEntry) (model.LeaderboardEntry, error) {
	if len(board) == 0 {
		return model.LeaderboardEntry{}, ErrNoParticipants
	}
	worst := board[0]
	for _, row := range board[1:] {
		if row.Points < worst.Points {
			worst = row
		}
	}
	return worst, nil
}

// TopPerformer returns the roster player with the most points.
func TopPerformer(team model.Team) (model.Player, error) {
	if len(team.Players) == 0 {
		return model.Player{}, fmt.Errorf("%w: empty roster", ErrInvalidRoster)
	}
	top := team.Players[0]
	for _, p := range team.Players[1:] {
		if p.Points > top.Points {
			top = p
		}
	}
	return top, nil
}

// FormationCounts tallies the roster by role. Every recognized role appears
// in the result, including roles no player fills.
func FormationCounts(team model.Team) (map[model.Role]int, error) {
	counts := map[model.Role]int{
		model.RoleWicketKeeper: 0,
		model.RoleBatsman:      0,
		model.RoleAllRounder:   0,
		model.RoleBowler:       0,
	}
	for i := range team.Players {
		role := team.Players[i].Role
		if !role.Valid() {
			return nil, fmt.Errorf("%w: %q on player %q", ErrUnknownRole, role, team.Players[i].Name)
		}
		counts[role]++
	}
	return counts, nil
}

// LineupOverlap returns the percentage of a's roster also present in b,
// matched by player id.
func LineupOverlap(a, b model.Team) float64 {
	if len(a.Players) == 0 {
		return 0
	}
	shared := 0
	for i := range a.Players {
		if b.HasPlayer(a.Players[i].ID) {
			shared++
		}
	}
	return float64(shared) / float64(len(a.Players)) * percentScale
}
