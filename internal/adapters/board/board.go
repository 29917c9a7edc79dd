// Package board holds the contest leaderboard. Every refresh replaces the
// whole snapshot: rows are re-sorted, re-ranked from one, and diffed
// against the previous snapshot to produce per-row rank movement. Readers
// always see a complete, immutable snapshot.
package board

import (
	"sort"
	"sync/atomic"

	"github.com/okian/gully/internal/domain/model"
	"github.com/okian/gully/pkg/metrics"
)

// Snapshot is one immutable ranked view of the board.
type Snapshot struct {
	Rows []model.LeaderboardEntry
}

// Store keeps the current snapshot behind an atomic pointer so reads never
// block the refresh path.
type Store struct {
	snapshot atomic.Pointer[Snapshot]
}

// New creates an empty board.
func New() *Store {
	s := &Store{}
	s.snapshot.Store(&Snapshot{})
	return s
}

// Replace installs a fresh set of rows as the new snapshot. Rows are sorted
// by points descending (stable, so equal scores keep their sampling order),
// ranked from one with no gaps, and each row's rank movement is computed
// against the previous snapshot by entry id. At most one row may carry the
// current-user flag.
func (s *Store) Replace(rows []model.LeaderboardEntry) error {
	seenUser := false
	for i := range rows {
		if rows[i].IsCurrentUser {
			if seenUser {
				return ErrDuplicateCurrentUser
			}
			seenUser = true
		}
	}

	prev := s.snapshot.Load()
	prevRank := make(map[string]int, len(prev.Rows))
	for _, row := range prev.Rows {
		prevRank[row.ID] = row.Rank
	}

	ranked := make([]model.LeaderboardEntry, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
		if old, ok := prevRank[ranked[i].ID]; ok {
			// Positive movement means the row climbed.
			ranked[i].RankChange = old - ranked[i].Rank
		} else {
			ranked[i].RankChange = 0
		}
	}

	s.snapshot.Store(&Snapshot{Rows: ranked})
	metrics.RecordBoardRefresh()
	metrics.UpdateBoardEntries(len(ranked))
	return nil
}

// Snapshot returns a copy of the current ranked rows.
func (s *Store) Snapshot() []model.LeaderboardEntry {
	rows := s.snapshot.Load().Rows
	out := make([]model.LeaderboardEntry, len(rows))
	copy(out, rows)
	return out
}

// Top returns the first n ranked rows.
func (s *Store) Top(n int) []model.LeaderboardEntry {
	rows := s.snapshot.Load().Rows
	if n > len(rows) {
		n = len(rows)
	}
	if n < 0 {
		n = 0
	}
	out := make([]model.LeaderboardEntry, n)
	copy(out, rows[:n])
	return out
}

// Leader returns the top-ranked row.
func (s *Store) Leader() (model.LeaderboardEntry, error) {
	rows := s.snapshot.Load().Rows
	if len(rows) == 0 {
		return model.LeaderboardEntry{}, ErrEmptyBoard
	}
	return rows[0], nil
}

// CurrentUser returns the row flagged as the viewing user.
func (s *Store) CurrentUser() (model.LeaderboardEntry, error) {
	for _, row := range s.snapshot.Load().Rows {
		if row.IsCurrentUser {
			return row, nil
		}
	}
	return model.LeaderboardEntry{}, ErrNoCurrentUser
}

// Count returns the number of rows in the current snapshot.
func (s *Store) Count() int {
	return len(s.snapshot.Load().Rows)
}

// Clear drops every row.
func (s *Store) Clear() {
	s.snapshot.Store(&Snapshot{})
	metrics.UpdateBoardEntries(0)
}
