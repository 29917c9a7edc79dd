package board

import (
	"errors"
	"testing"

	"github.com/okian/gully/internal/domain/model"
)

func rows(points ...float64) []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, len(points))
	for i, p := range points {
		out[i] = model.LeaderboardEntry{
			ID:       string(rune('a' + i)),
			Username: string(rune('A' + i)),
			Points:   p,
		}
	}
	return out
}

func TestReplaceRanksDescending(t *testing.T) {
	s := New()
	in := rows(52, 171.5, 120)
	if err := s.Replace(in); err != nil {
		t.Fatalf("replace: %v", err)
	}

	snap := s.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(snap))
	}
	for i, want := range []float64{171.5, 120, 52} {
		if snap[i].Points != want {
			t.Errorf("row %d: expected %.1f points, got %.1f", i, want, snap[i].Points)
		}
		if snap[i].Rank != i+1 {
			t.Errorf("row %d: expected rank %d, got %d", i, i+1, snap[i].Rank)
		}
	}
}

func TestReplaceIsFullReplacement(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		if err := s.Replace(rows(10, 20, 30, 40)); err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
		if s.Count() != 4 {
			t.Fatalf("refresh %d: expected 4 rows, got %d", i, s.Count())
		}
	}
}

func TestRankChangeAgainstPreviousSnapshot(t *testing.T) {
	s := New()
	if err := s.Replace(rows(30, 20, 10)); err != nil {
		t.Fatal(err)
	}
	// "c" jumps from rank 3 to rank 1.
	next := rows(30, 20, 10)
	next[2].Points = 99
	if err := s.Replace(next); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap[0].ID != "c" {
		t.Fatalf("expected c on top, got %s", snap[0].ID)
	}
	if snap[0].RankChange != 2 {
		t.Errorf("expected rank change +2 for climber, got %d", snap[0].RankChange)
	}
	if snap[1].RankChange != -1 {
		t.Errorf("expected rank change -1 for displaced row, got %d", snap[1].RankChange)
	}
}

func TestStableOrderForEqualPoints(t *testing.T) {
	s := New()
	if err := s.Replace(rows(50, 50, 50)); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	for i, want := range []string{"a", "b", "c"} {
		if snap[i].ID != want {
			t.Errorf("row %d: expected %s, got %s", i, want, snap[i].ID)
		}
	}
}

func TestCurrentUser(t *testing.T) {
	s := New()
	in := rows(10, 20)
	in[0].IsCurrentUser = true
	if err := s.Replace(in); err != nil {
		t.Fatal(err)
	}

	user, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.ID != "a" || user.Rank != 2 {
		t.Errorf("expected a at rank 2, got %s at rank %d", user.ID, user.Rank)
	}
}

func TestDuplicateCurrentUserRejected(t *testing.T) {
	s := New()
	in := rows(10, 20)
	in[0].IsCurrentUser = true
	in[1].IsCurrentUser = true
	if err := s.Replace(in); !errors.Is(err, ErrDuplicateCurrentUser) {
		t.Errorf("expected ErrDuplicateCurrentUser, got %v", err)
	}
}

func TestEmptyBoard(t *testing.T) {
	s := New()
	if _, err := s.Leader(); !errors.Is(err, ErrEmptyBoard) {
		t.Errorf("expected ErrEmptyBoard, got %v", err)
	}
	if _, err := s.CurrentUser(); !errors.Is(err, ErrNoCurrentUser) {
		t.Errorf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestTop(t *testing.T) {
	s := New()
	if err := s.Replace(rows(1, 2, 3, 4, 5)); err != nil {
		t.Fatal(err)
	}
	top := s.Top(3)
	if len(top) != 3 || top[0].Points != 5 {
		t.Errorf("expected top 3 led by 5 points, got %v", top)
	}
	if got := s.Top(99); len(got) != 5 {
		t.Errorf("expected clamped top, got %d rows", len(got))
	}
}
