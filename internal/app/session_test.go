package session

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gully/internal/domain/model"
	"github.com/okian/gully/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newTestSession(opts ...Option) *Session {
	base := []Option{
		WithSeed(42),
		WithIntervals(10*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, 5*time.Millisecond),
		WithSkipProbability(0),
	}
	return New(append(base, opts...)...)
}

func TestSessionLifecycle(t *testing.T) {
	Convey("Given a configured session", t, func() {
		ctx := context.Background()
		s := newTestSession()

		Convey("When the session starts", func() {
			So(s.Start(ctx), ShouldBeNil)
			defer s.Stop()

			Convey("Then the board is seeded immediately", func() {
				rows := s.Board(0)
				So(rows, ShouldHaveLength, 10)
				So(rows[0].Rank, ShouldEqual, 1)
			})

			Convey("Then starting again is a no-op", func() {
				So(s.Start(ctx), ShouldBeNil)
			})

			Convey("Then the feeds fill as the loops tick", func() {
				time.Sleep(200 * time.Millisecond)
				So(s.Trend(), ShouldNotBeEmpty)
				So(s.Deltas(), ShouldNotBeEmpty)
				So(s.Updates(), ShouldNotBeEmpty)
				So(s.Notifications(), ShouldNotBeEmpty)
			})
		})

		Convey("When the session is stopped", func() {
			So(s.Start(ctx), ShouldBeNil)
			time.Sleep(50 * time.Millisecond)
			s.Stop()
			count := len(s.Trend())

			Convey("Then the last snapshots stay readable and frozen", func() {
				time.Sleep(50 * time.Millisecond)
				So(len(s.Trend()), ShouldEqual, count)
				So(s.Board(0), ShouldHaveLength, 10)
			})

			Convey("Then stopping twice is safe", func() {
				s.Stop()
			})
		})
	})
}

func TestSessionSummary(t *testing.T) {
	Convey("Given a started session", t, func() {
		ctx := context.Background()
		s := newTestSession()
		So(s.Start(ctx), ShouldBeNil)
		defer s.Stop()

		Convey("When the summary is computed", func() {
			sum, err := s.Summary()

			Convey("Then the multiplied roster total is reported", func() {
				So(err, ShouldBeNil)
				So(sum.TeamPoints, ShouldEqual, 152.5)
			})

			Convey("Then the user never beats the reported leader", func() {
				So(err, ShouldBeNil)
				So(sum.UserPoints, ShouldBeLessThanOrEqualTo, sum.LeaderPoints)
				So(sum.PointsBehind, ShouldEqual, sum.LeaderPoints-sum.UserPoints)
				So(sum.UserRank, ShouldBeGreaterThanOrEqualTo, 1)
			})
		})
	})
}

func TestSessionTeamSelection(t *testing.T) {
	Convey("Given a started session with several lineups", t, func() {
		ctx := context.Background()
		s := newTestSession()
		So(s.Start(ctx), ShouldBeNil)
		defer s.Stop()

		So(s.Teams(), ShouldHaveLength, 3)
		So(s.Team().ID, ShouldEqual, "team-1")

		Convey("When a different lineup is selected", func() {
			So(s.SelectTeam("team-2"), ShouldBeNil)

			Convey("Then the team view and summary follow it", func() {
				So(s.Team().ID, ShouldEqual, "team-2")
				sum, err := s.Summary()
				So(err, ShouldBeNil)
				So(sum.TeamPoints, ShouldEqual, 123.25)
			})

			Convey("Then overlaps are measured against the new selection", func() {
				overlaps := s.TeamOverlaps()
				So(overlaps, ShouldHaveLength, 3)
				for _, o := range overlaps {
					if o.Selected {
						So(o.TeamID, ShouldEqual, "team-2")
						So(o.OverlapPct, ShouldEqual, 100)
					} else {
						So(o.OverlapPct, ShouldBeBetween, 0, 100)
					}
				}
			})
		})

		Convey("When an unknown lineup is selected", func() {
			err := s.SelectTeam("team-99")

			Convey("Then it is rejected and the selection stands", func() {
				So(errors.Is(err, ErrUnknownTeam), ShouldBeTrue)
				So(s.Team().ID, ShouldEqual, "team-1")
			})
		})
	})
}

func TestSessionReset(t *testing.T) {
	Convey("Given a session that has been running", t, func() {
		ctx := context.Background()
		s := newTestSession()

		Convey("When reset is requested before start", func() {
			err := s.Reset(ctx, "")

			Convey("Then it is rejected", func() {
				So(errors.Is(err, ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When the session runs and then resets to a new contest", func() {
			So(s.Start(ctx), ShouldBeNil)
			defer s.Stop()
			time.Sleep(100 * time.Millisecond)
			So(s.Trend(), ShouldNotBeEmpty)

			So(s.Reset(ctx, "contest-2"), ShouldBeNil)

			Convey("Then the feeds are cleared and the contest switches", func() {
				So(s.Contest().ID, ShouldEqual, "contest-2")
				So(s.Team().ContestID, ShouldEqual, "contest-2")
				So(s.Board(0), ShouldHaveLength, 10)
			})
		})
	})
}

func TestSessionTeamAnalytics(t *testing.T) {
	Convey("Given a started session", t, func() {
		ctx := context.Background()
		s := newTestSession()
		So(s.Start(ctx), ShouldBeNil)
		defer s.Stop()

		Convey("When analytics are computed for the primary lineup", func() {
			a, err := s.TeamAnalytics()

			Convey("Then the top performer and formation follow the roster", func() {
				So(err, ShouldBeNil)
				So(a.TopPerformer.Name, ShouldEqual, "V Sooryavanshi")
				So(a.Formation[model.RoleWicketKeeper], ShouldEqual, 1)
				So(a.Formation[model.RoleBatsman], ShouldEqual, 4)
				So(a.Formation[model.RoleAllRounder], ShouldEqual, 2)
				So(a.Formation[model.RoleBowler], ShouldEqual, 4)
			})

			Convey("Then the board extremes bracket every row", func() {
				So(err, ShouldBeNil)
				So(a.BestEntry.Rank, ShouldEqual, 1)
				So(a.BestEntry.Points, ShouldBeGreaterThanOrEqualTo, a.WorstEntry.Points)
			})
		})
	})
}

func TestSessionRepeatedResetWhileTicking(t *testing.T) {
	Convey("Given a running session reset repeatedly under the tickers", t, func() {
		ctx := context.Background()
		s := newTestSession()
		So(s.Start(ctx), ShouldBeNil)
		defer s.Stop()

		for i := 0; i < 50; i++ {
			So(s.Reset(ctx, ""), ShouldBeNil)
			time.Sleep(time.Millisecond)
		}

		Convey("Then the session keeps serving consistent snapshots", func() {
			So(s.Board(0), ShouldHaveLength, 10)
			So(s.Contest().ID, ShouldEqual, "contest-1")
		})
	})
}

func TestSessionIntents(t *testing.T) {
	Convey("Given a started session with a notification", t, func() {
		ctx := context.Background()
		s := newTestSession()
		So(s.Start(ctx), ShouldBeNil)
		defer s.Stop()

		deadline := time.Now().Add(2 * time.Second)
		for len(s.Notifications()) == 0 && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		notifs := s.Notifications()
		So(notifs, ShouldNotBeEmpty)
		id := notifs[0].Event.ID

		Convey("When the notification is read and dismissed", func() {
			So(s.MarkNotificationRead(id), ShouldBeNil)
			So(s.DismissNotification(id), ShouldBeNil)

			Convey("Then it cannot be touched again", func() {
				So(s.MarkNotificationRead(id), ShouldNotBeNil)
			})
		})

		Convey("When a quiz round is played", func() {
			q, err := s.StartQuiz()
			So(err, ShouldBeNil)

			res, err := s.AnswerQuiz(q.ID, 0)
			So(err, ShouldBeNil)

			Convey("Then the running score reflects the round", func() {
				So(res.GameID, ShouldEqual, q.ID)
				So(s.GameStats().Answered, ShouldEqual, 1)
			})
		})
	})
}
