// Package sampler produces the synthetic contest data every feed is fed
// from: match events, delta-tracker entries, leaderboard rows, scoreboard
// progress, trend samples, and explained rank shifts. All randomness flows
// through a single injected source so a fixed seed replays a session
// exactly.
package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/okian/gully/internal/domain/model"
)

const (
	defaultSeed        = 42
	defaultBoardSize   = 10
	defaultCaptainMult = 2.0

	// Probability knobs for the optional trend-sample annotations and the
	// negative branch of the delta feed.
	deltaNegativeProbability = 0.2
	trendEventProbability    = 0.2
	trendRankProbability     = 0.4
	trendExplainProbability  = 0.2
	wicketProbability        = 0.05
)

// Sampler draws synthetic contest data from the static catalogs. It is not
// safe for concurrent use; the session serializes all calls.
type Sampler struct {
	rng         *rand.Rand
	faker       *gofakeit.Faker
	now         func() time.Time
	boardSize   int
	captainMult float64
	entrants    []boardEntrant
}

// New builds a sampler with the given options applied over the defaults.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		rng:         rand.New(rand.NewSource(defaultSeed)),
		now:         time.Now,
		boardSize:   defaultBoardSize,
		captainMult: defaultCaptainMult,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.faker == nil {
		s.faker = gofakeit.New(defaultSeed)
	}
	s.entrants = s.buildEntrants()
	return s
}

// buildEntrants tops the fixed seeds up to the configured board size with
// generated usernames. Entrant identity is fixed for the sampler's
// lifetime; only points move between refreshes.
func (s *Sampler) buildEntrants() []boardEntrant {
	entrants := make([]boardEntrant, 0, s.boardSize)
	for i := 0; i < len(boardSeeds) && i < s.boardSize; i++ {
		entrants = append(entrants, boardSeeds[i])
	}
	for i := len(entrants); i < s.boardSize; i++ {
		entrants = append(entrants, boardEntrant{
			username:   s.faker.Username(),
			teamName:   fmt.Sprintf("T%d", 1+s.rng.Intn(3)),
			basePoints: 60 + s.rng.Float64()*80,
			jitter:     25,
		})
	}
	return entrants
}

// MatchEvent draws one match-event notification from the bucket catalog.
// Rank-change events carry a zero point delta and a signed rank delta; all
// other kinds carry a point delta inside the bucket's range.
func (s *Sampler) MatchEvent() model.Event {
	b := matchEventBuckets[s.rng.Intn(len(matchEventBuckets))]
	var pts float64
	if b.maxPts > 0 {
		pts = float64(b.minPts + s.rng.Intn(b.maxPts-b.minPts+1))
	}
	var rankDelta int
	if b.kind == model.KindRankChange {
		rankDelta = s.rng.Intn(21) - 10
	}
	return model.Event{
		ID:           uuid.NewString(),
		Kind:         b.kind,
		Title:        b.titles[s.rng.Intn(len(b.titles))],
		Message:      b.messages[s.rng.Intn(len(b.messages))],
		PointsChange: pts,
		RankChange:   rankDelta,
		PlayerName:   eventPlayers[s.rng.Intn(len(eventPlayers))],
		Polarity:     b.polarity,
		CreatedAt:    s.now(),
	}
}

// Delta draws one delta-tracker entry. A positive action gains points and
// rank together, with the captain's points doubled; a negative action zeroes
// the point delta and drops rank, so the two signs never disagree.
func (s *Sampler) Delta() model.DeltaEvent {
	p := deltaPlayers[s.rng.Intn(len(deltaPlayers))]
	d := model.DeltaEvent{
		ID:         uuid.NewString(),
		PlayerName: p.name,
		PlayerTag:  p.tag,
		CreatedAt:  s.now(),
	}
	if s.rng.Float64() < deltaNegativeProbability {
		action := deltaNegativeActions[s.rng.Intn(len(deltaNegativeActions))]
		d.Description = fmt.Sprintf("%s %s", p.name, action)
		d.RankChange = -(1 + s.rng.Intn(8))
		return d
	}
	action := deltaPositiveActions[s.rng.Intn(len(deltaPositiveActions))]
	d.Description = fmt.Sprintf("%s %s", p.name, action)
	d.PointsChange = float64(1 + s.rng.Intn(30))
	if p.tag == model.TagCaptain {
		d.PointsChange *= s.captainMult
	}
	d.RankChange = 1 + s.rng.Intn(15)
	d.Positive = true
	return d
}

// Board samples a fresh unranked snapshot of every entrant. Points are the
// entrant's base plus jitter rounded to the half point; ranking is the
// board store's job, so Rank and RankChange come back zero.
func (s *Sampler) Board() []model.LeaderboardEntry {
	rows := make([]model.LeaderboardEntry, len(s.entrants))
	for i, e := range s.entrants {
		pts := e.basePoints + s.rng.Float64()*float64(e.jitter)
		rows[i] = model.LeaderboardEntry{
			ID:            fmt.Sprintf("entrant-%d", i+1),
			Username:      e.username,
			TeamName:      e.teamName,
			Points:        math.Round(pts*2) / 2,
			IsCurrentUser: e.currentUser,
		}
	}
	return rows
}

// Match advances the scoreboard one delivery: the ball counter rolls over
// into the over, runs land on the batting side, and the occasional wicket
// falls.
func (s *Sampler) Match(prev model.Match) model.Match {
	m := prev
	m.CurrentBall++
	if m.CurrentBall > 5 {
		m.CurrentBall = 0
		m.CurrentOver++
	}
	var runs, wickets int
	if err := parseScore(m.HomeScore, &runs, &wickets); err == nil {
		delivery := s.rng.Intn(7)
		runs += delivery
		switch {
		case s.rng.Float64() < wicketProbability:
			wickets++
			m.LastUpdate = "Wicket falls!"
		case delivery >= 4:
			m.LastUpdate = fmt.Sprintf("%d runs off the last ball", delivery)
		case delivery == 0:
			m.LastUpdate = "Dot ball"
		default:
			m.LastUpdate = fmt.Sprintf("%d run(s) taken", delivery)
		}
		m.HomeScore = fmt.Sprintf("%d-%d", runs, wickets)
	}
	return m
}

func parseScore(score string, runs, wickets *int) error {
	_, err := fmt.Sscanf(score, "%d-%d", runs, wickets)
	return err
}

// PointsSample draws one trend-line point. The user's line is a slow sine
// over the session's elapsed time with jitter on top; annotations attach
// probabilistically.
func (s *Sampler) PointsSample(elapsed time.Duration, leaderPoints float64) model.PointsSample {
	base := boardSeeds[0].basePoints
	user := base + math.Sin(elapsed.Seconds()/10)*20 + s.rng.Float64()*10 - 5
	if user < 0 {
		user = 0
	}
	p := model.PointsSample{
		At:           s.now(),
		UserPoints:   math.Round(user*10) / 10,
		LeaderPoints: leaderPoints,
	}
	if s.rng.Float64() < trendEventProbability {
		p.Event = trendEvents[s.rng.Intn(len(trendEvents))]
	}
	if s.rng.Float64() < trendRankProbability {
		p.RankChange = s.rng.Intn(21) - 10
	}
	if s.rng.Float64() < trendExplainProbability {
		p.Explanation = trendExplanations[s.rng.Intn(len(trendExplanations))]
	}
	return p
}

// RankShift draws one explained rank movement relative to the given current
// rank. Positive templates improve the rank, negative ones worsen it, and
// the resulting rank never leaves the positive range.
func (s *Sampler) RankShift(currentRank int) model.RankShift {
	t := shiftTemplates[s.rng.Intn(len(shiftTemplates))]
	shift := model.RankShift{
		ID:              uuid.NewString(),
		Kind:            t.kind,
		PlayerName:      t.player,
		PlayerTeam:      t.team,
		Description:     fmt.Sprintf("%s %s", t.player, t.description),
		PointsGained:    float64(10 + s.rng.Intn(41)),
		OldRank:         currentRank,
		PlayersAffected: 1000 + s.rng.Intn(9000),
		OwnershipPct:    t.ownership,
		Overtaken:       100 + s.rng.Intn(2000),
		Positive:        t.positive,
		CreatedAt:       s.now(),
	}
	move := 50 + s.rng.Intn(500)
	if t.positive {
		shift.NewRank = currentRank - move
		if shift.NewRank < 1 {
			shift.NewRank = 1
		}
	} else {
		shift.NewRank = currentRank + move
	}
	return shift
}

// Update draws one commentary-feed entry from the live-update templates.
func (s *Sampler) Update() model.LiveUpdate {
	t := liveUpdateTemplates[s.rng.Intn(len(liveUpdateTemplates))]
	effects := make([]model.PointsEffect, len(t.effects))
	copy(effects, t.effects)
	return model.LiveUpdate{
		ID:        uuid.NewString(),
		Kind:      t.kind,
		Message:   t.message,
		Effects:   effects,
		CreatedAt: s.now(),
	}
}
