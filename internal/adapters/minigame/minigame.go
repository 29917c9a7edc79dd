// Package minigame runs the engagement games alongside the contest: timed
// quizzes with an answer key and open predictions resolved when their
// window closes. Correct answers earn bonus points and extend the streak;
// a timeout scores as a wrong answer.
package minigame

import (
	"math/rand"
	"sync"
	"time"

	"github.com/okian/gully/pkg/metrics"
)

// Outcome classifies how a game round ended.
type Outcome string

// Round outcomes.
const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeExpired Outcome = "expired"
)

const defaultSeed = 42

// Result reports how a round resolved.
type Result struct {
	GameID  string  `json:"game_id"`
	Outcome Outcome `json:"outcome"`
	Reward  float64 `json:"reward"`
	Correct int     `json:"correct_option"`
}

// Stats is the running score across all rounds.
type Stats struct {
	Earnings   float64 `json:"earnings"`
	Streak     int     `json:"streak"`
	BestStreak int     `json:"best_streak"`
	Answered   int     `json:"answered"`
	Correct    int     `json:"correct"`
}

// activeRound tracks one in-flight quiz or prediction.
type activeRound struct {
	id       string
	deadline time.Time
	choice   int
	answered bool
}

// Hub owns the game state. One quiz and one prediction may run at a time.
type Hub struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time

	quizIdx    int
	predictIdx int
	quiz       *activeRound
	prediction *activeRound

	stats Stats
}

// New creates a hub with the configuration options applied.
func New(opts ...Option) *Hub {
	h := &Hub{
		rng: rand.New(rand.NewSource(defaultSeed)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// StartQuiz opens the next quiz round. Only one quiz runs at a time.
func (h *Hub) StartQuiz() (Quiz, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.quiz != nil {
		return Quiz{}, ErrRoundActive
	}
	q := quizCatalog[h.quizIdx%len(quizCatalog)]
	h.quizIdx++
	h.quiz = &activeRound{
		id:       q.ID,
		deadline: h.now().Add(time.Duration(q.TimeLimit) * time.Second),
	}
	return q, nil
}

// AnswerQuiz scores the active quiz round. An answer after the deadline
// counts as wrong, same as never answering.
func (h *Hub) AnswerQuiz(quizID string, option int) (Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.quiz == nil || h.quiz.id != quizID {
		return Result{}, ErrNoActiveRound
	}
	q := quizByID(quizID)
	correct := quizAnswers[quizID]
	defer func() { h.quiz = nil }()

	if h.now().After(h.quiz.deadline) {
		h.score(false)
		metrics.RecordQuizAnswer(string(OutcomeExpired))
		return Result{GameID: quizID, Outcome: OutcomeExpired, Correct: correct}, nil
	}
	if option == correct {
		h.score(true)
		h.stats.Earnings += q.Reward
		metrics.RecordQuizAnswer(string(OutcomeCorrect))
		metrics.UpdateMinigameEarnings(h.stats.Earnings)
		return Result{GameID: quizID, Outcome: OutcomeCorrect, Reward: q.Reward, Correct: correct}, nil
	}
	h.score(false)
	metrics.RecordQuizAnswer(string(OutcomeWrong))
	return Result{GameID: quizID, Outcome: OutcomeWrong, Correct: correct}, nil
}

// StartPrediction opens the next prediction round. Only one runs at a time.
func (h *Hub) StartPrediction() (Prediction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.prediction != nil {
		return Prediction{}, ErrRoundActive
	}
	p := predictionCatalog[h.predictIdx%len(predictionCatalog)]
	h.predictIdx++
	h.prediction = &activeRound{
		id:       p.ID,
		deadline: h.now().Add(time.Duration(p.Window) * time.Second),
		choice:   -1,
	}
	return p, nil
}

// AnswerPrediction locks in a choice for the open prediction. The round
// resolves when its window closes, not on submission.
func (h *Hub) AnswerPrediction(predictionID string, option int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.prediction == nil || h.prediction.id != predictionID {
		return ErrNoActiveRound
	}
	p := predictionByID(predictionID)
	if option < 0 || option >= len(p.Options) {
		return ErrInvalidOption
	}
	if h.now().After(h.prediction.deadline) {
		return ErrRoundClosed
	}
	h.prediction.choice = option
	h.prediction.answered = true
	return nil
}

// Sweep expires overdue rounds. An unanswered quiz scores as wrong; a
// closed prediction window resolves against a sampled outcome. The session
// calls this from its sweep ticker.
func (h *Hub) Sweep() []Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	var results []Result

	if h.quiz != nil && now.After(h.quiz.deadline) {
		correct := quizAnswers[h.quiz.id]
		h.score(false)
		metrics.RecordQuizAnswer(string(OutcomeExpired))
		results = append(results, Result{GameID: h.quiz.id, Outcome: OutcomeExpired, Correct: correct})
		h.quiz = nil
	}

	if h.prediction != nil && now.After(h.prediction.deadline) {
		p := predictionByID(h.prediction.id)
		outcome := h.rng.Intn(len(p.Options))
		res := Result{GameID: p.ID, Correct: outcome}
		switch {
		case !h.prediction.answered:
			h.score(false)
			res.Outcome = OutcomeExpired
			metrics.RecordPredictionAnswer(string(OutcomeExpired))
		case h.prediction.choice == outcome:
			h.score(true)
			h.stats.Earnings += p.Reward
			res.Outcome = OutcomeCorrect
			res.Reward = p.Reward
			metrics.RecordPredictionAnswer(string(OutcomeCorrect))
			metrics.UpdateMinigameEarnings(h.stats.Earnings)
		default:
			h.score(false)
			res.Outcome = OutcomeWrong
			metrics.RecordPredictionAnswer(string(OutcomeWrong))
		}
		results = append(results, res)
		h.prediction = nil
	}
	return results
}

// Stats returns a copy of the running score.
func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// Reset drops all game state and the running score.
func (h *Hub) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.quiz = nil
	h.prediction = nil
	h.quizIdx = 0
	h.predictIdx = 0
	h.stats = Stats{}
	metrics.UpdateMinigameEarnings(0)
}

// score updates the answered/correct counters and the streak. Callers hold
// the lock.
func (h *Hub) score(correct bool) {
	h.stats.Answered++
	if correct {
		h.stats.Correct++
		h.stats.Streak++
		if h.stats.Streak > h.stats.BestStreak {
			h.stats.BestStreak = h.stats.Streak
		}
		return
	}
	h.stats.Streak = 0
}

func quizByID(id string) Quiz {
	for _, q := range quizCatalog {
		if q.ID == id {
			return q
		}
	}
	return Quiz{}
}

func predictionByID(id string) Prediction {
	for _, p := range predictionCatalog {
		if p.ID == id {
			return p
		}
	}
	return Prediction{}
}
