package sampler

import "github.com/okian/gully/internal/domain/model"

// eventBucket describes one kind of synthetic match event: its title and
// message variants, its declared polarity, and its inclusive point range.
type eventBucket struct {
	kind     model.EventKind
	titles   []string
	messages []string
	polarity model.Polarity
	minPts   int
	maxPts   int
}

// matchEventBuckets is the static catalog the sampler draws match events
// from. Rank-change events always carry a zero point delta regardless of
// the declared range.
var matchEventBuckets = []eventBucket{
	{
		kind:     model.KindBoundary,
		titles:   []string{"Boundary Scored!", "Four Runs!", "Great Shot!"},
		messages: []string{"Your player just hit a boundary", "Excellent batting performance", "Points added to your total"},
		polarity: model.Positive,
		minPts:   4,
		maxPts:   6,
	},
	{
		kind:     model.KindWicket,
		titles:   []string{"Wicket Taken!", "Great Bowling!", "Player Out!"},
		messages: []string{"Your bowler took a wicket", "Excellent bowling performance", "Your batsman got out"},
		polarity: model.Positive,
		minPts:   25,
		maxPts:   50,
	},
	{
		kind:     model.KindMilestone,
		titles:   []string{"Fifty Up!", "Milestone Reached!", "Big Partnership!"},
		messages: []string{"Your batsman brought up a milestone", "A key partnership is building", "Bonus points credited"},
		polarity: model.Positive,
		minPts:   8,
		maxPts:   20,
	},
	{
		kind:     model.KindPlayerPerformance,
		titles:   []string{"On Fire!", "Player Performing!", "Form Watch!"},
		messages: []string{"Your pick is outperforming the field", "Strong all-round contribution", "Performance bonus applied"},
		polarity: model.Positive,
		minPts:   5,
		maxPts:   15,
	},
	{
		kind:     model.KindRankChange,
		titles:   []string{"Rank Update!", "Position Changed!", "Leaderboard Move!"},
		messages: []string{"Your rank has improved", "You moved up in the leaderboard", "Your rank has dropped"},
		polarity: model.Neutral,
		minPts:   0,
		maxPts:   0,
	},
}

// eventPlayers is the fixed roster match events reference.
var eventPlayers = []string{"V Sooryavanshi", "A French", "T Rew", "S Morgan"}

// deltaPlayer pairs a player with the scoring role tag used by the
// delta-tracker feed.
type deltaPlayer struct {
	name string
	tag  model.PlayerTag
}

var deltaPlayers = []deltaPlayer{
	{name: "V Sooryavanshi", tag: model.TagCaptain},
	{name: "A French", tag: model.TagRegular},
	{name: "T Rew", tag: model.TagViceCaptain},
	{name: "S Morgan", tag: model.TagRegular},
	{name: "B Mayes", tag: model.TagRegular},
}

// Delta-feed action catalogs. Negative actions zero the point delta and
// drop the rank; everything else gains points and rank together.
var (
	deltaPositiveActions = []string{
		"scores boundary", "takes wicket", "hits six", "completes fifty",
		"takes catch", "runs out opponent", "bowls maiden", "scores single", "hits double",
	}
	deltaNegativeActions = []string{"gets out", "drops catch"}
)

// boardEntrant seeds one synthetic leaderboard row. Fresh points are
// re-sampled as base plus jitter on every refresh.
type boardEntrant struct {
	username    string
	teamName    string
	basePoints  float64
	jitter      int
	currentUser bool
}

// boardSeeds are the fixed entrants of the synthetic board; the sampler
// tops the list up to the configured size with generated names.
var boardSeeds = []boardEntrant{
	{username: "DHRUV TEJA", teamName: "T1", basePoints: 106, jitter: 50, currentUser: true},
	{username: "Lalit sutihar", teamName: "T2", basePoints: 156.5, jitter: 30},
	{username: "ARUN HURRY", teamName: "T1", basePoints: 156.5, jitter: 25},
	{username: "NZSVYJ 52", teamName: "T1", basePoints: 156.5, jitter: 20},
	{username: "RANJANE GIRI", teamName: "T1", basePoints: 156.5, jitter: 15},
}

// Trend-line annotation catalogs.
var (
	trendEvents       = []string{"Boundary scored!", "Wicket taken!", "Milestone reached!"}
	trendExplanations = []string{
		"Live event affected your ranking!",
		"A French took a wicket - 85% players had him, 1,234 overtook you!",
	}
)

// Rank-shift catalogs for the explainable rank-change feed.
type shiftTemplate struct {
	kind        model.EventKind
	player      string
	team        string
	description string
	ownership   float64
	positive    bool
}

var shiftTemplates = []shiftTemplate{
	{kind: model.KindWicket, player: "A French", team: "EN-U19", description: "took a wicket (V Sooryavanshi caught)", ownership: 85.7, positive: true},
	{kind: model.KindBoundary, player: "T Rew", team: "EN-U19", description: "hit a boundary (4 runs)", ownership: 72.4, positive: true},
	{kind: model.KindWicket, player: "V Sooryavanshi", team: "IN-U19", description: "got out (caught by A French)", ownership: 89.2, positive: false},
	{kind: model.KindBoundary, player: "S Morgan", team: "EN-U19", description: "hit a six over long-on", ownership: 68.3, positive: true},
}
