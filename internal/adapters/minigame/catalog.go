package minigame

// Quiz is one timed multiple-choice question.
type Quiz struct {
	ID        string   `json:"id"`
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	TimeLimit int      `json:"time_limit_seconds"`
	Reward    float64  `json:"reward"`
}

// Prediction is one open call on the next passage of play. The outcome is
// resolved when the window closes.
type Prediction struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Window   int      `json:"window_seconds"`
	Reward   float64  `json:"reward"`
}

// quizCatalog holds the fixed question bank; the answer key stays out of
// the exported record.
var quizCatalog = []Quiz{
	{
		ID:        "q1",
		Question:  "Who has taken the most wickets in this match so far?",
		Options:   []string{"A French", "B Mayes", "D Seales", "H Ahmed"},
		TimeLimit: 15,
		Reward:    5,
	},
	{
		ID:        "q2",
		Question:  "How many runs came off the last over?",
		Options:   []string{"4", "7", "12", "16"},
		TimeLimit: 10,
		Reward:    8,
	},
	{
		ID:        "q3",
		Question:  "Which batsman has the highest strike rate today?",
		Options:   []string{"V Sooryavanshi", "T Rew", "S Morgan", "L Dickson"},
		TimeLimit: 20,
		Reward:    12,
	},
}

// quizAnswers maps quiz id to the index of the correct option.
var quizAnswers = map[string]int{
	"q1": 0,
	"q2": 1,
	"q3": 2,
}

const predictionWindowSeconds = 30

var predictionCatalog = []Prediction{
	{
		ID:       "next-wicket",
		Question: "Will a wicket fall in the next two overs?",
		Options:  []string{"Yes", "No"},
		Window:   predictionWindowSeconds,
		Reward:   10,
	},
	{
		ID:       "over-runs",
		Question: "How many runs in the next over?",
		Options:  []string{"0-5", "6-10", "11+"},
		Window:   predictionWindowSeconds,
		Reward:   15,
	},
	{
		ID:       "boundary-streak",
		Question: "Back-to-back boundaries in the next over?",
		Options:  []string{"Yes", "No"},
		Window:   predictionWindowSeconds,
		Reward:   25,
	},
}
