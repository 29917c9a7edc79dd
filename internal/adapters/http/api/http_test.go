package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	session "github.com/okian/gully/internal/app"

	"github.com/okian/gully/internal/domain/model"
	"github.com/okian/gully/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *session.Session) {
	t.Helper()

	sess := session.New(
		session.WithSeed(42),
		session.WithIntervals(10*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, 5*time.Millisecond),
		session.WithSkipProbability(0),
	)
	if err := sess.Start(context.Background()); err != nil {
		t.Fatalf("start session: %v", err)
	}
	t.Cleanup(sess.Stop)

	mux := http.NewServeMux()
	NewServer(sess, sess).Register(context.Background(), mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, sess
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestSummaryEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	var sum session.Summary
	if code := getJSON(t, ts.URL+"/summary", &sum); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if sum.TeamPoints != 152.5 {
		t.Errorf("expected multiplied team total 152.5, got %.1f", sum.TeamPoints)
	}
	if sum.UserRank < 1 {
		t.Errorf("expected a ranked user, got rank %d", sum.UserRank)
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	var rows []model.LeaderboardEntry
	if code := getJSON(t, ts.URL+"/leaderboard", &rows); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(rows) != 10 {
		t.Fatalf("expected full board of 10, got %d", len(rows))
	}
	if rows[0].Rank != 1 {
		t.Errorf("expected rank 1 first, got %d", rows[0].Rank)
	}

	rows = nil
	if code := getJSON(t, ts.URL+"/leaderboard?limit=3", &rows); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(rows))
	}

	for _, bad := range []string{"limit=0", "limit=abc", "limit=101"} {
		if code := getJSON(t, ts.URL+"/leaderboard?"+bad, nil); code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", bad, code)
		}
	}
}

func TestReadEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/team", "/teams", "/team/analytics", "/match", "/contest", "/dreamteam", "/trend", "/deltas", "/updates", "/shifts", "/stats", "/games/stats", "/popup"} {
		if code := getJSON(t, ts.URL+path, nil); code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, code)
		}
	}
}

func TestTeamSelection(t *testing.T) {
	ts, _ := newTestServer(t)

	var teams struct {
		Teams    []model.Team          `json:"teams"`
		Overlaps []session.TeamOverlap `json:"overlaps"`
	}
	if code := getJSON(t, ts.URL+"/teams", &teams); code != http.StatusOK {
		t.Fatalf("GET /teams: expected 200, got %d", code)
	}
	if len(teams.Teams) != 3 || len(teams.Overlaps) != 3 {
		t.Fatalf("expected 3 teams with overlaps, got %d/%d", len(teams.Teams), len(teams.Overlaps))
	}

	if code := postJSON(t, ts.URL+"/teams/select", map[string]string{"team_id": "team-2"}, nil); code != http.StatusOK {
		t.Fatalf("select team-2: expected 200, got %d", code)
	}
	var team model.Team
	if code := getJSON(t, ts.URL+"/team", &team); code != http.StatusOK {
		t.Fatalf("GET /team: expected 200, got %d", code)
	}
	if team.ID != "team-2" {
		t.Errorf("expected selected team team-2, got %s", team.ID)
	}

	if code := postJSON(t, ts.URL+"/teams/select", map[string]string{"team_id": "team-99"}, nil); code != http.StatusNotFound {
		t.Errorf("select unknown team: expected 404, got %d", code)
	}
}

func TestMethodGuards(t *testing.T) {
	ts, _ := newTestServer(t)

	if code := postJSON(t, ts.URL+"/summary", nil, nil); code != http.StatusNotFound {
		t.Errorf("POST /summary: expected 404, got %d", code)
	}
	if code := getJSON(t, ts.URL+"/session/reset", nil); code != http.StatusNotFound {
		t.Errorf("GET /session/reset: expected 404, got %d", code)
	}
}

func TestNotificationFlow(t *testing.T) {
	ts, sess := newTestServer(t)

	deadline := time.Now().Add(2 * time.Second)
	for len(sess.Notifications()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	var list struct {
		Notifications []model.Notification `json:"notifications"`
		Unread        int                  `json:"unread"`
	}
	if code := getJSON(t, ts.URL+"/notifications", &list); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(list.Notifications) == 0 {
		t.Fatal("expected at least one notification")
	}
	id := list.Notifications[0].Event.ID

	if code := postJSON(t, fmt.Sprintf("%s/notifications/%s/read", ts.URL, id), nil, nil); code != http.StatusOK {
		t.Fatalf("mark read: expected 200, got %d", code)
	}

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/notifications/%s", ts.URL, id), nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dismiss: expected 200, got %d", resp.StatusCode)
	}

	// A dismissed record stays gone.
	if code := postJSON(t, fmt.Sprintf("%s/notifications/%s/read", ts.URL, id), nil, nil); code != http.StatusNotFound {
		t.Errorf("read after dismiss: expected 404, got %d", code)
	}

	if code := postJSON(t, ts.URL+"/notifications/read-all", nil, nil); code != http.StatusOK {
		t.Errorf("read-all: expected 200, got %d", code)
	}
}

func TestQuizEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	var quiz struct {
		ID      string   `json:"id"`
		Options []string `json:"options"`
	}
	if code := postJSON(t, ts.URL+"/games/quiz/start", nil, &quiz); code != http.StatusOK {
		t.Fatalf("quiz start: expected 200, got %d", code)
	}
	if quiz.ID == "" || len(quiz.Options) == 0 {
		t.Fatalf("unexpected quiz payload: %+v", quiz)
	}

	// Starting a second round while one is open conflicts.
	if code := postJSON(t, ts.URL+"/games/quiz/start", nil, nil); code != http.StatusConflict {
		t.Errorf("second start: expected 409, got %d", code)
	}

	var result struct {
		Outcome string `json:"outcome"`
	}
	body := map[string]any{"quiz_id": quiz.ID, "option": 0}
	if code := postJSON(t, ts.URL+"/games/quiz/answer", body, &result); code != http.StatusOK {
		t.Fatalf("answer: expected 200, got %d", code)
	}
	if result.Outcome == "" {
		t.Error("expected a scored outcome")
	}

	// No round open anymore.
	if code := postJSON(t, ts.URL+"/games/quiz/answer", body, nil); code != http.StatusNotFound {
		t.Errorf("answer without round: expected 404, got %d", code)
	}
}

func TestPredictionEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	var prediction struct {
		ID      string   `json:"id"`
		Options []string `json:"options"`
	}
	if code := postJSON(t, ts.URL+"/games/prediction/start", nil, &prediction); code != http.StatusOK {
		t.Fatalf("prediction start: expected 200, got %d", code)
	}

	body := map[string]any{"prediction_id": prediction.ID, "option": 99}
	if code := postJSON(t, ts.URL+"/games/prediction/answer", body, nil); code != http.StatusBadRequest {
		t.Errorf("invalid option: expected 400, got %d", code)
	}

	body["option"] = 0
	if code := postJSON(t, ts.URL+"/games/prediction/answer", body, nil); code != http.StatusOK {
		t.Errorf("answer: expected 200, got %d", code)
	}
}

func TestSessionResetEndpoint(t *testing.T) {
	ts, sess := newTestServer(t)

	body := map[string]string{"contest_id": "contest-9"}
	if code := postJSON(t, ts.URL+"/session/reset", body, nil); code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", code)
	}
	if sess.Contest().ID != "contest-9" {
		t.Errorf("expected contest switched to contest-9, got %s", sess.Contest().ID)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 from metrics scrape, got %d", resp.StatusCode)
	}
}
