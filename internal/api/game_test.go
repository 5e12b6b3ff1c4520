package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mirrorlake/guesswho/internal/catalog"
	"github.com/mirrorlake/guesswho/internal/domain"
	"github.com/mirrorlake/guesswho/internal/game"
	"github.com/mirrorlake/guesswho/internal/identity"
	"github.com/mirrorlake/guesswho/internal/oracle"
	"github.com/mirrorlake/guesswho/internal/store"
)

// scriptedOracle drives the API tests with fixed decisions.
type scriptedOracle struct {
	answer      oracle.Answer
	question    string
	eliminate   []string
	guessID     string
	guessName   string
	shouldGuess bool
}

func (o *scriptedOracle) AnswerQuestion(ctx context.Context, question string, attrs domain.CharacterAttributes) oracle.AnswerResult {
	return oracle.AnswerResult{Answer: o.answer, Reasoning: "scripted"}
}

func (o *scriptedOracle) GenerateQuestion(ctx context.Context, remaining []domain.Character, history []domain.HistoryEntry) oracle.QuestionResult {
	return oracle.QuestionResult{Question: o.question, Reasoning: "scripted"}
}

func (o *scriptedOracle) ProcessResponse(ctx context.Context, all []domain.Character, question, response string, history []domain.HistoryEntry) oracle.EliminationResult {
	return oracle.EliminationResult{Eliminated: o.eliminate, Reasoning: "scripted"}
}

func (o *scriptedOracle) MakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry) oracle.GuessResult {
	return oracle.GuessResult{CharacterID: o.guessID, CharacterName: o.guessName, Reasoning: "scripted"}
}

func (o *scriptedOracle) ShouldMakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry, turnCount int) oracle.ShouldGuessResult {
	return oracle.ShouldGuessResult{ShouldGuess: o.shouldGuess, Reasoning: "scripted", Confidence: 50}
}

func newTestServer(t *testing.T, o game.Oracle) *httptest.Server {
	t.Helper()
	if o == nil {
		o = &scriptedOracle{answer: oracle.AnswerNo, question: "Is your character male?"}
	}
	svc := game.NewService(store.NewMemory(), catalog.Default(), o)

	r := chi.NewRouter()
	r.Use(identity.Middleware(true))
	NewGameHandler(svc).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// newClient builds an http.Client with a cookie jar so the anonymous player
// identity sticks across requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func doJSON(t *testing.T, c *http.Client, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, out.Bytes()
}

func createGame(t *testing.T, c *http.Client, base string) domain.Game {
	t.Helper()
	resp, body := doJSON(t, c, http.MethodPost, base+"/api/games", map[string]string{
		"humanCharacterId": "char_1",
		"aiCharacterId":    "char_2",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create game: status %d, body %s", resp.StatusCode, body)
	}
	var g domain.Game
	if err := json.Unmarshal(body, &g); err != nil {
		t.Fatalf("decode game: %v", err)
	}
	return g
}

func TestListCharacters(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)

	resp, body := doJSON(t, c, http.MethodGet, srv.URL+"/api/characters", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var chars []domain.Character
	if err := json.Unmarshal(body, &chars); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(chars) != 20 {
		t.Errorf("Expected 20 characters, got %d", len(chars))
	}
}

func TestCreateAndGetGame(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)

	g := createGame(t, c, srv.URL)
	if g.ID == "" || g.Status != domain.StatusActive || g.CurrentTurn != domain.TurnAI {
		t.Errorf("Unexpected new game: %+v", g)
	}
	if g.PlayerID == "" {
		t.Error("Expected player ID assigned from cookie identity")
	}

	resp, body := doJSON(t, c, http.MethodGet, srv.URL+"/api/games/"+g.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get game: status %d", resp.StatusCode)
	}
	var fetched domain.Game
	if err := json.Unmarshal(body, &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.ID != g.ID {
		t.Errorf("Expected %s, got %s", g.ID, fetched.ID)
	}
}

func TestCreateGameUnknownCharacter(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)

	resp, _ := doJSON(t, c, http.MethodPost, srv.URL+"/api/games", map[string]string{
		"humanCharacterId": "char_99",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestGetGameNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)

	resp, _ := doJSON(t, c, http.MethodGet, srv.URL+"/api/games/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestListMyGamesScopedToPlayer(t *testing.T) {
	srv := newTestServer(t, nil)

	alice := newClient(t)
	bob := newClient(t)
	createGame(t, alice, srv.URL)
	createGame(t, alice, srv.URL)
	createGame(t, bob, srv.URL)

	resp, body := doJSON(t, alice, http.MethodGet, srv.URL+"/api/games", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var games []domain.Game
	if err := json.Unmarshal(body, &games); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(games) != 2 {
		t.Errorf("Expected 2 games for alice, got %d", len(games))
	}
}

func TestAskQuestionFlow(t *testing.T) {
	srv := newTestServer(t, &scriptedOracle{answer: oracle.AnswerNo})
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, body := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/ask-ai", map[string]string{
		"question": "Does this person wear glasses?",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, body %s", resp.StatusCode, body)
	}

	var result struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Answer != "no" {
		t.Errorf("Expected no, got %q", result.Answer)
	}

	// History reflects the question with its answer.
	resp, body = doJSON(t, c, http.MethodGet, srv.URL+"/api/games/"+g.ID+"/history", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("history: status %d", resp.StatusCode)
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != domain.EntryHumanQuestion || entries[0].Response != "no" {
		t.Errorf("Unexpected history: %+v", entries)
	}
}

func TestAskQuestionEmptyBody(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, _ := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/ask-ai", map[string]string{"question": "  "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestRespondValidation(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, _ := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/respond", map[string]string{"response": "maybe"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid response, got %d", resp.StatusCode)
	}

	// Valid response but no pending AI question.
	resp, _ = doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/respond", map[string]string{"response": "yes"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 without pending question, got %d", resp.StatusCode)
	}
}

func TestEliminateRequiresArray(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, _ := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/eliminate", map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 without characterIds, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/eliminate", map[string]any{
		"characterIds": []string{"char_5"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, body %s", resp.StatusCode, body)
	}
	var result map[string][]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := result["eliminatedCharacters"]; len(got) != 1 || got[0] != "char_5" {
		t.Errorf("Unexpected eliminated set: %v", got)
	}
}

func TestGuessEndsGame(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, body := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/guess", map[string]string{
		"characterId": "char_2",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, body %s", resp.StatusCode, body)
	}
	var result struct {
		Correct bool          `json:"correct"`
		Status  domain.Status `json:"status"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Correct || result.Status != domain.StatusHumanWon {
		t.Errorf("Expected winning guess, got %+v", result)
	}

	// Transitions on the finished game conflict.
	resp, _ = doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/ask-ai", map[string]string{"question": "q?"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409 on finished game, got %d", resp.StatusCode)
	}
}

func TestGuessRequiresCharacterID(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, _ := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/guess", map[string]string{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestAIQuestionAndRespondRound(t *testing.T) {
	srv := newTestServer(t, &scriptedOracle{
		question:  "Is your character male?",
		eliminate: []string{"char_3"},
	})
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, body := doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/ai-question", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ai-question: status %d, body %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, c, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/respond", map[string]string{"response": "no"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("respond: status %d, body %s", resp.StatusCode, body)
	}
	var result struct {
		AIGuessed  bool     `json:"aiGuessed"`
		Eliminated []string `json:"aiEliminated"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.AIGuessed {
		t.Error("Expected no guess this round")
	}
	if len(result.Eliminated) != 1 || result.Eliminated[0] != "char_3" {
		t.Errorf("Unexpected eliminations: %v", result.Eliminated)
	}
}

func TestUpdateGamePatch(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newClient(t)
	g := createGame(t, c, srv.URL)

	resp, body := doJSON(t, c, http.MethodPatch, srv.URL+"/api/games/"+g.ID, map[string]any{
		"currentTurn": "human",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, body %s", resp.StatusCode, body)
	}
	var updated domain.Game
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.CurrentTurn != domain.TurnHuman {
		t.Errorf("Expected human turn, got %s", updated.CurrentTurn)
	}

	resp, _ = doJSON(t, c, http.MethodPatch, srv.URL+"/api/games/"+g.ID, map[string]any{
		"status": "paused",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown status, got %d", resp.StatusCode)
	}
}
