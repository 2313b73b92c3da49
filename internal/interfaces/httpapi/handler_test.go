package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/id"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/ratelimit"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		payload, err := sonic.Marshal(v)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	sports, teams, players, articles := memory.NewCatalog(0)
	repos := usecase.CatalogRepositories{Sports: sports, Teams: teams, Players: players, News: articles}

	registry := usecase.NewSessionRegistry(
		cache.NewStore(time.Minute),
		repos,
		usecase.ProviderOptions{Logger: logger},
		id.NewUUIDGenerator(),
	)
	handler := NewHandler(
		usecase.NewCatalogService(sports, articles),
		usecase.NewComparisonService(teams, players),
		usecase.NewContactService(usecase.ContactServiceOptions{
			Limiter: ratelimit.NewMemory(ratelimit.Config{PerMinute: 1, Burst: 1}),
			Logger:  logger,
		}),
		logger,
	)

	return NewRouter(handler, registry, logger, []string{"*"}, SessionCookieOptions{TTL: time.Minute})
}

type testClient struct {
	t       *testing.T
	router  http.Handler
	session *http.Cookie
}

func (c *testClient) do(method, target string, body any) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()

	req := newRequest(c.t, method, target, body)
	if c.session != nil {
		req.AddCookie(c.session)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			c.session = cookie
		}
	}

	return rec, decodeEnvelope(c.t, rec)
}

func dataObject(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	return data
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %v", body)
	}
	return data
}

func namesOf(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		name, _ := obj["name"].(string)
		out = append(out, name)
	}
	return out
}

func TestHandler_Healthz(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := dataObject(t, body)["status"]; got != "ok" {
		t.Fatalf("unexpected status: %v", got)
	}
}

func TestHandler_StateScenario(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodGet, "/v1/state", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if client.session == nil || !id.Valid(client.session.Value) {
		t.Fatalf("expected a session cookie, got %+v", client.session)
	}
	if !client.session.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}

	state := dataObject(t, body)
	if got := len(state["sports"].([]any)); got != 4 {
		t.Fatalf("expected 4 sports, got %d", got)
	}
	if got := namesOf(state["teams"].([]any)); len(got) != 3 || got[0] != "LA Lakers" {
		t.Fatalf("unexpected teams: %v", got)
	}
	if got := namesOf(state["players"].([]any)); len(got) != 2 || got[0] != "LeBron James" || got[1] != "Anthony Davis" {
		t.Fatalf("unexpected players: %v", got)
	}
	if state["error"] != nil {
		t.Fatalf("expected null error, got %v", state["error"])
	}
	if state["selectedSport"] != "basketball" {
		t.Fatalf("unexpected selected sport: %v", state["selectedSport"])
	}

	rec, body = client.do(http.MethodPost, "/v1/state/sport", map[string]string{"sport": "TENNIS"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	state = dataObject(t, body)
	if len(state["teams"].([]any)) != 0 || len(state["players"].([]any)) != 0 {
		t.Fatalf("expected empty teams and players for tennis: %v", state)
	}
	if state["error"] != nil {
		t.Fatalf("expected null error for tennis, got %v", state["error"])
	}

	_, body = client.do(http.MethodGet, "/v1/state", nil)
	if got := dataObject(t, body)["selectedSport"]; got != "tennis" {
		t.Fatalf("selection not kept in session: %v", got)
	}
}

func TestHandler_SessionsAreIndependent(t *testing.T) {
	router := newTestRouter(t)
	first := &testClient{t: t, router: router}
	second := &testClient{t: t, router: router}

	first.do(http.MethodPost, "/v1/state/sport", map[string]string{"sport": "football"})
	_, body := second.do(http.MethodGet, "/v1/state", nil)

	if got := dataObject(t, body)["selectedSport"]; got != "basketball" {
		t.Fatalf("selection leaked across sessions: %v", got)
	}
}

func TestHandler_SelectSportErrors(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	tests := []struct {
		name string
		body any
		want int
	}{
		{name: "unknown sport", body: map[string]string{"sport": "curling"}, want: http.StatusNotFound},
		{name: "missing sport", body: map[string]string{}, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"sport":"football","extra":true}`, want: http.StatusBadRequest},
		{name: "malformed json", body: `{"sport":`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := client.do(http.MethodPost, "/v1/state/sport", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_LoadTeamsAndPlayers(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodPost, "/v1/state/teams/load", map[string]string{"sport": "Football"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	state := dataObject(t, body)
	if got := namesOf(state["teams"].([]any)); len(got) != 2 || got[0] != "Manchester United" {
		t.Fatalf("unexpected teams: %v", got)
	}
	if got := namesOf(state["players"].([]any)); len(got) != 2 || got[0] != "Marcus Rashford" {
		t.Fatalf("unexpected players: %v", got)
	}

	rec, body = client.do(http.MethodPost, "/v1/state/players/load", map[string]string{"team": "Chicago Bulls"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	state = dataObject(t, body)
	if len(state["players"].([]any)) != 0 || state["error"] != nil {
		t.Fatalf("expected empty players without error: %v", state)
	}
}

func TestHandler_PlayerCards(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodGet, "/v1/players/cards", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cards := dataList(t, body)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	first := cards[0].(map[string]any)
	fields := first["fields"].([]any)
	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		labels = append(labels, f.(map[string]any)["label"].(string))
	}
	if len(labels) != 3 || labels[0] != "PTS" || labels[1] != "AST" || labels[2] != "REB" {
		t.Fatalf("unexpected basketball labels: %v", labels)
	}

	client.do(http.MethodPost, "/v1/state/sport", map[string]string{"sport": "football"})
	_, body = client.do(http.MethodGet, "/v1/players/cards", nil)
	fields = dataList(t, body)[0].(map[string]any)["fields"].([]any)
	if len(fields) != 2 || fields[0].(map[string]any)["label"] != "GOALS" || fields[1].(map[string]any)["label"] != "ASST" {
		t.Fatalf("unexpected football fields: %v", fields)
	}
}

func TestHandler_CatalogReads(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodGet, "/v1/sports", nil)
	if rec.Code != http.StatusOK || len(dataList(t, body)) != 4 {
		t.Fatalf("unexpected sports response: %d %s", rec.Code, rec.Body.String())
	}

	rec, body = client.do(http.MethodGet, "/v1/news", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	articles := dataList(t, body)
	if len(articles) != 4 || articles[0].(map[string]any)["title"] != "Lakers Win Championship" {
		t.Fatalf("unexpected news: %v", articles)
	}
	if client.session != nil {
		t.Fatalf("catalog reads must not create sessions")
	}
}

func TestHandler_ComparePlayers(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodGet, "/v1/compare/players?sport=basketball&left=1&right=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := dataObject(t, body)
	if data["leftWins"] != float64(2) || data["rightWins"] != float64(1) {
		t.Fatalf("unexpected tally: %v/%v", data["leftWins"], data["rightWins"])
	}

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "non numeric id", target: "/v1/compare/players?sport=basketball&left=x&right=2", want: http.StatusBadRequest},
		{name: "missing id", target: "/v1/compare/players?sport=basketball&left=1", want: http.StatusBadRequest},
		{name: "same id", target: "/v1/compare/players?sport=basketball&left=1&right=1", want: http.StatusBadRequest},
		{name: "sport without teams", target: "/v1/compare/players?sport=tennis&left=1&right=2", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := client.do(http.MethodGet, tt.target, nil)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_CompareTeamsMissingStatIsNull(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodGet, "/v1/compare/teams?sport=basketball&left=1&right=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	for _, raw := range dataObject(t, body)["rows"].([]any) {
		row := raw.(map[string]any)
		if row["key"] != "ties" {
			continue
		}
		if row["left"] != nil || row["right"] != nil || row["outcome"] != "equal" {
			t.Fatalf("unexpected ties row: %v", row)
		}
		return
	}
	t.Fatalf("ties row missing")
}

func TestHandler_SubmitContact(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}
	valid := map[string]string{
		"name":    "Fox Mulder",
		"email":   "fox@example.com",
		"subject": "Hello",
		"message": "I would like to see more cricket coverage please.",
	}

	rec, body := client.do(http.MethodPost, "/v1/contact", valid)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	receipt := dataObject(t, body)
	if receipt["id"] == "" || receipt["message"] != contactThankYouMessage {
		t.Fatalf("unexpected receipt: %v", receipt)
	}

	rec, body = client.do(http.MethodPost, "/v1/contact", valid)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", rec.Code, rec.Body.String())
	}
	if status := body["error"].(map[string]any)["status"]; status != "RESOURCE_EXHAUSTED" {
		t.Fatalf("unexpected error status: %v", status)
	}
}

func TestHandler_SubmitContactBudgetFollowsClientAddress(t *testing.T) {
	router := newTestRouter(t)
	valid := map[string]string{
		"name":    "Dana Scully",
		"email":   "dana@example.com",
		"subject": "Hello",
		"message": "Please add a standings page for cricket.",
	}

	submit := func(forwardedFor string) *httptest.ResponseRecorder {
		req := newRequest(t, http.MethodPost, "/v1/contact", valid)
		if forwardedFor != "" {
			req.Header.Set("X-Forwarded-For", forwardedFor)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// No cookie is ever sent back, so every request looks like a new viewer.
	first := submit("")
	if first.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", first.Code, first.Body.String())
	}
	for _, cookie := range first.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			t.Fatalf("contact submissions must not create viewer sessions")
		}
	}

	if rec := submit(""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for the same address without a cookie, got %d", rec.Code)
	}
	if rec := submit("198.51.100.20"); rec.Code != http.StatusAccepted {
		t.Fatalf("expected another address to have its own budget, got %d", rec.Code)
	}
}

func TestHandler_SubmitContactValidation(t *testing.T) {
	client := &testClient{t: t, router: newTestRouter(t)}

	rec, body := client.do(http.MethodPost, "/v1/contact", map[string]string{
		"name":    "Fox Mulder",
		"email":   "fox-at-example",
		"subject": "Hello",
		"message": "short",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	items := body["error"].(map[string]any)["errors"].([]any)
	locations := map[string]string{}
	for _, raw := range items {
		item := raw.(map[string]any)
		locations[item["location"].(string)] = item["message"].(string)
	}
	if locations["email"] != "Please enter a valid email address" {
		t.Fatalf("unexpected email message: %q", locations["email"])
	}
	if locations["message"] != "Message must be at least 20 characters long" {
		t.Fatalf("unexpected message error: %q", locations["message"])
	}
}

func TestHandler_RecoverPanic(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := recoverPanic(logging.NewNop(), panicking)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(t, http.MethodGet, "/v1/state", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
