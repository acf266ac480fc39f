package stream_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/internal/scenario"
	"github.com/katalvlaran/algotrace/internal/stream"
)

func newTestServer(t *testing.T, cfg stream.Config) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(stream.NewServer(cfg))
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server, engine string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/" + engine
	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return ws
}

// collect reads messages until the server sends a result or an error.
func collect(t *testing.T, ws *websocket.Conn) (steps []stream.Message, last stream.Message) {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(10*time.Second)))
	for {
		var m stream.Message
		require.NoError(t, ws.ReadJSON(&m))
		if m.Type != stream.TypeStep {
			return steps, m
		}
		steps = append(steps, m)
	}
}

func scrape(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestEngines(t *testing.T) {
	ts := newTestServer(t, stream.Config{})

	resp, err := http.Get(ts.URL + "/engines")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var cat stream.Catalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cat))
	assert.Equal(t, scenario.Engines(), cat.Engines)
	assert.Contains(t, cat.Graphs, "highway")
	assert.Contains(t, cat.Items, "jewelry")
	assert.Len(t, cat.Strategies, 3)
}

func TestStream_Palindrome(t *testing.T) {
	ts := newTestServer(t, stream.Config{Delay: time.Millisecond})
	ws := dial(t, ts, scenario.EnginePalindrome)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"name":"abba","text":"abba"}`)))
	steps, last := collect(t, ws)

	require.Len(t, steps, 5)
	for i, m := range steps {
		require.NotNil(t, m.Step)
		assert.Equal(t, i, m.Step.Seq)
	}
	assert.EqualValues(t, "compare", steps[0].Step.Kind)
	assert.EqualValues(t, "palindrome", steps[4].Step.Kind)

	require.Equal(t, stream.TypeResult, last.Type)
	require.NotNil(t, last.Envelope)
	assert.Equal(t, "abba", last.Envelope.Name)
	assert.Equal(t, 5, last.Envelope.StepCount)
	assert.Empty(t, last.Envelope.Steps, "steps travel as messages, not in the envelope")
	assert.NotEmpty(t, last.Envelope.RunID)

	metrics := scrape(t, ts)
	assert.Contains(t, metrics, `algotrace_runs_started_total{engine="palindrome"} 1`)
	assert.Contains(t, metrics, `algotrace_steps_streamed_total 5`)
	assert.NotContains(t, metrics, `algotrace_runs_failed_total{engine="palindrome"}`)
}

func TestStream_ConcurrentEngine(t *testing.T) {
	ts := newTestServer(t, stream.Config{})
	ws := dial(t, ts, scenario.EngineSortCompare)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"array":[5,1,4,2,8]}`)))
	steps, last := collect(t, ws)

	require.Equal(t, stream.TypeResult, last.Type)
	assert.Equal(t, len(steps), last.Envelope.StepCount)
}

func TestStream_Errors(t *testing.T) {
	ts := newTestServer(t, stream.Config{})

	cases := []struct {
		name, engine, body, want string
	}{
		{"InvalidInput", scenario.EngineCoinChange, `{"amount":-1,"coins":[1]}`, "invalid input"},
		{"UnknownField", scenario.EngineCoinChange, `{"amont":3}`, "unknown field"},
		{"EngineMismatch", scenario.EngineFibonacci, `{"engine":"knapsack"}`, "does not match"},
		{"UnknownEngine", "bogo-sort", `{}`, "unknown engine"},
		{"StepLimit", scenario.EngineFibonacci, `{"n":40}`, "step limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := ts
			if tc.name == "StepLimit" {
				srv = newTestServer(t, stream.Config{MaxSteps: 10})
			}
			ws := dial(t, srv, tc.engine)
			require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(tc.body)))
			_, last := collect(t, ws)
			assert.Equal(t, stream.TypeError, last.Type)
			assert.Contains(t, last.Error, tc.want)
		})
	}
}

func TestStream_DisconnectCancelsRun(t *testing.T) {
	ts := newTestServer(t, stream.Config{Delay: 20 * time.Millisecond})
	ws := dial(t, ts, scenario.EngineFibonacci)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"n":25,"strategy":"naive"}`)))
	var first stream.Message
	require.NoError(t, ws.ReadJSON(&first))
	assert.Equal(t, stream.TypeStep, first.Type)
	require.NoError(t, ws.Close())

	assert.Eventually(t, func() bool {
		return strings.Contains(scrape(t, ts), `algotrace_runs_failed_total{engine="fibonacci"} 1`)
	}, 5*time.Second, 20*time.Millisecond)
}
