package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/katalvlaran/waypoint/cities"
	"github.com/katalvlaran/waypoint/config"
	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// corner builds A(0,0), B(0,3), C(4,3) with A–B and B–C, plus an isolated D.
func corner(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", core.NewPoint(0, 0)))
	require.NoError(t, g.AddNode("B", core.NewPoint(0, 3)))
	require.NoError(t, g.AddNode("C", core.NewPoint(4, 3)))
	require.NoError(t, g.AddNode("D", core.NewPoint(9, 9)))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	return g
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Search.Interval = 0

	return cfg
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

type searchBody struct {
	SessionID string  `json:"session_id"`
	Algorithm string  `json:"algorithm"`
	Status    string  `json:"status"`
	Distance  float64 `json:"distance"`
	Steps     int     `json:"steps"`
	Path      []struct {
		ID       string  `json:"id"`
		Distance float64 `json:"distance"`
	} `json:"path"`
}

func TestHealth(t *testing.T) {
	h := server.New(corner(t), testConfig()).Handler()

	w := do(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 4, body["nodes"])
}

func TestNodes(t *testing.T) {
	h := server.New(corner(t), testConfig()).Handler()

	w := do(t, h, http.MethodGet, "/v1/nodes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	type node struct {
		ID        string   `json:"id"`
		Lon       *float64 `json:"lon"`
		Neighbors []struct {
			To     string  `json:"to"`
			Weight float64 `json:"weight"`
		} `json:"neighbors"`
	}
	nodes := decode[[]node](t, w)
	require.Len(t, nodes, 4)
	assert.Equal(t, "A", nodes[0].ID)
	assert.Nil(t, nodes[0].Lon, "plain graphs carry no lon/lat")
	require.Len(t, nodes[1].Neighbors, 2)
	assert.Equal(t, "A", nodes[1].Neighbors[0].To)
	assert.Equal(t, 3.0, nodes[1].Neighbors[0].Weight)
	assert.Empty(t, nodes[3].Neighbors)
}

func TestNodes_ServesSnapshot(t *testing.T) {
	g := corner(t)
	h := server.New(g, testConfig()).Handler()
	g.RemoveNode("A")

	w := do(t, h, http.MethodGet, "/healthz", nil)
	assert.EqualValues(t, 4, decode[map[string]any](t, w)["nodes"])
}

func TestNearest(t *testing.T) {
	h := server.New(cities.Graph(), testConfig(), server.WithGeographic()).Handler()

	w := do(t, h, http.MethodGet, "/v1/nodes/nearest?row=422000&col=-711000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, cities.Boston, body["id"])
	assert.InDelta(t, 42.358, body["lat"], 1e-3)
	assert.InDelta(t, -71.064, body["lon"], 1e-3)
	assert.Greater(t, body["distance"], 0.0)

	for _, q := range []string{"", "?row=1", "?row=x&col=1", "?row=NaN&col=1"} {
		w = do(t, h, http.MethodGet, "/v1/nodes/nearest"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}

	empty := server.New(core.NewGraph(), testConfig()).Handler()
	w = do(t, empty, http.MethodGet, "/v1/nodes/nearest?row=0&col=0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNew_NilGraphPanics(t *testing.T) {
	assert.PanicsWithValue(t, "server: New(nil graph)", func() {
		server.New(nil, testConfig())
	})
}

func TestRoads(t *testing.T) {
	h := server.New(cities.Graph(), testConfig(), server.WithGeographic()).Handler()

	w := do(t, h, http.MethodGet, "/v1/roads", nil)
	require.Equal(t, http.StatusOK, w.Code)
	roads := decode[[]map[string]any](t, w)
	require.Len(t, roads, 30)
	assert.Contains(t, roads[0], "km")
}

func TestCanvas(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", core.NewPoint(0, 0)))
	require.NoError(t, g.AddNode("B", core.NewPoint(10, 10)))
	h := server.New(g, testConfig()).Handler()

	w := do(t, h, http.MethodGet, "/v1/canvas?width=100&height=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Radius float64      `json:"radius"`
		Dots   []cities.Dot `json:"dots"`
	}](t, w)
	assert.Equal(t, cities.DotRadius, body.Radius)
	assert.Equal(t, []cities.Dot{{ID: "A", X: 5, Y: 95}, {ID: "B", X: 95, Y: 5}}, body.Dots)

	w = do(t, h, http.MethodGet, "/v1/canvas/hit?width=100&height=100&x=93&y=7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hit := decode[map[string]any](t, w)
	assert.Equal(t, true, hit["hit"])
	assert.Equal(t, "B", hit["id"])

	w = do(t, h, http.MethodGet, "/v1/canvas/hit?width=100&height=100&x=50&y=50", nil)
	assert.Equal(t, false, decode[map[string]any](t, w)["hit"])

	w = do(t, h, http.MethodGet, "/v1/canvas?width=0&height=100", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearch(t *testing.T) {
	h := server.New(corner(t), testConfig()).Handler()

	w := do(t, h, http.MethodPost, "/v1/search", map[string]any{"algorithm": "bfs", "start": "A", "end": "C"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[searchBody](t, w)
	assert.Equal(t, "bfs", body.Algorithm)
	assert.Equal(t, "Found", body.Status)
	assert.Equal(t, 7.0, body.Distance)
	assert.Equal(t, 5, body.Steps)
	require.Len(t, body.Path, 3)
	assert.Equal(t, "C", body.Path[2].ID)
	assert.NotEmpty(t, body.SessionID)
	assert.Equal(t, body.SessionID, w.Header().Get("X-Session-ID"))

	w = do(t, h, http.MethodPost, "/v1/search", map[string]any{"start": "A", "end": "D"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[searchBody](t, w)
	assert.Equal(t, "dijkstra", body.Algorithm, "configured default")
	assert.Equal(t, "Not Found", body.Status)
	assert.Empty(t, body.Path)
}

func TestSearch_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.Search.MaxSteps = 2
	h := server.New(corner(t), cfg).Handler()

	cases := []struct {
		name string
		body map[string]any
		code int
	}{
		{"missing node", map[string]any{"start": "A", "end": "Z"}, http.StatusNotFound},
		{"bad algorithm", map[string]any{"algorithm": "astar", "start": "A", "end": "C"}, http.StatusBadRequest},
		{"missing end", map[string]any{"start": "A"}, http.StatusBadRequest},
		{"bad option", map[string]any{"start": "A", "end": "C", "max_distance": -1}, http.StatusBadRequest},
		{"budget", map[string]any{"start": "A", "end": "C"}, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/v1/search", tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
			assert.Contains(t, decode[map[string]any](t, w), "error")
		})
	}
}

func TestSearch_CitiesAvoid(t *testing.T) {
	h := server.New(cities.Graph(), testConfig(), server.WithGeographic()).Handler()

	w := do(t, h, http.MethodPost, "/v1/search", map[string]any{
		"algorithm": "dijkstra",
		"start":     cities.Boston,
		"end":       cities.LosAngeles,
		"avoid":     []string{cities.Chicago},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		searchBody
		Km *float64 `json:"km"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Found", body.Status)
	for _, s := range body.Path {
		assert.NotEqual(t, cities.Chicago, s.ID)
	}
	require.NotNil(t, body.Km)
	assert.Greater(t, *body.Km, 3000.0)
}

func TestMetrics(t *testing.T) {
	h := server.New(corner(t), testConfig()).Handler()
	do(t, h, http.MethodPost, "/v1/search", map[string]any{"algorithm": "bfs", "start": "A", "end": "C"})

	w := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, `waypoint_searches_total{algorithm="bfs",status="found"} 1`)
	assert.Contains(t, out, `waypoint_search_steps_total{algorithm="bfs"} 5`)
	assert.Contains(t, out, "waypoint_search_duration_seconds_bucket")
}

func TestMetrics_PerServerRegistry(t *testing.T) {
	a := server.New(corner(t), testConfig(), server.WithProcessMetrics())
	b := server.New(corner(t), testConfig())
	assert.NotSame(t, a.Registry(), b.Registry())
}

type message struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Step      int    `json:"step"`
	State     string `json:"state"`
	Status    string `json:"status"`
	Current   string `json:"current"`
	Visible   []struct {
		ID string `json:"id"`
	} `json:"visible"`
	Result *searchBody `json:"result"`
	Error  string      `json:"error"`
}

func dial(t *testing.T, srv *httptest.Server, q url.Values) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/search/stream?" + q.Encode()
	ws, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = ws.Close() })

	return ws
}

func TestStream(t *testing.T) {
	srv := httptest.NewServer(server.New(corner(t), testConfig()).Handler())
	defer srv.Close()

	ws := dial(t, srv, url.Values{"algorithm": {"bfs"}, "start": {"A"}, "end": {"C"}, "interval": {"0s"}})
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msgs []message
	for {
		var m message
		if err := ws.ReadJSON(&m); err != nil {
			break
		}
		msgs = append(msgs, m)
		if m.Type == "result" || m.Type == "error" {
			break
		}
	}

	require.Len(t, msgs, 7) // session, five steps, result
	assert.Equal(t, "session", msgs[0].Type)
	assert.NotEmpty(t, msgs[0].SessionID)

	assert.Equal(t, "step", msgs[1].Type)
	assert.Equal(t, 1, msgs[1].Step)
	assert.Equal(t, "Push", msgs[1].State)
	assert.Equal(t, "A", msgs[1].Current)
	require.Len(t, msgs[2].Visible, 1)
	assert.Equal(t, "B", msgs[2].Visible[0].ID)
	assert.Equal(t, "Done(Found)", msgs[5].State)

	last := msgs[6]
	assert.Equal(t, "result", last.Type)
	assert.Equal(t, msgs[0].SessionID, last.SessionID)
	require.NotNil(t, last.Result)
	assert.Equal(t, 7.0, last.Result.Distance)
	assert.Equal(t, 5, last.Result.Steps)
}

func TestStream_RejectedBeforeUpgrade(t *testing.T) {
	srv := httptest.NewServer(server.New(corner(t), testConfig()).Handler())
	defer srv.Close()

	cases := []struct {
		q    url.Values
		code int
	}{
		{url.Values{"start": {"A"}, "end": {"Z"}}, http.StatusNotFound},
		{url.Values{"algorithm": {"astar"}, "start": {"A"}, "end": {"C"}}, http.StatusBadRequest},
		{url.Values{"start": {"A"}}, http.StatusBadRequest},
		{url.Values{"start": {"A"}, "end": {"C"}, "interval": {"-1s"}}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/search/stream?" + tc.q.Encode()
		_, resp, err := websocket.DefaultDialer.Dial(u, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, tc.code, resp.StatusCode, tc.q.Encode())
		_ = resp.Body.Close()
	}
}

func TestStream_BudgetSendsError(t *testing.T) {
	cfg := testConfig()
	cfg.Search.MaxSteps = 1
	srv := httptest.NewServer(server.New(corner(t), cfg).Handler())
	defer srv.Close()

	ws := dial(t, srv, url.Values{"start": {"A"}, "end": {"C"}})
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))

	var last message
	for {
		var m message
		if err := ws.ReadJSON(&m); err != nil {
			break
		}
		last = m
		if m.Type == "error" || m.Type == "result" {
			break
		}
	}
	assert.Equal(t, "error", last.Type)
	assert.Contains(t, last.Error, "step budget")
}

func TestServe_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := server.New(corner(t), testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
