package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/katalvlaran/waypoint/route"
	"github.com/katalvlaran/waypoint/search"
)

const writeWait = 5 * time.Second

// streamParams are the query parameters of /v1/search/stream.
type streamParams struct {
	algorithm   route.Algorithm
	start, end  string
	interval    time.Duration
	avoid       []string
	maxDistance float64
}

func (s *Server) parseStream(c *gin.Context) (streamParams, error) {
	p := streamParams{
		algorithm: s.cfg.Search.ParsedAlgorithm(),
		start:     c.Query("start"),
		end:       c.Query("end"),
		interval:  s.cfg.Search.Interval,
	}
	if raw := c.Query("algorithm"); raw != "" {
		a, err := route.ParseAlgorithm(raw)
		if err != nil {
			return p, err
		}
		p.algorithm = a
	}
	if p.start == "" || p.end == "" {
		return p, fmt.Errorf("%w: start and end are required", ErrBadParameter)
	}
	if raw := c.Query("interval"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return p, fmt.Errorf("%w: interval %q", ErrBadParameter, raw)
		}
		p.interval = d
	}
	if limit := s.cfg.Server.MaxInterval; limit > 0 && p.interval > limit {
		p.interval = limit
	}
	// repeated, since city names contain commas
	for _, id := range c.QueryArray("avoid") {
		if id = strings.TrimSpace(id); id != "" {
			p.avoid = append(p.avoid, id)
		}
	}
	if _, ok := c.GetQuery("max_distance"); ok {
		d, err := floatQuery(c, "max_distance")
		if err != nil {
			return p, err
		}
		p.maxDistance = d
	}

	return p, nil
}

// handleStream validates before upgrading, so parameter and lookup errors
// are plain HTTP responses. After the upgrade the client receives a session
// message, one step message per Next call, then a result or error message.
func (s *Server) handleStream(c *gin.Context) {
	p, err := s.parseStream(c)
	if err != nil {
		abort(c, err)
		return
	}
	engine, err := route.New(s.graph, p.algorithm, p.start, p.end, searchOptions(p.avoid, p.maxDistance)...)
	if err != nil {
		abort(c, err)
		return
	}

	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	sessionID := uuid.NewString()
	logger := s.logger.With("session_id", sessionID, "algorithm", p.algorithm.String())
	logger.Info("stream started", "start", p.start, "end", p.end, "interval", p.interval)
	s.metrics.streams.Inc()
	defer s.metrics.streams.Dec()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go func() {
		// reading is required to observe the peer's close frame
		defer cancel()
		for {
			if _, _, err := ws.NextReader(); err != nil {
				return
			}
		}
	}()

	send := func(m streamMessage) error {
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		return ws.WriteJSON(m)
	}
	if err := send(streamMessage{Type: msgSession, SessionID: sessionID}); err != nil {
		return
	}

	started := time.Now()
	res, err := route.Drive(ctx, engine,
		route.WithInterval(p.interval),
		route.WithMaxSteps(s.cfg.Search.MaxSteps),
		route.WithOnStep(func(snap route.Snapshot) {
			if werr := send(snapshotMessage(snap)); werr != nil {
				cancel()
			}
		}),
	)
	s.metrics.observe(res, time.Since(started))
	if err != nil {
		logger.Info("stream aborted", "steps", res.Steps, "error", err)
		_ = send(streamMessage{Type: msgError, SessionID: sessionID, Error: err.Error(), Status: res.Status.String()})
		return
	}
	logger.Info("stream finished", "status", res.Status.String(), "steps", res.Steps)

	resp := s.response(sessionID, res)
	if err := send(streamMessage{Type: msgResult, SessionID: sessionID, Status: res.Status.String(), Result: &resp}); err != nil {
		return
	}
	_ = ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, search.DoneState(res.Status).String()),
		time.Now().Add(writeWait))
}
