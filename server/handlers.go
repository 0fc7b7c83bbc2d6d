package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/waypoint/cities"
	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/route"
	"github.com/katalvlaran/waypoint/search"
)

// ErrBadParameter marks a malformed query or body parameter.
var ErrBadParameter = errors.New("server: bad parameter")

// statusFor maps an error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrNodeNotFound), errors.Is(err, core.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, route.ErrStepBudget):
		return http.StatusUnprocessableEntity
	case errors.Is(err, route.ErrUnknownAlgorithm),
		errors.Is(err, search.ErrOptionViolation),
		errors.Is(err, route.ErrInvalidOption),
		errors.Is(err, ErrBadParameter):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "nodes": s.graph.Len()})
}

func (s *Server) node(n *core.Node) nodeView {
	p := n.Point()
	v := nodeView{ID: n.ID(), Row: p.Row(), Col: p.Col(), Neighbors: []edgeView{}}
	if s.geo {
		ll := cities.LonLat(p)
		lon, lat := ll.Lon(), ll.Lat()
		v.Lon, v.Lat = &lon, &lat
	}
	for _, e := range n.Edges() {
		v.Neighbors = append(v.Neighbors, edgeView{To: e.To, Weight: e.Weight})
	}

	return v
}

func (s *Server) handleNodes(c *gin.Context) {
	nodes := s.graph.Nodes()
	out := make([]nodeView, 0, len(nodes))
	for _, id := range s.graph.IDs() {
		out = append(out, s.node(nodes[id]))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleNearest(c *gin.Context) {
	row, err := floatQuery(c, "row")
	if err != nil {
		abort(c, err)
		return
	}
	col, err := floatQuery(c, "col")
	if err != nil {
		abort(c, err)
		return
	}

	hit, ok := s.index.Nearest(core.NewPoint(row, col))
	if !ok {
		abort(c, fmt.Errorf("%w: graph is empty", core.ErrNodeNotFound))
		return
	}
	n, _ := s.graph.Node(hit.ID)
	c.JSON(http.StatusOK, nearestView{nodeView: s.node(n), Distance: hit.Distance})
}

func (s *Server) handleRoads(c *gin.Context) {
	roads := cities.Roads(s.graph)
	out := make([]roadView, len(roads))
	for i, r := range roads {
		out[i] = roadView{A: r.A, B: r.B, Weight: r.Weight}
		if s.geo {
			km := r.Km
			out[i].Km = &km
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) canvas(c *gin.Context) (*cities.Canvas, error) {
	w, err := floatQuery(c, "width")
	if err != nil {
		return nil, err
	}
	h, err := floatQuery(c, "height")
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: width and height must be > 0", ErrBadParameter)
	}

	return cities.NewCanvas(s.graph, w, h), nil
}

func (s *Server) handleCanvas(c *gin.Context) {
	cv, err := s.canvas(c)
	if err != nil {
		abort(c, err)
		return
	}
	w, h := cv.Size()
	c.JSON(http.StatusOK, gin.H{"width": w, "height": h, "radius": cities.DotRadius, "dots": cv.Dots()})
}

func (s *Server) handleCanvasHit(c *gin.Context) {
	cv, err := s.canvas(c)
	if err != nil {
		abort(c, err)
		return
	}
	x, err := floatQuery(c, "x")
	if err != nil {
		abort(c, err)
		return
	}
	y, err := floatQuery(c, "y")
	if err != nil {
		abort(c, err)
		return
	}

	id, ok := cv.Hit(x, y)
	c.JSON(http.StatusOK, gin.H{"hit": ok, "id": id})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, fmt.Errorf("%w: %w", ErrBadParameter, err))
		return
	}
	algo := req.Algorithm
	if algo == 0 {
		algo = s.cfg.Search.ParsedAlgorithm()
	}
	sessionID := uuid.NewString()
	logger := s.logger.With("session_id", sessionID, "algorithm", algo.String())

	engine, err := route.New(s.graph, algo, req.Start, req.End, searchOptions(req.Avoid, req.MaxDistance)...)
	if err != nil {
		logger.Warn("search rejected", "error", err)
		abort(c, err)
		return
	}

	start := time.Now()
	res, err := route.Drive(c.Request.Context(), engine, route.WithMaxSteps(s.cfg.Search.MaxSteps))
	s.metrics.observe(res, time.Since(start))
	if err != nil {
		logger.Warn("search aborted", "steps", res.Steps, "error", err)
		abort(c, err)
		return
	}
	logger.Info("search finished", "status", res.Status.String(), "steps", res.Steps)

	c.Header("X-Session-ID", sessionID)
	c.JSON(http.StatusOK, s.response(sessionID, res))
}

func (s *Server) response(sessionID string, res route.Result) searchResponse {
	out := searchResponse{
		SessionID: sessionID,
		Algorithm: res.Algorithm.String(),
		Status:    res.Status.String(),
		Path:      steps(res.Path),
		Distance:  res.Distance(),
		Steps:     res.Steps,
	}
	if s.geo && res.Found() {
		if km, err := cities.GreatCircleKm(s.graph, res.IDs()); err == nil {
			out.Km = &km
		}
	}

	return out
}

func searchOptions(avoid []string, maxDistance float64) []search.Option {
	var opts []search.Option
	if len(avoid) > 0 {
		opts = append(opts, search.WithAvoid(avoid...))
	}
	if maxDistance != 0 {
		opts = append(opts, search.WithMaxDistance(maxDistance))
	}

	return opts
}

func floatQuery(c *gin.Context, key string) (float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", ErrBadParameter, key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadParameter, key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be finite", ErrBadParameter, key)
	}

	return v, nil
}
