package server

import (
	"github.com/katalvlaran/waypoint/route"
	"github.com/katalvlaran/waypoint/search"
)

type edgeView struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

type nodeView struct {
	ID        string     `json:"id"`
	Row       float64    `json:"row"`
	Col       float64    `json:"col"`
	Lon       *float64   `json:"lon,omitempty"`
	Lat       *float64   `json:"lat,omitempty"`
	Neighbors []edgeView `json:"neighbors"`
}

type nearestView struct {
	nodeView
	Distance float64 `json:"distance"`
}

type roadView struct {
	A      string   `json:"a"`
	B      string   `json:"b"`
	Weight float64  `json:"weight"`
	Km     *float64 `json:"km,omitempty"`
}

type entryView struct {
	ID       string  `json:"id"`
	From     string  `json:"from"`
	Distance float64 `json:"distance"`
}

type stepView struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
}

type searchRequest struct {
	Algorithm   route.Algorithm `json:"algorithm"` // zero selects the configured default
	Start       string          `json:"start" binding:"required"`
	End         string          `json:"end" binding:"required"`
	Avoid       []string        `json:"avoid,omitempty"`
	MaxDistance float64         `json:"max_distance,omitempty"`
}

type searchResponse struct {
	SessionID string     `json:"session_id"`
	Algorithm string     `json:"algorithm"`
	Status    string     `json:"status"`
	Path      []stepView `json:"path"`
	Distance  float64    `json:"distance"`
	Km        *float64   `json:"km,omitempty"`
	Steps     int        `json:"steps"`
}

// Stream message types.
const (
	msgSession = "session"
	msgStep    = "step"
	msgResult  = "result"
	msgError   = "error"
)

type streamMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	Step      int             `json:"step,omitempty"`
	State     string          `json:"state,omitempty"`
	Status    string          `json:"status,omitempty"`
	Current   string          `json:"current,omitempty"`
	Visible   []entryView     `json:"visible,omitempty"`
	Visited   []entryView     `json:"visited,omitempty"`
	Result    *searchResponse `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func entries(in []search.Entry) []entryView {
	out := make([]entryView, len(in))
	for i, e := range in {
		out[i] = entryView{ID: e.ID, From: e.From, Distance: e.Distance}
	}

	return out
}

func steps(in []search.Step) []stepView {
	out := make([]stepView, len(in))
	for i, s := range in {
		out[i] = stepView{ID: s.ID, Distance: s.Distance}
	}

	return out
}

func snapshotMessage(snap route.Snapshot) streamMessage {
	return streamMessage{
		Type:    msgStep,
		Step:    snap.Step,
		State:   snap.State.String(),
		Status:  snap.Status.String(),
		Current: snap.Current,
		Visible: entries(snap.Visible),
		Visited: entries(snap.Visited),
	}
}
