package web

import (
	"github.com/samaamohammed255-droid/leaf-grace/internal/game"
)

// Client → server message. Type selects the action; the other fields are
// read only for the types that carry them.
//
//	start, restart          - reset and enter playing (identical)
//	dragStart, dragEnd      - gesture boundaries
//	dragMove                - ClientX in page pixels
//	surface                 - Left/Width/Height of the canvas rectangle
type clientMessage struct {
	Type    string  `json:"type"`
	ClientX float64 `json:"clientX"`
	Left    float64 `json:"left"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Server → client messages. A config message is sent once after the
// upgrade; snapshot messages follow at the broadcast rate.
type configMessage struct {
	Type             string  `json:"type"` // "config"
	LeafDiameter     float64 `json:"leafDiameter"`
	DropDiameter     float64 `json:"dropDiameter"`
	LeafBottomOffset float64 `json:"leafBottomOffset"`
	RippleLifetimeMs int64   `json:"rippleLifetimeMs"`
}

type snapshotMessage struct {
	Type    string       `json:"type"` // "snapshot"
	State   string       `json:"state"`
	Elapsed int          `json:"elapsed"`
	LeafX   float64      `json:"leafX"`
	Drops   []dropJSON   `json:"drops"`
	Ripples []rippleJSON `json:"ripples"`
}

type dropJSON struct {
	ID int     `json:"id"`
	X  float64 `json:"x"` // Percent of surface width
	Y  float64 `json:"y"` // Surface pixels
}

type rippleJSON struct {
	ID int     `json:"id"`
	X  float64 `json:"x"` // Surface pixels
	Y  float64 `json:"y"`
}

// newConfigMessage describes the tuning a client needs for drawing.
func newConfigMessage(p game.Params) configMessage {
	return configMessage{
		Type:             "config",
		LeafDiameter:     p.LeafDiameter,
		DropDiameter:     p.DropDiameter,
		LeafBottomOffset: p.LeafBottomOffset,
		RippleLifetimeMs: p.RippleLifetime.Milliseconds(),
	}
}

// newSnapshotMessage flattens a core snapshot for the wire. Empty sets
// encode as [] rather than null so the client can iterate blindly.
func newSnapshotMessage(snap game.Snapshot) snapshotMessage {
	msg := snapshotMessage{
		Type:    "snapshot",
		State:   snap.State.String(),
		Elapsed: snap.Elapsed,
		LeafX:   snap.LeafX,
		Drops:   make([]dropJSON, 0, len(snap.Drops)),
		Ripples: make([]rippleJSON, 0, len(snap.Ripples)),
	}
	for _, d := range snap.Drops {
		msg.Drops = append(msg.Drops, dropJSON{ID: d.ID, X: d.X, Y: d.Y})
	}
	for _, r := range snap.Ripples {
		msg.Ripples = append(msg.Ripples, rippleJSON{ID: r.ID, X: r.X, Y: r.Y})
	}
	return msg
}
