package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoinRoom       = "join-room"
	InboundTypeDrawing        = "drawing"
	InboundTypeUndo           = "undo"
	InboundTypeClearCanvas    = "clear-canvas"
	InboundTypeCodeChange     = "code-change"
	InboundTypeLanguageChange = "language-change"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventDrawing        = "drawing"
	EventUndoLine       = "undo-line"
	EventCanvasCleared  = "canvas-cleared"
	EventCodeChange     = "code-change"
	EventLanguageChange = "language-change"
)

// Line is one whiteboard stroke on the wire. Points is a flat
// x1,y1,x2,y2,... sequence.
type Line struct {
	Tool      string    `json:"tool"`
	Color     string    `json:"color"`
	BrushSize float64   `json:"brushSize"`
	Points    []float64 `json:"points"`
}

// JoinRoomData requests to join a specific room.
type JoinRoomData struct {
	RoomID string `json:"roomId"`
}

// DrawingData carries a finished stroke for a room.
type DrawingData struct {
	Line   Line   `json:"line"`
	RoomID string `json:"roomId"`
}

// RoomData addresses a payload-free command (undo, clear-canvas) to a room.
type RoomData struct {
	RoomID string `json:"roomId"`
}

// CodeChangeData carries the full code buffer for a room.
type CodeChangeData struct {
	Code   string `json:"code"`
	RoomID string `json:"roomId"`
}

// LanguageChangeData carries the editor language for a room.
type LanguageChangeData struct {
	Language string `json:"language"`
	RoomID   string `json:"roomId"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventCodeChangeData is emitted to peers when the code buffer changes.
type EventCodeChangeData struct {
	Code string `json:"code"`
}

// EventLanguageChangeData is emitted to peers when the language changes.
type EventLanguageChangeData struct {
	Language string `json:"language"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
