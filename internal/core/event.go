package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventDrawing carries a stroke drawn by another participant.
	EventDrawing EventKind = iota
	// EventUndoLine tells every participant to drop its last stroke.
	EventUndoLine
	// EventCanvasCleared tells every participant to wipe its canvas.
	EventCanvasCleared
	// EventCodeChange carries the full code buffer from another participant.
	EventCodeChange
	// EventLanguageChange carries the editor language from another participant.
	EventLanguageChange
	// EventError notifies a client about a rejected command.
	EventError
)

// Event is sent to clients to describe what happened in their room.
// Payload fields are routed verbatim; the core never inspects them.
type Event struct {
	Kind     EventKind
	Room     string
	Line     *Line
	Code     string
	Language string
	Error    *CoreError
}

// Line is a single whiteboard stroke: a flat x,y point sequence plus
// the tool settings it was drawn with.
type Line struct {
	Tool      string
	Color     string
	BrushSize float64
	Points    []float64
}
