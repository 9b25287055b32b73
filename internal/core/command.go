package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinRoom subscribes the client to a room.
	CommandJoinRoom CommandKind = iota
	// CommandDrawing relays a finished stroke to the room.
	CommandDrawing
	// CommandUndo asks the whole room to drop its last stroke.
	CommandUndo
	// CommandClearCanvas asks the whole room to wipe its canvas.
	CommandClearCanvas
	// CommandCodeChange relays the full code buffer to the room.
	CommandCodeChange
	// CommandLanguageChange relays the editor language to the room.
	CommandLanguageChange
)

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Room     string
	Line     *Line
	Code     string
	Language string
}
