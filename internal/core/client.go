package core

// Client is one live board participant as seen by the core layer.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event

	// room is the client's current membership, "" when none.
	// Owned by the hub goroutine; never touched elsewhere.
	room string

	// done is closed by the hub exactly once on unregister,
	// stopping the client's command pump.
	done chan struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 8),
		done:     make(chan struct{}),
	}
}

// deliver hands an event to the client without blocking.
// A slow consumer loses the event rather than stalling the dispatch loop.
func (c *Client) deliver(event *Event) bool {
	select {
	case c.Events <- event:
		return true
	default:
		return false
	}
}
