package core

import (
	"context"

	"github.com/rs/zerolog"
)

// Hub routes board events between clients. All registry mutation and
// fan-out happens on the single Run goroutine, so joins, leaves and
// relays are totally ordered and no relay ever observes a half-updated
// member set.
type Hub struct {
	log *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	inbound    chan inbound

	// stopped is closed when Run returns so that Register/Unregister
	// callers cannot block against a dead dispatch loop.
	stopped chan struct{}

	// Owned by the Run goroutine.
	rooms   map[string]*Room
	clients map[*Client]struct{}
}

type inbound struct {
	client  *Client
	command *Command
}

// NewHub creates a hub. Call Run to start dispatching.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		log:        logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inbound),
		stopped:    make(chan struct{}),
		rooms:      make(map[string]*Room),
		clients:    make(map[*Client]struct{}),
	}
}

// RegisterClient adds a client to the hub and starts consuming its commands.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.stopped:
	}
}

// UnregisterClient removes a client, clearing its room membership.
// Safe to call more than once; only the first call has an effect.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stopped:
	}
}

// Run processes registrations and client commands until ctx is canceled.
// Each command is handled to completion before the next one is taken.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)

	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			go h.pump(ctx, client)
			if h.log != nil {
				h.log.Debug().Str("client_id", client.ID).Msg("client registered")
			}

		case client := <-h.unregister:
			h.dropClient(client)

		case in := <-h.inbound:
			h.handleCommand(in.client, in.command)

		case <-ctx.Done():
			return
		}
	}
}

// pump forwards one client's commands into the hub's dispatch channel.
// It exits when the client is unregistered or the hub stops.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for {
		select {
		case cmd := <-c.Commands:
			select {
			case h.inbound <- inbound{client: c, command: cmd}:
			case <-c.done:
				return
			case <-ctx.Done():
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// dropClient runs the disconnect path exactly once per client.
func (h *Hub) dropClient(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.done)

	if c.room != "" {
		h.leaveRoom(c)
	}
	if h.log != nil {
		h.log.Debug().Str("client_id", c.ID).Msg("client unregistered")
	}
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	if cmd == nil {
		return
	}
	if cmd.Room == "" {
		// Transport validation should have caught this; drop rather
		// than let one bad command disturb the loop.
		if h.log != nil {
			h.log.Warn().Str("client_id", c.ID).Msg("command without room dropped")
		}
		c.deliver(&Event{
			Kind:  EventError,
			Error: &CoreError{Code: ErrCodeBadRequest, Message: "room is required"},
		})
		return
	}

	switch cmd.Kind {
	case CommandJoinRoom:
		h.joinRoom(c, cmd.Room)
	case CommandDrawing:
		h.relayExcept(c, cmd.Room, &Event{Kind: EventDrawing, Room: cmd.Room, Line: cmd.Line})
	case CommandCodeChange:
		h.relayExcept(c, cmd.Room, &Event{Kind: EventCodeChange, Room: cmd.Room, Code: cmd.Code})
	case CommandLanguageChange:
		h.relayExcept(c, cmd.Room, &Event{Kind: EventLanguageChange, Room: cmd.Room, Language: cmd.Language})
	case CommandUndo:
		h.relayAll(cmd.Room, &Event{Kind: EventUndoLine, Room: cmd.Room})
	case CommandClearCanvas:
		h.relayAll(cmd.Room, &Event{Kind: EventCanvasCleared, Room: cmd.Room})
	default:
		if h.log != nil {
			h.log.Warn().Str("client_id", c.ID).Int("kind", int(cmd.Kind)).Msg("unknown command kind dropped")
		}
	}
}

// joinRoom enforces single-room membership: joining a new room leaves
// the previous one first, and re-joining the current room is a no-op.
func (h *Hub) joinRoom(c *Client, name string) {
	if c.room == name {
		return
	}
	if c.room != "" {
		h.leaveRoom(c)
	}

	room, ok := h.rooms[name]
	if !ok {
		room = NewRoom(name)
		h.rooms[name] = room
	}
	room.AddClient(c)
	c.room = name

	if h.log != nil {
		h.log.Info().Str("client_id", c.ID).Str("room", name).Int("members", room.Len()).Msg("client joined room")
	}
}

func (h *Hub) leaveRoom(c *Client) {
	room, ok := h.rooms[c.room]
	if !ok {
		c.room = ""
		return
	}
	room.RemoveClient(c)
	if room.Empty() {
		delete(h.rooms, c.room)
		if h.log != nil {
			h.log.Info().Str("room", c.room).Msg("room reclaimed")
		}
	}
	c.room = ""
}

// relayExcept fans an event out to every room member but the sender.
// Unknown rooms are treated as empty: zero deliveries, no error.
func (h *Hub) relayExcept(sender *Client, name string, event *Event) {
	room, ok := h.rooms[name]
	if !ok {
		return
	}
	room.BroadcastExcept(sender, event)
}

// relayAll fans an event out to every room member, sender included.
func (h *Hub) relayAll(name string, event *Event) {
	room, ok := h.rooms[name]
	if !ok {
		return
	}
	room.Broadcast(event)
}
