// Command ws_smoke is a manual smoke client: it joins a room, sends one
// stroke and then prints every event it receives until the timeout.
// Run two copies with the same -room to watch the relay work.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/codeboard/codeboard-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	room := flag.String("room", "smoke", "room identifier")
	draw := flag.Bool("draw", true, "send a test stroke after joining")
	timeout := flag.Duration("timeout", 10*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(msgType string, data any) error {
		payload, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			return fmt.Errorf("marshal %s: %w", msgType, marshalErr)
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); writeErr != nil {
			return fmt.Errorf("send %s: %w", msgType, writeErr)
		}
		return nil
	}

	if err := send(proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomID: *room}); err != nil {
		return err
	}
	fmt.Printf("joined room %s\n", *room)

	if *draw {
		if err := send(proto.InboundTypeDrawing, proto.DrawingData{
			Line: proto.Line{
				Tool:      "pen",
				Color:     "#3366ff",
				BrushSize: 4,
				Points:    []float64{10, 10, 50, 50, 90, 10},
			},
			RoomID: *room,
		}); err != nil {
			return err
		}
		fmt.Println("sent test stroke")
	}

	for {
		var outbound struct {
			Type  string          `json:"type"`
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
			Error *proto.Error    `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		if outbound.Type == proto.OutboundTypeError && outbound.Error != nil {
			fmt.Printf("error: code=%s msg=%s\n", outbound.Error.Code, outbound.Error.Msg)
			continue
		}

		switch outbound.Event {
		case proto.EventDrawing:
			var line proto.Line
			if err := json.Unmarshal(outbound.Data, &line); err != nil {
				return fmt.Errorf("unmarshal drawing: %w", err)
			}
			fmt.Printf("drawing: tool=%s color=%s points=%v\n", line.Tool, line.Color, line.Points)
		case proto.EventUndoLine:
			fmt.Println("undo-line")
		case proto.EventCanvasCleared:
			fmt.Println("canvas-cleared")
		case proto.EventCodeChange:
			var change proto.EventCodeChangeData
			if err := json.Unmarshal(outbound.Data, &change); err == nil {
				fmt.Printf("code-change: %d bytes\n", len(change.Code))
			}
		case proto.EventLanguageChange:
			var change proto.EventLanguageChangeData
			if err := json.Unmarshal(outbound.Data, &change); err == nil {
				fmt.Printf("language-change: %s\n", change.Language)
			}
		default:
			fmt.Printf("event: %s\n", outbound.Event)
		}
	}
}
