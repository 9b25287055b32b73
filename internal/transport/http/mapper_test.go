package http

import (
	"encoding/json"
	"testing"

	"github.com/codeboard/codeboard-server/internal/core"
	"github.com/codeboard/codeboard-server/internal/proto"
)

func inbound(t *testing.T, msgType string, data any) proto.Inbound {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return proto.Inbound{Type: msgType, Data: raw}
}

func TestInboundToCommandJoinRoom(t *testing.T) {
	cmd, protoErr, err := inboundToCommand(inbound(t, proto.InboundTypeJoinRoom, proto.JoinRoomData{RoomID: "abc"}))
	if err != nil || protoErr != nil {
		t.Fatalf("unexpected errors: %v %v", err, protoErr)
	}
	if cmd.Kind != core.CommandJoinRoom || cmd.Room != "abc" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandDrawing(t *testing.T) {
	cmd, protoErr, err := inboundToCommand(inbound(t, proto.InboundTypeDrawing, proto.DrawingData{
		Line:   proto.Line{Tool: "eraser", Color: "#fff", BrushSize: 2, Points: []float64{1, 2, 3, 4}},
		RoomID: "r",
	}))
	if err != nil || protoErr != nil {
		t.Fatalf("unexpected errors: %v %v", err, protoErr)
	}
	if cmd.Kind != core.CommandDrawing || cmd.Room != "r" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.Line.Tool != "eraser" || len(cmd.Line.Points) != 4 {
		t.Fatalf("line not mapped: %+v", cmd.Line)
	}
}

func TestInboundToCommandMissingRoom(t *testing.T) {
	cases := []proto.Inbound{
		inbound(t, proto.InboundTypeJoinRoom, proto.JoinRoomData{}),
		inbound(t, proto.InboundTypeDrawing, proto.DrawingData{Line: proto.Line{Points: []float64{1}}}),
		inbound(t, proto.InboundTypeUndo, proto.RoomData{}),
		inbound(t, proto.InboundTypeClearCanvas, proto.RoomData{}),
		inbound(t, proto.InboundTypeCodeChange, proto.CodeChangeData{Code: "x"}),
		inbound(t, proto.InboundTypeLanguageChange, proto.LanguageChangeData{Language: "python"}),
	}

	for _, in := range cases {
		cmd, protoErr, err := inboundToCommand(in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in.Type, err)
		}
		if cmd != nil || protoErr == nil || protoErr.Code != core.ErrCodeBadRequest {
			t.Fatalf("%s: expected bad_request, got cmd=%+v err=%+v", in.Type, cmd, protoErr)
		}
	}
}

func TestInboundToCommandDrawingRequiresPoints(t *testing.T) {
	_, protoErr, err := inboundToCommand(inbound(t, proto.InboundTypeDrawing, proto.DrawingData{RoomID: "r"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if protoErr == nil || protoErr.Code != core.ErrCodeBadRequest {
		t.Fatalf("expected bad_request for empty points, got %+v", protoErr)
	}
}

func TestInboundToCommandUnknownType(t *testing.T) {
	cmd, protoErr, err := inboundToCommand(proto.Inbound{Type: "teleport", Data: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != nil || protoErr == nil || protoErr.Code != core.ErrCodeInvalidMessage {
		t.Fatalf("expected invalid_message, got cmd=%+v err=%+v", cmd, protoErr)
	}
}

func TestInboundToCommandMalformedJSON(t *testing.T) {
	_, _, err := inboundToCommand(proto.Inbound{Type: proto.InboundTypeDrawing, Data: json.RawMessage(`{"line":`)})
	if err == nil {
		t.Fatalf("expected unmarshal error for malformed payload")
	}
}

func TestOutboundFromEventShapes(t *testing.T) {
	drawing := outboundFromEvent(&core.Event{
		Kind: core.EventDrawing,
		Room: "r",
		Line: &core.Line{Tool: "pen", Color: "#000", BrushSize: 1, Points: []float64{0, 0}},
	})
	if drawing.Type != proto.OutboundTypeEvent || drawing.Event != proto.EventDrawing {
		t.Fatalf("unexpected drawing outbound: %+v", drawing)
	}
	line, ok := drawing.Data.(proto.Line)
	if !ok || line.Tool != "pen" {
		t.Fatalf("unexpected drawing data: %+v", drawing.Data)
	}

	undo := outboundFromEvent(&core.Event{Kind: core.EventUndoLine, Room: "r"})
	if undo.Event != proto.EventUndoLine || undo.Data != nil {
		t.Fatalf("undo-line must carry no payload: %+v", undo)
	}

	cleared := outboundFromEvent(&core.Event{Kind: core.EventCanvasCleared, Room: "r"})
	if cleared.Event != proto.EventCanvasCleared || cleared.Data != nil {
		t.Fatalf("canvas-cleared must carry no payload: %+v", cleared)
	}

	coreErr := outboundFromEvent(&core.Event{
		Kind:  core.EventError,
		Error: &core.CoreError{Code: core.ErrCodeBadRequest, Message: "room is required"},
	})
	if coreErr.Type != proto.OutboundTypeError || coreErr.Error == nil || coreErr.Error.Code != core.ErrCodeBadRequest {
		t.Fatalf("unexpected error outbound: %+v", coreErr)
	}
}
