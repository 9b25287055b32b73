package http

import (
	"encoding/json"

	"github.com/codeboard/codeboard-server/internal/core"
	"github.com/codeboard/codeboard-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinRoom:
		var join proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		if join.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandJoinRoom,
			Room: join.RoomID,
		}, nil, nil
	case proto.InboundTypeDrawing:
		var drawing proto.DrawingData
		if err := json.Unmarshal(inbound.Data, &drawing); err != nil {
			return nil, nil, err
		}
		if drawing.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		if len(drawing.Line.Points) == 0 {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "line.points is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandDrawing,
			Room: drawing.RoomID,
			Line: &core.Line{
				Tool:      drawing.Line.Tool,
				Color:     drawing.Line.Color,
				BrushSize: drawing.Line.BrushSize,
				Points:    drawing.Line.Points,
			},
		}, nil, nil
	case proto.InboundTypeUndo, proto.InboundTypeClearCanvas:
		var room proto.RoomData
		if err := json.Unmarshal(inbound.Data, &room); err != nil {
			return nil, nil, err
		}
		if room.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		kind := core.CommandUndo
		if inbound.Type == proto.InboundTypeClearCanvas {
			kind = core.CommandClearCanvas
		}
		return &core.Command{
			Kind: kind,
			Room: room.RoomID,
		}, nil, nil
	case proto.InboundTypeCodeChange:
		var change proto.CodeChangeData
		if err := json.Unmarshal(inbound.Data, &change); err != nil {
			return nil, nil, err
		}
		if change.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandCodeChange,
			Room: change.RoomID,
			Code: change.Code,
		}, nil, nil
	case proto.InboundTypeLanguageChange:
		var change proto.LanguageChangeData
		if err := json.Unmarshal(inbound.Data, &change); err != nil {
			return nil, nil, err
		}
		if change.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}, nil
		}
		if change.Language == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "language is required"}, nil
		}
		return &core.Command{
			Kind:     core.CommandLanguageChange,
			Room:     change.RoomID,
			Language: change.Language,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: core.ErrCodeInvalidMessage, Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventDrawing:
		var line proto.Line
		if event.Line != nil {
			line = proto.Line{
				Tool:      event.Line.Tool,
				Color:     event.Line.Color,
				BrushSize: event.Line.BrushSize,
				Points:    event.Line.Points,
			}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventDrawing,
			Data:  line,
		}
	case core.EventUndoLine:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventUndoLine,
		}
	case core.EventCanvasCleared:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventCanvasCleared,
		}
	case core.EventCodeChange:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventCodeChange,
			Data:  proto.EventCodeChangeData{Code: event.Code},
		}
	case core.EventLanguageChange:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventLanguageChange,
			Data:  proto.EventLanguageChangeData{Language: event.Language},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
