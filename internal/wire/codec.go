package wire

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"

	pb "github.com/rbright/windowcaster/proto/gen/go/windowcasterpb"
)

//go:generate protoc --proto_path=../../proto --go_out=../.. --go_opt=module=github.com/rbright/windowcaster windowcaster.proto

// ErrMalformed reports a payload that is not a well-formed protobuf message.
var ErrMalformed = errors.New("malformed payload")

// MarshalRequest encodes req as a ClientRequest message.
func MarshalRequest(req Request) ([]byte, error) {
	msg := &pb.ClientRequest{}
	switch req.Kind {
	case RequestListWindows:
		msg.Request = &pb.ClientRequest_GetWindowList{GetWindowList: &pb.GetWindowList{}}
	case RequestRender:
		if req.Render == nil {
			return nil, errors.New("render request without command")
		}
		cmd, err := renderToProto(*req.Render)
		if err != nil {
			return nil, err
		}
		msg.Request = &pb.ClientRequest_RenderCommand{RenderCommand: cmd}
	case RequestStopRender:
		if req.Stop == nil {
			return nil, errors.New("stop request without target")
		}
		msg.Request = &pb.ClientRequest_StopRender{StopRender: &pb.StopRender{TargetWindow: req.Stop.TargetWindow}}
	default:
		return nil, fmt.Errorf("cannot encode request kind %s", req.Kind)
	}
	return proto.Marshal(msg)
}

// UnmarshalRequest decodes a ClientRequest message. A message with no known
// request member decodes to RequestUnknown without error.
func UnmarshalRequest(b []byte) (Request, error) {
	var msg pb.ClientRequest
	if err := proto.Unmarshal(b, &msg); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch r := msg.GetRequest().(type) {
	case *pb.ClientRequest_GetWindowList:
		return ListWindowsRequest(), nil
	case *pb.ClientRequest_RenderCommand:
		return RenderRequest(renderFromProto(r.RenderCommand)), nil
	case *pb.ClientRequest_StopRender:
		return StopRenderRequest(r.StopRender.GetTargetWindow()), nil
	default:
		return Request{Kind: RequestUnknown}, nil
	}
}

// MarshalResponse encodes resp as a ServerResponse message. Window titles are
// proto3 strings, so invalid UTF-8 is replaced rather than failing the reply.
func MarshalResponse(resp Response) ([]byte, error) {
	msg := &pb.ServerResponse{}
	switch resp.Kind {
	case ResponseWindowList:
		list := &pb.WindowList{Windows: make([]*pb.WindowInfo, 0, len(resp.WindowList))}
		for _, entry := range resp.WindowList {
			list.Windows = append(list.Windows, &pb.WindowInfo{
				Handle:    entry.Handle,
				Title:     strings.ToValidUTF8(entry.Title, "\uFFFD"),
				ClassName: strings.ToValidUTF8(entry.ClassName, "\uFFFD"),
			})
		}
		msg.Response = &pb.ServerResponse_WindowList{WindowList: list}
	case ResponseStatus:
		msg.Response = &pb.ServerResponse_Status{Status: &pb.Status{
			Success: resp.Status.Success,
			Message: resp.Status.Message,
		}}
	default:
		return nil, errors.New("response has no populated variant")
	}
	return proto.Marshal(msg)
}

// UnmarshalResponse decodes a ServerResponse message.
func UnmarshalResponse(b []byte) (Response, error) {
	var msg pb.ServerResponse
	if err := proto.Unmarshal(b, &msg); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch r := msg.GetResponse().(type) {
	case *pb.ServerResponse_WindowList:
		windows := r.WindowList.GetWindows()
		entries := make([]WindowEntry, 0, len(windows))
		for _, w := range windows {
			entries = append(entries, WindowEntry{
				Handle:    w.GetHandle(),
				Title:     w.GetTitle(),
				ClassName: w.GetClassName(),
			})
		}
		return WindowListResponse(entries), nil
	case *pb.ServerResponse_Status:
		return StatusResponse(r.Status.GetSuccess(), r.Status.GetMessage()), nil
	default:
		return Response{}, nil
	}
}

func renderToProto(cmd RenderCommand) (*pb.RenderCommand, error) {
	msg := &pb.RenderCommand{TargetWindow: cmd.TargetWindow}
	switch cmd.Content {
	case ContentImage:
		msg.Content = &pb.RenderCommand_Image{Image: &pb.Image{
			Data:   cmd.Data,
			Width:  cmd.Width,
			Height: cmd.Height,
		}}
	case ContentVideo:
		msg.Content = &pb.RenderCommand_Video{Video: &pb.Video{
			FrameData: cmd.Data,
			Width:     cmd.Width,
			Height:    cmd.Height,
		}}
	default:
		return nil, fmt.Errorf("cannot encode render content kind %s", cmd.Content)
	}
	return msg, nil
}

// renderFromProto maps Image and Video, which share a field layout. A command
// without content keeps ContentUnknown so the dispatcher can reject it.
func renderFromProto(msg *pb.RenderCommand) RenderCommand {
	cmd := RenderCommand{TargetWindow: msg.GetTargetWindow()}
	switch c := msg.GetContent().(type) {
	case *pb.RenderCommand_Image:
		cmd.Content = ContentImage
		cmd.Data = c.Image.GetData()
		cmd.Width = c.Image.GetWidth()
		cmd.Height = c.Image.GetHeight()
	case *pb.RenderCommand_Video:
		cmd.Content = ContentVideo
		cmd.Data = c.Video.GetFrameData()
		cmd.Width = c.Video.GetWidth()
		cmd.Height = c.Video.GetHeight()
	}
	return cmd
}
