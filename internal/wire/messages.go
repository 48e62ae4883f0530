// Package wire defines the request/response payloads carried inside frames and
// their protobuf encoding (see proto/windowcaster.proto).
package wire

// RequestKind tags the populated Request variant.
type RequestKind int

const (
	RequestUnknown RequestKind = iota
	RequestListWindows
	RequestRender
	RequestStopRender
)

func (k RequestKind) String() string {
	switch k {
	case RequestListWindows:
		return "list_windows"
	case RequestRender:
		return "render"
	case RequestStopRender:
		return "stop_render"
	default:
		return "unknown"
	}
}

// ContentKind tags the frame content of a render command.
type ContentKind int

const (
	ContentUnknown ContentKind = iota
	ContentImage
	ContentVideo
)

func (k ContentKind) String() string {
	switch k {
	case ContentImage:
		return "image"
	case ContentVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Request is a decoded client request. Render and Stop are set only for
// their matching Kind.
type Request struct {
	Kind   RequestKind
	Render *RenderCommand
	Stop   *StopRender
}

// RenderCommand asks the server to paint one frame onto TargetWindow.
//
// Width and Height of zero mean Data is an encoded image file; otherwise Data
// is packed RGB24.
type RenderCommand struct {
	TargetWindow uint64
	Content      ContentKind
	Data         []byte
	Width        uint32
	Height       uint32
}

// StopRender asks the server to clear TargetWindow.
type StopRender struct {
	TargetWindow uint64
}

// WindowEntry is one enumerated window. Handle is opaque to the protocol.
type WindowEntry struct {
	Handle    uint64
	Title     string
	ClassName string
}

// Status is a success flag plus a human-readable message.
type Status struct {
	Success bool
	Message string
}

// ResponseKind tags the populated Response variant.
type ResponseKind int

const (
	ResponseNone ResponseKind = iota
	ResponseWindowList
	ResponseStatus
)

// Response carries exactly one of WindowList or Status, selected by Kind.
type Response struct {
	Kind       ResponseKind
	WindowList []WindowEntry
	Status     Status
}

// ListWindowsRequest builds a window enumeration request.
func ListWindowsRequest() Request {
	return Request{Kind: RequestListWindows}
}

// RenderRequest builds a render request.
func RenderRequest(cmd RenderCommand) Request {
	return Request{Kind: RequestRender, Render: &cmd}
}

// StopRenderRequest builds a stop request for target.
func StopRenderRequest(target uint64) Request {
	return Request{Kind: RequestStopRender, Stop: &StopRender{TargetWindow: target}}
}

// WindowListResponse builds a window list reply. An empty list is still a
// populated variant.
func WindowListResponse(entries []WindowEntry) Response {
	return Response{Kind: ResponseWindowList, WindowList: entries}
}

// StatusResponse builds a status reply.
func StatusResponse(success bool, message string) Response {
	return Response{Kind: ResponseStatus, Status: Status{Success: success, Message: message}}
}
