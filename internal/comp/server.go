// Package comp implements the window-management core: the server context,
// the cursor interaction state machine, the focused-window registry, popup
// and device tracking, and keybinding dispatch. All state in this package
// is owned by the platform event loop; handlers run sequentially and never
// block.
package comp

import (
	"log/slog"

	"github.com/tidewl/tidewl/internal/config"
	"github.com/tidewl/tidewl/internal/platform"
)

// CursorMode determines how pointer motion is processed.
type CursorMode int

const (
	// CursorPassthrough forwards pointer events to clients.
	CursorPassthrough CursorMode = iota
	// CursorMove consumes motion to drag the grabbed window.
	CursorMove
	// CursorResize consumes motion to resize the grabbed window.
	CursorResize
)

// String returns the mode name.
func (m CursorMode) String() string {
	switch m {
	case CursorMove:
		return "move"
	case CursorResize:
		return "resize"
	default:
		return "passthrough"
	}
}

// ProcessManager is what the core needs from the process launcher.
type ProcessManager interface {
	Exec(command string)
	Kill(pid int) error
}

// WindowInfo is a registry snapshot entry, most recently focused first.
type WindowInfo struct {
	ID    uint32
	Title string
}

// StatusSink receives registry snapshots for readers outside the event
// loop (the control socket). Implementations must not call back into the
// core.
type StatusSink interface {
	PublishWindows(windows []WindowInfo)
}

// grab is the cursor grab state: which window is being interactively
// moved or resized, and the snapshot taken at grab start. The toplevel is
// a weak reference; it is cleared, never followed, once the window goes
// away.
type grab struct {
	toplevel platform.ToplevelID
	offsetX  float64
	offsetY  float64
	geobox   platform.Box
	edges    platform.Edges
}

// Server is the process-wide compositor context. It owns every registry
// and implements platform.Handler. Exactly one Server exists per process;
// it is constructed explicitly and passed by reference, never reached
// through package state.
type Server struct {
	log      *slog.Logger
	platform platform.Platform
	bindings *config.Bindings
	procs    ProcessManager
	status   StatusSink

	// Window registry: id -> record arena plus MRU focus order over the
	// mapped windows (front = most recently focused).
	windows map[platform.ToplevelID]*Window
	mru     []platform.ToplevelID

	popups    map[platform.PopupID]platform.SurfaceRef
	keyboards map[platform.DeviceID]struct{}
	outputs   map[platform.OutputID]struct{}

	cursorMode CursorMode
	grab       grab
}

var _ platform.Handler = (*Server)(nil)

// New constructs the server context.
func New(p platform.Platform, bindings *config.Bindings, procs ProcessManager, log *slog.Logger) *Server {
	return &Server{
		log:        log,
		platform:   p,
		bindings:   bindings,
		procs:      procs,
		windows:    make(map[platform.ToplevelID]*Window),
		popups:     make(map[platform.PopupID]platform.SurfaceRef),
		keyboards:  make(map[platform.DeviceID]struct{}),
		outputs:    make(map[platform.OutputID]struct{}),
		cursorMode: CursorPassthrough,
	}
}

// SetStatusSink attaches the snapshot consumer. Must be called before the
// event loop starts.
func (s *Server) SetStatusSink(sink StatusSink) {
	s.status = sink
}

// CursorMode reports the current interaction mode.
func (s *Server) CursorMode() CursorMode {
	return s.cursorMode
}

// GrabbedWindow reports the window currently being moved or resized, or
// zero when none is grabbed.
func (s *Server) GrabbedWindow() platform.ToplevelID {
	return s.grab.toplevel
}

// WindowOrder returns the registry's focus order, most recent first.
func (s *Server) WindowOrder() []platform.ToplevelID {
	order := make([]platform.ToplevelID, len(s.mru))
	copy(order, s.mru)
	return order
}

func (s *Server) publishStatus() {
	if s.status == nil {
		return
	}
	windows := make([]WindowInfo, 0, len(s.mru))
	for _, id := range s.mru {
		windows = append(windows, WindowInfo{ID: uint32(id), Title: s.platform.Title(id)})
	}
	s.status.PublishWindows(windows)
}
