package comp

import "github.com/tidewl/tidewl/internal/platform"

// borderColor is the decoration color for all four window borders.
var borderColor = platform.Color{1.0, 0.647, 0.0, 1.0}

// Window is one managed application window. It owns its four border
// rectangles; the scene subtree itself is owned by the platform and torn
// down with the toplevel.
type Window struct {
	id     platform.ToplevelID
	mapped bool

	// Decoration rectangles, one per side.
	borderTop    platform.RectID
	borderBottom platform.RectID
	borderLeft   platform.RectID
	borderRight  platform.RectID
}

// NewToplevel allocates the window record and its decorations. The window
// is not yet in the registry order; it joins on map.
func (s *Server) NewToplevel(t platform.ToplevelID) {
	bw := s.bindings.BorderWidth
	w := &Window{
		id:           t,
		borderTop:    s.platform.CreateRect(t, 0, bw, borderColor),
		borderBottom: s.platform.CreateRect(t, 0, bw, borderColor),
		borderLeft:   s.platform.CreateRect(t, bw, 0, borderColor),
		borderRight:  s.platform.CreateRect(t, bw, 0, borderColor),
	}
	// Real extents arrive with the first commit.
	s.platform.SetRectPosition(w.borderTop, 0, -bw)
	s.platform.SetRectPosition(w.borderLeft, -bw, 0)
	s.windows[t] = w
}

// ToplevelMapped inserts the window at the front of the registry and
// focuses it.
func (s *Server) ToplevelMapped(t platform.ToplevelID) {
	w := s.windows[t]
	if w == nil {
		return
	}
	w.mapped = true
	s.moveToFront(t)
	s.focus(t)
	s.publishStatus()
}

// ToplevelUnmapped removes the window from the registry. If it was being
// interactively moved or resized, the grab is cleared first so the grab
// state never points at an unmapped window.
func (s *Server) ToplevelUnmapped(t platform.ToplevelID) {
	if s.grab.toplevel == t {
		s.resetCursorMode()
	}
	if w := s.windows[t]; w != nil {
		w.mapped = false
	}
	s.removeFromOrder(t)
	s.publishStatus()
}

// ToplevelCommitted handles a committed surface state. The initial commit
// is answered with a 0x0 configure so the client picks its own size; every
// commit refits the borders to the current geometry box.
func (s *Server) ToplevelCommitted(t platform.ToplevelID, initial bool) {
	w := s.windows[t]
	if w == nil {
		return
	}
	if initial {
		s.platform.SetSize(t, 0, 0)
	}
	s.layoutBorders(w)
}

// layoutBorders places the four rectangles immediately outside the
// geometry box.
func (s *Server) layoutBorders(w *Window) {
	geo := s.platform.Geometry(w.id)
	bw := s.bindings.BorderWidth

	s.platform.SetRectSize(w.borderTop, geo.Width, bw)
	s.platform.SetRectSize(w.borderBottom, geo.Width, bw)
	s.platform.SetRectSize(w.borderLeft, bw, geo.Height)
	s.platform.SetRectSize(w.borderRight, bw, geo.Height)

	s.platform.SetRectPosition(w.borderTop, geo.X, geo.Y-bw)
	s.platform.SetRectPosition(w.borderBottom, geo.X, geo.Y+geo.Height)
	s.platform.SetRectPosition(w.borderLeft, geo.X-bw, geo.Y)
	s.platform.SetRectPosition(w.borderRight, geo.X+geo.Width, geo.Y)
}

// ToplevelDestroyed releases the window record. Unmap normally precedes
// destroy, but the registry and grab are cleared here too so a weak
// reference can never outlive the record.
func (s *Server) ToplevelDestroyed(t platform.ToplevelID) {
	if s.grab.toplevel == t {
		s.resetCursorMode()
	}
	s.removeFromOrder(t)
	delete(s.windows, t)
	s.publishStatus()
}

// ToplevelRequestMove starts an interactive move. The request is honored
// without serial validation; see DESIGN.md.
func (s *Server) ToplevelRequestMove(t platform.ToplevelID) {
	s.beginInteractive(t, CursorMove, platform.EdgeNone)
}

// ToplevelRequestResize starts an interactive resize along edges.
func (s *Server) ToplevelRequestResize(t platform.ToplevelID, edges platform.Edges) {
	s.beginInteractive(t, CursorResize, edges)
}

// ToplevelRequestMaximize acknowledges a maximize request with an empty
// configure; maximization itself is not supported. Requests that arrive
// before the initial commit are left for the client to finish setup.
func (s *Server) ToplevelRequestMaximize(t platform.ToplevelID) {
	if s.platform.Initialized(t) {
		s.platform.ScheduleConfigure(t)
	}
}

// ToplevelRequestFullscreen is acknowledged the same way as maximize.
func (s *Server) ToplevelRequestFullscreen(t platform.ToplevelID) {
	if s.platform.Initialized(t) {
		s.platform.ScheduleConfigure(t)
	}
}
