package comp

import "github.com/tidewl/tidewl/internal/platform"

// beginInteractive starts an interactive move or resize of t. From here on
// the compositor consumes pointer motion itself instead of forwarding it
// to clients, until the button is released or the window unmaps.
//
// For a move, the grab offset is the pointer's distance from the window's
// scene position. For a resize it is the distance from the dragged corner
// or edge: right/bottom edges measure from the far corner, so the dragged
// edge tracks the pointer exactly.
func (s *Server) beginInteractive(t platform.ToplevelID, mode CursorMode, edges platform.Edges) {
	w := s.windows[t]
	if w == nil || !w.mapped {
		return
	}

	s.grab.toplevel = t
	s.cursorMode = mode
	cx, cy := s.platform.CursorPosition()

	if mode == CursorMove {
		nodeX, nodeY := s.platform.NodePosition(t)
		s.grab.offsetX = cx - float64(nodeX)
		s.grab.offsetY = cy - float64(nodeY)
		return
	}

	geo := s.platform.Geometry(t)
	nodeX, nodeY := s.platform.NodePosition(t)

	borderX := nodeX + geo.X
	if edges&platform.EdgeRight != 0 {
		borderX += geo.Width
	}
	borderY := nodeY + geo.Y
	if edges&platform.EdgeBottom != 0 {
		borderY += geo.Height
	}
	s.grab.offsetX = cx - float64(borderX)
	s.grab.offsetY = cy - float64(borderY)

	// Snapshot the geometry box in layout coordinates.
	s.grab.geobox = geo
	s.grab.geobox.X += nodeX
	s.grab.geobox.Y += nodeY
	s.grab.edges = edges
}

// resetCursorMode returns to passthrough and clears the grab.
func (s *Server) resetCursorMode() {
	s.cursorMode = CursorPassthrough
	s.grab = grab{}
}

// processCursorMotion dispatches pointer motion on the current mode.
func (s *Server) processCursorMotion(timeMsec uint32) {
	switch s.cursorMode {
	case CursorMove:
		s.processCursorMove()
		return
	case CursorResize:
		s.processCursorResize()
		return
	}

	// Passthrough: find the surface under the pointer and send the event
	// along. The platform suppresses duplicate enter/motion notifications
	// itself.
	cx, cy := s.platform.CursorPosition()
	hit := s.platform.HitTest(cx, cy)
	if hit.Toplevel == 0 {
		s.platform.SetCursorImage("default")
	}
	if hit.Surface != 0 {
		s.platform.NotifyPointerEnter(hit.Surface, hit.SX, hit.SY)
		s.platform.NotifyPointerMotion(timeMsec, hit.SX, hit.SY)
	} else {
		// Clear pointer focus so future button events are not sent to the
		// last client to have the cursor over it.
		s.platform.ClearPointerFocus()
	}
}

func (s *Server) processCursorMove() {
	cx, cy := s.platform.CursorPosition()
	s.platform.SetNodePosition(s.grab.toplevel,
		int(cx-s.grab.offsetX), int(cy-s.grab.offsetY))
}

// processCursorResize recomputes the grabbed window's box from the grab
// snapshot and the current pointer position. Only edges in the grab
// bitmask move; a dragged edge that reaches the opposite fixed edge is
// clamped to 1 unit of separation, so the box never inverts or collapses.
func (s *Server) processCursorResize() {
	t := s.grab.toplevel
	cx, cy := s.platform.CursorPosition()
	borderX := cx - s.grab.offsetX
	borderY := cy - s.grab.offsetY

	newLeft := s.grab.geobox.X
	newRight := s.grab.geobox.X + s.grab.geobox.Width
	newTop := s.grab.geobox.Y
	newBottom := s.grab.geobox.Y + s.grab.geobox.Height

	if s.grab.edges&platform.EdgeTop != 0 {
		newTop = int(borderY)
		if newTop >= newBottom {
			newTop = newBottom - 1
		}
	} else if s.grab.edges&platform.EdgeBottom != 0 {
		newBottom = int(borderY)
		if newBottom <= newTop {
			newBottom = newTop + 1
		}
	}
	if s.grab.edges&platform.EdgeLeft != 0 {
		newLeft = int(borderX)
		if newLeft >= newRight {
			newLeft = newRight - 1
		}
	} else if s.grab.edges&platform.EdgeRight != 0 {
		newRight = int(borderX)
		if newRight <= newLeft {
			newRight = newLeft + 1
		}
	}

	// The scene node sits at the window's top-left minus its internal
	// geometry offset.
	geo := s.platform.Geometry(t)
	s.platform.SetNodePosition(t, newLeft-geo.X, newTop-geo.Y)
	s.platform.SetSize(t, newRight-newLeft, newBottom-newTop)
}

// PointerMotion handles a relative pointer motion delta.
func (s *Server) PointerMotion(d platform.DeviceID, timeMsec uint32, dx, dy float64) {
	// The cursor only moves when told to; the platform clamps the motion
	// to the output layout.
	s.platform.MoveCursor(d, dx, dy)
	s.processCursorMotion(timeMsec)
}

// PointerMotionAbsolute handles an absolute motion event (0..1 per axis).
func (s *Server) PointerMotionAbsolute(d platform.DeviceID, timeMsec uint32, x, y float64) {
	s.platform.WarpCursorAbsolute(d, x, y)
	s.processCursorMotion(timeMsec)
}

// PointerButton forwards the button to the focused client, then updates
// interaction state: any release ends move/resize, and a press focuses the
// window under the pointer.
func (s *Server) PointerButton(timeMsec uint32, button uint32, state platform.ButtonState) {
	s.platform.NotifyPointerButton(timeMsec, button, state)

	if state == platform.ButtonReleased {
		s.resetCursorMode()
		return
	}

	cx, cy := s.platform.CursorPosition()
	hit := s.platform.HitTest(cx, cy)
	s.focus(hit.Toplevel)
}

// PointerAxis forwards scroll events to the focused client.
func (s *Server) PointerAxis(timeMsec uint32, source uint32, orientation uint32, delta float64, deltaDiscrete int32) {
	s.platform.NotifyPointerAxis(timeMsec, source, orientation, delta, deltaDiscrete)
}

// PointerFrame forwards the event-group delimiter to the focused client.
func (s *Server) PointerFrame() {
	s.platform.NotifyPointerFrame()
}

// RequestSetCursorImage lets a client provide its own cursor surface. Any
// client can send this, so it is honored only from the client that
// actually holds pointer focus.
func (s *Server) RequestSetCursorImage(client platform.ClientRef, surface platform.SurfaceRef, hotspotX, hotspotY int32) {
	focused, ok := s.platform.PointerFocusedClient()
	if ok && focused == client {
		s.platform.SetCursorSurface(surface, hotspotX, hotspotY)
	}
}

// RequestSetSelection forwards a clipboard selection to the seat.
func (s *Server) RequestSetSelection(sel platform.SelectionRef) {
	s.platform.SetSelection(sel)
}
