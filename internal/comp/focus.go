package comp

import "github.com/tidewl/tidewl/internal/platform"

// focus gives t keyboard focus: the previously focused toplevel is
// deactivated, t is raised above its siblings, moved to the front of the
// registry order, activated, and the seat directs keyboard input to its
// surface. Focusing the already-focused window, or zero, is a no-op.
//
// Pointer focus is handled separately, by cursor passthrough motion.
func (s *Server) focus(t platform.ToplevelID) {
	if t == 0 {
		return
	}
	w := s.windows[t]
	if w == nil || !w.mapped {
		return
	}

	surface := s.platform.ToplevelSurface(t)
	prev, hadFocus := s.platform.KeyboardFocusedSurface()
	if hadFocus && prev == surface {
		// Don't re-focus an already focused surface.
		return
	}
	if hadFocus {
		// Deactivate the previously focused surface so the client repaints
		// accordingly, e.g. stops displaying a caret.
		if prevToplevel, ok := s.platform.ToplevelForSurface(prev); ok {
			s.platform.SetActivated(prevToplevel, false)
		}
	}

	s.platform.RaiseToTop(t)
	s.moveToFront(t)
	s.platform.SetActivated(t, true)
	// The seat routes subsequent key events to this surface on its own.
	s.platform.NotifyKeyboardEnter(surface)
	s.publishStatus()
}

// cycle focuses the least recently focused window. With fewer than two
// windows there is nothing to cycle to.
func (s *Server) cycle() {
	if len(s.mru) < 2 {
		return
	}
	s.focus(s.mru[len(s.mru)-1])
}

// closeFocused asks the kernel, not the client, to end whichever process
// owns the keyboard-focused surface. Best-effort and unconfirmed.
func (s *Server) closeFocused() {
	pid, ok := s.platform.FocusedClientPID()
	if !ok {
		return
	}
	s.log.Info("killing focused client", "pid", pid)
	if err := s.procs.Kill(pid); err != nil {
		s.log.Warn("failed to signal client", "pid", pid, "error", err)
	}
}

func (s *Server) moveToFront(t platform.ToplevelID) {
	s.removeFromOrder(t)
	s.mru = append([]platform.ToplevelID{t}, s.mru...)
}

func (s *Server) removeFromOrder(t platform.ToplevelID) {
	for i, id := range s.mru {
		if id == t {
			s.mru = append(s.mru[:i], s.mru[i+1:]...)
			return
		}
	}
}
