package comp

import (
	"github.com/tidewl/tidewl/internal/config"
	"github.com/tidewl/tidewl/internal/platform"
)

// KeyboardKey resolves a key event against the binding tables. With the
// required modifier held on a press, every keysym the key produces is
// tried; if any matches a binding the event is consumed. Otherwise the raw
// key event, keycode and all, goes to the focused client.
func (s *Server) KeyboardKey(d platform.DeviceID, timeMsec uint32, keycode uint32, state platform.KeyState) {
	// Translate the evdev keycode to the xkb keycode space.
	syms := s.platform.Keysyms(d, keycode+8)

	handled := false
	modifiers := s.platform.ModifierState(d)
	if modifiers&s.bindings.Modifier != 0 && state == platform.KeyPressed {
		for _, sym := range syms {
			if s.dispatchBinding(sym) {
				handled = true
			}
		}
	}

	if !handled {
		s.platform.SetSeatKeyboard(d)
		s.platform.NotifyKeyboardKey(timeMsec, keycode, state)
	}
}

// dispatchBinding tries one keysym against the program table, then the
// action table. The program table wins when a keysym appears in both.
func (s *Server) dispatchBinding(sym platform.Keysym) bool {
	if command, ok := s.bindings.Programs[sym]; ok {
		s.log.Debug("launching bound program", "command", command)
		s.procs.Exec(command)
		return true
	}
	if action, ok := s.bindings.Actions[sym]; ok {
		s.applyAction(action)
		return true
	}
	return false
}

// applyAction executes a compositor action against the server context.
func (s *Server) applyAction(action config.Action) {
	switch action {
	case config.ActionCycle:
		s.cycle()
	case config.ActionCloseFocused:
		s.closeFocused()
	case config.ActionTerminate:
		s.platform.Terminate()
	}
}
