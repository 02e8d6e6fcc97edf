package comp

import "github.com/tidewl/tidewl/internal/platform"

// NewInputDevice dispatches a hot-plugged device by class and republishes
// the seat's capabilities. Pointers attach straight to the shared cursor,
// which aggregates all of them; only keyboards get a tracking record.
func (s *Server) NewInputDevice(d platform.DeviceID, kind platform.DeviceType) {
	switch kind {
	case platform.DeviceKeyboard:
		s.newKeyboard(d)
	case platform.DevicePointer:
		s.platform.AttachPointer(d)
	}
	s.publishCapabilities()
}

func (s *Server) newKeyboard(d platform.DeviceID) {
	// Default keymap (layout "us") and fixed repeat tuning.
	s.platform.SetKeymapDefault(d)
	s.platform.SetRepeatInfo(d, s.bindings.RepeatRate, s.bindings.RepeatDelay)
	s.platform.SetSeatKeyboard(d)
	s.keyboards[d] = struct{}{}
}

// publishCapabilities advertises the seat's aggregate capability set. The
// pointer capability is always present: a cursor exists even with no
// pointer devices attached.
func (s *Server) publishCapabilities() {
	s.platform.SetCapabilities(len(s.keyboards) > 0, true)
}

// KeyboardModifiers re-points the seat at the event's source keyboard and
// forwards the modifier state to the focused client. The seat holds one
// keyboard at a time; swapping it on every event makes multiple connected
// keyboards work transparently, most recently active wins.
func (s *Server) KeyboardModifiers(d platform.DeviceID) {
	s.platform.SetSeatKeyboard(d)
	s.platform.NotifyKeyboardModifiers(d)
}

// KeyboardDestroyed releases the device record.
func (s *Server) KeyboardDestroyed(d platform.DeviceID) {
	delete(s.keyboards, d)
	s.publishCapabilities()
}
