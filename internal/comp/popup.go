package comp

import (
	"fmt"

	"github.com/tidewl/tidewl/internal/platform"
)

// NewPopup attaches a transient surface under its parent's scene tree.
// The platform guarantees every popup a resolvable parent; failure here is
// a contract breach, not a recoverable condition.
func (s *Server) NewPopup(p platform.PopupID, parent platform.SurfaceRef) {
	if err := s.platform.AttachPopup(p, parent); err != nil {
		panic(fmt.Sprintf("popup %d has no resolvable parent: %v", p, err))
	}
	s.popups[p] = parent
}

// PopupCommitted answers the initial commit with an empty configure so the
// client can map. A more sophisticated compositor might adjust the popup's
// geometry here to keep it on-screen.
func (s *Server) PopupCommitted(p platform.PopupID, initial bool) {
	if initial {
		s.platform.SchedulePopupConfigure(p)
	}
}

// PopupDestroyed drops the tracking record; the scene node goes away with
// the parent's subtree.
func (s *Server) PopupDestroyed(p platform.PopupID) {
	delete(s.popups, p)
}
