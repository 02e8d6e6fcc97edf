// Package platform is the boundary between the window-management core and
// the compositing platform. The core never touches platform objects
// directly: it receives typed events keyed by stable handles through the
// Handler interface and mutates platform state through the Platform
// interface. The backend owns the handle-to-object mapping.
package platform

// ToplevelID identifies a managed application window.
type ToplevelID uint32

// PopupID identifies a transient child surface.
type PopupID uint32

// DeviceID identifies an input device for the lifetime of its connection.
type DeviceID uint32

// OutputID identifies a connected display.
type OutputID uint32

// RectID identifies a solid-color scene rectangle (window decoration).
type RectID uint32

// SurfaceRef is an opaque reference to a platform surface. It is only ever
// compared or passed back to the platform, never dereferenced. Zero means
// "no surface".
type SurfaceRef uint64

// ClientRef is an opaque reference to the client connection owning a
// surface. Zero means "no client".
type ClientRef uint64

// SelectionRef is an opaque reference to a clipboard selection request.
type SelectionRef uint64

// Box is a rectangle in layout or surface-local coordinates.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Edges is a bitmask of window edges involved in a resize.
type Edges uint32

const (
	EdgeNone   Edges = 0
	EdgeTop    Edges = 1
	EdgeBottom Edges = 2
	EdgeLeft   Edges = 4
	EdgeRight  Edges = 8
)

// DeviceType classifies a hot-plugged input device.
type DeviceType int

const (
	DeviceUnknown DeviceType = iota
	DeviceKeyboard
	DevicePointer
)

// KeyState is the press state carried by a keyboard key event.
type KeyState int

const (
	KeyReleased KeyState = iota
	KeyPressed
)

// ButtonState is the press state carried by a pointer button event.
type ButtonState int

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
)

// Modifiers is the active keyboard modifier bitmask.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << 0
	ModCaps  Modifiers = 1 << 1
	ModCtrl  Modifiers = 1 << 2
	ModAlt   Modifiers = 1 << 3
	ModMod2  Modifiers = 1 << 4
	ModMod3  Modifiers = 1 << 5
	ModLogo  Modifiers = 1 << 6
	ModMod5  Modifiers = 1 << 7
)

// Hit is the result of a scene hit test at layout coordinates.
//
// Surface may be set while Toplevel is zero: the pointer can be over a
// surface (a popup, for example) that is not a managed window.
type Hit struct {
	Toplevel ToplevelID
	Surface  SurfaceRef
	SX       float64
	SY       float64
}

// Color is an RGBA decoration color with components in [0, 1].
type Color [4]float32

// Handler receives every platform event category the core manages. The
// backend calls exactly one method per delivered event, sequentially, on
// the event-loop thread.
type Handler interface {
	// Window (toplevel) lifecycle and requests.
	NewToplevel(t ToplevelID)
	ToplevelMapped(t ToplevelID)
	ToplevelUnmapped(t ToplevelID)
	ToplevelCommitted(t ToplevelID, initial bool)
	ToplevelDestroyed(t ToplevelID)
	ToplevelRequestMove(t ToplevelID)
	ToplevelRequestResize(t ToplevelID, edges Edges)
	ToplevelRequestMaximize(t ToplevelID)
	ToplevelRequestFullscreen(t ToplevelID)

	// Popup lifecycle.
	NewPopup(p PopupID, parent SurfaceRef)
	PopupCommitted(p PopupID, initial bool)
	PopupDestroyed(p PopupID)

	// Input devices.
	NewInputDevice(d DeviceID, kind DeviceType)
	KeyboardModifiers(d DeviceID)
	KeyboardKey(d DeviceID, timeMsec uint32, keycode uint32, state KeyState)
	KeyboardDestroyed(d DeviceID)

	// Outputs.
	NewOutput(o OutputID)
	OutputFrame(o OutputID)
	OutputDestroyed(o OutputID)

	// Pointer events, pre-aggregated by the shared cursor.
	PointerMotion(d DeviceID, timeMsec uint32, dx, dy float64)
	PointerMotionAbsolute(d DeviceID, timeMsec uint32, x, y float64)
	PointerButton(timeMsec uint32, button uint32, state ButtonState)
	PointerAxis(timeMsec uint32, source uint32, orientation uint32, delta float64, deltaDiscrete int32)
	PointerFrame()

	// Seat client requests.
	RequestSetCursorImage(client ClientRef, surface SurfaceRef, hotspotX, hotspotY int32)
	RequestSetSelection(sel SelectionRef)
}

// Platform exposes the compositing-platform operations the core needs.
// Scene-graph damage, rendering, and protocol marshaling stay behind it.
type Platform interface {
	// Scene graph.
	HitTest(lx, ly float64) Hit
	RaiseToTop(t ToplevelID)
	NodePosition(t ToplevelID) (x, y int)
	SetNodePosition(t ToplevelID, x, y int)

	// Toplevel state. Geometry is the surface-local geometry box.
	Geometry(t ToplevelID) Box
	SetSize(t ToplevelID, width, height int)
	SetActivated(t ToplevelID, activated bool)
	ScheduleConfigure(t ToplevelID)
	Initialized(t ToplevelID) bool
	Title(t ToplevelID) string
	ToplevelSurface(t ToplevelID) SurfaceRef
	ToplevelForSurface(s SurfaceRef) (ToplevelID, bool)

	// Decoration rectangles, owned by the toplevel's scene subtree.
	CreateRect(t ToplevelID, width, height int, color Color) RectID
	SetRectSize(r RectID, width, height int)
	SetRectPosition(r RectID, x, y int)

	// Popups. AttachPopup creates the popup's scene node under its parent's
	// tree; an unresolvable parent is a platform-contract breach.
	AttachPopup(p PopupID, parent SurfaceRef) error
	SchedulePopupConfigure(p PopupID)

	// Shared cursor.
	CursorPosition() (x, y float64)
	MoveCursor(d DeviceID, dx, dy float64)
	WarpCursorAbsolute(d DeviceID, x, y float64)
	SetCursorImage(name string)
	SetCursorSurface(s SurfaceRef, hotspotX, hotspotY int32)
	AttachPointer(d DeviceID)

	// Seat.
	NotifyPointerEnter(s SurfaceRef, sx, sy float64)
	NotifyPointerMotion(timeMsec uint32, sx, sy float64)
	ClearPointerFocus()
	NotifyPointerButton(timeMsec uint32, button uint32, state ButtonState)
	NotifyPointerAxis(timeMsec uint32, source uint32, orientation uint32, delta float64, deltaDiscrete int32)
	NotifyPointerFrame()
	NotifyKeyboardEnter(s SurfaceRef)
	NotifyKeyboardKey(timeMsec uint32, keycode uint32, state KeyState)
	NotifyKeyboardModifiers(d DeviceID)
	SetSeatKeyboard(d DeviceID)
	SetCapabilities(keyboard, pointer bool)
	SetSelection(sel SelectionRef)
	KeyboardFocusedSurface() (SurfaceRef, bool)
	PointerFocusedClient() (ClientRef, bool)
	FocusedClientPID() (pid int, ok bool)

	// Keyboard devices.
	SetKeymapDefault(d DeviceID)
	SetRepeatInfo(d DeviceID, rate, delay int32)
	Keysyms(d DeviceID, keycode uint32) []Keysym
	ModifierState(d DeviceID) Modifiers

	// Outputs. InitOutput configures rendering, enables the output with its
	// preferred mode, and inserts it into the shared layout and scene.
	InitOutput(o OutputID)
	CommitOutput(o OutputID)
	OutputName(o OutputID) string

	// Display control.
	Terminate()
}
