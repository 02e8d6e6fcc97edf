package comp

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/tidewl/tidewl/internal/config"
	"github.com/tidewl/tidewl/internal/platform"
)

// fakePlatform records every call the core makes and answers queries from
// settable state. Surfaces are derived from toplevel ids so tests don't
// have to wire them by hand.
type fakePlatform struct {
	cursorX, cursorY float64
	hit              platform.Hit

	nodePos     map[platform.ToplevelID][2]int
	geo         map[platform.ToplevelID]platform.Box
	initialized map[platform.ToplevelID]bool
	titles      map[platform.ToplevelID]string

	sizes      []sizeCall
	activated  []activateCall
	raised     []platform.ToplevelID
	configures []platform.ToplevelID

	nextRect platform.RectID
	rectSize map[platform.RectID][2]int
	rectPos  map[platform.RectID][2]int

	popupParents    map[platform.PopupID]platform.SurfaceRef
	attachErr       error
	popupConfigures []platform.PopupID

	cursorImages     []string
	cursorSurfaces   []platform.SurfaceRef
	attachedPointers []platform.DeviceID

	pointerEnters  []enterCall
	pointerMotions int
	focusClears    int
	buttons        []buttonCall
	axes           int
	frames         int

	kbFocus       platform.SurfaceRef
	kbEnters      []platform.SurfaceRef
	forwardedKeys []keyCall
	notifiedMods  []platform.DeviceID
	seatKeyboard  platform.DeviceID
	capKeyboard   bool
	capPointer    bool
	selections    []platform.SelectionRef

	pointerClient   platform.ClientRef
	pointerClientOK bool
	focusedPID      int
	focusedPIDOK    bool

	keymaps    []platform.DeviceID
	repeatInfo map[platform.DeviceID][2]int32
	keysyms    map[uint32][]platform.Keysym
	modState   platform.Modifiers

	outputsInit   []platform.OutputID
	outputCommits []platform.OutputID

	terminated bool
}

type sizeCall struct {
	t             platform.ToplevelID
	width, height int
}

type activateCall struct {
	t         platform.ToplevelID
	activated bool
}

type enterCall struct {
	s      platform.SurfaceRef
	sx, sy float64
}

type buttonCall struct {
	button uint32
	state  platform.ButtonState
}

type keyCall struct {
	timeMsec uint32
	keycode  uint32
	state    platform.KeyState
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		nodePos:      make(map[platform.ToplevelID][2]int),
		geo:          make(map[platform.ToplevelID]platform.Box),
		initialized:  make(map[platform.ToplevelID]bool),
		titles:       make(map[platform.ToplevelID]string),
		rectSize:     make(map[platform.RectID][2]int),
		rectPos:      make(map[platform.RectID][2]int),
		popupParents: make(map[platform.PopupID]platform.SurfaceRef),
		repeatInfo:   make(map[platform.DeviceID][2]int32),
		keysyms:      make(map[uint32][]platform.Keysym),
	}
}

const surfaceBase platform.SurfaceRef = 0x1000

func surfaceFor(t platform.ToplevelID) platform.SurfaceRef {
	return surfaceBase + platform.SurfaceRef(t)
}

func (f *fakePlatform) HitTest(lx, ly float64) platform.Hit { return f.hit }

func (f *fakePlatform) RaiseToTop(t platform.ToplevelID) { f.raised = append(f.raised, t) }

func (f *fakePlatform) NodePosition(t platform.ToplevelID) (int, int) {
	p := f.nodePos[t]
	return p[0], p[1]
}

func (f *fakePlatform) SetNodePosition(t platform.ToplevelID, x, y int) {
	f.nodePos[t] = [2]int{x, y}
}

func (f *fakePlatform) Geometry(t platform.ToplevelID) platform.Box { return f.geo[t] }

func (f *fakePlatform) SetSize(t platform.ToplevelID, width, height int) {
	f.sizes = append(f.sizes, sizeCall{t, width, height})
}

func (f *fakePlatform) SetActivated(t platform.ToplevelID, activated bool) {
	f.activated = append(f.activated, activateCall{t, activated})
}

func (f *fakePlatform) ScheduleConfigure(t platform.ToplevelID) {
	f.configures = append(f.configures, t)
}

func (f *fakePlatform) Initialized(t platform.ToplevelID) bool { return f.initialized[t] }

func (f *fakePlatform) Title(t platform.ToplevelID) string { return f.titles[t] }

func (f *fakePlatform) ToplevelSurface(t platform.ToplevelID) platform.SurfaceRef {
	return surfaceFor(t)
}

func (f *fakePlatform) ToplevelForSurface(s platform.SurfaceRef) (platform.ToplevelID, bool) {
	if s <= surfaceBase {
		return 0, false
	}
	return platform.ToplevelID(s - surfaceBase), true
}

func (f *fakePlatform) CreateRect(t platform.ToplevelID, width, height int, color platform.Color) platform.RectID {
	f.nextRect++
	f.rectSize[f.nextRect] = [2]int{width, height}
	return f.nextRect
}

func (f *fakePlatform) SetRectSize(r platform.RectID, width, height int) {
	f.rectSize[r] = [2]int{width, height}
}

func (f *fakePlatform) SetRectPosition(r platform.RectID, x, y int) {
	f.rectPos[r] = [2]int{x, y}
}

func (f *fakePlatform) AttachPopup(p platform.PopupID, parent platform.SurfaceRef) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.popupParents[p] = parent
	return nil
}

func (f *fakePlatform) SchedulePopupConfigure(p platform.PopupID) {
	f.popupConfigures = append(f.popupConfigures, p)
}

func (f *fakePlatform) CursorPosition() (float64, float64) { return f.cursorX, f.cursorY }

func (f *fakePlatform) MoveCursor(d platform.DeviceID, dx, dy float64) {
	f.cursorX += dx
	f.cursorY += dy
}

func (f *fakePlatform) WarpCursorAbsolute(d platform.DeviceID, x, y float64) {
	f.cursorX, f.cursorY = x, y
}

func (f *fakePlatform) SetCursorImage(name string) {
	f.cursorImages = append(f.cursorImages, name)
}

func (f *fakePlatform) SetCursorSurface(s platform.SurfaceRef, hotspotX, hotspotY int32) {
	f.cursorSurfaces = append(f.cursorSurfaces, s)
}

func (f *fakePlatform) AttachPointer(d platform.DeviceID) {
	f.attachedPointers = append(f.attachedPointers, d)
}

func (f *fakePlatform) NotifyPointerEnter(s platform.SurfaceRef, sx, sy float64) {
	f.pointerEnters = append(f.pointerEnters, enterCall{s, sx, sy})
}

func (f *fakePlatform) NotifyPointerMotion(timeMsec uint32, sx, sy float64) { f.pointerMotions++ }

func (f *fakePlatform) ClearPointerFocus() { f.focusClears++ }

func (f *fakePlatform) NotifyPointerButton(timeMsec uint32, button uint32, state platform.ButtonState) {
	f.buttons = append(f.buttons, buttonCall{button, state})
}

func (f *fakePlatform) NotifyPointerAxis(timeMsec uint32, source uint32, orientation uint32, delta float64, deltaDiscrete int32) {
	f.axes++
}

func (f *fakePlatform) NotifyPointerFrame() { f.frames++ }

func (f *fakePlatform) NotifyKeyboardEnter(s platform.SurfaceRef) {
	f.kbFocus = s
	f.kbEnters = append(f.kbEnters, s)
}

func (f *fakePlatform) NotifyKeyboardKey(timeMsec uint32, keycode uint32, state platform.KeyState) {
	f.forwardedKeys = append(f.forwardedKeys, keyCall{timeMsec, keycode, state})
}

func (f *fakePlatform) NotifyKeyboardModifiers(d platform.DeviceID) {
	f.notifiedMods = append(f.notifiedMods, d)
}

func (f *fakePlatform) SetSeatKeyboard(d platform.DeviceID) { f.seatKeyboard = d }

func (f *fakePlatform) SetCapabilities(keyboard, pointer bool) {
	f.capKeyboard, f.capPointer = keyboard, pointer
}

func (f *fakePlatform) SetSelection(sel platform.SelectionRef) {
	f.selections = append(f.selections, sel)
}

func (f *fakePlatform) KeyboardFocusedSurface() (platform.SurfaceRef, bool) {
	return f.kbFocus, f.kbFocus != 0
}

func (f *fakePlatform) PointerFocusedClient() (platform.ClientRef, bool) {
	return f.pointerClient, f.pointerClientOK
}

func (f *fakePlatform) FocusedClientPID() (int, bool) { return f.focusedPID, f.focusedPIDOK }

func (f *fakePlatform) SetKeymapDefault(d platform.DeviceID) { f.keymaps = append(f.keymaps, d) }

func (f *fakePlatform) SetRepeatInfo(d platform.DeviceID, rate, delay int32) {
	f.repeatInfo[d] = [2]int32{rate, delay}
}

func (f *fakePlatform) Keysyms(d platform.DeviceID, keycode uint32) []platform.Keysym {
	return f.keysyms[keycode]
}

func (f *fakePlatform) ModifierState(d platform.DeviceID) platform.Modifiers { return f.modState }

func (f *fakePlatform) InitOutput(o platform.OutputID) { f.outputsInit = append(f.outputsInit, o) }

func (f *fakePlatform) CommitOutput(o platform.OutputID) {
	f.outputCommits = append(f.outputCommits, o)
}

func (f *fakePlatform) OutputName(o platform.OutputID) string { return fmt.Sprintf("FAKE-%d", o) }

func (f *fakePlatform) Terminate() { f.terminated = true }

// fakeProcs records launcher calls.
type fakeProcs struct {
	execs   []string
	kills   []int
	killErr error
}

func (f *fakeProcs) Exec(command string) { f.execs = append(f.execs, command) }

func (f *fakeProcs) Kill(pid int) error {
	f.kills = append(f.kills, pid)
	return f.killErr
}

func newTestServer(t *testing.T) (*Server, *fakePlatform, *fakeProcs) {
	t.Helper()
	bindings, err := config.DefaultConfig().Freeze()
	if err != nil {
		t.Fatalf("freezing default config: %v", err)
	}
	fp := newFakePlatform()
	procs := &fakeProcs{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(fp, bindings, procs, log), fp, procs
}

// mapWindow runs a toplevel through creation, first commit, and map.
func mapWindow(s *Server, fp *fakePlatform, t platform.ToplevelID, box platform.Box, nodeX, nodeY int) {
	fp.geo[t] = box
	s.NewToplevel(t)
	s.ToplevelCommitted(t, true)
	fp.initialized[t] = true
	fp.nodePos[t] = [2]int{nodeX, nodeY}
	s.ToplevelMapped(t)
}
