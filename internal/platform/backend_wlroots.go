//go:build linux && cgo

package platform

import (
	"errors"
	"time"

	"github.com/swaywm/go-wlroots/wlroots"
	"github.com/swaywm/go-wlroots/xkb"
)

// Backend drives a wlroots session and adapts it to the Platform and
// Handler interfaces. It owns every wlroots object and the handle maps;
// nothing outside this file touches a wlroots type.
//
// All callbacks fire on the wayland event loop, so the maps need no
// locking.
type Backend struct {
	handler Handler

	display     wlroots.Display
	backend     wlroots.Backend
	renderer    wlroots.Renderer
	allocator   wlroots.Allocator
	scene       wlroots.Scene
	sceneLayout wlroots.SceneOutputLayout

	xdgShell     wlroots.XDGShell
	cursor       wlroots.Cursor
	cursorMgr    wlroots.XCursorManager
	seat         wlroots.Seat
	outputLayout wlroots.OutputLayout

	nextToplevel  ToplevelID
	nextPopup     PopupID
	nextDevice    DeviceID
	nextOutput    OutputID
	nextRect      RectID
	nextSurface   SurfaceRef
	nextClient    ClientRef
	nextSelection SelectionRef

	toplevels    map[ToplevelID]*toplevelState
	toplevelByTL map[wlroots.XDGTopLevel]ToplevelID
	popups       map[PopupID]*popupState
	devices      map[DeviceID]*deviceState
	deviceIDs    map[wlroots.InputDevice]DeviceID
	outputs      map[OutputID]wlroots.Output
	rects        map[RectID]wlroots.SceneRect

	surfaceRefs map[wlroots.Surface]SurfaceRef
	surfaces    map[SurfaceRef]wlroots.Surface
	clientRefs  map[wlroots.SeatClient]ClientRef
	clients     map[ClientRef]wlroots.SeatClient
	selections  map[SelectionRef]selectionState
}

type toplevelState struct {
	xdg       wlroots.XDGSurface
	top       wlroots.XDGTopLevel
	tree      wlroots.SceneTree
	committed bool
}

type popupState struct {
	xdg       wlroots.XDGSurface
	committed bool
}

type deviceState struct {
	dev      wlroots.InputDevice
	keyboard wlroots.Keyboard
}

type selectionState struct {
	source wlroots.DataSource
	serial uint32
}

var _ Platform = (*Backend)(nil)

// NewBackend creates the wlroots session: display, backend, renderer,
// allocator, scene graph, xdg-shell, cursor, and seat. The session is not
// running until Start.
func NewBackend() (*Backend, error) {
	b := &Backend{
		toplevels:    make(map[ToplevelID]*toplevelState),
		toplevelByTL: make(map[wlroots.XDGTopLevel]ToplevelID),
		popups:       make(map[PopupID]*popupState),
		devices:      make(map[DeviceID]*deviceState),
		deviceIDs:    make(map[wlroots.InputDevice]DeviceID),
		outputs:      make(map[OutputID]wlroots.Output),
		rects:        make(map[RectID]wlroots.SceneRect),
		surfaceRefs:  make(map[wlroots.Surface]SurfaceRef),
		surfaces:     make(map[SurfaceRef]wlroots.Surface),
		clientRefs:   make(map[wlroots.SeatClient]ClientRef),
		clients:      make(map[ClientRef]wlroots.SeatClient),
		selections:   make(map[SelectionRef]selectionState),
	}

	var err error
	b.display = wlroots.NewDisplay()
	b.backend, err = b.display.BackendAutocreate()
	if err != nil {
		return nil, err
	}
	b.renderer, err = b.backend.RendererAutoCreate()
	if err != nil {
		return nil, err
	}
	b.renderer.InitDisplay(b.display)
	b.allocator, err = b.backend.AllocatorAutocreate(b.renderer)
	if err != nil {
		return nil, err
	}

	// Compositor, subcompositor, and data device manager are hands-off
	// wlroots interfaces. The data device manager handles the clipboard;
	// clients still cannot set the selection without our approval.
	b.display.CompositorCreate(5, b.renderer)
	b.display.SubCompositorCreate()
	b.display.DataDeviceManagerCreate()

	b.outputLayout = wlroots.NewOutputLayout()
	b.backend.OnNewOutput(b.handleNewOutput)

	b.scene = wlroots.NewScene()
	b.sceneLayout = b.scene.AttachOutputLayout(b.outputLayout)

	b.xdgShell = b.display.XDGShellCreate(3)
	b.xdgShell.OnNewSurface(b.handleNewXDGSurface)

	b.cursor = wlroots.NewCursor()
	b.cursor.AttachOutputLayout(b.outputLayout)
	b.cursorMgr = wlroots.NewXCursorManager("", 24)
	b.cursor.OnMotion(b.handleCursorMotion)
	b.cursor.OnMotionAbsolute(b.handleCursorMotionAbsolute)
	b.cursor.OnButton(b.handleCursorButton)
	b.cursor.OnAxis(b.handleCursorAxis)
	b.cursor.OnFrame(b.handleCursorFrame)
	b.cursorMgr.Load(1)

	b.backend.OnNewInput(b.handleNewInput)
	b.seat = b.display.SeatCreate("seat0")
	b.seat.OnSetCursorRequest(b.handleSetCursorRequest)
	b.seat.OnRequestSetSelection(b.handleRequestSetSelection)

	return b, nil
}

// SetHandler attaches the event consumer. Must be called before Start.
func (b *Backend) SetHandler(h Handler) {
	b.handler = h
}

// Start adds the wayland socket and starts the backend (enumerating
// outputs and inputs, becoming DRM master). Returns the socket name for
// WAYLAND_DISPLAY.
func (b *Backend) Start() (string, error) {
	socket, err := b.display.AddSocketAuto()
	if err != nil {
		b.backend.Destroy()
		return "", err
	}
	if err := b.backend.Start(); err != nil {
		b.backend.Destroy()
		b.display.Destroy()
		return "", err
	}
	return socket, nil
}

// Run blocks in the wayland event loop until Terminate, then tears the
// session down.
func (b *Backend) Run() {
	b.display.Run()
	b.Destroy()
}

// Destroy tears down the wlroots session: clients first, then the scene,
// cursor manager, output layout, and finally the display. Also the
// fatal-startup path for failures after NewBackend succeeded.
func (b *Backend) Destroy() {
	b.display.DestroyClients()
	b.scene.Tree().Node().Destroy()
	b.cursorMgr.Destroy()
	b.outputLayout.Destroy()
	b.display.Destroy()
}

// Terminate stops the event loop. Safe to call from within a handler.
func (b *Backend) Terminate() {
	b.display.Terminate()
}

// refSurface returns the stable handle for a wlroots surface, allocating
// one on first sight.
func (b *Backend) refSurface(s wlroots.Surface) SurfaceRef {
	if ref, ok := b.surfaceRefs[s]; ok {
		return ref
	}
	b.nextSurface++
	b.surfaceRefs[s] = b.nextSurface
	b.surfaces[b.nextSurface] = s
	return b.nextSurface
}

func (b *Backend) dropSurface(s wlroots.Surface) {
	if ref, ok := b.surfaceRefs[s]; ok {
		delete(b.surfaces, ref)
		delete(b.surfaceRefs, s)
	}
}

func (b *Backend) refClient(c wlroots.SeatClient) ClientRef {
	if ref, ok := b.clientRefs[c]; ok {
		return ref
	}
	b.nextClient++
	b.clientRefs[c] = b.nextClient
	b.clients[b.nextClient] = c
	return b.nextClient
}

// handleNewXDGSurface dispatches a new xdg surface by role.
func (b *Backend) handleNewXDGSurface(xdg wlroots.XDGSurface) {
	if xdg.Role() == wlroots.XDGSurfaceRolePopup {
		b.handleNewPopup(xdg)
		return
	}
	if xdg.Role() != wlroots.XDGSurfaceRoleTopLevel {
		return
	}

	top := xdg.TopLevel()
	tree := b.scene.Tree().NewXDGSurface(top.Base())

	b.nextToplevel++
	id := b.nextToplevel
	b.toplevels[id] = &toplevelState{xdg: xdg, top: top, tree: tree}
	b.toplevelByTL[top] = id

	xdg.OnMap(func(wlroots.XDGSurface) {
		b.handler.ToplevelMapped(id)
	})
	xdg.OnUnmap(func(wlroots.XDGSurface) {
		b.handler.ToplevelUnmapped(id)
	})
	xdg.OnDestroy(func(wlroots.XDGSurface) {
		state := b.toplevels[id]
		b.dropSurface(state.xdg.Surface())
		delete(b.toplevelByTL, state.top)
		delete(b.toplevels, id)
		b.handler.ToplevelDestroyed(id)
	})
	xdg.Surface().OnCommit(func(wlroots.Surface) {
		state := b.toplevels[id]
		initial := !state.committed
		state.committed = true
		b.handler.ToplevelCommitted(id, initial)
	})
	top.OnRequestMove(func(client wlroots.SeatClient, serial uint32) {
		b.handler.ToplevelRequestMove(id)
	})
	top.OnRequestResize(func(client wlroots.SeatClient, serial uint32, edges wlroots.Edges) {
		b.handler.ToplevelRequestResize(id, Edges(edges))
	})
	top.OnRequestMaximize(func() {
		b.handler.ToplevelRequestMaximize(id)
	})
	top.OnRequestFullscreen(func() {
		b.handler.ToplevelRequestFullscreen(id)
	})

	b.handler.NewToplevel(id)
}

func (b *Backend) handleNewPopup(xdg wlroots.XDGSurface) {
	b.nextPopup++
	id := b.nextPopup
	b.popups[id] = &popupState{xdg: xdg}

	xdg.OnDestroy(func(wlroots.XDGSurface) {
		delete(b.popups, id)
		b.handler.PopupDestroyed(id)
	})
	xdg.Surface().OnCommit(func(wlroots.Surface) {
		state, ok := b.popups[id]
		if !ok {
			return
		}
		initial := !state.committed
		state.committed = true
		b.handler.PopupCommitted(id, initial)
	})

	parent := xdg.Popup().Parent()
	var parentRef SurfaceRef
	if !parent.Nil() {
		parentRef = b.refSurface(parent)
	}
	b.handler.NewPopup(id, parentRef)
}

// handleNewInput registers a hot-plugged device and forwards it by class.
func (b *Backend) handleNewInput(dev wlroots.InputDevice) {
	b.nextDevice++
	id := b.nextDevice
	state := &deviceState{dev: dev}
	b.devices[id] = state
	b.deviceIDs[dev] = id

	var kind DeviceType
	switch dev.Type() {
	case wlroots.InputDeviceTypeKeyboard:
		kind = DeviceKeyboard
		state.keyboard = dev.Keyboard()
		state.keyboard.OnModifiers(func(wlroots.Keyboard) {
			b.handler.KeyboardModifiers(id)
		})
		state.keyboard.OnKey(func(k wlroots.Keyboard, timeMsec uint32, keyCode uint32, updateState bool, keyState wlroots.KeyState) {
			b.handler.KeyboardKey(id, timeMsec, keyCode, keyStateFromWLR(keyState))
		})
		dev.OnDestroy(func(wlroots.InputDevice) {
			delete(b.deviceIDs, dev)
			delete(b.devices, id)
			b.handler.KeyboardDestroyed(id)
		})
	case wlroots.InputDeviceTypePointer:
		kind = DevicePointer
	default:
		kind = DeviceUnknown
	}

	b.handler.NewInputDevice(id, kind)
}

func (b *Backend) handleNewOutput(output wlroots.Output) {
	b.nextOutput++
	id := b.nextOutput
	b.outputs[id] = output

	output.OnFrame(func(wlroots.Output) {
		b.handler.OutputFrame(id)
	})
	output.OnRequestState(func(o wlroots.Output, state wlroots.OutputState) {
		// Wayland and X11 backends request a new mode when their window is
		// resized.
		o.CommitState(state)
	})
	output.OnDestroy(func(wlroots.Output) {
		delete(b.outputs, id)
		b.handler.OutputDestroyed(id)
	})

	b.handler.NewOutput(id)
}

func (b *Backend) handleCursorMotion(dev wlroots.InputDevice, timeMsec uint32, dx, dy float64) {
	b.handler.PointerMotion(b.deviceIDs[dev], timeMsec, dx, dy)
}

func (b *Backend) handleCursorMotionAbsolute(dev wlroots.InputDevice, timeMsec uint32, x, y float64) {
	b.handler.PointerMotionAbsolute(b.deviceIDs[dev], timeMsec, x, y)
}

func (b *Backend) handleCursorButton(dev wlroots.InputDevice, timeMsec uint32, button uint32, state wlroots.ButtonState) {
	b.handler.PointerButton(timeMsec, button, buttonStateFromWLR(state))
}

func (b *Backend) handleCursorAxis(dev wlroots.InputDevice, timeMsec uint32, source wlroots.AxisSource, orientation wlroots.AxisOrientation, delta float64, deltaDiscrete int32) {
	b.handler.PointerAxis(timeMsec, uint32(source), uint32(orientation), delta, deltaDiscrete)
}

func (b *Backend) handleCursorFrame() {
	b.handler.PointerFrame()
}

func (b *Backend) handleSetCursorRequest(client wlroots.SeatClient, surface wlroots.Surface, serial uint32, hotspotX, hotspotY int32) {
	b.handler.RequestSetCursorImage(b.refClient(client), b.refSurface(surface), hotspotX, hotspotY)
}

func (b *Backend) handleRequestSetSelection(source wlroots.DataSource, serial uint32) {
	b.nextSelection++
	b.selections[b.nextSelection] = selectionState{source: source, serial: serial}
	b.handler.RequestSetSelection(b.nextSelection)
}

func keyStateFromWLR(s wlroots.KeyState) KeyState {
	if s == wlroots.KeyStatePressed {
		return KeyPressed
	}
	return KeyReleased
}

func buttonStateFromWLR(s wlroots.ButtonState) ButtonState {
	if s == wlroots.ButtonStatePressed {
		return ButtonPressed
	}
	return ButtonReleased
}

// HitTest returns the topmost surface node at layout coordinates, and the
// managed window it belongs to when it is part of one.
func (b *Backend) HitTest(lx, ly float64) Hit {
	node, sx, sy := b.scene.Tree().Node().At(lx, ly)
	if node.Nil() || node.Type() != wlroots.SceneNodeBuffer {
		return Hit{}
	}
	sceneSurface := node.SceneBuffer().SceneSurface()
	if sceneSurface.Nil() {
		return Hit{}
	}
	surface := sceneSurface.Surface()

	hit := Hit{Surface: b.refSurface(surface), SX: sx, SY: sy}
	top := surface.XDGSurface().TopLevel()
	if id, ok := b.toplevelByTL[top]; ok {
		hit.Toplevel = id
	}
	return hit
}

func (b *Backend) RaiseToTop(t ToplevelID) {
	if state, ok := b.toplevels[t]; ok {
		state.tree.Node().RaiseToTop()
	}
}

func (b *Backend) NodePosition(t ToplevelID) (int, int) {
	state, ok := b.toplevels[t]
	if !ok {
		return 0, 0
	}
	node := state.tree.Node()
	return node.X(), node.Y()
}

func (b *Backend) SetNodePosition(t ToplevelID, x, y int) {
	if state, ok := b.toplevels[t]; ok {
		state.tree.Node().SetPosition(float64(x), float64(y))
	}
}

func (b *Backend) Geometry(t ToplevelID) Box {
	state, ok := b.toplevels[t]
	if !ok {
		return Box{}
	}
	geo := state.xdg.Geometry()
	return Box{X: geo.X, Y: geo.Y, Width: geo.Width, Height: geo.Height}
}

func (b *Backend) SetSize(t ToplevelID, width, height int) {
	if state, ok := b.toplevels[t]; ok {
		state.xdg.TopLevelSetSize(uint32(width), uint32(height))
	}
}

func (b *Backend) SetActivated(t ToplevelID, activated bool) {
	if state, ok := b.toplevels[t]; ok {
		state.top.SetActivated(activated)
	}
}

func (b *Backend) ScheduleConfigure(t ToplevelID) {
	if state, ok := b.toplevels[t]; ok {
		state.xdg.ScheduleConfigure()
	}
}

func (b *Backend) Initialized(t ToplevelID) bool {
	state, ok := b.toplevels[t]
	return ok && state.committed
}

func (b *Backend) Title(t ToplevelID) string {
	state, ok := b.toplevels[t]
	if !ok {
		return ""
	}
	return state.top.Title()
}

func (b *Backend) ToplevelSurface(t ToplevelID) SurfaceRef {
	state, ok := b.toplevels[t]
	if !ok {
		return 0
	}
	return b.refSurface(state.xdg.Surface())
}

func (b *Backend) ToplevelForSurface(s SurfaceRef) (ToplevelID, bool) {
	surface, ok := b.surfaces[s]
	if !ok {
		return 0, false
	}
	top, err := surface.XDGTopLevel()
	if err != nil {
		return 0, false
	}
	id, ok := b.toplevelByTL[top]
	return id, ok
}

func (b *Backend) CreateRect(t ToplevelID, width, height int, color Color) RectID {
	state, ok := b.toplevels[t]
	if !ok {
		return 0
	}
	b.nextRect++
	b.rects[b.nextRect] = state.tree.NewRect(width, height, [4]float32(color))
	return b.nextRect
}

func (b *Backend) SetRectSize(r RectID, width, height int) {
	if rect, ok := b.rects[r]; ok {
		rect.SetSize(width, height)
	}
}

func (b *Backend) SetRectPosition(r RectID, x, y int) {
	if rect, ok := b.rects[r]; ok {
		rect.Node().SetPosition(float64(x), float64(y))
	}
}

// AttachPopup creates the popup's scene node under its parent's tree, so
// the popup renders relative to the parent surface.
func (b *Backend) AttachPopup(p PopupID, parent SurfaceRef) error {
	state, ok := b.popups[p]
	if !ok {
		return errors.New("unknown popup")
	}
	parentSurface, ok := b.surfaces[parent]
	if !ok || parentSurface.Nil() {
		return errors.New("parent surface is not tracked")
	}
	parentSurface.XDGSurface().SceneTree().NewXDGSurface(state.xdg)
	return nil
}

func (b *Backend) SchedulePopupConfigure(p PopupID) {
	if state, ok := b.popups[p]; ok {
		state.xdg.ScheduleConfigure()
	}
}

func (b *Backend) CursorPosition() (float64, float64) {
	return b.cursor.X(), b.cursor.Y()
}

func (b *Backend) MoveCursor(d DeviceID, dx, dy float64) {
	if state, ok := b.devices[d]; ok {
		b.cursor.Move(state.dev, dx, dy)
	}
}

func (b *Backend) WarpCursorAbsolute(d DeviceID, x, y float64) {
	if state, ok := b.devices[d]; ok {
		b.cursor.WarpAbsolute(state.dev, x, y)
	}
}

func (b *Backend) SetCursorImage(name string) {
	b.cursor.SetXCursor(b.cursorMgr, name)
}

func (b *Backend) SetCursorSurface(s SurfaceRef, hotspotX, hotspotY int32) {
	if surface, ok := b.surfaces[s]; ok {
		b.cursor.SetSurface(surface, hotspotX, hotspotY)
	}
}

func (b *Backend) AttachPointer(d DeviceID) {
	if state, ok := b.devices[d]; ok {
		b.cursor.AttachInputDevice(state.dev)
	}
}

func (b *Backend) NotifyPointerEnter(s SurfaceRef, sx, sy float64) {
	if surface, ok := b.surfaces[s]; ok {
		b.seat.NotifyPointerEnter(surface, sx, sy)
	}
}

func (b *Backend) NotifyPointerMotion(timeMsec uint32, sx, sy float64) {
	b.seat.NotifyPointerMotion(timeMsec, sx, sy)
}

func (b *Backend) ClearPointerFocus() {
	b.seat.ClearPointerFocus()
}

func (b *Backend) NotifyPointerButton(timeMsec uint32, button uint32, state ButtonState) {
	wlrState := wlroots.ButtonStateReleased
	if state == ButtonPressed {
		wlrState = wlroots.ButtonStatePressed
	}
	b.seat.NotifyPointerButton(timeMsec, button, wlrState)
}

func (b *Backend) NotifyPointerAxis(timeMsec uint32, source uint32, orientation uint32, delta float64, deltaDiscrete int32) {
	b.seat.NotifyPointerAxis(timeMsec, wlroots.AxisOrientation(orientation), delta, deltaDiscrete, wlroots.AxisSource(source))
}

func (b *Backend) NotifyPointerFrame() {
	b.seat.NotifyPointerFrame()
}

func (b *Backend) NotifyKeyboardEnter(s SurfaceRef) {
	if surface, ok := b.surfaces[s]; ok {
		b.seat.NotifyKeyboardEnter(surface, b.seat.Keyboard())
	}
}

func (b *Backend) NotifyKeyboardKey(timeMsec uint32, keycode uint32, state KeyState) {
	wlrState := wlroots.KeyStateReleased
	if state == KeyPressed {
		wlrState = wlroots.KeyStatePressed
	}
	b.seat.NotifyKeyboardKey(timeMsec, keycode, wlrState)
}

func (b *Backend) NotifyKeyboardModifiers(d DeviceID) {
	if state, ok := b.devices[d]; ok {
		b.seat.NotifyKeyboardModifiers(state.keyboard)
	}
}

func (b *Backend) SetSeatKeyboard(d DeviceID) {
	if state, ok := b.devices[d]; ok {
		b.seat.SetKeyboard(state.dev)
	}
}

func (b *Backend) SetCapabilities(keyboard, pointer bool) {
	var caps wlroots.SeatCapability
	if pointer {
		caps |= wlroots.SeatCapabilityPointer
	}
	if keyboard {
		caps |= wlroots.SeatCapabilityKeyboard
	}
	b.seat.SetCapabilities(caps)
}

func (b *Backend) SetSelection(sel SelectionRef) {
	if state, ok := b.selections[sel]; ok {
		b.seat.SetSelection(state.source, state.serial)
		delete(b.selections, sel)
	}
}

func (b *Backend) KeyboardFocusedSurface() (SurfaceRef, bool) {
	surface := b.seat.KeyboardState().FocusedSurface()
	if surface.Nil() {
		return 0, false
	}
	return b.refSurface(surface), true
}

func (b *Backend) PointerFocusedClient() (ClientRef, bool) {
	client := b.seat.PointerState().FocusedClient()
	if client.Nil() {
		return 0, false
	}
	return b.refClient(client), true
}

func (b *Backend) FocusedClientPID() (int, bool) {
	client := b.seat.KeyboardState().FocusedClient()
	if client.Nil() {
		return 0, false
	}
	pid, _, _ := client.Credentials()
	return pid, true
}

// SetKeymapDefault assigns an XKB keymap built from the defaults (layout
// "us").
func (b *Backend) SetKeymapDefault(d DeviceID) {
	state, ok := b.devices[d]
	if !ok {
		return
	}
	context := xkb.NewContext(xkb.KeySymFlagNoFlags)
	keymap := context.KeyMap()
	state.keyboard.SetKeymap(keymap)
	keymap.Destroy()
	context.Destroy()
}

func (b *Backend) SetRepeatInfo(d DeviceID, rate, delay int32) {
	if state, ok := b.devices[d]; ok {
		state.keyboard.SetRepeatInfo(rate, delay)
	}
}

func (b *Backend) Keysyms(d DeviceID, keycode uint32) []Keysym {
	state, ok := b.devices[d]
	if !ok {
		return nil
	}
	syms := state.keyboard.XKBState().Syms(xkb.KeyCode(keycode))
	out := make([]Keysym, len(syms))
	for i, sym := range syms {
		out[i] = Keysym(sym)
	}
	return out
}

func (b *Backend) ModifierState(d DeviceID) Modifiers {
	state, ok := b.devices[d]
	if !ok {
		return 0
	}
	return Modifiers(state.keyboard.Modifiers())
}

// InitOutput configures rendering for the output, enables it with its
// preferred mode, and inserts it into the shared layout and scene.
func (b *Backend) InitOutput(o OutputID) {
	output, ok := b.outputs[o]
	if !ok {
		return
	}

	output.InitRender(b.allocator, b.renderer)

	oState := wlroots.NewOutputState()
	oState.StateInit()
	oState.StateSetEnabled(true)
	// Some backends don't have modes. DRM+KMS does, and needs one set
	// before the output is usable; the preferred mode will do.
	if mode, err := output.PrefferedMode(); err == nil {
		oState.SetMode(mode)
	}
	output.CommitState(oState)
	oState.Finish()

	// AddOutputAuto arranges outputs left to right in arrival order and
	// publishes a wl_output global for clients.
	lOutput := b.outputLayout.AddOutputAuto(output)
	sceneOutput := b.scene.NewOutput(output)
	b.sceneLayout.AddOutput(lOutput, sceneOutput)
}

func (b *Backend) CommitOutput(o OutputID) {
	output, ok := b.outputs[o]
	if !ok {
		return
	}
	sOut, err := b.scene.SceneOutput(output)
	if err != nil {
		return
	}
	sOut.Commit()
	sOut.SendFrameDone(time.Now())
}

func (b *Backend) OutputName(o OutputID) string {
	output, ok := b.outputs[o]
	if !ok {
		return ""
	}
	return output.Name()
}
