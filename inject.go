package mindmap

// syntheticEvent is one queued input sample. Screen coordinates are used,
// exactly like real mouse input, and converted through the camera.
type syntheticEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	mods             KeyModifiers
	wheel            float64 // non-zero for a wheel notch instead of a pointer sample
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued event is consumed by one Update.
func (v *View) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (v *View) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (v *View) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		screenX: x, screenY: y,
		button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two updates.
func (v *View) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectCtrlClick is InjectClick with the control key held.
func (v *View) InjectCtrlClick(x, y float64) {
	v.injectQueue = append(v.injectQueue,
		syntheticEvent{screenX: x, screenY: y, pressed: true, button: MouseButtonLeft, mods: ModCtrl},
		syntheticEvent{screenX: x, screenY: y, button: MouseButtonLeft, mods: ModCtrl},
	)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). Minimum frames is 2.
func (v *View) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel notch at the given screen coordinates.
// Positive dy zooms in.
func (v *View) InjectWheel(x, y, dy float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{screenX: x, screenY: y, wheel: dy})
}

// InjectedPending returns the number of queued events.
func (v *View) InjectedPending() int {
	return len(v.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through the same
// path as real input. Returns true if an event was consumed.
func (v *View) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	if evt.wheel != 0 {
		v.processWheel(evt.screenX, evt.screenY, evt.wheel)
		return true
	}
	v.processPointer(evt.screenX, evt.screenY, evt.pressed, evt.button, evt.mods)
	return true
}

// ScreenPositionOf returns where node id's render item is currently drawn,
// in screen coordinates.
func (v *View) ScreenPositionOf(id string) (x, y float64, ok bool) {
	it := v.renderer.Item(id)
	if it == nil {
		return 0, 0, false
	}
	x, y = v.camera.WorldToScreen(it.X, it.Y)
	return x, y, true
}
