package mindmap

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	// At (0,0), zoom 1 the world origin maps to the viewport centre.
	sx, sy := transformPoint(cam.ViewMatrix(), 0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 100
	cam.Y = 50
	cam.dirty = true
	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) with cam at (100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0
	cam.dirty = true

	// At zoom 2, a point 1 unit from camera center should appear 2 pixels away
	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("screen distance = %f, want 2.0", sx1-sx0)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 37
	cam.Y = -12
	cam.Zoom = 1.7
	cam.dirty = true

	for _, p := range [][2]float64{{0, 0}, {100, 200}, {-50, 75.5}} {
		sx, sy := cam.WorldToScreen(p[0], p[1])
		wx, wy := cam.ScreenToWorld(sx, sy)
		if !approxEqual(wx, p[0], epsilon) || !approxEqual(wy, p[1], epsilon) {
			t.Errorf("roundtrip(%v) = (%f,%f)", p, wx, wy)
		}
	}
}

func TestCameraPanBy(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2
	cam.PanBy(40, -20)
	if !approxEqual(cam.X, -20, epsilon) || !approxEqual(cam.Y, 10, epsilon) {
		t.Errorf("camera = (%f,%f), want (-20,10)", cam.X, cam.Y)
	}
	// Content under the pointer follows it.
	sx, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx, 440, epsilon) {
		t.Errorf("origin at screen x %f, want 440", sx)
	}
}

func TestCameraPanByStopsScroll(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(500, 500, 1, ease.Linear)
	cam.PanBy(1, 1)
	if cam.Scrolling() {
		t.Error("PanBy did not stop the scroll animation")
	}
}

func TestCameraZoomAtKeepsPointFixed(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	wx, wy := cam.ScreenToWorld(600, 100)
	cam.ZoomAt(600, 100, 1.5)
	if !approxEqual(cam.Zoom, 1.5, epsilon) {
		t.Errorf("Zoom = %f", cam.Zoom)
	}
	nx, ny := cam.ScreenToWorld(600, 100)
	if !approxEqual(nx, wx, epsilon) || !approxEqual(ny, wy, epsilon) {
		t.Errorf("point under cursor moved from (%f,%f) to (%f,%f)", wx, wy, nx, ny)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ZoomAt(400, 300, 100)
	if cam.Zoom != MaxZoom {
		t.Errorf("Zoom = %f, want %f", cam.Zoom, MaxZoom)
	}
	cam.ZoomAt(400, 300, 0.0001)
	if cam.Zoom != MinZoom {
		t.Errorf("Zoom = %f, want %f", cam.Zoom, MinZoom)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, -40, 1, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling false after ScrollTo")
	}
	cam.update(0.5)
	if !approxEqual(cam.X, 50, 0.5) {
		t.Errorf("X halfway = %f, want ~50", cam.X)
	}
	cam.update(0.5)
	if cam.Scrolling() {
		t.Error("scroll still running after duration")
	}
	if !approxEqual(cam.X, 100, epsilon) || !approxEqual(cam.Y, -40, epsilon) {
		t.Errorf("camera = (%f,%f), want (100,-40)", cam.X, cam.Y)
	}
}

func TestCameraSetViewport(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetViewport(Rect{Width: 400, Height: 200})
	sx, sy := cam.WorldToScreen(0, 0)
	if !approxEqual(sx, 200, epsilon) || !approxEqual(sy, 100, epsilon) {
		t.Errorf("centre = (%f,%f), want (200,100)", sx, sy)
	}
}

func TestInvertAffineSingular(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 5, 5}); got != identityTransform {
		t.Errorf("invertAffine(singular) = %v, want identity", got)
	}
}
