package mindmap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

// ViewOptions configures a View. Zero values select the defaults.
type ViewOptions struct {
	Layout   LayoutOptions
	Drag     DragOptions
	Duration float32
	Ease     ease.TweenFunc
	Icons    IconResolver
	Logger   *slog.Logger
	Viewport Rect
	// DeadZone is the pointer travel in pixels before a press becomes a drag.
	DeadZone float64
	// Debug logs per-relayout timings and counts at Debug level.
	Debug bool

	// OpenURL opens a node's hyperlink. When nil, hyperlink nodes toggle
	// like any other node.
	OpenURL func(url string) error
	// OnCopyLocator receives the locator of the current view.
	OnCopyLocator func(loc Locator) error
}

// View owns one mindmap session: the tree built from a document, its
// render state, the camera, and the interaction controllers. It is driven
// from a single goroutine through Update.
type View struct {
	opts ViewOptions
	log  *slog.Logger

	doc Mapping
	loc Locator

	tree     *Tree
	renderer *Renderer
	camera   *Camera
	drag     *DragController
	sched    *Scheduler

	rootID string
	focus  string
	layout Layout
	crumbs []Crumb

	// crumbRects are the screen rectangles of the last drawn breadcrumbs.
	crumbRects []Rect

	// Input
	pointer     pointerState
	injectQueue []syntheticEvent
	script      *ScriptRunner

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewView normalizes doc, applies the locator's root and initial paths and
// runs the first render cycle. Only a document that yields no tree is an
// error; locator misses are logged and fall back to the full tree.
func NewView(doc Mapping, loc Locator, opts ViewOptions) (*View, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.DeadZone <= 0 {
		opts.DeadZone = defaultDragDeadZone
	}
	if opts.Icons == nil {
		icons := NewGlyphTable(nil)
		log := opts.Logger
		icons.OnMiss = func(name string) {
			log.Debug("icon not found", "icon", name, "glyph", PlaceholderGlyph)
		}
		opts.Icons = icons
	}
	if opts.Viewport.Width == 0 || opts.Viewport.Height == 0 {
		opts.Viewport = Rect{Width: 960, Height: 800}
	}
	v := &View{
		opts:          opts,
		log:           opts.Logger,
		camera:        NewCamera(opts.Viewport),
		sched:         &Scheduler{},
		ScreenshotDir: "screenshots",
	}
	if err := v.build(doc, loc); err != nil {
		return nil, err
	}
	return v, nil
}

// build replaces the session's tree and render state with a fresh build of
// doc under loc. The camera's zoom survives.
func (v *View) build(doc Mapping, loc Locator) error {
	tree, err := Normalize(doc)
	if err != nil {
		return fmt.Errorf("build view: %w", err)
	}
	debugCheckTree(v.log, tree)

	if v.drag != nil {
		v.drag.Cancel()
	}
	v.doc = doc
	v.loc = loc
	v.tree = tree
	v.renderer = NewRenderer(v.opts.Duration, v.opts.Ease, v.opts.Icons)
	v.drag = NewDragController(v.opts.Drag, tree, v.renderer, v.camera, v.sched)

	root := tree.Root()
	if loc.Root != "" {
		if n, err := MatchRoot(tree, loc.Root); err != nil {
			v.logMiss("root", err)
		} else {
			root = n
		}
	}
	v.rootID = root.ID
	v.drag.Root = root.ID

	focus := root
	switch {
	case loc.Initial == "":
	case !pathWithin(loc.Initial, root.Path()):
		// Its collapsing would land on nodes outside what is drawn.
		v.log.Warn("initial locator is outside the render root, ignoring it",
			"initial", loc.Initial,
			"root", JoinPath(root.Path()))
	default:
		n, err := ResolveInitialFocus(tree, loc.Initial)
		if err != nil {
			v.logMiss("initial", err)
		} else {
			focus = n
		}
	}

	l := ComputeLayout(tree, root.ID, v.opts.Layout)
	v.renderer.Anchor(tree, root.ID, Vec2{X: 0, Y: l.Height / 2})
	v.Relayout(root.ID)
	v.CenterOn(focus.ID)
	return nil
}

func (v *View) logMiss(param string, err error) {
	var miss *LocatorMissError
	if errors.As(err, &miss) {
		v.log.Warn("locator did not match, showing the full tree",
			"param", param,
			"locator", miss.Path,
			"segment", miss.Segment,
			"at", JoinPath(miss.At))
		return
	}
	v.log.Warn("locator failed", "param", param, "err", err)
}

// Tree returns the session's tree.
func (v *View) Tree() *Tree { return v.tree }

// Renderer returns the session's render state.
func (v *View) Renderer() *Renderer { return v.renderer }

// Camera returns the view camera.
func (v *View) Camera() *Camera { return v.camera }

// Drag returns the drag-reparent controller.
func (v *View) Drag() *DragController { return v.drag }

// Locator returns the locator the view was built from.
func (v *View) Locator() Locator { return v.loc }

// RootID returns the id of the node currently rendered as root.
func (v *View) RootID() string { return v.rootID }

// Focus returns the id of the node the camera last centred on.
func (v *View) Focus() string { return v.focus }

// Layout returns the most recent layout.
func (v *View) Layout() Layout { return v.layout }

// Breadcrumbs returns the trail to the node of the most recent render cycle.
func (v *View) Breadcrumbs() []Crumb { return v.crumbs }

// Relayout runs one render cycle with source as the node the transition
// grows from and shrinks into.
func (v *View) Relayout(source string) Diff {
	var stats debugStats
	t0 := time.Now()

	v.layout = ComputeLayout(v.tree, v.rootID, v.opts.Layout)
	stats.layoutTime = time.Since(t0)
	t0 = time.Now()

	diff := v.renderer.Sync(v.tree, v.layout, source)
	stats.syncTime = time.Since(t0)

	v.crumbs = Breadcrumbs(v.tree, source, v.loc)

	if v.opts.Debug {
		stats.visible = v.layout.Extents.Visible
		stats.enter = len(diff.Enter)
		stats.update = len(diff.Update)
		stats.exit = len(diff.Exit)
		v.debugLog(stats)
	}
	return diff
}

// CenterOn scrolls the camera so id sits in the middle of the viewport.
func (v *View) CenterOn(id string) {
	n := v.tree.Node(id)
	if n == nil {
		return
	}
	v.focus = id
	v.camera.ScrollTo(n.pos.X, n.pos.Y, v.renderer.Duration, v.renderer.Ease)
}

// Click handles a click on node id. Hyperlink nodes open their link unless
// ctrl is held; every other click toggles the node and centres on it.
func (v *View) Click(id string, mods KeyModifiers) {
	n := v.tree.Node(id)
	if n == nil || id == DocumentID {
		return
	}
	if n.Attrs.Hyperlink != "" && mods&ModCtrl == 0 && v.opts.OpenURL != nil {
		if err := v.opts.OpenURL(n.Attrs.Hyperlink); err != nil {
			v.log.Error("open hyperlink", "node", id, "url", n.Attrs.Hyperlink, "err", err)
		}
		return
	}
	v.tree.Toggle(id)
	v.Relayout(id)
	v.CenterOn(id)
}

// SetRoot renders the subtree at the dot-joined path and reloads the view
// from the document. An empty path selects the default root.
func (v *View) SetRoot(path string) error {
	loc := v.loc
	loc.Root = path
	loc.Initial = ""
	return v.build(v.doc, loc)
}

// ActivateCrumb focuses the i-th breadcrumb.
func (v *View) ActivateCrumb(i int) error {
	if i < 0 || i >= len(v.crumbs) {
		return fmt.Errorf("activate crumb %d: out of range [0,%d)", i, len(v.crumbs))
	}
	return v.build(v.doc, v.crumbs[i].Locator)
}

// Reload rebuilds the view from a new document under the current locator.
// Structural edits made by dragging are discarded. On error the current
// state is kept.
func (v *View) Reload(doc Mapping) error {
	return v.build(doc, v.loc)
}

// CopyLocator hands the current locator to OnCopyLocator.
func (v *View) CopyLocator() error {
	if v.opts.OnCopyLocator == nil {
		return nil
	}
	loc := v.loc
	if err := v.opts.OnCopyLocator(loc); err != nil {
		return fmt.Errorf("copy locator: %w", err)
	}
	v.log.Info("locator copied", "locator", loc.Encode())
	return nil
}

// Update advances the session by dt seconds: queued input first, then
// timers, the camera and running transitions.
func (v *View) Update(dt float32) {
	if v.script != nil {
		v.script.step(v)
	}
	v.processInjectedInput()
	v.sched.Advance(dt)
	v.camera.update(dt)
	v.renderer.Advance(dt)
}
