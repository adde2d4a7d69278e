// Package mindmap renders a hierarchical document as an interactive,
// collapsible tree on [Ebitengine].
//
// A document is an ordered [Mapping] of labels to nested mappings. Each
// label becomes a [Node] with a stable, URL-safe id; an optional "__attrs"
// entry decorates it with an icon, colors or a hyperlink. The resulting
// [Tree] can be focused on a subtree through a [Locator], collapsed and
// expanded one node at a time, and restructured by dragging a node onto a
// new parent.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and runs
// the loop for you:
//
//	doc := mindmap.Mapping{{Key: "Topic", Value: mindmap.Mapping{
//		{Key: "Idea"}, {Key: "Other idea"},
//	}}}
//	view, err := mindmap.NewView(doc, mindmap.Locator{}, mindmap.ViewOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	mindmap.Run(view, mindmap.RunConfig{Title: "Ideas"})
//
// # Render cycle
//
// Every interaction that changes visibility or structure runs one cycle:
// [ComputeLayout] places the visible nodes below the render root and
// [Renderer.Sync] diffs them against what is on screen. Nodes new to the
// screen grow out of the node that triggered the cycle, nodes that stay
// slide to their new place, and nodes that leave shrink back into it. All
// transitions are [gween] tweens of the same duration.
//
// # Input
//
// Clicking a node toggles it. Dragging a node and releasing it over
// another node makes it that node's last child; dragging near a viewport
// edge pans. Dragging the background pans and the wheel zooms. Input can be
// injected for tests with [View.InjectClick] and friends, or replayed from
// a JSON script with [LoadScript].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package mindmap
