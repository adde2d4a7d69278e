package mindmap

import (
	"log/slog"
	"time"
)

// debugStats holds timing and counts for one render cycle. Only populated
// when ViewOptions.Debug is set.
type debugStats struct {
	layoutTime time.Duration
	syncTime   time.Duration
	visible    int
	enter      int
	update     int
	exit       int
}

// debugLog writes one render cycle's stats at Debug level.
func (v *View) debugLog(stats debugStats) {
	v.log.Debug("relayout",
		"layout", stats.layoutTime,
		"sync", stats.syncTime,
		"total", stats.layoutTime+stats.syncTime,
		"visible", stats.visible,
		"enter", stats.enter,
		"update", stats.update,
		"exit", stats.exit,
		"items", len(v.renderer.items),
		"edges", len(v.renderer.edges),
	)
}

const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// debugCheckTree warns about documents deep or wide enough to make the
// layout unreadable.
func debugCheckTree(log *slog.Logger, t *Tree) {
	t.Walk(DocumentID, func(n *Node, depth int) bool {
		if depth > debugMaxTreeDepth {
			log.Warn("tree depth exceeds threshold", "node", n.ID, "depth", depth, "threshold", debugMaxTreeDepth)
			return false
		}
		if c := len(n.children) + len(n.hidden); c > debugMaxChildCount {
			log.Warn("node has many children", "node", n.ID, "children", c, "threshold", debugMaxChildCount)
		}
		return true
	})
}
