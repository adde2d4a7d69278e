package mindmap

import (
	"errors"
	"testing"
)

func TestNormalizeNestedMapping(t *testing.T) {
	tree, err := Normalize(Mapping{
		{Key: "A", Value: Mapping{
			{Key: "B", Value: Mapping{}},
			{Key: "C", Value: Mapping{}},
		}},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if tree.Root().ID != "a" {
		t.Fatalf("root = %q, want a", tree.Root().ID)
	}
	if got := ids(tree.Children("a")); !equalStrings(got, []string{"b", "c"}) {
		t.Errorf("children(a) = %v, want [b c]", got)
	}
	if got := tree.Node("a").Path(); !equalStrings(got, []string{"a"}) {
		t.Errorf("path(a) = %v, want [a]", got)
	}
	if got := tree.Node("b").Path(); !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("path(b) = %v, want [a b]", got)
	}
	if tree.Node("b").ParentID() != "a" {
		t.Errorf("parent(b) = %q, want a", tree.Node("b").ParentID())
	}
	if tree.Len() != 3 {
		t.Errorf("Len = %d, want 3", tree.Len())
	}
}

func TestNormalizeKeepsSourceOrder(t *testing.T) {
	tree := sampleTree(t)
	if got := ids(tree.Children("project")); !equalStrings(got, []string{"research", "build", "docs"}) {
		t.Errorf("children(project) = %v", got)
	}
	if got := ids(tree.Children(DocumentID)); !equalStrings(got, []string{"project"}) {
		t.Errorf("children(document) = %v", got)
	}
}

func TestNormalizeSkipsPrivateKeys(t *testing.T) {
	tree, err := Normalize(Mapping{
		{Key: "__meta", Value: Mapping{{Key: "x"}}},
		e("Root", e("__hidden"), e("Shown")),
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if tree.Root().ID != "root" {
		t.Errorf("root = %q, want root", tree.Root().ID)
	}
	if got := ids(tree.Children("root")); !equalStrings(got, []string{"shown"}) {
		t.Errorf("children(root) = %v, want [shown]", got)
	}
}

func TestNormalizeAttributes(t *testing.T) {
	tree, err := Normalize(Mapping{
		e("Root",
			attrs("icon", "star", "color", "ff0000", "background", "#00ff00", "hyperlink", "https://go.dev", "id", "custom"),
		),
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	n := tree.Node("custom")
	if n == nil {
		t.Fatal("attribute id was not used as node id")
	}
	want := Attrs{Icon: "star", Color: "ff0000", Background: "#00ff00", Hyperlink: "https://go.dev", ID: "custom"}
	if n.Attrs != want {
		t.Errorf("Attrs = %+v, want %+v", n.Attrs, want)
	}
	if n.Name != "Root" {
		t.Errorf("Name = %q, want Root", n.Name)
	}
	if tree.HasChildren("custom") {
		t.Error("attributes entry became a child")
	}
}

func TestNormalizeAttributeIDIsLocatable(t *testing.T) {
	tree, err := Normalize(Mapping{
		e("A",
			e("Dotted", attrs("id", " x.y ")),
			e("Plain", attrs("id", "x-y")),
		),
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := ids(tree.Children("a")); !equalStrings(got, []string{"x-y", "x-y-1"}) {
		t.Errorf("children(a) = %v, want [x-y x-y-1]", got)
	}
	n, err := MatchRoot(tree, "a.x-y")
	if err != nil || n.Name != "Dotted" {
		t.Errorf("MatchRoot(a.x-y) = %v, %v", n, err)
	}
	if tree.Node("x-y").Attrs.ID != " x.y " {
		t.Error("attribute value rewritten")
	}
}

func TestNormalizeDuplicateLabels(t *testing.T) {
	tree, err := Normalize(Mapping{
		e("X", e("Item")),
		e("Y", e("Item"), e("item")),
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := ids(tree.Children("y")); !equalStrings(got, []string{"item-1", "item-2"}) {
		t.Errorf("children(y) = %v, want [item-1 item-2]", got)
	}
	if tree.Node("item-1").Name != "Item" || tree.Node("item-2").Name != "item" {
		t.Error("labels not preserved for suffixed ids")
	}
}

func TestNormalizeScalarValueIsLeaf(t *testing.T) {
	tree, err := Normalize(Mapping{{Key: "Note", Value: "some text"}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if tree.HasChildren("note") {
		t.Error("scalar value produced children")
	}
}

func TestNormalizeEmptyDocument(t *testing.T) {
	for _, doc := range []Mapping{nil, {}, {{Key: "__only_private"}}} {
		if _, err := Normalize(doc); !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("Normalize(%v) err = %v, want ErrEmptyDocument", doc, err)
		}
	}
}

func TestMappingGet(t *testing.T) {
	m := Mapping{{Key: "a", Value: 1}, {Key: "b"}}
	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := m.Get("b"); !ok {
		t.Error("Get(b) missing for nil value")
	}
	if _, ok := m.Get("c"); ok {
		t.Error("Get(c) found")
	}
}

func TestTreeDepthAndAncestry(t *testing.T) {
	tree := sampleTree(t)
	if d := tree.Depth("tests"); d != 3 {
		t.Errorf("Depth(tests) = %d, want 3", d)
	}
	if d := tree.Depth(DocumentID); d != 0 {
		t.Errorf("Depth(document) = %d, want 0", d)
	}
	if d := tree.Depth("missing"); d != -1 {
		t.Errorf("Depth(missing) = %d, want -1", d)
	}
	if !tree.IsAncestor("project", "tests") {
		t.Error("project should be an ancestor of tests")
	}
	if !tree.IsAncestor("tests", "tests") {
		t.Error("a node counts as its own ancestor")
	}
	if tree.IsAncestor("research", "tests") {
		t.Error("research is not an ancestor of tests")
	}
	if tree.Parent(DocumentID) != nil {
		t.Error("document node has a parent")
	}
}

func TestTreeMove(t *testing.T) {
	tree := sampleTree(t)
	if err := tree.Move("build", "research"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := ids(tree.Children("research")); !equalStrings(got, []string{"papers", "interviews", "build"}) {
		t.Errorf("children(research) = %v", got)
	}
	if got := ids(tree.Children("project")); !equalStrings(got, []string{"research", "docs"}) {
		t.Errorf("children(project) = %v", got)
	}
	if got := tree.Node("tests").Path(); !equalStrings(got, []string{"project", "research", "build", "tests"}) {
		t.Errorf("path(tests) = %v", got)
	}
	if tree.Node("build").ParentID() != "research" {
		t.Errorf("parent(build) = %q", tree.Node("build").ParentID())
	}
}

func TestTreeMoveIntoCollapsedTargetExpandsIt(t *testing.T) {
	tree := sampleTree(t)
	tree.Collapse("research")
	if err := tree.Move("tests", "research"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if tree.IsCollapsed("research") {
		t.Error("target still collapsed after move")
	}
	if got := ids(tree.Children("research")); !equalStrings(got, []string{"papers", "interviews", "tests"}) {
		t.Errorf("children(research) = %v", got)
	}
}

func TestTreeMoveHiddenChildUpdatesPaths(t *testing.T) {
	tree := sampleTree(t)
	tree.Collapse("build")
	if err := tree.Move("build", "docs"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := tree.Node("prototype").Path(); !equalStrings(got, []string{"project", "docs", "build", "prototype"}) {
		t.Errorf("path of hidden descendant = %v", got)
	}
}

func TestTreeMoveLastHiddenChildClearsCollapsed(t *testing.T) {
	tree := sampleTree(t)
	tree.Collapse("build")
	if err := tree.Move("prototype", "research"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !tree.IsCollapsed("build") {
		t.Error("build expanded while it still hides tests")
	}
	if err := tree.Move("tests", "research"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if tree.IsCollapsed("build") || tree.HasChildren("build") {
		t.Errorf("build collapsed = %v hasChildren = %v, want a plain leaf",
			tree.IsCollapsed("build"), tree.HasChildren("build"))
	}
	tree.Toggle("build")
	if tree.IsCollapsed("build") {
		t.Error("toggling an emptied node collapsed it")
	}
}

func TestTreeMoveErrors(t *testing.T) {
	tests := []struct {
		name      string
		id, to    string
		wantError error
	}{
		{"unknown node", "nope", "project", ErrUnknownNode},
		{"unknown target", "tests", "nope", ErrUnknownNode},
		{"document node", DocumentID, "project", ErrMoveRoot},
		{"same parent", "tests", "build", ErrSameParent},
		{"into itself", "build", "build", ErrMoveCycle},
		{"into descendant", "project", "tests", ErrMoveCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := sampleTree(t)
			if err := tree.Move(tt.id, tt.to); !errors.Is(err, tt.wantError) {
				t.Errorf("Move(%q, %q) = %v, want %v", tt.id, tt.to, err, tt.wantError)
			}
			if got := ids(tree.Children("build")); !equalStrings(got, []string{"prototype", "tests"}) {
				t.Errorf("tree modified by failed move: children(build) = %v", got)
			}
		})
	}
}

func TestTreeWalk(t *testing.T) {
	tree := sampleTree(t)
	tree.Collapse("research")

	var all, visible []string
	tree.Walk("project", func(n *Node, _ int) bool {
		all = append(all, n.ID)
		return true
	})
	tree.WalkVisible("project", func(n *Node, _ int) bool {
		visible = append(visible, n.ID)
		return true
	})
	if len(all) != 8 {
		t.Errorf("Walk visited %d nodes, want 8: %v", len(all), all)
	}
	want := []string{"project", "research", "build", "prototype", "tests", "docs"}
	if !equalStrings(visible, want) {
		t.Errorf("WalkVisible = %v, want %v", visible, want)
	}

	var pruned []string
	tree.Walk("project", func(n *Node, _ int) bool {
		pruned = append(pruned, n.ID)
		return n.ID != "build"
	})
	for _, id := range pruned {
		if id == "tests" {
			t.Error("Walk descended into a pruned subtree")
		}
	}
}
