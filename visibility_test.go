package mindmap

import "testing"

func TestCollapseIsRecursive(t *testing.T) {
	tree := sampleTree(t)
	tree.Collapse("project")

	if !tree.IsCollapsed("project") {
		t.Fatal("project not collapsed")
	}
	if len(tree.Children("project")) != 0 {
		t.Errorf("visible children = %v, want none", ids(tree.Children("project")))
	}
	if got := ids(tree.HiddenChildren("project")); !equalStrings(got, []string{"research", "build", "docs"}) {
		t.Errorf("hidden children = %v", got)
	}
	for _, id := range []string{"research", "build"} {
		if !tree.IsCollapsed(id) {
			t.Errorf("%s not collapsed", id)
		}
	}
	if tree.IsCollapsed("docs") {
		t.Error("leaf marked collapsed")
	}
	if !tree.HasChildren("project") {
		t.Error("HasChildren false for collapsed node")
	}
}

func TestExpandRestoresOneLevel(t *testing.T) {
	tree := sampleTree(t)
	tree.Collapse("project")
	tree.Expand("project")

	if tree.IsCollapsed("project") {
		t.Error("project still collapsed")
	}
	if got := ids(tree.Children("project")); !equalStrings(got, []string{"research", "build", "docs"}) {
		t.Errorf("children = %v", got)
	}
	if !tree.IsCollapsed("research") || !tree.IsCollapsed("build") {
		t.Error("grandchildren should stay collapsed")
	}
	if tree.HiddenChildren("project") != nil && len(tree.HiddenChildren("project")) != 0 {
		t.Error("hidden cache not cleared")
	}
}

func TestToggle(t *testing.T) {
	tree := sampleTree(t)
	n := tree.Toggle("build")
	if n == nil || n.ID != "build" {
		t.Fatalf("Toggle returned %v", n)
	}
	if !tree.IsCollapsed("build") {
		t.Error("first toggle should collapse")
	}
	tree.Toggle("build")
	if tree.IsCollapsed("build") {
		t.Error("second toggle should expand")
	}
	if tree.Toggle("missing") != nil {
		t.Error("Toggle of unknown id returned a node")
	}
}

func TestCollapseLeafIsNoOp(t *testing.T) {
	tree := sampleTree(t)
	tree.Collapse("docs")
	if tree.IsCollapsed("docs") {
		t.Error("leaf collapsed")
	}
	tree.Expand("docs")
	tree.Expand("research")
	if got := ids(tree.Children("research")); !equalStrings(got, []string{"papers", "interviews"}) {
		t.Errorf("expanding an expanded node changed children: %v", got)
	}
}

func TestCollapseAllExpandAll(t *testing.T) {
	tree := sampleTree(t)
	tree.CollapseAll()
	if !tree.IsCollapsed("project") || !tree.IsCollapsed("build") {
		t.Fatal("CollapseAll left nodes expanded")
	}
	tree.ExpandAll("project")
	for _, id := range []string{"project", "research", "build"} {
		if tree.IsCollapsed(id) {
			t.Errorf("%s still collapsed after ExpandAll", id)
		}
	}
	if len(tree.Children("build")) != 2 {
		t.Errorf("children(build) = %v", ids(tree.Children("build")))
	}
}
