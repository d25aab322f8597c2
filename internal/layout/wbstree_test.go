package layout

import (
	"testing"

	"github.com/planviz/planviz/internal/config"
	"github.com/planviz/planviz/internal/domain"
	"github.com/planviz/planviz/internal/wbs"
)

func wbsTree(t *testing.T) *wbs.Tree {
	t.Helper()
	tree, err := wbs.Build([]domain.WBSRow{
		{ID: "1", Title: "Planning"},
		{ID: "1.1", Title: "Scope"},
		{ID: "1.2", Title: "Schedule"},
		{ID: "1.1.1", Title: "Interviews"},
		{ID: "2", Title: "Execution"},
		{ID: "2.1", Title: "Build"},
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	return tree
}

func TestWBS_OneBoxPerNode(t *testing.T) {
	tree := wbsTree(t)
	layout := WBS(tree, "Project", config.Default().WBS)
	if len(layout.Boxes) != tree.Len() {
		t.Fatalf("got %d boxes, want %d (one per node)", len(layout.Boxes), tree.Len())
	}
}

func TestWBS_LevelsMatchDepth(t *testing.T) {
	layout := WBS(wbsTree(t), "Project", config.Default().WBS)
	for _, b := range layout.Boxes {
		if b.Level != b.Node.Depth {
			t.Errorf("node %s: Level = %d, want depth %d", b.Node.ID, b.Level, b.Node.Depth)
		}
	}
}

func TestWBS_ColumnsLeftToRight(t *testing.T) {
	layout := WBS(wbsTree(t), "Project", config.Default().WBS)

	boxes := make(map[string]Box)
	for _, b := range layout.Boxes {
		boxes[b.Node.ID] = b
	}

	if boxes["1"].X >= boxes["2"].X {
		t.Errorf("column for root 1 (x=%v) should be left of root 2 (x=%v)", boxes["1"].X, boxes["2"].X)
	}
	if boxes["1"].Y != boxes["2"].Y {
		t.Errorf("root boxes should share a top row: %v vs %v", boxes["1"].Y, boxes["2"].Y)
	}
}

func TestWBS_ChildrenStackBelowParent(t *testing.T) {
	layout := WBS(wbsTree(t), "Project", config.Default().WBS)

	boxes := make(map[string]Box)
	for _, b := range layout.Boxes {
		boxes[b.Node.ID] = b
	}

	if boxes["1.1"].Y <= boxes["1"].Y {
		t.Errorf("child 1.1 (y=%v) should sit below root 1 (y=%v)", boxes["1.1"].Y, boxes["1"].Y)
	}
	if boxes["1.2"].Y <= boxes["1.1"].Y {
		t.Errorf("sibling 1.2 (y=%v) should sit below 1.1 (y=%v)", boxes["1.2"].Y, boxes["1.1"].Y)
	}
	if boxes["1.1"].X != boxes["1"].X {
		t.Errorf("level-2 box should align with its column: %v vs %v", boxes["1.1"].X, boxes["1"].X)
	}
}

func TestWBS_GrandchildrenIndented(t *testing.T) {
	cfg := config.Default().WBS
	layout := WBS(wbsTree(t), "Project", cfg)

	boxes := make(map[string]Box)
	for _, b := range layout.Boxes {
		boxes[b.Node.ID] = b
	}

	want := boxes["1.1"].X + cfg.Indent
	if boxes["1.1.1"].X != want {
		t.Errorf("level-3 box X = %v, want parent X + indent = %v", boxes["1.1.1"].X, want)
	}
	if boxes["1.1.1"].Y <= boxes["1.1"].Y {
		t.Error("level-3 box should sit below its parent")
	}
}

func TestWBS_TitleAndLabelsDrawn(t *testing.T) {
	layout := WBS(wbsTree(t), "Project", config.Default().WBS)

	want := map[string]bool{"Project": false, "1 - Planning": false, "2.1 - Build": false}
	for _, s := range drawingTexts(layout.Drawing) {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for label, found := range want {
		if !found {
			t.Errorf("drawing is missing text %q", label)
		}
	}
}

func TestWBS_EmptyTree(t *testing.T) {
	tree, err := wbs.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	layout := WBS(tree, "Project", config.Default().WBS)
	if len(layout.Boxes) != 0 {
		t.Errorf("empty tree produced %d boxes", len(layout.Boxes))
	}
	if layout.Drawing.Width <= 0 || layout.Drawing.Height <= 0 {
		t.Error("empty tree should still produce a valid drawing size")
	}
}
