package tracker

import "testing"

func track(t *testing.T, tr *Tracker, depth int, name string) string {
	t.Helper()
	rel, err := tr.Track(depth, name)
	if err != nil {
		t.Fatalf("Track(%d, %q) error: %v", depth, name, err)
	}
	return rel
}

func TestTracker_Track(t *testing.T) {
	tr := New()

	steps := []struct {
		depth int
		name  string
		want  string
	}{
		{0, "root", ""},
		{1, "dir1", "dir1"},
		{2, "file.txt", "dir1/file.txt"},
		{1, "dir2", "dir2"},
		{2, "nested", "dir2/nested"},
		{3, "deep.go", "dir2/nested/deep.go"},
		{1, "dir3", "dir3"},
	}

	for _, step := range steps {
		if got := track(t, tr, step.depth, step.name); got != step.want {
			t.Errorf("Track(%d, %q) = %q, want %q", step.depth, step.name, got, step.want)
		}
	}
}

func TestTracker_TruncatesClosedSubtrees(t *testing.T) {
	tr := New()
	track(t, tr, 0, "root")
	track(t, tr, 1, "dir1")
	track(t, tr, 2, "file.txt")

	// dir2 closes dir1's subtree; file.txt must not survive as an
	// ancestor for anything that follows.
	if got := track(t, tr, 1, "dir2"); got != "dir2" {
		t.Fatalf("Track(1, dir2) = %q, want dir2", got)
	}
	if got := track(t, tr, 2, "other.txt"); got != "dir2/other.txt" {
		t.Errorf("Track(2, other.txt) = %q, want dir2/other.txt", got)
	}
}

func TestTracker_RootLabelExcluded(t *testing.T) {
	tr := New()
	if got := track(t, tr, 0, "my-project"); got != "" {
		t.Errorf("Track(0, my-project) = %q, want empty", got)
	}
	if got := track(t, tr, 1, "src"); got != "src" {
		t.Errorf("Track(1, src) = %q, want src (root label must be excluded)", got)
	}
}

func TestTracker_RejectsDepthJump(t *testing.T) {
	tr := New()
	track(t, tr, 0, "root")
	track(t, tr, 1, "dir1")

	if _, err := tr.Track(3, "orphan.txt"); err == nil {
		t.Fatal("Track(3) after depth 1 error = nil, want malformed-diagram rejection")
	}

	// one level deeper than the last line is still fine
	if got := track(t, tr, 2, "child.txt"); got != "dir1/child.txt" {
		t.Errorf("Track(2, child.txt) = %q, want dir1/child.txt", got)
	}
}
