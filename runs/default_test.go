package runs

import "testing"

func TestWithDefaultOnNilIterator(t *testing.T) {
	it := WithDefault[string](nil, "plain")
	got := Collect(it)
	if len(got) != 1 || got[0] != (Run[string]{0, "plain"}) {
		t.Fatalf("unexpected runs: %v", got)
	}
}

func TestWithDefaultOnEmptyIterator(t *testing.T) {
	it := WithDefault(FromSlice[string](nil), "plain")
	got := Collect(it)
	if len(got) != 1 || got[0] != (Run[string]{0, "plain"}) {
		t.Fatalf("unexpected runs: %v", got)
	}
}

func TestWithDefaultPrependsRun(t *testing.T) {
	it := WithDefault(FromSlice([]Run[string]{{5, "bold"}, {9, "plain"}}), "plain")
	got := Collect(it)
	want := []Run[string]{{0, "plain"}, {5, "bold"}, {9, "plain"}}
	if len(got) != len(want) {
		t.Fatalf("collected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("run %d is %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWithDefaultPassesThrough(t *testing.T) {
	it := WithDefault(FromSlice([]Run[string]{{0, "bold"}, {9, "plain"}}), "plain")
	got := Collect(it)
	if len(got) != 2 || got[0] != (Run[string]{0, "bold"}) || got[1] != (Run[string]{9, "plain"}) {
		t.Fatalf("base sequence starting at 0 must pass through unchanged: %v", got)
	}
}

func TestWithDefaultRepeatedRunReads(t *testing.T) {
	it := WithDefault(FromSlice([]Run[string]{{5, "bold"}}), "plain")
	if !it.Next() {
		t.Fatalf("expected synthetic run")
	}
	if it.Run() != it.Run() {
		t.Fatalf("Run must be stable between Next calls")
	}
	if !it.Next() || it.Run() != (Run[string]{5, "bold"}) {
		t.Fatalf("expected base run after synthetic run")
	}
	if it.Next() {
		t.Fatalf("exhausted iterator advanced")
	}
}
