package rbtree

import (
	"testing"

	"github.com/npillmayer/attribs/runs"
)

func TestFromSortedRunsEmpty(t *testing.T) {
	if tree := FromSortedRuns[string](nil); tree != nil {
		t.Fatalf("expected empty input to build the empty tree")
	}
}

func TestFromSortedRunsRoundTrip(t *testing.T) {
	for n := 1; n <= 70; n++ {
		rs := make([]runs.Run[int], n)
		for i := range rs {
			rs[i] = runs.Run[int]{Start: int64(i * 3), Value: i}
		}
		tree := FromSortedRuns(rs)
		requireValid(t, tree)
		keys, values := collectPairs(tree)
		if len(keys) != n {
			t.Fatalf("n=%d: built %d nodes", n, len(keys))
		}
		for i := range keys {
			if keys[i] != rs[i].Start || values[i] != rs[i].Value {
				t.Fatalf("n=%d: node %d holds %d=%d, want %d=%d",
					n, i, keys[i], values[i], rs[i].Start, rs[i].Value)
			}
		}
	}
}

func TestFromSortedRunsRejectsUnsorted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected assertion panic for unsorted input")
		}
	}()
	FromSortedRuns([]runs.Run[int]{{Start: 5}, {Start: 5}})
}

func TestCursorWalksAllRuns(t *testing.T) {
	tree := FromSortedRuns([]runs.Run[string]{
		{Start: 0, Value: "A"}, {Start: 4, Value: "B"}, {Start: 9, Value: "C"},
	})
	c := tree.RunsEndAfter(0)
	var got []runs.Run[string]
	for c.Next() {
		got = append(got, c.Run())
	}
	if len(got) != 3 || got[0].Start != 0 || got[1].Start != 4 || got[2].Start != 9 {
		t.Fatalf("unexpected cursor walk: %v", got)
	}
	if c.Next() {
		t.Fatalf("exhausted cursor advanced")
	}
}

func TestRunsEndAfterStartsAtFloor(t *testing.T) {
	tree := FromSortedRuns([]runs.Run[string]{
		{Start: 0, Value: "A"}, {Start: 10, Value: "B"}, {Start: 20, Value: "C"},
	})
	cases := []struct {
		start int64
		first int64
		count int
	}{
		{0, 0, 3},   // at a boundary
		{5, 0, 3},   // inside the first run
		{10, 10, 2}, // at the second boundary
		{15, 10, 2}, // inside the second run
		{25, 20, 1}, // inside the last, open-ended run
	}
	for _, c := range cases {
		cursor := tree.RunsEndAfter(c.start)
		var got []runs.Run[string]
		for cursor.Next() {
			got = append(got, cursor.Run())
		}
		if len(got) != c.count || got[0].Start != c.first {
			t.Fatalf("RunsEndAfter(%d) = %v, want %d runs from %d",
				c.start, got, c.count, c.first)
		}
	}
}

func TestRunsEndAfterBeforeFirstRun(t *testing.T) {
	tree := FromSortedRuns([]runs.Run[string]{
		{Start: 10, Value: "B"}, {Start: 20, Value: "C"},
	})
	cursor := tree.RunsEndAfter(3)
	if !cursor.Next() || cursor.Run().Start != 10 {
		t.Fatalf("expected walk to start at the first run")
	}
}

func TestCursorFixedToVersion(t *testing.T) {
	v1 := FromSortedRuns([]runs.Run[string]{{Start: 0, Value: "A"}})
	cursor := v1.RunsEndAfter(0)
	_ = v1.Insert(5, "B") // derive a new version after cursor creation
	var got []runs.Run[string]
	for cursor.Next() {
		got = append(got, cursor.Run())
	}
	if len(got) != 1 || got[0].Value != "A" {
		t.Fatalf("cursor leaked into a later version: %v", got)
	}
}
