package rbtree

import (
	"math/rand"
	"testing"
)

func eqString(a, b string) bool { return a == b }

// requireCanonical checks that no two adjacent runs carry equal values.
func requireCanonical(t *testing.T, tree *Tree[string]) {
	t.Helper()
	requireValid(t, tree)
	prev, first := "", true
	for k, v := range tree.All() {
		if !first && v == prev {
			t.Fatalf("adjacent runs with equal value %q at key %d", v, k)
		}
		prev, first = v, false
	}
}

func runsOf(tree *Tree[string]) map[int64]string {
	m := make(map[int64]string)
	for k, v := range tree.All() {
		m[k] = v
	}
	return m
}

func TestInsertRangeOnEmpty(t *testing.T) {
	tree := InsertRange[string](nil, 5, 10, "A", eqString)
	requireCanonical(t, tree)
	requireKeys(t, tree, []int64{5, 10})
	if tree.Floor(7).Value() != "A" || tree.Floor(10).Value() != "" {
		t.Fatalf("unexpected values: %v", runsOf(tree))
	}
}

func TestInsertRangeFromZero(t *testing.T) {
	tree := InsertRange[string](nil, 0, 10, "A", eqString)
	requireCanonical(t, tree)
	requireKeys(t, tree, []int64{0, 10})
}

func TestInsertRangeUnbounded(t *testing.T) {
	tree := InsertRange[string](nil, 0, 10, "A", eqString)
	tree = InsertRange(tree, 5, Unbounded, "B", eqString)
	requireCanonical(t, tree)
	requireKeys(t, tree, []int64{0, 5})
	if tree.Floor(1 << 40).Value() != "B" {
		t.Fatalf("unbounded overwrite does not extend to infinity")
	}
}

func TestInsertRangeOverwriteComposition(t *testing.T) {
	tree := InsertRange[string](nil, 0, 10, "A", eqString)
	tree = InsertRange(tree, 5, 15, "B", eqString)
	requireCanonical(t, tree)
	requireKeys(t, tree, []int64{0, 5, 15})
	want := map[int64]string{0: "A", 5: "B", 15: ""}
	if got := runsOf(tree); len(got) != len(want) {
		t.Fatalf("got runs %v, want %v", got, want)
	} else {
		for k, v := range want {
			if got[k] != v {
				t.Fatalf("run at %d is %q, want %q", k, got[k], v)
			}
		}
	}
}

func TestInsertRangeIdempotent(t *testing.T) {
	cases := [][2]int64{{0, 10}, {5, 10}, {3, Unbounded}}
	for _, c := range cases {
		once := InsertRange[string](nil, c[0], c[1], "A", eqString)
		twice := InsertRange(once, c[0], c[1], "A", eqString)
		requireCanonical(t, twice)
		onceKeys, _ := collectPairs(once)
		requireKeys(t, twice, onceKeys)
		for k, v := range once.All() {
			if twice.Floor(k).Value() != v {
				t.Fatalf("[%d,%d): repeated overwrite changed value at %d", c[0], c[1], k)
			}
		}
	}
}

func TestInsertRangeMergesEqualNeighbors(t *testing.T) {
	tree := InsertRange[string](nil, 0, 10, "A", eqString)
	tree = InsertRange(tree, 10, 20, "B", eqString)
	requireKeys(t, tree, []int64{0, 10, 20})
	// overwriting [0,10) with B must fuse with the existing B run at 10
	tree = InsertRange(tree, 0, 10, "B", eqString)
	requireCanonical(t, tree)
	requireKeys(t, tree, []int64{0, 20})
	if tree.Floor(15).Value() != "B" {
		t.Fatalf("fused run lost its value")
	}
}

func TestInsertRangeKeepsPreviousVersion(t *testing.T) {
	v1 := InsertRange[string](nil, 0, 10, "A", eqString)
	v2 := InsertRange(v1, 5, 15, "B", eqString)
	_ = v2
	requireKeys(t, v1, []int64{0, 10})
	if v1.Floor(7).Value() != "A" {
		t.Fatalf("previous version was disturbed by a range overwrite")
	}
}

func TestInsertRangeRandomizedAgainstOracle(t *testing.T) {
	const domain = 160
	values := []string{"A", "B", "C", ""}
	r := rand.New(rand.NewSource(271828))
	var tree *Tree[string]
	var oracle [domain]string // value in effect at each offset

	for step := 0; step < 500; step++ {
		start := int64(r.Intn(domain - 20))
		end := start + 1 + int64(r.Intn(20))
		value := values[r.Intn(len(values))]
		if r.Intn(16) == 0 {
			end = Unbounded
		}
		tree = InsertRange(tree, start, end, value, eqString)
		requireCanonical(t, tree)
		for i := start; i < min(end, domain); i++ {
			oracle[i] = value
		}
		for i := int64(0); i < domain; i++ {
			got := ""
			if n := tree.Floor(i); n != nil {
				got = n.Value()
			}
			if got != oracle[i] {
				t.Fatalf("step %d ([%d,%d)=%q): value at %d is %q, want %q",
					step, start, end, value, i, got, oracle[i])
			}
		}
	}
}

func TestInsertRangeRejectsEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected assertion panic for empty range")
		}
	}()
	InsertRange[string](nil, 5, 5, "A", eqString)
}
