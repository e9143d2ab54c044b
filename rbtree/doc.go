/*
Package rbtree provides a persistent red-black tree keyed by byte offset.

The tree is the storage layer for attribute runs over text: each node marks a
change-point, i.e. the offset at which an attribute's value changes, reading
the nodes in ascending key order yields the attribute's run sequence. Trees
are immutable once constructed. Every editing operation returns a new root
and shares all untouched subtrees with the previous version, so any number of
readers may traverse a published version concurrently while a writer builds
the next one.

Besides logarithmic insertion the tree supports O(log n) concatenation
(Join) and splitting (TakeLessThan, SkipUntil), which together implement
range overwrites whose cost is independent of the width of the overwritten
range (InsertRange).

All operations assume caller-enforced preconditions (non-negative keys,
ordered join inputs, strictly increasing bulk-build input). Violations are
programmer errors and trip assertions; there is no recoverable error path
inside the tree.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package rbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
