/*
Package runs provides run sequences for attributed text.

A run is a pair (start offset, value) meaning "from start (inclusive) until
the start of the next run (exclusive), the value is constant". Attribute
layers produce independent run sequences; this package defines the common
pull-iterator for them, composition helpers, and a K-way merger which folds
the runs of many attribute layers into one combined sequence of
change-points.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package runs

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
