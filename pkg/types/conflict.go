package types

// ConflictPair names two same-named files whose contents differ: one in the
// map source tree and its counterpart in the installed game tree. The
// conflict scan is short-circuiting, so a pair is always the first conflict
// in traversal order, not necessarily the only one.
type ConflictPair struct {
	// Source is the absolute path of the file in the map source tree.
	Source string
	// Dest is the absolute path of the counterpart in the game tree.
	Dest string
}
