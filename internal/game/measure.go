package game

import "math/big"

// NumColumns is the playfield width. Charts are 4 key only.
const NumColumns = 4

// Placement is a row at its exact position within a measure. The nth of k
// rows in a measure sits at n/k, so positions are rationals in [0,1).
type Placement struct {
	Position *big.Rat
	Row      Row
}

// Measure is an ordered run of placements with strictly increasing
// positions. An empty measure is valid and spans time like any other.
type Measure []Placement
