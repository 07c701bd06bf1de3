// SPDX-License-Identifier: MIT

package proj

// Direction is the side of the spot on which the barrier sits.
type Direction int

const (
	// Down knocks out when the price falls to or below the barrier.
	Down Direction = iota
	// Up knocks out when the price rises to or above the barrier.
	Up
)

// String returns "down" or "up".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Mask applies the knock-out condition at a monitoring date: nodes strictly
// beyond the barrier node take the rebate, and the barrier node itself takes
// the midpoint of rebate and value, which is the hat-basis projection of the
// jump at the barrier.
type Mask struct {
	Index     int
	Direction Direction
	Rebate    float64
}

// Apply overwrites v in place.
func (m Mask) Apply(v []float64) {
	if m.Index < 0 || m.Index >= len(v) {
		return
	}
	if m.Direction == Down {
		for i := 0; i < m.Index; i++ {
			v[i] = m.Rebate
		}
	} else {
		for i := m.Index + 1; i < len(v); i++ {
			v[i] = m.Rebate
		}
	}
	v[m.Index] = 0.5 * (m.Rebate + v[m.Index])
}
