package trace

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/katalvlaran/spviz/core"
)

// Distance is a tentative or final path length.
type Distance int64

// Infinity marks an unreachable node.
const Infinity Distance = math.MaxInt64

const infinityJSON = `"Infinity"`

// IsInf reports whether d is Infinity.
func (d Distance) IsInf() bool { return d == Infinity }

// Add returns d+w, keeping Infinity absorbing and saturating on overflow.
func (d Distance) Add(w int64) Distance {
	if d.IsInf() {
		return Infinity
	}
	s := int64(d) + w
	switch {
	case w > 0 && s < int64(d):
		return Infinity
	case w < 0 && s > int64(d):
		return Distance(math.MinInt64)
	}
	return Distance(s)
}

// String renders Infinity as "∞".
func (d Distance) String() string {
	if d.IsInf() {
		return "∞"
	}
	return strconv.FormatInt(int64(d), 10)
}

// MarshalJSON renders Infinity as the string "Infinity".
func (d Distance) MarshalJSON() ([]byte, error) {
	if d.IsInf() {
		return []byte(infinityJSON), nil
	}
	return []byte(strconv.FormatInt(int64(d), 10)), nil
}

// UnmarshalJSON accepts a number or the string "Infinity".
func (d *Distance) UnmarshalJSON(b []byte) error {
	if string(b) == infinityJSON {
		*d = Infinity
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Distance(v)
	return nil
}

// DistanceTable maps a dense NodeID to its distance.
type DistanceTable []Distance

// NewDistanceTable returns a table of n entries, 0 at source and Infinity
// elsewhere. An out-of-range source leaves every entry at Infinity.
func NewDistanceTable(n int, source core.NodeID) DistanceTable {
	t := make(DistanceTable, n)
	for i := range t {
		t[i] = Infinity
	}
	if source >= 0 && int(source) < n {
		t[source] = 0
	}
	return t
}

// Get returns the distance of id, or Infinity for an unknown id.
func (t DistanceTable) Get(id core.NodeID) Distance {
	if id < 0 || int(id) >= len(t) {
		return Infinity
	}
	return t[id]
}

// Clone returns an independent copy of t.
func (t DistanceTable) Clone() DistanceTable {
	if t == nil {
		return nil
	}
	return append(DistanceTable(nil), t...)
}
