package combo

import "github.com/alexiusacademia/gocombo/internal/loadgroup"

// Envelope holds the governing combinations for a set of unfactored effects
// (moments, shears, reactions, ...)
type Envelope struct {
	Max      float64
	MaxRow   Row
	MaxIndex int // position of MaxRow in the rows
	Min      float64
	MinRow   Row
	MinIndex int
	Values   []float64 // factored effect per row, same order as the rows
}

// Governing applies every combination to the unfactored effects and finds
// the rows producing the largest and smallest factored effect. Ties keep the
// earlier row. It reports false when rows is empty.
func Governing(rows []Row, effects map[loadgroup.LoadCase]float64) (Envelope, bool) {
	if len(rows) == 0 {
		return Envelope{}, false
	}

	env := Envelope{Values: make([]float64, len(rows))}
	for i, row := range rows {
		v := row.Factors.Apply(effects)
		env.Values[i] = v
		if i == 0 || v > env.Max {
			env.Max, env.MaxRow, env.MaxIndex = v, row, i
		}
		if i == 0 || v < env.Min {
			env.Min, env.MinRow, env.MinIndex = v, row, i
		}
	}
	return env, true
}
