package pan

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/anthem-audio/anthem-tools/internal/simdops"
)

// Stats summarizes a table for inspection.
type Stats struct {
	Rows     int
	Center   Pair
	CenterDB Pair
	SumMin   float64
	SumMax   float64
	GainMin  float64
	GainMax  float64
	// Power is the mean of left^2 + right^2 over all rows.
	Power float64
}

// Summarize computes the table's center gains, the range of left+right and
// its mean power.
func (t *Table) Summarize() Stats {
	s := Stats{Rows: t.Len()}
	if s.Rows == 0 {
		return s
	}

	s.Center = t.At((s.Rows - 1) / 2)
	s.CenterDB = Pair{Left: GainToDB(s.Center.Left), Right: GainToDB(s.Center.Right)}

	sum := floats.AddTo(make([]float64, s.Rows), t.Left, t.Right)
	s.SumMin, s.SumMax = floats.Min(sum), floats.Max(sum)
	s.GainMin = math.Min(floats.Min(t.Left), floats.Min(t.Right))
	s.GainMax = math.Max(floats.Max(t.Left), floats.Max(t.Right))

	power := floats.MulTo(make([]float64, s.Rows), t.Left, t.Left)
	floats.Add(power, floats.MulTo(make([]float64, s.Rows), t.Right, t.Right))
	s.Power = simdops.Sum(power) / float64(s.Rows)
	return s
}

// GainToDB converts a linear gain to decibels. Zero gain is -Inf.
func GainToDB(g float64) float64 {
	return 20 * math.Log10(g)
}
