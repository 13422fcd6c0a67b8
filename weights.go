package epsel

import "fmt"

// Weights blend the two ranking criteria into the combined score. The
// evaluator takes them exactly as given; Normalized is for the
// configuration layer, which must hand the core a pair summing to one.
type Weights struct {
	Mass float64 // weight on total system mass relative to budget
	Time float64 // weight on mission duration relative to one year
}

// DefaultWeights favors schedule over mass, the usual smallsat trade.
func DefaultWeights() Weights {
	return Weights{Mass: 0.4, Time: 0.6}
}

// Validate checks that each weight lies in [0,1] and that the pair does not
// vanish. Wraps ErrInvalidParameter.
func (w Weights) Validate() error {
	if w.Mass < 0 || w.Mass > 1 {
		return fmt.Errorf("%w: mass weight must be in [0,1], got %g", ErrInvalidParameter, w.Mass)
	}
	if w.Time < 0 || w.Time > 1 {
		return fmt.Errorf("%w: time weight must be in [0,1], got %g", ErrInvalidParameter, w.Time)
	}
	if w.Mass+w.Time <= 0 {
		return fmt.Errorf("%w: weights must not both be zero", ErrInvalidParameter)
	}
	return nil
}

// Normalized scales the pair to sum to one. Call Validate first: a zero sum
// cannot be normalized.
func (w Weights) Normalized() Weights {
	sum := w.Mass + w.Time
	return Weights{Mass: w.Mass / sum, Time: w.Time / sum}
}

// String implements the Stringer interface.
func (w Weights) String() string {
	return fmt.Sprintf("mass=%.2f time=%.2f", w.Mass, w.Time)
}
