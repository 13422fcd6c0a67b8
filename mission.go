package epsel

import "fmt"

// Defaults applied when a scenario, preset or flag leaves the knob unset.
const (
	// DefaultMinTRL accepts flight-qualified hardware and better.
	DefaultMinTRL = 6
	// DefaultMaxDutyCycle tolerates a rated draw of three times the bus
	// power under pulsed operation.
	DefaultMaxDutyCycle = 3.0
)

// MissionRequirements captures what one spacecraft asks of its propulsion:
// the total Δv, the mass and power it can spare, and the heritage and
// duty-cycle risk it tolerates. Built once per run and read-only thereafter.
type MissionRequirements struct {
	DeltaV       float64 // required Δv, m/s
	DryMass      float64 // satellite mass without the propulsion system, kg
	Power        float64 // bus power available for thrusting, W
	MassBudget   float64 // wet mass ceiling including propulsion, kg
	MinTRL       int     // lowest acceptable technology readiness level
	MaxDutyCycle float64 // tolerable ratio of rated draw to available power
}

// NewMissionRequirements builds requirements for the given mission sizing
// with the default TRL floor and duty-cycle tolerance.
func NewMissionRequirements(deltaV, dryMass, power, massBudget float64) MissionRequirements {
	return MissionRequirements{
		DeltaV:       deltaV,
		DryMass:      dryMass,
		Power:        power,
		MassBudget:   massBudget,
		MinTRL:       DefaultMinTRL,
		MaxDutyCycle: DefaultMaxDutyCycle,
	}
}

// Validate reports the first requirement outside its physical range. All
// failures wrap ErrInvalidParameter.
func (m MissionRequirements) Validate() error {
	switch {
	case m.DeltaV < 0:
		return fmt.Errorf("%w: delta-v must be non-negative, got %g", ErrInvalidParameter, m.DeltaV)
	case m.DryMass <= 0:
		return fmt.Errorf("%w: satellite mass must be positive, got %g", ErrInvalidParameter, m.DryMass)
	case m.Power <= 0:
		return fmt.Errorf("%w: available power must be positive, got %g", ErrInvalidParameter, m.Power)
	case m.MassBudget <= 0:
		return fmt.Errorf("%w: mass budget must be positive, got %g", ErrInvalidParameter, m.MassBudget)
	}
	return nil
}

// String implements the Stringer interface.
func (m MissionRequirements) String() string {
	return fmt.Sprintf("Δv=%.0f m/s, dry=%.1f kg, power=%.0f W, budget=%.1f kg, TRL≥%d, duty≤%.1fx",
		m.DeltaV, m.DryMass, m.Power, m.MassBudget, m.MinTRL, m.MaxDutyCycle)
}
