package epsel

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// daysPerYear normalizes mission duration into the time score.
	daysPerYear = 365.0
	// maxFuelRatio disqualifies designs that are mostly propellant.
	maxFuelRatio = 0.5
	// scoreε is the tolerance under which two combined scores tie.
	scoreε = 1e-9
)

// Performance is the complete evaluation of one thruster against one
// mission: physics outputs, the feasibility verdict with its reasons, and
// the three scores. Built by Evaluate, read-only thereafter. A thruster
// with impossible physics carries +Inf through every derived metric; that
// is the designed signal, not a bug to guard away.
type Performance struct {
	Thruster       Thruster
	PropellantMass float64  // kg
	TotalMass      float64  // kg
	DurationDays   float64  // full-thrust days
	Burns          int      // informational estimate
	FuelRatioPct   float64  // propellant share of total mass, percent
	Feasible       bool
	Reasons        []string // empty iff Feasible
	MassScore      float64  // total mass / budget
	TimeScore      float64  // duration / one year
	Score          float64  // weighted blend, lower is better
}

// CheckFeasibility runs every disqualification gate and reports all that
// trip, in gate order, each reason carrying the offending numbers. The
// gates: TRL floor, duty-cycle power ceiling, positive Isp, positive
// thrust, mass budget, fuel-ratio ceiling. An empty reason list means the
// thruster is flyable as specced.
func CheckFeasibility(t Thruster, req MissionRequirements) (bool, []string) {
	var reasons []string
	if t.TRL < req.MinTRL {
		reasons = append(reasons, fmt.Sprintf("TRL %d < minimum %d", t.TRL, req.MinTRL))
	}
	if maxPower := req.Power * req.MaxDutyCycle; t.Power > maxPower {
		reasons = append(reasons, fmt.Sprintf("Power %gW exceeds %gx duty cycle limit (%gW)", t.Power, req.MaxDutyCycle, maxPower))
	}
	if t.Isp <= 0 {
		reasons = append(reasons, "Specific impulse must be positive")
	}
	if t.ThrustN() <= 0 {
		reasons = append(reasons, "Thrust must be positive")
	}
	_, _, total, fuelRatio := MassBreakdown(t, req)
	if total > req.MassBudget {
		reasons = append(reasons, fmt.Sprintf("Total mass %.2fkg > budget %gkg", total, req.MassBudget))
	}
	if fuelRatio > maxFuelRatio {
		reasons = append(reasons, fmt.Sprintf("Fuel ratio %.1f%% too high (>%.0f%%)", fuelRatio*100, maxFuelRatio*100))
	}
	return len(reasons) == 0, reasons
}

// Evaluate scores one thruster against the mission. The weights must
// already be normalized; the evaluator never rescales them. Infeasibility
// is data, not an error: the candidate stays in the result set with its
// reasons attached and, when the physics is impossible, +Inf scores that
// sort it to the bottom.
func Evaluate(t Thruster, req MissionRequirements, w Weights) Performance {
	_, propellant, total, fuelRatio := MassBreakdown(t, req)
	duration := MissionDuration(t.ThrustN(), t.Isp, propellant)
	burns := EstimateBurns(duration, t.Power, req.Power)
	feasible, reasons := CheckFeasibility(t, req)

	massScore := total / req.MassBudget
	timeScore := duration / daysPerYear
	score := w.Mass*massScore + w.Time*timeScore
	if math.IsInf(massScore, 1) || math.IsInf(timeScore, 1) {
		// 0·Inf is NaN; the sentinel must reach the sort intact.
		score = math.Inf(1)
	}

	return Performance{
		Thruster:       t,
		PropellantMass: propellant,
		TotalMass:      total,
		DurationDays:   duration,
		Burns:          burns,
		FuelRatioPct:   fuelRatio * 100,
		Feasible:       feasible,
		Reasons:        reasons,
		MassScore:      massScore,
		TimeScore:      timeScore,
		Score:          score,
	}
}

// Select evaluates every cataloged thruster against the mission and returns
// them ranked best first (lowest combined score). Infeasible candidates are
// dropped unless includeInfeasible is set. The sort is stable, so tied
// scores keep catalog order. An empty catalog yields an empty result, not
// an error.
func Select(thrusters []Thruster, req MissionRequirements, w Weights, includeInfeasible bool) []Performance {
	results := make([]Performance, 0, len(thrusters))
	for _, t := range thrusters {
		perf := Evaluate(t, req, w)
		if perf.Feasible || includeInfeasible {
			results = append(results, perf)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

// Ranks assigns competition ranks (1, 1, 3, ...) to an already-sorted
// result slice, treating combined scores within scoreε as tied. Display
// aid only; it never reorders.
func Ranks(results []Performance) []int {
	ranks := make([]int, len(results))
	for i := range results {
		if i > 0 && scalar.EqualWithinAbs(results[i].Score, results[i-1].Score, scoreε) {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}
