package epsel

import "math"

const (
	// G0 is standard gravity in m/s², the constant which turns specific
	// impulse into exhaust velocity.
	G0 = 9.81
	// SecondsPerDay converts thrusting time to mission days.
	SecondsPerDay = 86400.0
	// leoOrbitsPerDay is the orbit cadence assumed by the burn estimate,
	// i.e. a ~96 minute low Earth orbit.
	leoOrbitsPerDay = 15.0
	// burnsPerOrbitDivisor sets one long burn per ten orbits when the
	// thruster can run continuously on bus power.
	burnsPerOrbitDivisor = 10.0
)

// PropellantMass returns the propellant in kg needed for a maneuver per the
// Tsiolkovsky rocket equation,
//
//	m_p = m_dry · (e^(Δv/(Isp·g0)) − 1),
//
// where dryMass must already include the thruster hardware. Non-physical
// inputs (isp ≤ 0 or dryMass ≤ 0) return +Inf rather than an error, so an
// impossible candidate ranks last instead of aborting the whole selection.
func PropellantMass(deltaV, isp, dryMass float64) float64 {
	if isp <= 0 || dryMass <= 0 {
		return math.Inf(1)
	}
	massRatio := math.Exp(deltaV / (isp * G0))
	return dryMass * (massRatio - 1)
}

// MissionDuration returns the full-thrust time in days to expel the given
// propellant mass: t = m_p·v_e/F with v_e = Isp·g0. Degenerate inputs
// (thrust ≤ 0, isp ≤ 0, or propellantMass ≤ 0) return +Inf, and an infinite
// propellant mass carries straight through as an infinite duration.
func MissionDuration(thrust, isp, propellantMass float64) float64 {
	if thrust <= 0 || isp <= 0 || propellantMass <= 0 {
		return math.Inf(1)
	}
	ve := isp * G0
	return propellantMass * ve / thrust / SecondsPerDay
}

// MassBreakdown totals the wet mass of flying this thruster on this mission:
// satellite dry mass plus thruster hardware plus Tsiolkovsky propellant.
// Returns dry, propellant and total masses in kg and the propellant fraction
// of the total. The fraction is +Inf whenever the propellant mass itself is
// infinite (or the total is not positive): dividing the sentinel by itself
// must not collapse it into NaN.
func MassBreakdown(t Thruster, req MissionRequirements) (dry, propellant, total, fuelRatio float64) {
	dry = req.DryMass + t.Mass
	propellant = PropellantMass(req.DeltaV, t.Isp, dry)
	total = dry + propellant
	if total <= 0 || math.IsInf(propellant, 1) {
		fuelRatio = math.Inf(1)
	} else {
		fuelRatio = propellant / total
	}
	return
}

// EstimateBurns coarsely sizes a burn schedule: at 15 LEO orbits per day, a
// thruster drawing more than the available bus power must duty cycle at two
// short burns per orbit, otherwise it fires one long burn per ten orbits
// (minimum one). Informational only; no feasibility or scoring decision
// reads it. A non-finite duration has no workable schedule and yields zero;
// a finite schedule too long to count clamps to math.MaxInt.
func EstimateBurns(durationDays, thrusterPower, availablePower float64) int {
	if math.IsInf(durationDays, 0) || math.IsNaN(durationDays) {
		return 0
	}
	totalOrbits := durationDays * leoOrbitsPerDay
	if thrusterPower > availablePower {
		return clampBurnCount(totalOrbits * 2)
	}
	if n := clampBurnCount(totalOrbits / burnsPerOrbitDivisor); n > 1 {
		return n
	}
	return 1
}

// clampBurnCount converts a burn tally to int. Conversion of an
// out-of-range float64 is implementation defined, and float64(math.MaxInt)
// rounds up to 2^63, so the comparison must be >=.
func clampBurnCount(n float64) int {
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
