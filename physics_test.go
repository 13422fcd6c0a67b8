package epsel

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPropellantMass(t *testing.T) {
	// Worked by hand from the rocket equation: a 12 kg satellite carrying a
	// 1 kg thruster at Isp 1200 s needs e^(800/(1200*9.81)) = 1.0703202 of
	// mass ratio, i.e. 0.9141627 kg of propellant for 800 m/s.
	m := PropellantMass(800, 1200, 13)
	if !scalar.EqualWithinAbs(m, 0.9141627, 1e-4) {
		t.Fatalf("propellant mass = %.7f kg", m)
	}
	if m0 := PropellantMass(0, 1200, 13); m0 != 0 {
		t.Fatalf("zero Δv burned %.7f kg", m0)
	}
}

func TestPropellantMassRoundTrip(t *testing.T) {
	// Inverting the rocket equation must recover the Δv that was asked for.
	for _, deltaV := range []float64{50, 100, 800, 2000, 4500} {
		for _, isp := range []float64{220, 800, 1650, 3100} {
			const dry = 13.0
			m := PropellantMass(deltaV, isp, dry)
			back := isp * G0 * math.Log((dry+m)/dry)
			if !scalar.EqualWithinAbs(back, deltaV, 1e-8) {
				t.Fatalf("Δv=%f Isp=%f: recovered %f", deltaV, isp, back)
			}
		}
	}
}

func TestPropellantMassMonotonicity(t *testing.T) {
	prev := PropellantMass(100, 1500, 13)
	for deltaV := 200.0; deltaV <= 2000; deltaV += 100 {
		m := PropellantMass(deltaV, 1500, 13)
		if m <= prev {
			t.Fatalf("Δv=%f: %f not greater than %f", deltaV, m, prev)
		}
		prev = m
	}
	prev = PropellantMass(800, 500, 13)
	for isp := 600.0; isp <= 4000; isp += 100 {
		m := PropellantMass(800, isp, 13)
		if m >= prev {
			t.Fatalf("Isp=%f: %f not lower than %f", isp, m, prev)
		}
		prev = m
	}
}

func TestPropellantMassDegenerate(t *testing.T) {
	for _, c := range []struct {
		isp, dry float64
	}{{0, 13}, {-100, 13}, {1200, 0}, {1200, -1}} {
		if m := PropellantMass(800, c.isp, c.dry); !math.IsInf(m, 1) {
			t.Fatalf("Isp=%f dry=%f: expected +Inf, got %f", c.isp, c.dry, m)
		}
	}
}

func TestMissionDuration(t *testing.T) {
	// 1 kg at Isp 1000 s and 1 N of thrust is exactly ve = 9810 s of
	// thrusting: 9810/86400 days.
	d := MissionDuration(1, 1000, 1)
	if !scalar.EqualWithinAbs(d, 9810.0/86400.0, 1e-12) {
		t.Fatalf("duration = %.10f days", d)
	}
}

func TestMissionDurationDegenerate(t *testing.T) {
	for _, c := range []struct {
		thrust, isp, prop float64
	}{{0, 1000, 1}, {-1, 1000, 1}, {1, 0, 1}, {1, 1000, 0}, {1, 1000, -0.5}} {
		if d := MissionDuration(c.thrust, c.isp, c.prop); !math.IsInf(d, 1) {
			t.Fatalf("thrust=%f isp=%f prop=%f: expected +Inf, got %f", c.thrust, c.isp, c.prop, d)
		}
	}
	// An infinite propellant mass (impossible physics upstream) carries
	// through as an infinite duration, not NaN.
	if d := MissionDuration(1, 1000, math.Inf(1)); !math.IsInf(d, 1) {
		t.Fatalf("infinite propellant gave %f", d)
	}
}

func TestMassBreakdown(t *testing.T) {
	thruster := Thruster{Mass: 1, Isp: 1200, Thrust: 10}
	req := NewMissionRequirements(800, 12, 30, 18)
	dry, prop, total, ratio := MassBreakdown(thruster, req)
	if dry != 13 {
		t.Fatalf("dry = %f", dry)
	}
	if !scalar.EqualWithinAbs(prop, 0.9141627, 1e-4) {
		t.Fatalf("propellant = %.7f", prop)
	}
	if !scalar.EqualWithinAbs(total, 13.9141627, 1e-4) {
		t.Fatalf("total = %.7f", total)
	}
	if !scalar.EqualWithinAbs(ratio, prop/total, 1e-12) {
		t.Fatalf("fuel ratio = %.7f", ratio)
	}
}

func TestMassBreakdownDegenerate(t *testing.T) {
	// The fuel ratio must carry the +Inf sentinel instead of collapsing
	// into Inf/Inf = NaN.
	thruster := Thruster{Mass: 1, Isp: 0}
	req := NewMissionRequirements(800, 12, 30, 18)
	_, prop, total, ratio := MassBreakdown(thruster, req)
	if !math.IsInf(prop, 1) || !math.IsInf(total, 1) {
		t.Fatalf("prop=%f total=%f", prop, total)
	}
	if math.IsNaN(ratio) {
		t.Fatal("fuel ratio is NaN")
	}
	if !math.IsInf(ratio, 1) {
		t.Fatalf("fuel ratio = %f", ratio)
	}
}

func TestEstimateBurns(t *testing.T) {
	// Ten days at 15 orbits a day: 300 duty-cycled burns if the thruster
	// overdraws the bus, 15 long burns otherwise.
	if n := EstimateBurns(10, 100, 30); n != 300 {
		t.Fatalf("duty cycled: %d burns", n)
	}
	if n := EstimateBurns(10, 20, 30); n != 15 {
		t.Fatalf("continuous: %d burns", n)
	}
	// Equal draw does not duty cycle.
	if n := EstimateBurns(10, 30, 30); n != 15 {
		t.Fatalf("equal power: %d burns", n)
	}
	// Short missions clamp to a single burn.
	if n := EstimateBurns(0.5, 20, 30); n != 1 {
		t.Fatalf("short mission: %d burns", n)
	}
	// No schedule exists for a mission that never completes.
	if n := EstimateBurns(math.Inf(1), 100, 30); n != 0 {
		t.Fatalf("infinite duration: %d burns", n)
	}
	// A finite but uncountable schedule (vanishing thrust stretches the
	// mission past 1e300 days) clamps instead of overflowing the int
	// conversion into garbage.
	if n := EstimateBurns(1e300, 100, 30); n != math.MaxInt {
		t.Fatalf("duty cycled overflow: %d burns", n)
	}
	if n := EstimateBurns(1e300, 20, 30); n != math.MaxInt {
		t.Fatalf("continuous overflow: %d burns", n)
	}
}
