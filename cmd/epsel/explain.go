package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var typeExplanations = map[string]string{
	"hall": `Hall-effect thruster (HET):
  Principle: a radial magnetic field traps electrons in an azimuthal drift (the
  Hall current); propellant atoms, usually xenon, are ionized by this electron
  cloud and accelerated out by the axial electric field.
  Performance: Isp roughly 1200-2500 s, thrust-to-power around 50-60 mN/kW.
  Heritage: hundreds flown, e.g. SPT-100 (Fakel), PPS-1350 (SMART-1), BHT-200.
  Trade: more thrust per watt than gridded ion engines, at lower Isp.`,
	"gridded-ion": `Gridded ion engine:
  Principle: ions are produced in a discharge chamber and accelerated
  electrostatically through high-voltage grids; a neutralizer cathode keeps the
  beam and the spacecraft charge-neutral.
  Performance: Isp roughly 2500-4200 s with excellent efficiency, but lower
  thrust density than Hall thrusters.
  Heritage: NSTAR (Deep Space 1, Dawn), NEXT-C (DART), the RIT and T5/T6 lines.
  Trade: the highest Isp of the mature options; thrust is small and grid
  erosion bounds lifetime.`,
	"feep": `Field-emission electric propulsion (FEEP):
  Principle: a liquid-metal propellant such as indium is drawn into Taylor
  cones on a sharp emitter; the intense local field extracts and accelerates
  ions directly.
  Performance: Isp roughly 2000-6000 s at micronewton-to-millinewton thrust
  with very fine throttling.
  Heritage: IFM Nano class thrusters have flown on CubeSats since 2018.
  Trade: precise, tiny thrust for small spacecraft; total impulse per emitter
  is limited.`,
	"ppt": `Pulsed plasma thruster (PPT):
  Principle: a capacitor discharge ablates the face of a solid PTFE bar and the
  resulting plasma is accelerated electromagnetically by the pulse current.
  Performance: Isp roughly 500-1500 s at watt-class average power; impulse
  comes in very small discrete bits.
  Heritage: flying since the 1960s (Zond-2, LES-6, EO-1) and popular on
  CubeSats.
  Trade: inert solid propellant and minimal power demand, at low efficiency.`,
}

var termExplanations = map[string]string{
	"isp": `Specific impulse (Isp):
  Thrust per unit weight flow of propellant, in seconds: Isp = F / (mdot*g0).
  Exhaust velocity is ve = Isp*g0 with g0 = 9.81 m/s².
  Doubling Isp halves the propellant flow needed for the same thrust, which is
  why electric thrusters (600-4000 s) beat chemical engines (under 450 s) on
  propellant mass.`,
	"delta-v": `Delta-v (Δv):
  The velocity change a maneuver or a whole mission requires, in m/s.
  Typical budgets: 100-200 m/s for years of LEO station-keeping, about 800 m/s
  for a 500→1200 km orbit raise, about 4000 m/s for a LEO-GEO spiral.
  Through the rocket equation, propellant mass grows exponentially with
  Δv/(Isp*g0).`,
	"trl": `Technology Readiness Level (TRL):
  The 1-9 maturity scale: 1-2 basic principles, 3-4 lab validation, 5-6
  demonstration in a relevant environment, 7-8 flight demonstration and
  qualification, 9 proven by successful mission operations.
  The --min-trl gate (default 6) rejects thrusters below the requested
  maturity.`,
	"duty-cycle": `Duty cycle (power gate):
  A thruster drawing more power than the bus supplies can still fly by
  thrusting only part of each orbit while batteries recharge the rest.
  The selector accepts thruster power up to --duty-cycle times the available
  power (default 3x); anything beyond that is infeasible.
  Duty-cycled thrusters pay for the deficit with more and longer burn arcs.`,
	"fuel-ratio": `Fuel ratio:
  Propellant mass as a fraction of total wet mass.
  Above 50% the spacecraft is mostly tank and the remaining mass cannot carry
  structure, power and attitude control, so the selector rejects it.
  Electric missions typically sit well below 20%.`,
}

var explainCmd = &cobra.Command{
	Use:   "explain <type|term> <name>",
	Short: "Explain a thruster family or a selection term",
	Long: `Print reference text for a thruster family ('type') or a selection
concept ('term').

Examples:
  epsel explain type hall
  epsel explain term isp`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := strings.ToLower(args[0])
		name := strings.ToLower(args[1])
		var entries map[string]string
		switch category {
		case "type":
			entries = typeExplanations
		case "term":
			entries = termExplanations
		default:
			cmd.SilenceUsage = true
			return fmt.Errorf("unknown category %q: want 'type' or 'term'", args[0])
		}
		if text, found := entries[name]; found {
			fmt.Println(text)
			return nil
		}
		fmt.Fprintf(os.Stderr, "Supported %ss are:\n", category)
		supported := make([]string, 0, len(entries))
		for k := range entries {
			supported = append(supported, k)
		}
		sort.Strings(supported)
		for _, k := range supported {
			fmt.Fprintf(os.Stderr, "  - %s\n", k)
		}
		cmd.SilenceUsage = true
		return fmt.Errorf("no explanation for %s %q", category, args[1])
	},
}
