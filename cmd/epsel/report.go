package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/epsel/epsel"
	"github.com/guptarohit/asciigraph"
)

var (
	rule  = strings.Repeat("=", 80)
	bold  = lipgloss.NewStyle().Bold(true)
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// printReport writes the full selection report: mission summary, feasible
// thrusters ranked by score, then the infeasible ones with their reasons.
func printReport(w io.Writer, results []epsel.Performance, sc epsel.Scenario) {
	req := sc.Requirements
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, bold.Render("THRUSTER SELECTION RESULTS"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "\nMission requirements:")
	fmt.Fprintf(w, "   • Delta-v: %g m/s\n", req.DeltaV)
	fmt.Fprintf(w, "   • Satellite dry mass: %g kg\n", req.DryMass)
	fmt.Fprintf(w, "   • Available power: %g W\n", req.Power)
	fmt.Fprintf(w, "   • Mass budget: %g kg\n", req.MassBudget)
	fmt.Fprintf(w, "   • Minimum TRL: %d\n", req.MinTRL)

	var feasible, infeasible []epsel.Performance
	for _, r := range results {
		if r.Feasible {
			feasible = append(feasible, r)
		} else {
			infeasible = append(infeasible, r)
		}
	}
	fmt.Fprintf(w, "\nSummary: %d feasible, %d infeasible\n", len(feasible), len(infeasible))

	if len(feasible) > 0 {
		fmt.Fprintln(w, "\n"+rule)
		fmt.Fprintln(w, green.Render("✓ FEASIBLE THRUSTERS (ranked by combined score)"))
		fmt.Fprintln(w, rule)
		for i, perf := range feasible {
			t := perf.Thruster
			fmt.Fprintf(w, "\n%d. %s (%s)\n", i+1, bold.Render(t.Name), t.Type)
			fmt.Fprintf(w, "   Manufacturer: %s\n", t.Manufacturer)
			fmt.Fprintf(w, "   Score: %.3f (mass: %.3f, time: %.3f)\n", perf.Score, perf.MassScore, perf.TimeScore)
			fmt.Fprintf(w, "   Thrust: %g mN  |  Isp: %g s  |  Power: %g W  |  TRL: %d\n", t.Thrust, t.Isp, t.Power, t.TRL)
			fmt.Fprintf(w, "   Thruster mass: %.3f kg  |  Propellant: %.3f kg  |  Total: %.3f kg\n", t.Mass, perf.PropellantMass, perf.TotalMass)
			fmt.Fprintf(w, "   Mission duration: %.1f days (%.1f months)\n", perf.DurationDays, perf.DurationDays/30)
			fmt.Fprintf(w, "   Fuel ratio: %.1f%%  |  Est. burns: %s\n", perf.FuelRatioPct, groupThousands(perf.Burns))
			if sc.Verbose {
				fmt.Fprintf(w, "   Propellant type: %s  |  Efficiency: %.0f%%\n", t.Propellant, t.Efficiency*100)
				if done, ok := epsel.CompletionDate(sc.Start, perf.DurationDays); ok {
					fmt.Fprintf(w, "   Projected completion: %s\n", done.Format("2006-01-02"))
				}
			}
		}
	}

	if len(infeasible) > 0 {
		fmt.Fprintln(w, "\n"+rule)
		fmt.Fprintln(w, red.Render("✗ INFEASIBLE THRUSTERS"))
		fmt.Fprintln(w, rule)
		for _, perf := range infeasible {
			t := perf.Thruster
			fmt.Fprintf(w, "\n• %s (%s)\n", t.Name, t.Type)
			fmt.Fprintln(w, "  Reasons:")
			for _, reason := range perf.Reasons {
				fmt.Fprintf(w, "    - %s\n", reason)
			}
		}
	}

	fmt.Fprintln(w, "\n"+rule)
}

func printResultsTable(results []epsel.Performance) {
	if len(results) == 0 {
		fmt.Println("No thrusters to show.")
		return
	}
	ranks := epsel.Ranks(results)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tID\tNAME\tTYPE\tSCORE\tPROP (kg)\tTOTAL (kg)\tDAYS\tBURNS\tFEASIBLE")
	fmt.Fprintln(w, "----\t--\t----\t----\t-----\t---------\t----------\t----\t-----\t--------")
	for i, r := range results {
		feasibleStr := "yes"
		if !r.Feasible {
			feasibleStr = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			ranks[i], r.Thruster.ID, r.Thruster.Name, r.Thruster.Type,
			fmtF(r.Score), fmtF(r.PropellantMass), fmtF(r.TotalMass),
			fmtF(r.DurationDays), r.Burns, feasibleStr)
	}
	w.Flush()
}

func printCatalogTable(thrusters []epsel.Thruster) {
	if len(thrusters) == 0 {
		fmt.Println("Catalog is empty.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMANUFACTURER\tTYPE\tTHRUST (mN)\tISP (s)\tPOWER (W)\tMASS (kg)\tTRL\tPROPELLANT")
	fmt.Fprintln(w, "--\t----\t------------\t----\t-----------\t-------\t---------\t---------\t---\t----------")
	for _, t := range thrusters {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%g\t%g\t%g\t%d\t%s\n",
			t.ID, t.Name, t.Manufacturer, t.Type, t.Thrust, t.Isp, t.Power, t.Mass, t.TRL, t.Propellant)
	}
	w.Flush()
}

// printCompareMatrix evaluates the picked thrusters under one mission and
// prints one column per thruster, keyed by catalog ID.
func printCompareMatrix(thrusters []epsel.Thruster, req epsel.MissionRequirements, w epsel.Weights) {
	perfs := make([]epsel.Performance, len(thrusters))
	for i, t := range thrusters {
		perfs[i] = epsel.Evaluate(t, req, w)
	}

	fmt.Printf("Mission: %s\n\n", req)
	fmt.Printf("%-18s", "METRIC")
	for _, t := range thrusters {
		fmt.Printf("%-12s", t.ID)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 18+12*len(thrusters)))

	row := func(label string, cell func(i int) string) {
		fmt.Printf("%-18s", label)
		for i := range thrusters {
			fmt.Printf("%-12s", cell(i))
		}
		fmt.Println()
	}
	row("Thrust (mN)", func(i int) string { return fmtF(thrusters[i].Thrust) })
	row("Isp (s)", func(i int) string { return fmtF(thrusters[i].Isp) })
	row("Power (W)", func(i int) string { return fmtF(thrusters[i].Power) })
	row("Mass (kg)", func(i int) string { return fmtF(thrusters[i].Mass) })
	row("TRL", func(i int) string { return strconv.Itoa(thrusters[i].TRL) })
	row("Propellant (kg)", func(i int) string { return fmt.Sprintf("%.3f", perfs[i].PropellantMass) })
	row("Total (kg)", func(i int) string { return fmt.Sprintf("%.3f", perfs[i].TotalMass) })
	row("Duration (days)", func(i int) string { return fmt.Sprintf("%.1f", perfs[i].DurationDays) })
	row("Burns", func(i int) string { return groupThousands(perfs[i].Burns) })
	row("Fuel ratio (%)", func(i int) string { return fmt.Sprintf("%.1f", perfs[i].FuelRatioPct) })
	row("Score", func(i int) string { return fmt.Sprintf("%.3f", perfs[i].Score) })
	row("Feasible", func(i int) string {
		if perfs[i].Feasible {
			return "yes"
		}
		return "no"
	})
}

// printSweep plots propellant mass and mission duration against delta-v for
// one thruster carrying the given dry mass. Either series can pick up the
// +Inf sentinel from a degenerate catalog row; the plotter takes finite
// samples only, so a divergent series is reported instead of plotted.
func printSweep(w io.Writer, t epsel.Thruster, dryMass, from, to float64, points int) {
	prop := make([]float64, points)
	days := make([]float64, points)
	step := (to - from) / float64(points-1)
	for i := 0; i < points; i++ {
		dv := from + step*float64(i)
		prop[i] = epsel.PropellantMass(dv, t.Isp, dryMass+t.Mass)
		days[i] = epsel.MissionDuration(t.ThrustN(), t.Isp, prop[i])
	}
	if !finiteSeries(prop) {
		fmt.Fprintln(w, "Propellant mass diverges for this thruster (non-positive Isp or dry mass); nothing to plot.")
		return
	}
	if !finiteSeries(days) {
		fmt.Fprintln(w, "Mission duration diverges for this thruster (non-positive thrust or a zero-Δv sample); nothing to plot.")
		return
	}

	fmt.Fprintf(w, "%s  carrying %g kg dry mass\n\n", t, dryMass)
	fmt.Fprintln(w, asciigraph.Plot(prop,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("propellant mass (kg) vs Δv %g-%g m/s", from, to))))
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(days,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("mission duration (days) vs Δv %g-%g m/s", from, to))))
}

// finiteSeries reports whether every sample can be plotted.
func finiteSeries(vs []float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// groupThousands renders 1234567 as "1,234,567".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
