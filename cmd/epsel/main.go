package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/epsel/epsel"
	kitlog "github.com/go-kit/log"
	"github.com/spf13/cobra"
)

var (
	deltaV       float64
	satMass      float64
	availPower   float64
	massBudget   float64
	minTRL       int
	dutyCycle    float64
	massWeight   float64
	timeWeight   float64
	showAll      bool
	verbose      bool
	scenarioFile string
	presetName   string
	catalogPath  string
	startEpoch   string
	outputFormat string

	catalogOutput string
	sweepFrom     float64
	sweepTo       float64
	sweepPoints   int
)

var rootCmd = &cobra.Command{
	Use:   "epsel",
	Short: "Electric propulsion selection for small satellites",
	Long: `epsel sizes and ranks electric propulsion thrusters against a mission:
propellant mass from the rocket equation, thrust-limited transfer time,
feasibility gates (TRL, power, mass budget, fuel fraction) and a weighted
mass/time score for every candidate in the catalog.`,
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Evaluate and rank every catalog thruster for a mission",
	Long: `Evaluate the active catalog against mission requirements and rank the
feasible thrusters by combined mass/time score (lower is better).

Mission inputs come from --delta-v/--sat-mass/--power/--budget, a --scenario
TOML file, or a named --preset. Explicit flags always win over scenario and
preset values.

Examples:
  # Basic orbit raise (12U CubeSat)
  epsel select --delta-v 800 --sat-mass 12 --power 30 --budget 18

  # LEO to GEO transfer (50kg satellite)
  epsel select --delta-v 4000 --sat-mass 45 --power 100 --budget 55

  # Show all options including infeasible
  epsel select --preset cubesat-raise --show-all

  # Prioritize mission speed over mass
  epsel select --preset cubesat-raise --mass-weight 0.2 --time-weight 0.8`,
	RunE: runSelect,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the thrusters in the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		thrusters, _, err := activeCatalog(catalogPath)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		if strings.ToLower(catalogOutput) == "json" {
			out, err := json.MarshalIndent(thrusters, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		printCatalogTable(thrusters)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <id> <id> [<id>...]",
	Short: "Compare named thrusters side by side under one mission",
	Long: `Evaluate two or more thrusters under the same mission and print a metric
matrix, one column per thruster.

Example:
  epsel compare spt-100 bht-200 bit-3 --preset cubesat-raise`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := resolveScenario(cmd)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		if err := sc.Requirements.Validate(); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		if err := sc.Weights.Validate(); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		thrusters, _, err := activeCatalog(sc.Catalog)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		picked := make([]epsel.Thruster, 0, len(args))
		for _, id := range args {
			t, err := epsel.ThrusterByID(thrusters, id)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			picked = append(picked, t)
		}
		printCompareMatrix(picked, sc.Requirements, sc.Weights.Normalized())
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep <id>",
	Short: "Plot propellant mass and transfer time against delta-v",
	Long: `Sweep delta-v across a range for one thruster and plot how propellant
mass and mission duration respond.

Example:
  epsel sweep bit-3 --sat-mass 12 --from 200 --to 2000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("sat-mass") {
			return errors.New("--sat-mass is required")
		}
		if satMass <= 0 {
			cmd.SilenceUsage = true
			return fmt.Errorf("--sat-mass must be positive, got %g", satMass)
		}
		if err := validateSweepRange(sweepFrom, sweepTo, sweepPoints); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		thrusters, _, err := activeCatalog(catalogPath)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		t, err := epsel.ThrusterByID(thrusters, args[0])
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		printSweep(os.Stdout, t, satMass, sweepFrom, sweepTo, sweepPoints)
		return nil
	},
}

func runSelect(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}
	if err := sc.Requirements.Validate(); err != nil {
		cmd.SilenceUsage = true
		return err
	}
	if err := sc.Weights.Validate(); err != nil {
		cmd.SilenceUsage = true
		return err
	}
	w := sc.Weights.Normalized()

	logger := newLogger("select")
	thrusters, source, err := activeCatalog(sc.Catalog)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}
	logger.Log("level", "info", "catalog", source, "thrusters", len(thrusters))
	if sc.Verbose {
		logger.Log("level", "debug", "mission", sc.Requirements.String(), "weights", w.String())
	}

	results := epsel.Select(thrusters, sc.Requirements, w, showAll)
	feasible := 0
	for _, r := range results {
		if r.Feasible {
			feasible++
		}
	}
	logger.Log("level", "info", "evaluated", len(thrusters), "feasible", feasible)

	cmd.SilenceUsage = true
	switch strings.ToLower(sc.Output) {
	case "json":
		return epsel.ResultsJSON(os.Stdout, sc.Requirements, results)
	case "csv":
		return epsel.ResultsCSV(os.Stdout, results)
	case "table":
		printResultsTable(results)
	case "tui":
		return runTUI(results, sc.Requirements)
	case "", "text":
		printReport(os.Stdout, results, sc)
	default:
		return fmt.Errorf("unknown output format %q (want text, table, json, csv or tui)", sc.Output)
	}
	return nil
}

// resolveScenario layers the mission inputs: a preset or scenario file forms
// the base, then any flag the user explicitly set overrides it.
func resolveScenario(cmd *cobra.Command) (epsel.Scenario, error) {
	var sc epsel.Scenario
	fl := cmd.Flags()
	switch {
	case scenarioFile != "" && presetName != "":
		return sc, errors.New("--scenario and --preset are mutually exclusive")
	case scenarioFile != "":
		loaded, err := epsel.LoadScenario(scenarioFile)
		if err != nil {
			return sc, err
		}
		sc = loaded
	case presetName != "":
		p, ok := presetByName(presetName)
		if !ok {
			return sc, fmt.Errorf("unknown preset %q (see 'epsel presets')", presetName)
		}
		sc.Requirements = p.Requirements
		sc.Weights = epsel.DefaultWeights()
		sc.Output = "text"
	default:
		for _, name := range []string{"delta-v", "sat-mass", "power", "budget"} {
			if !fl.Changed(name) {
				return sc, fmt.Errorf("--%s is required unless --scenario or --preset is set", name)
			}
		}
		sc.Requirements = epsel.NewMissionRequirements(deltaV, satMass, availPower, massBudget)
		sc.Weights = epsel.DefaultWeights()
		sc.Output = "text"
	}

	if fl.Changed("delta-v") {
		sc.Requirements.DeltaV = deltaV
	}
	if fl.Changed("sat-mass") {
		sc.Requirements.DryMass = satMass
	}
	if fl.Changed("power") {
		sc.Requirements.Power = availPower
	}
	if fl.Changed("budget") {
		sc.Requirements.MassBudget = massBudget
	}
	if fl.Changed("min-trl") {
		sc.Requirements.MinTRL = minTRL
	}
	if fl.Changed("duty-cycle") {
		sc.Requirements.MaxDutyCycle = dutyCycle
	}
	if fl.Changed("mass-weight") {
		sc.Weights.Mass = massWeight
	}
	if fl.Changed("time-weight") {
		sc.Weights.Time = timeWeight
	}
	if fl.Changed("catalog") {
		sc.Catalog = catalogPath
	}
	if fl.Changed("output") {
		sc.Output = outputFormat
	}
	if fl.Changed("verbose") {
		sc.Verbose = verbose
	}
	if fl.Changed("start") {
		epoch, err := epsel.ParseEpoch(startEpoch)
		if err != nil {
			return sc, err
		}
		sc.Start = epoch
	}
	return sc, nil
}

// validateSweepRange rejects delta-v ranges the sweep cannot sample: the
// range must be increasing and start above zero, since a zero-Δv sample
// burns no propellant and carries no finite duration.
func validateSweepRange(from, to float64, points int) error {
	if from <= 0 || to <= from {
		return fmt.Errorf("delta-v range %g-%g m/s must be positive and increasing", from, to)
	}
	if points < 2 {
		return fmt.Errorf("need at least 2 sweep points, got %d", points)
	}
	return nil
}

// activeCatalog loads the named catalog, or falls back to the built-in one.
func activeCatalog(path string) ([]epsel.Thruster, string, error) {
	if path == "" {
		return epsel.BuiltinCatalog(), "builtin", nil
	}
	thrusters, err := epsel.LoadCatalog(path)
	if err != nil {
		return nil, path, err
	}
	return thrusters, path, nil
}

// newLogger returns a logfmt logger on stderr, keeping stdout clean for the
// json and csv outputs.
func newLogger(subsys string) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	return kitlog.With(logger, "subsys", subsys)
}

func addMissionFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&deltaV, "delta-v", 0, "required delta-v in m/s (e.g. 800 for a 500→1200 km raise)")
	fl.Float64Var(&satMass, "sat-mass", 0, "satellite dry mass in kg, propulsion excluded")
	fl.Float64Var(&availPower, "power", 0, "power available for propulsion in W")
	fl.Float64Var(&massBudget, "budget", 0, "total mass budget in kg (satellite + thruster + propellant)")
	fl.IntVar(&minTRL, "min-trl", epsel.DefaultMinTRL, "minimum technology readiness level")
	fl.Float64Var(&dutyCycle, "duty-cycle", epsel.DefaultMaxDutyCycle, "max thruster power as a multiple of available power")
	fl.Float64Var(&massWeight, "mass-weight", epsel.DefaultWeights().Mass, "weight for mass optimization, 0-1")
	fl.Float64Var(&timeWeight, "time-weight", epsel.DefaultWeights().Time, "weight for time optimization, 0-1")
	fl.StringVar(&scenarioFile, "scenario", "", "mission scenario TOML file")
	fl.StringVar(&presetName, "preset", "", "named mission preset (see 'epsel presets')")
	fl.StringVar(&catalogPath, "catalog", "", "thruster catalog JSON (default: built-in catalog)")
}

func init() {
	addMissionFlags(selectCmd)
	fl := selectCmd.Flags()
	fl.BoolVar(&showAll, "show-all", false, "include infeasible thrusters in the output")
	fl.BoolVar(&verbose, "verbose", false, "log debug detail and extend the report")
	fl.StringVar(&startEpoch, "start", "", "mission start epoch, Julian date or '"+epsel.EpochFormat+"'")
	fl.StringVar(&outputFormat, "output", "text", "output format: text, table, json, csv or tui")

	addMissionFlags(compareCmd)

	catalogCmd.Flags().StringVar(&catalogPath, "catalog", "", "thruster catalog JSON (default: built-in catalog)")
	catalogCmd.Flags().StringVar(&catalogOutput, "output", "table", "output format: table or json")

	sfl := sweepCmd.Flags()
	sfl.StringVar(&catalogPath, "catalog", "", "thruster catalog JSON (default: built-in catalog)")
	sfl.Float64Var(&satMass, "sat-mass", 0, "satellite dry mass in kg, propulsion excluded")
	sfl.Float64Var(&sweepFrom, "from", 100, "sweep start delta-v in m/s")
	sfl.Float64Var(&sweepTo, "to", 2000, "sweep end delta-v in m/s")
	sfl.IntVar(&sweepPoints, "points", 60, "number of sweep points")

	rootCmd.AddCommand(selectCmd, catalogCmd, compareCmd, sweepCmd, explainCmd, presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
