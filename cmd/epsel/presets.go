package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/epsel/epsel"
	"github.com/spf13/cobra"
)

// missionPreset names a ready-made set of mission requirements.
type missionPreset struct {
	Name         string
	Summary      string
	Requirements epsel.MissionRequirements
}

// missionPresets holds the bundled missions, in display order.
var missionPresets = []missionPreset{
	{
		Name:         "cubesat-raise",
		Summary:      "12U CubeSat orbit raise, 500→1200 km",
		Requirements: epsel.NewMissionRequirements(800, 12, 30, 18),
	},
	{
		Name:         "leo-geo",
		Summary:      "50 kg class LEO to GEO spiral transfer",
		Requirements: epsel.NewMissionRequirements(4000, 45, 100, 55),
	},
	{
		Name:         "geo-stationkeep",
		Summary:      "GEO comsat station-keeping budget, several years",
		Requirements: epsel.NewMissionRequirements(150, 150, 300, 170),
	},
}

func presetByName(name string) (missionPreset, bool) {
	for _, p := range missionPresets {
		if p.Name == name {
			return p, true
		}
	}
	return missionPreset{}, false
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in mission presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tΔV (m/s)\tDRY (kg)\tPOWER (W)\tBUDGET (kg)\tMISSION")
		fmt.Fprintln(w, "----\t--------\t--------\t---------\t-----------\t-------")
		for _, p := range missionPresets {
			r := p.Requirements
			fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%s\n",
				p.Name, r.DeltaV, r.DryMass, r.Power, r.MassBudget, p.Summary)
		}
		w.Flush()
	},
}
