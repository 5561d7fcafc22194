package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TurnbullEngineering/water-flow-forces/internal/as5100"
	"github.com/TurnbullEngineering/water-flow-forces/internal/diagram"
	"github.com/TurnbullEngineering/water-flow-forces/internal/forces"
)

var (
	forcesParams paramFlags

	// Hydraulics
	forcesDepth    float64
	forcesVelocity float64

	forcesDiagramFile string
)

var forcesCmd = &cobra.Command{
	Use:   "forces",
	Short: "Calculate design forces for a single flood condition",
	Long: `Calculate the water flow, debris and log impact forces on a footing
for one hydraulic state, per AS 5100.2 Section 16.

The debris mat depth is taken as the water depth clamped to the
minimum/maximum debris depth bounds, per the code provision for shallow
flows.

Examples:
  # Circular pier, default design parameters
  wff forces --depth 8 --velocity 3

  # Pier with explicit geometry and load factor
  wff forces --leg-type pier --diameter 2.5 --depth 8 --velocity 3 --load-factor 1.3

  # Bored pile transmission tower leg (area per face, pile diameter required)
  wff forces --leg-type bored-pile --area 20 --pile-diameter 2.5 --depth 8 --velocity 3

  # Export the force diagram alongside the report
  wff forces --depth 8 --velocity 3 --diagram forces.png`,
	RunE: runForces,
}

func init() {
	rootCmd.AddCommand(forcesCmd)

	forcesParams.register(forcesCmd)

	forcesCmd.Flags().Float64Var(&forcesDepth, "depth", as5100.DefaultWaterDepth, "Peak flood depth (m)")
	forcesCmd.Flags().Float64Var(&forcesVelocity, "velocity", as5100.DefaultWaterVelocity, "Peak flow velocity (m/s)")
	forcesCmd.Flags().StringVar(&forcesDiagramFile, "diagram", "", "Export the force diagram to this image file")
}

func runForces(cmd *cobra.Command, args []string) error {
	legType, err := forcesParams.legTypeEnum()
	if err != nil {
		return err
	}
	forcesParams.applyDefaults(cmd, cfg.Defaults, legType)
	if !cmd.Flags().Changed("depth") {
		forcesDepth = cfg.Defaults.WaterDepth
	}
	if !cmd.Flags().Changed("velocity") {
		forcesVelocity = cfg.Defaults.WaterVelocity
	}

	leg, err := forcesParams.geometry()
	if err != nil {
		return err
	}
	params, err := forcesParams.loadParameters()
	if err != nil {
		return err
	}

	depth, err := forces.FromFloat(forcesDepth)
	if err != nil {
		return err
	}
	velocity, err := forces.FromFloat(forcesVelocity)
	if err != nil {
		return err
	}
	state := forces.HydraulicState{WaterDepth: depth, WaterVelocity: velocity}

	result, err := forces.Calculate(leg, state, params)
	if err != nil {
		return err
	}

	debrisDepth := forces.ClampDebrisDepth(depth, params.MinDebrisDepth, params.MaxDebrisDepth)
	cd := as5100.DragCoefficient(velocity, depth)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     WATER FLOW FORCES - AS 5100.2 SECTION 16")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Leg Type:\t%s\n", as5100.LegTypeNames[legType])
	switch g := leg.(type) {
	case forces.Pier:
		fmt.Fprintf(w, "  Column Diameter:\t%s m\n", g.Diameter.String())
	case forces.BoredPile:
		fmt.Fprintf(w, "  Face Area:\t%s m²\n", g.Area.String())
	}
	fmt.Fprintf(w, "  Water Depth:\t%s m\n", state.WaterDepth.String())
	fmt.Fprintf(w, "  Water Velocity:\t%s m/s\n", state.WaterVelocity.String())
	fmt.Fprintf(w, "  Debris Mat Depth (adopted):\t%s m\n", debrisDepth.String())
	fmt.Fprintf(w, "  Cd (leg):\t%s\n", params.CdPier.String())
	fmt.Fprintf(w, "  Cd (debris, Fig 16.6.4(A)):\t%s\n", cd.StringFixed(3))
	fmt.Fprintf(w, "  Cd (pile):\t%s\n", params.CdPile.String())
	fmt.Fprintf(w, "  Scour Depth:\t%s m\n", params.ScourDepth.String())
	fmt.Fprintf(w, "  Log Mass:\t%s kg\n", params.LogMass.String())
	fmt.Fprintf(w, "  Stopping Distance:\t%s m\n", params.StoppingDistance.String())
	fmt.Fprintf(w, "  Load Factor:\t%s\n", params.LoadFactor.String())
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  F1  (water flow on leg):\t%s kN\tat %s m\n", result.F1.StringFixed(3), result.L1.StringFixed(3))
	fmt.Fprintf(w, "  F2  (debris mat):\t%s kN\tat %s m\n", result.F2.StringFixed(3), result.L2.StringFixed(3))
	fmt.Fprintf(w, "  F3  (log impact):\t%s kN\tat %s m\n", result.F3.StringFixed(3), result.L3.StringFixed(3))
	fmt.Fprintf(w, "  Fd2 (scoured pile):\t%s kN\tat %s m\n", result.Fd2.StringFixed(3), result.Ld2.StringFixed(3))
	w.Flush()
	fmt.Println()

	if forcesDiagramFile != "" {
		data := diagram.ForceDiagramData{
			WaterDepth:  forcesDepth,
			LegWidth:    legWidthFor(leg),
			DebrisDepth: debrisDepth.InexactFloat64(),
			ScourDepth:  params.ScourDepth.InexactFloat64(),
			PileWidth:   pileWidthFor(leg, params),
			F1:          result.F1.InexactFloat64(),
			L1:          result.L1.InexactFloat64(),
			F2:          result.F2.InexactFloat64(),
			L2:          result.L2.InexactFloat64(),
			F3:          result.F3.InexactFloat64(),
			L3:          result.L3.InexactFloat64(),
			Fd2:         result.Fd2.InexactFloat64(),
			Ld2:         result.Ld2.InexactFloat64(),
		}
		if err := diagram.ExportForceDiagram(data, forcesDiagramFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Force diagram saved to %s\n", forcesDiagramFile)
		fmt.Println()
	}

	return nil
}

func legWidthFor(leg forces.LegGeometry) float64 {
	if g, ok := leg.(forces.Pier); ok {
		return g.Diameter.InexactFloat64()
	}
	// Sketch width only; a bored pile leg has no single diameter.
	return 1.0
}

func pileWidthFor(leg forces.LegGeometry, params forces.LoadParameters) float64 {
	if !params.PileDiameter.IsZero() {
		return params.PileDiameter.InexactFloat64()
	}
	return legWidthFor(leg)
}
