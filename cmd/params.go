package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TurnbullEngineering/water-flow-forces/internal/as5100"
	"github.com/TurnbullEngineering/water-flow-forces/internal/config"
	"github.com/TurnbullEngineering/water-flow-forces/internal/forces"
)

// paramFlags is the design-input flag set shared by the forces and batch
// commands. Flag defaults come from the code-clause figures and are
// overlaid with configured defaults for any flag the user did not set.
type paramFlags struct {
	legType          string
	diameter         float64
	area             float64
	cd               float64
	pileDiameter     float64
	cdPile           float64
	minDebrisDepth   float64
	maxDebrisDepth   float64
	logMass          float64
	stoppingDistance float64
	loadFactor       float64
	scourDepth       float64
}

func (p *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.legType, "leg-type", "pier", "Leg type: pier or bored-pile")
	cmd.Flags().Float64Var(&p.diameter, "diameter", as5100.DefaultColumnDiameter, "Pier column diameter (m)")
	cmd.Flags().Float64Var(&p.area, "area", 0, "Bored pile single-face wetted area (m²)")
	cmd.Flags().Float64Var(&p.cd, "cd", as5100.DefaultCd[as5100.Pier], "Drag coefficient for the above-ground leg")
	cmd.Flags().Float64Var(&p.pileDiameter, "pile-diameter", 0, "Pile diameter (m), defaults to the pier diameter")
	cmd.Flags().Float64Var(&p.cdPile, "cd-pile", as5100.DefaultCdPile[as5100.Pier], "Drag coefficient for the scoured pile")
	cmd.Flags().Float64Var(&p.minDebrisDepth, "min-debris-depth", as5100.DefaultMinDebrisDepth, "Minimum debris mat depth (m)")
	cmd.Flags().Float64Var(&p.maxDebrisDepth, "max-debris-depth", as5100.DefaultMaxDebrisDepth, "Maximum debris mat depth (m)")
	cmd.Flags().Float64Var(&p.logMass, "log-mass", as5100.DefaultLogMass, "Log mass for impact calculation (kg)")
	cmd.Flags().Float64Var(&p.stoppingDistance, "stopping-distance", as5100.DefaultStoppingDistance, "Log stopping distance (m)")
	cmd.Flags().Float64Var(&p.loadFactor, "load-factor", as5100.DefaultLoadFactor, "Load factor applied to all forces")
	cmd.Flags().Float64Var(&p.scourDepth, "scour-depth", as5100.DefaultScourDepth, "Scour depth below ground (m)")
}

// applyDefaults overlays configured defaults onto flags the user left
// untouched. The above-ground Cd default tracks the leg type.
func (p *paramFlags) applyDefaults(cmd *cobra.Command, d config.DefaultsConfig, legType as5100.LegType) {
	set := func(name string, target *float64, value float64) {
		if !cmd.Flags().Changed(name) {
			*target = value
		}
	}
	set("diameter", &p.diameter, d.ColumnDiameter)
	set("pile-diameter", &p.pileDiameter, d.PileDiameter)
	set("cd-pile", &p.cdPile, d.CdPile)
	set("min-debris-depth", &p.minDebrisDepth, d.MinDebrisDepth)
	set("max-debris-depth", &p.maxDebrisDepth, d.MaxDebrisDepth)
	set("log-mass", &p.logMass, d.LogMass)
	set("stopping-distance", &p.stoppingDistance, d.StoppingDistance)
	set("load-factor", &p.loadFactor, d.LoadFactor)
	set("scour-depth", &p.scourDepth, d.ScourDepth)
	if !cmd.Flags().Changed("cd") {
		p.cd = as5100.DefaultCd[legType]
		if legType == as5100.Pier {
			p.cd = d.Cd
		}
	}
}

// geometry builds the leg geometry from the flag set.
func (p *paramFlags) geometry() (forces.LegGeometry, error) {
	switch p.legType {
	case "pier":
		diameter, err := forces.FromFloat(p.diameter)
		if err != nil {
			return nil, err
		}
		return forces.Pier{Diameter: diameter}, nil
	case "bored-pile":
		if p.area <= 0 {
			return nil, fmt.Errorf("bored pile legs require --area > 0")
		}
		area, err := forces.FromFloat(p.area)
		if err != nil {
			return nil, err
		}
		return forces.BoredPile{Area: area}, nil
	default:
		return nil, fmt.Errorf("unknown leg type %q (expected pier or bored-pile)", p.legType)
	}
}

// loadParameters builds the calculator parameters from the flag set.
func (p *paramFlags) loadParameters() (forces.LoadParameters, error) {
	var params forces.LoadParameters

	var err error
	if params.CdPier, err = forces.FromFloat(p.cd); err != nil {
		return params, err
	}
	if params.CdPile, err = forces.FromFloat(p.cdPile); err != nil {
		return params, err
	}
	if params.LogMass, err = forces.FromFloat(p.logMass); err != nil {
		return params, err
	}
	if params.StoppingDistance, err = forces.FromFloat(p.stoppingDistance); err != nil {
		return params, err
	}
	if params.LoadFactor, err = forces.FromFloat(p.loadFactor); err != nil {
		return params, err
	}
	if params.MinDebrisDepth, err = forces.FromFloat(p.minDebrisDepth); err != nil {
		return params, err
	}
	if params.MaxDebrisDepth, err = forces.FromFloat(p.maxDebrisDepth); err != nil {
		return params, err
	}
	if params.PileDiameter, err = forces.FromFloat(p.pileDiameter); err != nil {
		return params, err
	}
	if params.ScourDepth, err = forces.FromFloat(p.scourDepth); err != nil {
		return params, err
	}
	return params, nil
}

func (p *paramFlags) legTypeEnum() (as5100.LegType, error) {
	switch p.legType {
	case "pier":
		return as5100.Pier, nil
	case "bored-pile":
		return as5100.BoredPile, nil
	default:
		return 0, fmt.Errorf("unknown leg type %q (expected pier or bored-pile)", p.legType)
	}
}
