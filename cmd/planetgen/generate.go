package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/thousandworlds/planetoid/internal/obslog"
	"github.com/thousandworlds/planetoid/internal/planetoid"
	"github.com/thousandworlds/planetoid/internal/planettype"
)

func generateCmd() *cobra.Command {
	var (
		seed     uint32
		typeFlag string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single planetary body and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := obslog.Default
			if !verbose {
				logger = obslog.Nop
			}
			logger = logger.Level(zerolog.InfoLevel)

			p := planetoid.Params{
				Seed:       seed,
				Type:       planettype.Type(typeFlag),
				Name:       name,
				MinOrbitAU: cfg.Orbit.DefaultMinAU,
				MaxOrbitAU: cfg.Orbit.DefaultMaxAU,
				Logger:     logger,
				MaxCorrectionPasses: cfg.Generation.MaxCorrectionPasses,
			}

			body, err := planetoid.Generate(p)
			if err != nil {
				return err
			}

			printSummary(body)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 1, "master seed (non-zero)")
	cmd.Flags().StringVar(&typeFlag, "type", string(planettype.Terrestrial), "planet type")
	cmd.Flags().StringVar(&name, "name", "", "optional display name")

	return cmd
}

func printSummary(p *planetoid.Planetoid) {
	massKg, _ := p.MassKg.Float64()
	fmt.Printf("id=%s seed=%d type=%s\n", p.ID, p.Seed, p.Type)
	fmt.Printf("  mass_kg=%.3e radius_m=%.3e density_kgm3=%.1f gravity_ms2=%.2f\n",
		massKg, p.Shape.EquatorialRadiusM, p.DensityKgM3, p.SurfaceGravityMS2)
	if p.Orbit != nil {
		fmt.Printf("  orbit: a=%.3f AU e=%.3f period_days=%.1f\n",
			p.Orbit.SemiMajorAxisAU, p.Orbit.Eccentricity, p.Orbit.OrbitalPeriodDays)
	}
	fmt.Printf("  rotation_period_s=%.0f tidally_locked=%v obliquity_deg=%.1f\n",
		p.RotationPeriodSeconds, p.TidallyLocked, p.AxialTilt.ObliquityDeg)
	fmt.Printf("  blackbody_k=%.1f surface_pressure_pa=%.1f sea_level_m=%.1f\n",
		p.AverageBlackbodyK, p.Atmosphere.SurfacePressurePa, p.Hydrosphere.SeaLevelM)
	fmt.Printf("  satellites=%d rings=%d resources=%d\n", len(p.Satellites), len(p.Rings), len(p.Resources))
}
