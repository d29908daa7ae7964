package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"phased/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewVolumesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "volumes [pressure]",
		Short:   "Compute specific volumes for a pressure",
		GroupID: gBasic,
		Long: `Compute the liquid and vapor specific volumes for the given pressure.

The pressure must be a non-negative number. The calculation is done by the daemon, which must be running.`,
		RunE: func(_ *cobra.Command, args []string) error {
			pressure, err := parseFloatArg(args, "pressure")
			if err != nil {
				return err
			}

			result, err := apiClient.GetPhaseChangeDiagram(pressure)
			if err != nil {
				return fmt.Errorf("failed to compute specific volumes: %w", err)
			}

			fmt.Printf("%s %v\n", bold("Pressure:"), pressure)
			fmt.Printf("%s %v\n", bold("Specific volume (liquid):"), result.SpecificVolumeLiquid)
			fmt.Printf("%s %v\n", bold("Specific volume (vapor): "), result.SpecificVolumeVapor)

			return nil
		},
	}
}

func NewConstantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "constants",
		Short:   "Show calibration constants and derived parameters",
		GroupID: gBasic,
		RunE: func(_ *cobra.Command, _ []string) error {
			constants, err := apiClient.GetConstants()
			if err != nil {
				return fmt.Errorf("failed to get constants: %w", err)
			}

			c := constants.Constants
			p := constants.CalculatedParameters

			fmt.Println(bold("Calibration points:"))
			fmt.Printf("  liquid: (%v, %v) -> (%v, %v)\n", c.X1, c.Y1, c.X2, c.Y2)
			fmt.Printf("  vapor:  (%v, %v) -> (%v, %v)\n", c.X2, c.Y2, c.X3, c.Y3)
			fmt.Println(bold("Derived parameters:"))
			fmt.Printf("  ml: %v\n", p.SlopeLiquid)
			fmt.Printf("  mv: %v\n", p.SlopeVapor)
			fmt.Printf("  al: %v\n", p.InterceptLiquid)
			fmt.Printf("  av: %v\n", p.InterceptVapor)

			return nil
		},
	}
}

func NewHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "health",
		Short:   "Check daemon health",
		GroupID: gBasic,
		RunE: func(_ *cobra.Command, _ []string) error {
			health, err := apiClient.GetHealth()
			if err != nil {
				return fmt.Errorf("failed to get daemon health: %w", err)
			}

			var status string
			if health.Status == "healthy" {
				status = color.GreenString(health.Status)
			} else {
				status = color.RedString(health.Status)
			}
			fmt.Printf("%s %s (%s)\n", bold("Daemon status:"), status, health.Message)

			return nil
		},
	}
}
