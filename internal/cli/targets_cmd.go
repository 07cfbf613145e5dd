package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// newTargetsCmd computes targets locally; it needs no backend.
func newTargetsCmd() *cobra.Command {
	var (
		gender, goal       string
		age                int
		heightCm, weightKg float64
	)

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Print BMR, TDEE and daily targets for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := types.ParseGender(gender)
			if err != nil {
				return err
			}
			gl, err := types.ParseGoal(goal)
			if err != nil {
				return err
			}

			t := service.CalculateTargets(g, age, heightCm, weightKg, gl)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR:            %.1f kcal\n", t.BMR)
			fmt.Fprintf(out, "TDEE:           %.1f kcal\n", t.TDEE)
			fmt.Fprintf(out, "Daily calories: %.1f kcal\n", t.DailyCalories)
			fmt.Fprintf(out, "Daily protein:  %.1f g\n", t.DailyProteinG)
			return nil
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "male", "male or female")
	cmd.Flags().IntVar(&age, "age", 30, "Age in years")
	cmd.Flags().Float64Var(&heightCm, "height", 170, "Height in cm")
	cmd.Flags().Float64Var(&weightKg, "weight", 70, "Weight in kg")
	cmd.Flags().StringVar(&goal, "goal", "maintain", "lose, maintain or gain")
	return cmd
}
