package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// demoPassword is shared by every seeded account
const demoPassword = "testpassword123"

type demoUser struct {
	name    string
	email   string
	profile types.Profile
}

var demoUsers = []demoUser{
	{
		name:  "John Doe",
		email: "john.doe@example.com",
		profile: types.Profile{
			Gender: types.Male, Age: 30, HeightCm: 178, WeightKg: 82,
			Goal: types.GoalLose, FitnessLevel: types.Intermediate,
		},
	},
	{
		name:  "Jane Smith",
		email: "jane.smith@example.com",
		profile: types.Profile{
			Gender: types.Female, Age: 27, HeightCm: 165, WeightKg: 58,
			Goal: types.GoalGain, FitnessLevel: types.Beginner,
			DietaryPreferences: "vegetarian",
		},
	},
	{
		name:  "Bob Wilson",
		email: "bob.wilson@example.com",
		profile: types.Profile{
			Gender: types.Male, Age: 45, HeightCm: 172, WeightKg: 90,
			Goal: types.GoalMaintain, FitnessLevel: types.Advanced,
		},
	},
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo accounts with saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStore(); err != nil {
				return err
			}
			return runSeed(cmd.Context(), app, cmd.OutOrStdout())
		},
	}
}

func runSeed(ctx context.Context, app *App, out io.Writer) error {
	created := 0
	for _, u := range demoUsers {
		token, err := app.Auth.Register(ctx, &types.RegisterRequest{
			Name:     u.name,
			Email:    u.email,
			Password: demoPassword,
		})
		if errors.Is(err, service.ErrUserExists) {
			fmt.Fprintf(out, "User %s already exists, skipping\n", u.email)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.email, err)
		}

		claims, err := app.Auth.ValidateToken(token)
		if err != nil {
			return err
		}

		profile := u.profile
		saved, err := app.Profiles.SaveProfile(ctx, claims.UserID, &profile)
		if err != nil {
			return fmt.Errorf("failed to save profile for %s: %w", u.email, err)
		}

		created++
		fmt.Fprintf(out, "Created %s (%.1f kcal/day)\n", u.email, saved.DailyCalories)
	}

	fmt.Fprintf(out, "Seeded %d users. Password for all: %s\n", created, demoPassword)
	return nil
}
