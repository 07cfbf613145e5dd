package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/fitsync-pro/backend/internal/service"
)

// ModelClient is the part of the LLM service the CLI talks to
type ModelClient interface {
	VerifyKey(ctx context.Context) (string, error)
	ListModels(ctx context.Context) ([]service.ModelInfo, error)
	ModelName() string
}

// App holds references to the services used by CLI commands.
// Any of them may be nil when the backend could not be configured;
// SetupErr then explains why.
type App struct {
	APIKey   string
	Models   ModelClient
	Auth     service.IAuthService
	Profiles service.IProfileService
	SetupErr error
}

// NewRootCmd creates the top-level "fitsyncctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitsyncctl",
		Short:         "Operator tools for the FitSync Pro backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newVerifyKeyCmd(app),
		newListModelsCmd(app),
		newTargetsCmd(),
		newSeedCmd(app),
	)

	return root
}

func (a *App) requireModels() error {
	if a.Models == nil {
		return notConfigured(a.SetupErr)
	}
	return nil
}

func (a *App) requireStore() error {
	if a.Auth == nil || a.Profiles == nil {
		return notConfigured(a.SetupErr)
	}
	return nil
}

func notConfigured(cause error) error {
	if cause == nil {
		return fmt.Errorf("backend is not configured")
	}
	return fmt.Errorf("backend is not configured: %w", cause)
}
