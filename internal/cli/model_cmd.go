package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/fitsync-pro/backend/internal/service"
)

func newVerifyKeyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-key",
		Short: "Send one small request to check the Gemini API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireModels(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API Key: %s\n", service.MaskKey(app.APIKey))
			fmt.Fprintf(out, "Model:   %s\n", app.Models.ModelName())

			reply, err := app.Models.VerifyKey(cmd.Context())
			if err != nil {
				return fmt.Errorf("API key check failed: %w", err)
			}
			fmt.Fprintf(out, "Response: %s\n", strings.TrimSpace(reply))
			return nil
		},
	}
}

func newListModelsCmd(app *App) *cobra.Command {
	var generateOnly bool

	cmd := &cobra.Command{
		Use:   "list-models",
		Short: "List the models available to the configured key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireModels(); err != nil {
				return err
			}

			models, err := app.Models.ListModels(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range models {
				if generateOnly && !supports(m, "generateContent") {
					continue
				}
				marker := " "
				if strings.TrimPrefix(m.Name, "models/") == app.Models.ModelName() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s", marker, m.Name)
				if m.DisplayName != "" {
					fmt.Fprintf(out, " (%s)", m.DisplayName)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&generateOnly, "generate-only", true, "Only list models that support generateContent")
	return cmd
}

func supports(m service.ModelInfo, action string) bool {
	// models without action metadata are listed
	if len(m.SupportedActions) == 0 {
		return true
	}
	for _, a := range m.SupportedActions {
		if a == action {
			return true
		}
	}
	return false
}
