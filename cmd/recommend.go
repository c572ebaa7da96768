package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryan24-cs/StudyGenie/internal/interview"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers for a list of tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, _ := cmd.Flags().GetStringSlice("tags")
		if len(tags) == 0 {
			return fmt.Errorf("--tags is required")
		}

		a, closeStore, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer closeStore()

		known := a.Catalog.Tags()
		var unknown []string
		for _, t := range tags {
			if !known[t] {
				unknown = append(unknown, t)
			}
		}
		if len(unknown) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: tags not in the catalog: %s\n", strings.Join(unknown, ", "))
		}

		responses := []interview.Response{{QuestionID: "tags", Selected: tags}}
		result, err := a.Assess(cmd.Context(), responses, false)
		if err != nil {
			return err
		}
		printAssessment(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringSlice("tags", nil, "Comma-separated option tags (e.g. coding,ai_ml,team_player)")
}
