package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/aryan24-cs/StudyGenie/internal/interview"
	interviewscreen "github.com/aryan24-cs/StudyGenie/internal/screens/interview"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Take the career interview",
	Long: "Walks through the question bank, adding follow-up questions as your answers unlock them.\n" +
		"Pick options with the arrow keys and space or their number, enter to continue,\n" +
		"s to skip, b to go back, q to quit. --answers replays a file instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		answersPath, _ := cmd.Flags().GetString("answers")
		save, _ := cmd.Flags().GetBool("save")

		a, closeStore, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer closeStore()

		session := interview.NewSession(a.Catalog)
		var responses []interview.Response
		if answersPath != "" {
			script, err := interview.LoadScript(answersPath)
			if err != nil {
				return err
			}
			responses, err = script.Play(session)
		} else {
			responses, err = interviewscreen.Run(cmd.Context(), session,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		}
		if err != nil {
			return err
		}

		result, err := a.Assess(cmd.Context(), responses, save)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		printAssessment(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	interviewCmd.Flags().String("answers", "", "YAML or JSON file of answers keyed by question ID")
	interviewCmd.Flags().Bool("save", true, "Store the assessment and award achievements")
}
