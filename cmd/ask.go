package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryan24-cs/StudyGenie/internal/qa"
	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

var askCmd = &cobra.Command{
	Use:   "ask <file> <question>",
	Short: "Ask a question about a text file of study material",
	Long: "Answers from the material only. When the file does not cover the question\n" +
		"the answer says so instead of guessing.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read study material: %w", err)
		}
		showPassages, _ := cmd.Flags().GetBool("passages")

		a, closeStore, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer closeStore()

		ans, err := a.Ask(cmd.Context(), qa.Input{
			Title:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Text:     string(text),
			Question: args[1],
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(args[1]))
		fmt.Fprintln(out)
		if ans.Available {
			fmt.Fprintln(out, ans.Text)
		} else {
			fmt.Fprintln(out, theme.Warning.Render(ans.Text))
		}

		if showPassages {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Heading.Render("Passages"))
			for _, p := range ans.Passages {
				fmt.Fprintf(out, "%s %s\n", theme.Hint.Render(fmt.Sprintf("[%d]", p.Index+1)), p.Text)
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("passages", false, "Also print the passages the answer was drawn from")
}
