package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the interview question catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog file (use with --catalog)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s catalog %s: %d questions, %d follow-ups, %d careers\n",
			theme.Verdict(true), c.Version, len(c.Questions), len(c.Conditionals), len(c.Careers))

		unmatched := c.UnmatchedTags()
		ids := make([]string, 0, len(unmatched))
		for id := range unmatched {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintln(out, theme.Warning.Render(fmt.Sprintf("warning: career %q has tags no option produces: %s",
				id, strings.Join(unmatched[id], ", "))))
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List questions, follow-ups and careers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render("Questions"))
		for _, q := range c.Questions {
			fmt.Fprintf(out, "  %-16s %s%s\n", q.ID, q.Prompt, questionFlags(q.MultiSelect, q.Required))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Title.Render("Follow-ups"))
		for _, cq := range c.Conditionals {
			fmt.Fprintf(out, "  %-16s %s%s %s\n", cq.ID, cq.Prompt, questionFlags(cq.MultiSelect, cq.Required),
				theme.Hint.Render("after "+strings.Join(cq.DependsOn, ", ")))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Title.Render("Careers"))
		for _, cr := range c.Careers {
			fmt.Fprintf(out, "  %-26s %s %s\n", cr.ID, cr.Title, theme.Hint.Render(strings.Join(cr.Tags, ", ")))
		}
		return nil
	},
}

func questionFlags(multi, required bool) string {
	var flags []string
	if multi {
		flags = append(flags, "multi")
	}
	if required {
		flags = append(flags, "required")
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + theme.Hint.Render("["+strings.Join(flags, ", ")+"]")
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}
