package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryan24-cs/StudyGenie/internal/app"
	"github.com/aryan24-cs/StudyGenie/internal/quiz"
	"github.com/aryan24-cs/StudyGenie/internal/quizgen"
	"github.com/aryan24-cs/StudyGenie/internal/store"
	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate, take and review study quizzes",
}

var quizGenerateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a quiz from a text file of study material",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read study material: %w", err)
		}
		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		a, closeStore, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer closeStore()

		q, err := a.GenerateQuiz(cmd.Context(), quizgen.Input{Title: title, Text: string(text)}, path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n\n", theme.Title.Render("Quiz"), q.ID)
		printQuestionSet(out, q.Set, false)
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Answer with: studygenie quiz grade %s --answers answers.json", q.ID)))
		return nil
	},
}

var quizGradeCmd = &cobra.Command{
	Use:   "grade <set-id|file.json>",
	Short: "Grade answers against a stored or file-based quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answersPath, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")

		data, err := os.ReadFile(answersPath)
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		answers, err := quiz.DecodeAnswers(data)
		if err != nil {
			return err
		}

		a, closeStore, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer closeStore()

		q, err := resolveQuiz(cmd, a, args[0])
		if err != nil {
			return err
		}

		graded, err := a.GradeQuiz(cmd.Context(), q, answers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(graded.Result)
		}
		printResult(out, graded.Result)
		printAwards(out, graded.Awards)
		return nil
	},
}

// resolveQuiz loads ref as a question set file when it exists on disk,
// storing it so results can reference it, and as a stored ID otherwise.
func resolveQuiz(cmd *cobra.Command, a *app.App, ref string) (*app.StoredQuiz, error) {
	if _, err := os.Stat(ref); err == nil {
		set, err := app.LoadQuizFile(ref)
		if err != nil {
			return nil, err
		}
		title := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
		return a.SaveQuiz(cmd.Context(), set, title, ref)
	}
	q, err := a.LoadQuiz(cmd.Context(), ref)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no quiz file or stored quiz named %q", ref)
	}
	return q, err
}

var quizShowCmd = &cobra.Command{
	Use:   "show <set-id>",
	Short: "Show a stored quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showAnswers, _ := cmd.Flags().GetBool("answers")

		a, closeStore, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer closeStore()

		q, err := a.LoadQuiz(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printQuestionSet(cmd.OutOrStdout(), q.Set, showAnswers)
		return nil
	},
}

var quizHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored quizzes and graded attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		sets, err := s.QuizRepo().ListQuestionSets(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}
		if len(sets) == 0 {
			fmt.Fprintln(out, "No quizzes yet.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-24s  %s\n", "ID", "Created", "Title", "Attempts")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, qs := range sets {
			results, err := s.QuizRepo().ListResults(ctx, qs.ID, store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("list results: %w", err)
			}
			scores := make([]string, 0, len(results))
			for _, r := range results {
				scores = append(scores, fmt.Sprintf("%d/%d", r.Score, r.Total))
			}
			fmt.Fprintf(out, "%-36s  %-19s  %-24s  %s\n",
				qs.ID,
				qs.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(qs.Title, 24),
				strings.Join(scores, " "),
			)
		}
		return nil
	},
}

func init() {
	quizGenerateCmd.Flags().String("title", "", "Quiz title (default: file name)")
	quizGradeCmd.Flags().String("answers", "", "JSON file of answers keyed like {\"quiz-0\": \"...\", \"trueFalse-0\": true}")
	_ = quizGradeCmd.MarkFlagRequired("answers")
	quizGradeCmd.Flags().Bool("json", false, "Print the result as JSON")
	quizShowCmd.Flags().Bool("answers", false, "Show the answer key")
	quizHistoryCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizGradeCmd)
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizHistoryCmd)
}
