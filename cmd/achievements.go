package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aryan24-cs/StudyGenie/internal/achievements"
	"github.com/aryan24-cs/StudyGenie/internal/ui/theme"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show earned achievements and level",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeStore, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer closeStore()

		progress, err := a.Progress(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printLevel(out, progress.Level)
		fmt.Fprintln(out)

		if len(progress.Ledger) == 0 {
			fmt.Fprintln(out, "No achievements yet. Take the interview or grade a quiz to earn some.")
			return nil
		}

		counts := progress.Ledger.CountByKind()
		for _, k := range achievements.AllKinds() {
			if counts[k] == 0 {
				continue
			}
			fmt.Fprintf(out, "%s  %-14s x%-3d %s\n", k.Icon(), k.Title(), counts[k], theme.Hint.Render(fmt.Sprintf("%d pts each", k.Points())))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Title.Render("Recent"))
		recent := progress.Ledger
		if len(recent) > 10 {
			recent = recent[len(recent)-10:]
		}
		for i := len(recent) - 1; i >= 0; i-- {
			aw := recent[i]
			fmt.Fprintf(out, "  %s  %-14s +%-4d %s\n",
				aw.AwardedAt.Local().Format("2006-01-02 15:04"), aw.Title, aw.Points, theme.Hint.Render(aw.Reference))
		}
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank learners into Gold, Silver and Bronze divisions",
	Long: "Ranks the entries in --entries (YAML or JSON list of {name, points}). " +
		"With --me, your own point total joins the board.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("entries")
		me, _ := cmd.Flags().GetString("me")

		entries, err := loadEntries(path)
		if err != nil {
			return err
		}

		if me != "" {
			a, closeStore, err := openApp(cmd, false)
			if err != nil {
				return err
			}
			defer closeStore()
			progress, err := a.Progress(cmd.Context())
			if err != nil {
				return err
			}
			entries = append(entries, achievements.Entry{Name: me, Points: progress.Level.Points})
		}

		standings := achievements.Leaderboard(entries)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-5s  %-20s  %8s  %s\n", "Rank", "Name", "Points", "Division")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for _, s := range standings {
			name := truncate(s.Name, 20)
			if me != "" && s.Name == me {
				name = theme.Selected.Render(fmt.Sprintf("%-20s", name))
			} else {
				name = fmt.Sprintf("%-20s", name)
			}
			fmt.Fprintf(out, "%-5d  %s  %8d  %s\n", s.Rank, name, s.Points, theme.Division(string(s.Division)).Render(string(s.Division)))
		}
		return nil
	},
}

// loadEntries reads a leaderboard file. An empty path yields no entries.
func loadEntries(path string) ([]achievements.Entry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	var entries []achievements.Entry
	if strings.EqualFold(strings.TrimPrefix(filepath.Ext(path), "."), "json") {
		err = json.Unmarshal(data, &entries)
	} else {
		err = yaml.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

func init() {
	leaderboardCmd.Flags().String("entries", "", "YAML or JSON file of leaderboard entries")
	leaderboardCmd.Flags().String("me", "", "Add your own points under this name")
}
