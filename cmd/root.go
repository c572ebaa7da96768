package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aryan24-cs/StudyGenie/internal/app"
	"github.com/aryan24-cs/StudyGenie/internal/catalog"
	"github.com/aryan24-cs/StudyGenie/internal/llm"
	"github.com/aryan24-cs/StudyGenie/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studygenie",
	Short: "Career assessment and study quizzes",
	Long: "StudyGenie runs an adaptive career interview, recommends career paths, " +
		"and turns study material into graded quizzes.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYGENIE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML question catalog (default: built-in)")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYGENIE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadCatalog returns the --catalog file or the embedded catalog.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return catalog.Load(p)
	}
	return catalog.Default(), nil
}

// openApp opens the store and builds the application. When withLLM is set
// a provider is configured from the environment; a missing provider is
// reported as a warning. The returned func closes the store.
func openApp(cmd *cobra.Command, withLLM bool) (*app.App, func(), error) {
	c, err := loadCatalog(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := app.Options{Store: st, Catalog: c, Warnings: cmd.ErrOrStderr()}
	if withLLM {
		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: LLM provider not configured:", err)
		} else {
			opts.Provider = provider
		}
	}
	return app.New(opts), func() { st.Close() }, nil
}
