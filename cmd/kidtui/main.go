// Package main provides the CLI entrypoint for kidtui.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/kidtui/internal/config"
	"github.com/verte-zerg/kidtui/internal/content"
	"github.com/verte-zerg/kidtui/internal/generator"
	"github.com/verte-zerg/kidtui/internal/logging"
	"github.com/verte-zerg/kidtui/internal/model"
	"github.com/verte-zerg/kidtui/internal/quiz"
	"github.com/verte-zerg/kidtui/internal/store"
	"github.com/verte-zerg/kidtui/internal/tui"
	"github.com/verte-zerg/kidtui/internal/wordlist"
)

const (
	defaultModule = tui.ModuleHome
	maxDuration   = 600
	maxDelay      = 10 * time.Second
)

var (
	appModule         string
	appWordsFile      string
	quizDuration      int
	quizFeedbackDelay time.Duration
	quizShuffle       bool
	quizNoHistory     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kidtui",
		Short:         "Learn letters, numbers, colors and shapes in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAppCmd,
	}

	rootCmd.Flags().StringVar(&appModule, "module", defaultModule, "module to open first (home, alphabet, numbers, colors, shapes, quiz)")
	rootCmd.Flags().StringVar(&appWordsFile, "words-file", "", "file with custom alphabet example words")
	rootCmd.Flags().IntVar(&quizDuration, "duration", quiz.DefaultDuration, "quiz time limit in seconds")
	rootCmd.Flags().DurationVar(&quizFeedbackDelay, "feedback-delay", quiz.DefaultFeedbackDelay, "pause after an answer before the next question")
	rootCmd.Flags().BoolVar(&quizShuffle, "shuffle", false, "shuffle question order and the order of each question's options")
	rootCmd.Flags().BoolVar(&quizNoHistory, "no-history", false, "do not record quiz results")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newContentCmd())

	return rootCmd
}

func runAppCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := mergeAppConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(logPath(fileCfg), logLevel(fileCfg))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	provider, err := loadProvider(cfg.WordsFile)
	if err != nil {
		return err
	}

	var st *store.Store
	if cfg.History {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	opts := quiz.Options{Duration: cfg.Duration}
	if cfg.Shuffle {
		opts.Arrange = generator.New().Arrange
	}
	logger.Info().
		Str("module", cfg.StartModule).
		Int("duration", cfg.Duration).
		Bool("shuffle", cfg.Shuffle).
		Bool("history", cfg.History).
		Msg("starting")

	m := tui.NewModel(tui.Options{
		Config:   cfg,
		Provider: provider,
		Engine:   quiz.NewEngine(provider, opts),
		Store:    st,
		Logger:   logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// mergeAppConfig resolves settings from flags and the config file. Flags the
// user set explicitly win.
func mergeAppConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	applyStringConfig(cmd, "module", &appModule, fileCfg.App.StartModule)
	applyStringConfig(cmd, "words-file", &appWordsFile, fileCfg.App.WordsFile)
	applyIntConfig(cmd, "duration", &quizDuration, fileCfg.Quiz.Duration)
	applyDurationConfig(cmd, "feedback-delay", &quizFeedbackDelay, fileCfg.Quiz.FeedbackDelay)
	applyBoolConfig(cmd, "shuffle", &quizShuffle, fileCfg.Quiz.Shuffle)
	if fileCfg.Quiz.History != nil && !cmd.Flags().Changed("no-history") {
		quizNoHistory = !*fileCfg.Quiz.History
	}
	return model.Config{
		StartModule:   strings.TrimSpace(strings.ToLower(appModule)),
		WordsFile:     appWordsFile,
		Duration:      quizDuration,
		FeedbackDelay: quizFeedbackDelay,
		Shuffle:       quizShuffle,
		History:       !quizNoHistory,
	}
}

func loadProvider(wordsFile string) (*content.Static, error) {
	provider := content.NewStatic()
	if wordsFile == "" {
		return provider, nil
	}
	words, err := wordlist.LoadWords(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load words file %s: %w", wordsFile, err)
	}
	return provider.WithWords(words), nil
}

func logPath(fileCfg config.FileConfig) string {
	if fileCfg.Log.File != nil && *fileCfg.Log.File != "" {
		return *fileCfg.Log.File
	}
	return config.DefaultLogPath()
}

func logLevel(fileCfg config.FileConfig) string {
	if fileCfg.Log.Level != nil {
		return *fileCfg.Log.Level
	}
	return logging.DefaultLevel
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *config.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value.Duration
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# kidtui configuration
# Uncomment a value to enable it. CLI flags override config values.

[app]
# start-module = %q      # home, alphabet, numbers, colors, shapes or quiz
# words-file = ""          # Custom alphabet words, one "LETTER word" per line

[quiz]
# duration = %d            # Time limit in seconds
# feedback-delay = %q     # Pause after an answer
# shuffle = false          # Shuffle question order and each question's options
# history = true           # Record quiz results

[log]
# level = %q             # debug, info, warn or error
# file = ""                # Defaults to %s
`,
		defaultModule,
		quiz.DefaultDuration,
		quiz.DefaultFeedbackDelay.String(),
		logging.DefaultLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if !tui.ValidModule(cfg.StartModule) {
		return fmt.Errorf("--module must be one of home, %s", strings.Join(tui.Modules, ", "))
	}
	if cfg.Duration <= 0 || cfg.Duration > maxDuration {
		return fmt.Errorf("--duration must be between 1 and %d", maxDuration)
	}
	if cfg.FeedbackDelay <= 0 || cfg.FeedbackDelay > maxDelay {
		return fmt.Errorf("--feedback-delay must be positive and at most %s", maxDelay)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
