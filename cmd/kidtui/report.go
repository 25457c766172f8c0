package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/kidtui/internal/config"
	"github.com/verte-zerg/kidtui/internal/content"
	"github.com/verte-zerg/kidtui/internal/model"
	"github.com/verte-zerg/kidtui/internal/stats"
	"github.com/verte-zerg/kidtui/internal/statsui"
	"github.com/verte-zerg/kidtui/internal/store"
)

const missedTop = 5

var (
	statsCategory string
	statsSince    string
	statsLast     int
	statsWindow   int
)

func addStatsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&statsCategory, "category", "", "category filter (alphabet, numbers, colors, shapes)")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N quizzes")
	cmd.Flags().IntVar(&statsWindow, "window", statsui.DefaultWindow, "moving average window")
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Browse quiz history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	addStatsFlags(cmd)
	return cmd
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print quiz history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	addStatsFlags(cmd)
	return cmd
}

func statsConfig() (model.StatsConfig, error) {
	cfg := model.StatsConfig{Last: statsLast, Window: statsWindow}
	if statsCategory != "" {
		c, err := content.ParseCategory(statsCategory)
		if err != nil {
			return cfg, fmt.Errorf("invalid --category value: %w", err)
		}
		cfg.Category = string(c)
	}
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return cfg, fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	if cfg.Last < 0 {
		return cfg, fmt.Errorf("--last must be >= 0")
	}
	if cfg.Window < 1 {
		return cfg, fmt.Errorf("--window must be >= 1")
	}
	return cfg, nil
}

func openStore() (*store.Store, func(), error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}, nil
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	cfg, err := statsConfig()
	if err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := statsConfig()
	if err != nil {
		return err
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := writeHistory(cmd.OutOrStdout(), report, cfg.Window, terminalWidth(os.Stdout)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeHistory(w io.Writer, report stats.Report, window, width int) error {
	if err := stats.RenderSummary(w, report.Results); err != nil {
		return err
	}
	if len(report.Results) == 0 {
		return nil
	}
	if err := stats.RenderCurve(w, report.Results, window, width); err != nil {
		return err
	}
	if err := stats.RenderCategoryTable(w, report.CategoriesAll); err != nil {
		return err
	}
	if missed := stats.MostMissed(report.Questions, missedTop); len(missed) > 0 {
		rows := make([][]string, len(missed))
		for i, q := range missed {
			rows[i] = []string{q.Prompt, q.Category, strconv.Itoa(q.Wrong)}
		}
		if _, err := fmt.Fprintln(w, "Most Missed"); err != nil {
			return err
		}
		for _, line := range stats.FormatTable([]string{"Question", "Category", "Wrong"}, rows, map[int]bool{2: true}) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return stats.RenderHistory(w, report.Results)
}

// terminalWidth returns the width of f when it is a terminal, else 0.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func newContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "content <alphabet|numbers|colors|shapes|quiz>",
		Short:     "Print a module's learning content",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"alphabet", "numbers", "colors", "shapes", "quiz"},
		RunE:      runContentCmd,
	}
}

func runContentCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	wordsFile := ""
	if fileCfg.App.WordsFile != nil {
		wordsFile = *fileCfg.App.WordsFile
	}
	provider, err := loadProvider(wordsFile)
	if err != nil {
		return err
	}
	return writeContent(cmd.OutOrStdout(), provider, args[0])
}

func writeContent(w io.Writer, p content.Provider, name string) error {
	var headers []string
	var rows [][]string
	rightAlign := map[int]bool{}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alphabet":
		headers = []string{"Letter", "Word"}
		for _, l := range p.Letters() {
			rows = append(rows, []string{string(l.Char), l.Word})
		}
	case "numbers":
		headers = []string{"Number", "Word"}
		rightAlign[0] = true
		for _, n := range p.Numbers() {
			rows = append(rows, []string{strconv.Itoa(n.Value), n.Word})
		}
	case "colors":
		headers = []string{"Color", "Hex", "Example"}
		for _, c := range p.Colors() {
			rows = append(rows, []string{c.Name, c.Hex, c.Example})
		}
	case "shapes":
		headers = []string{"#", "Shape", "Description"}
		rightAlign[0] = true
		for _, s := range p.Shapes() {
			rows = append(rows, []string{strconv.Itoa(s.Index + 1), s.Name, s.Description})
		}
	case "quiz":
		headers = []string{"Category", "Question", "Options", "Answer"}
		for _, c := range content.Categories {
			for _, q := range p.Questions(c) {
				opts := q.Options()
				rows = append(rows, []string{string(c), q.Prompt(), strings.Join(opts[:], " / "), q.CorrectText()})
			}
		}
	default:
		return fmt.Errorf("unknown module %q (use alphabet, numbers, colors, shapes or quiz)", name)
	}
	for _, line := range stats.FormatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
