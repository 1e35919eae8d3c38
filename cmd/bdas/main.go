// ABOUTME: Entry point for the bdas sample dataset generator.
// ABOUTME: Wires config, batch generation, history store and preview server into CLI commands.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/2389/bdas/internal/batch"
	"github.com/2389/bdas/internal/config"
	"github.com/2389/bdas/internal/projects"
	"github.com/2389/bdas/internal/store"
)

const banner = `
           BDAS - Business Data Analytics Specialist
                 by Aman Anil

`

// app carries resolved config and flag values shared by every command.
type app struct {
	cfg *config.Config

	outputDir    string
	projectsFile string
	dbPath       string
	seed         int64
	pace         time.Duration
	noHistory    bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "bdas",
		Short: "BDAS - deterministic sample datasets for analytics projects",
		Long: `BDAS writes placeholder spreadsheets for analytics projects.

Each project name is matched against an ordered list of keywords
(Sales, Customer, Employee, Marketing, Inventory/Supply, Financial/Portfolio,
Operations, Attrition, Market, HR/Workforce) and the first match picks the
dataset shape. Names matching nothing get a single SampleColumn.

Running bdas with no subcommand is the same as 'bdas generate'.

Quick Start:
  bdas                     # Write data/<Project>.xlsx for every project
  bdas list                # Show projects and their categories
  bdas preview Sales_Dashboard
  bdas serve               # Preview server on port 9000

Environment Variables:
  BDAS_OUTPUT_DIR     Output directory (default: data)
  BDAS_SEED           Random seed (default: 42)
  BDAS_PROJECTS_FILE  YAML project list (default: built-in list)
  BDAS_PACE           Delay after each file, e.g. 300ms (default: 0s)
  BDAS_DB_PATH        Run history database
  BDAS_PORT           Preview server port (default: 9000)
  OPENAI_API_KEY      Narrate data dictionaries with OpenAI`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         a.runGenerate,
	}

	rootCmd.PersistentFlags().Int64VarP(&a.seed, "seed", "s", cfg.Seed, "Random seed")
	rootCmd.PersistentFlags().StringVarP(&a.projectsFile, "projects", "p", cfg.ProjectsFile, "YAML project list file")
	rootCmd.PersistentFlags().StringVarP(&a.dbPath, "db", "d", "", "Run history database path")
	rootCmd.PersistentFlags().BoolVar(&a.noHistory, "no-history", false, "Do not record or read run history")
	a.addGenerateFlags(rootCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one spreadsheet per project",
		Long: `Generate a spreadsheet for every project in the list, in order.

Files are written to <output dir>/<Project>.xlsx and overwritten if present.
The run and every file it writes are recorded in the history database
unless --no-history is set.`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}
	a.addGenerateFlags(generateCmd)

	rootCmd.AddCommand(
		generateCmd,
		a.newListCmd(),
		a.newCategoriesCmd(),
		a.newPreviewCmd(),
		a.newDescribeCmd(),
		a.newHistoryCmd(),
		a.newServeCmd(),
	)

	return rootCmd
}

func (a *app) addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.outputDir, "out", "o", a.cfg.OutputDir, "Output directory")
	cmd.Flags().DurationVar(&a.pace, "pace", a.cfg.Pace, "Delay after each file")
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	outputDir, err := validateOutputDir(a.outputDir)
	if err != nil {
		return err
	}

	entries, err := a.loadEntries()
	if err != nil {
		return err
	}

	opts := []batch.Option{
		batch.WithOutputDir(outputDir),
		batch.WithSeed(a.seed),
		batch.WithOutput(cmd.OutOrStdout()),
		batch.WithPace(a.pace),
	}

	if !a.noHistory {
		s, err := a.openStore()
		if err != nil {
			log.Printf("Run history disabled: %v", err)
		} else {
			defer s.Close()
			opts = append(opts, batch.WithRecorder(s))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, banner)

	if _, err := batch.New(opts...).Run(cmd.Context(), entries); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n✅ All sample data generated successfully!")
	return nil
}

func (a *app) loadEntries() ([]projects.Entry, error) {
	return projects.Load(a.projectsFile)
}

func (a *app) resolveDBPath() (string, error) {
	path := a.dbPath
	if path == "" {
		path = getDefaultDBPath(a.cfg.DBPath)
	}
	return validateAndCleanDBPath(path)
}

func (a *app) openStore() (*store.Store, error) {
	dbPath, err := a.resolveDBPath()
	if err != nil {
		return nil, err
	}
	if err := openDBDir(dbPath); err != nil {
		return nil, err
	}
	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return s, nil
}
