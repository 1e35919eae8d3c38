// ABOUTME: Inspection and server subcommands for the bdas CLI.
// ABOUTME: list, categories, preview, describe, history and serve.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/2389/bdas/internal/category"
	"github.com/2389/bdas/internal/describe"
	"github.com/2389/bdas/internal/server"
	"github.com/2389/bdas/internal/store"
	"github.com/2389/bdas/internal/table"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects with their resolved categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.loadEntries()
			if err != nil {
				return err
			}

			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "#\tPROJECT\tCATEGORY\tOUTPUT")
			for i, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, e.Name, category.Match(e.Name).Category, e.OutputName())
			}
			return tw.Flush()
		},
	}
}

func (a *app) newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show category rules in precedence order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "#\tCATEGORY\tKEYWORDS\tROWS\tCOLUMNS")
			for i, r := range category.Rules() {
				keywords := strings.Join(r.Keywords, ", ")
				if keywords == "" {
					keywords = "(anything else)"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", i+1, r.Category, keywords, r.Shape.Rows, strings.Join(r.Shape.Names(), ", "))
			}
			return tw.Flush()
		},
	}
}

func (a *app) newPreviewCmd() *cobra.Command {
	var rows int
	cmd := &cobra.Command{
		Use:   "preview <project>",
		Short: "Print the first rows of a project's dataset",
		Long: `Print the first rows of the dataset a project name resolves to.

The name does not have to be in the project list; any name resolves
to a category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			t, err := category.Generate(name, a.seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %d rows, seed %d)\n\n", name, category.Match(name).Category, t.Rows(), a.seed)
			return printTable(out, t.Head(rows))
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of rows to show")
	return cmd
}

func printTable(w io.Writer, t *table.Table) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, strings.Join(t.Names(), "\t"))
	for i := 0; i < t.Rows(); i++ {
		row := t.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatCell(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func formatCell(v any) string {
	switch v := v.(type) {
	case time.Time:
		return v.Format(time.DateOnly)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (a *app) newDescribeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "describe <project>",
		Short: "Print the data dictionary for a project's dataset",
		Long: `Print each column's type, generation rule and description.

Descriptions are static unless OPENAI_API_KEY is set, in which case the
model named by OPENAI_MODEL writes them. Any model failure falls back to
the static text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := describe.NewGenerator(a.cfg.OpenAIKey, a.cfg.OpenAIModel)
			d := gen.Describe(cmd.Context(), args[0])

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}

			fmt.Fprintf(out, "%s (%s, %d rows)\n\n", d.Project, d.Category, d.Rows)
			tw := newTabWriter(out)
			fmt.Fprintln(tw, "COLUMN\tTYPE\tRULE\tDESCRIPTION")
			for _, f := range d.Fields {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Type, f.Rule, f.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func (a *app) newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recent generation runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.noHistory {
				return fmt.Errorf("run history is disabled")
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				run, err := s.GetRun(args[0])
				if err != nil {
					return err
				}
				return printRun(out, run)
			}

			runs, err := s.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			tw := newTabWriter(out)
			fmt.Fprintln(tw, "ID\tSTARTED\tSTATUS\tSEED\tFILES\tOUTPUT")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", r.ID, r.StartedAt.Local().Format(time.DateTime), r.Status, r.Seed, r.Total, r.OutputDir)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of runs to show")
	return cmd
}

func printRun(w io.Writer, run *store.Run) error {
	fmt.Fprintf(w, "Run %s\n", run.ID)
	fmt.Fprintf(w, "  Started: %s\n", run.StartedAt.Local().Format(time.DateTime))
	if run.FinishedAt != nil {
		fmt.Fprintf(w, "  Finished: %s\n", run.FinishedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintf(w, "  Status: %s\n", run.Status)
	if run.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", run.Error)
	}
	fmt.Fprintf(w, "  Seed: %d\n  Output: %s\n\n", run.Seed, run.OutputDir)

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "#\tPROJECT\tCATEGORY\tROWS\tCOLUMNS\tPATH")
	for _, f := range run.Files {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", f.Position, f.Project, f.Category, f.Rows, f.Columns, f.Path)
	}
	return tw.Flush()
}

func (a *app) newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the HTTP preview server.

Routes:
  GET /healthz
  GET /categories
  GET /projects
  GET /projects/{name}?limit=10&seed=42
  GET /projects/{name}/xlsx
  GET /projects/{name}/dictionary
  GET /runs?limit=20
  GET /runs/{id}
  GET /logs?project=&path=&status=`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, cleanup, err := a.newServer()
			if err != nil {
				return err
			}
			defer cleanup()

			addr := fmt.Sprintf(":%d", port)
			log.Printf("BDAS preview server listening on %s", addr)
			return http.ListenAndServe(addr, handler)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "P", a.cfg.Port, "Port to listen on")
	return cmd
}

func (a *app) newServer() (http.Handler, func(), error) {
	entries, err := a.loadEntries()
	if err != nil {
		return nil, nil, err
	}

	opts := []server.Option{
		server.WithSeed(a.seed),
		server.WithDescriber(describe.NewGenerator(a.cfg.OpenAIKey, a.cfg.OpenAIModel)),
	}

	cleanup := func() {}
	if !a.noHistory {
		s, err := a.openStore()
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Run history: %s", s.Path())
		opts = append(opts, server.WithStore(s))
		cleanup = func() { s.Close() }
	}

	return server.New(entries, opts...).Handler(), cleanup, nil
}
