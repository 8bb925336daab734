package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/app"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/export"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/tui"
)

func (c *CLI) tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withBoard(cmd, func(ctx context.Context, b *app.Board) error {
				// The board stays open as long as the program runs.
				ctx = context.WithoutCancel(ctx)
				p := tea.NewProgram(
					tui.New(b.Service, tui.WithContext(ctx), tui.WithExportDir(c.v.GetString("export-dir"))),
					tea.WithAltScreen(),
				)
				_, err := p.Run()
				return err
			})
		},
	}
	cmd.Flags().String("export-dir", ".", "Directory the s key writes CSV exports to")
	return cmd
}

func (c *CLI) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List outlets in board order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := domain.ListFilter{
				Stage: domain.Stage(c.v.GetString("stage")),
				City:  domain.City(c.v.GetString("city")),
				Query: c.v.GetString("q"),
			}
			return c.withBoard(cmd, func(ctx context.Context, b *app.Board) error {
				outlets, err := b.Service.List(ctx, f)
				if err != nil {
					return err
				}
				if len(outlets) == 0 {
					_, err := fmt.Fprintln(c.out, "No outlets found.")
					return err
				}
				t := table.New().Headers("ID", "NAME", "STAGE", "CITY", "DATE")
				for _, o := range outlets {
					city := string(o.City)
					if city == "" {
						city = "-"
					}
					t.Row(shortID(o.ID), o.Name, string(o.Stage), city, o.AssignedAt().Format(export.DateLayout))
				}
				_, err = fmt.Fprintln(c.out, t.Render())
				return err
			})
		},
	}
	cmd.Flags().String("stage", "", "Only outlets in this stage")
	cmd.Flags().String("city", "", "Only outlets in this city")
	cmd.Flags().String("q", "", "Name search")
	return cmd
}

func (c *CLI) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show pipeline analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withBoard(cmd, func(ctx context.Context, b *app.Board) error {
				r, err := b.Service.Analytics(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "Total outlets:   %d\n", r.Total)
				fmt.Fprintf(c.out, "Live:            %d\n", r.LiveCount)
				fmt.Fprintf(c.out, "Pipeline health: %d%%\n", r.PipelineHealth)
				fmt.Fprintf(c.out, "Bottleneck:      %s\n", r.Bottleneck)
				fmt.Fprintf(c.out, "Unassigned:      %d\n\n", r.Unassigned)

				stages := table.New().Headers("STAGE", "COUNT")
				for _, sc := range r.Stages {
					stages.Row(string(sc.Stage), strconv.Itoa(sc.Count))
				}
				cities := table.New().Headers("CITY", "COUNT")
				for _, cc := range r.Cities {
					cities.Row(string(cc.City), strconv.Itoa(cc.Count))
				}
				_, err = fmt.Fprintf(c.out, "%s\n%s\n", stages.Render(), cities.Render())
				return err
			})
		},
	}
}

func (c *CLI) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board as CSV or JSON",
		Long: `Export writes one row per outlet in board order.

Without --out the file is named outlet-onboarding-YYYY-MM-DD.csv (or .json)
in the current directory. --out - writes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := c.v.GetString("format")
			if format != "csv" && format != "json" {
				return fmt.Errorf("unsupported format %q (want csv or json)", format)
			}
			return c.withBoard(cmd, func(ctx context.Context, b *app.Board) error {
				rows, err := b.Service.Export(ctx)
				if err != nil {
					return err
				}
				out := c.v.GetString("out")
				if out == "" {
					out = b.Service.ExportFilename()
					if format == "json" {
						out = out[:len(out)-len(".csv")] + ".json"
					}
				}
				if out == "-" {
					return writeExport(c.out, format, rows)
				}

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := writeExport(f, format, rows); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close export file: %w", err)
				}
				_, err = fmt.Fprintf(c.errOut, "Exported %d outlets to %s\n", len(rows), out)
				return err
			})
		},
	}
	cmd.Flags().String("out", "", "Output file, - for stdout")
	cmd.Flags().String("format", "csv", "Output format: csv|json")
	return cmd
}

func writeExport(w io.Writer, format string, rows []domain.ExportRow) error {
	if format == "csv" {
		return export.WriteCSV(w, rows)
	}
	type jsonRow struct {
		Name             string `json:"name"`
		City             string `json:"city"`
		Stage            string `json:"stage"`
		Description      string `json:"description"`
		RegistrationDate string `json:"registrationDate"`
	}
	out := make([]jsonRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, jsonRow(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (c *CLI) resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with the seed outlets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.v.GetBool("yes") {
				return errors.New("reset discards every outlet on the board; pass --yes to confirm")
			}
			return c.withBoard(cmd, func(ctx context.Context, b *app.Board) error {
				if err := b.Store.Reset(ctx); err != nil {
					return err
				}
				records, _ := b.Store.Records()
				_, err := fmt.Fprintf(c.out, "Board reset to %d seed outlets.\n", len(records))
				return err
			})
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm the reset")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
