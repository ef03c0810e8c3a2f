package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"farmtrack/pkg/seed"
)

func (a *app) seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed data",
	}

	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Convert the configured seed sources into one SQLite seed file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs, err := a.loadRecords(cmd.Context())
			if err != nil {
				return err
			}
			if err := seed.WriteSQLite(cmd.Context(), out, recs); err != nil {
				return fmt.Errorf("export %s: %w", out, err)
			}
			a.log.Info("seed exported", "out", out, "records", len(recs))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(recs), out)
			return nil
		},
	}
	export.Flags().StringVar(&out, "out", "crops.db", "SQLite file to write")
	cmd.AddCommand(export)
	return cmd
}
