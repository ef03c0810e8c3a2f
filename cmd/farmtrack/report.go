package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"farmtrack/pkg/rotation/types"
)

func (a *app) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print harvested records with soil-health scores and yield figures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			farm, err := farmFlag(cmd)
			if err != nil {
				return err
			}
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			history := a.rotationService(store).History(farm)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFARM\tCROP\tPLANTED\tSOIL\tACTUAL\tEXPECTED\tPREVIOUS")
			for _, h := range history {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
					h.ID, h.FarmID, h.CropType, h.PlantingDate, h.SoilHealthScore,
					humanize.Commaf(h.YieldData.Actual),
					humanize.Commaf(h.YieldData.Expected),
					humanize.Commaf(h.YieldData.Previous))
			}
			return w.Flush()
		},
	}
	cmd.Flags().Uint("farm", 0, "only this farm")
	return cmd
}

func (a *app) chartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Print the timeline and soil-health chart data as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			farm, err := farmFlag(cmd)
			if err != nil {
				return err
			}
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.rotationService(store).Charts(farm))
		},
	}
	cmd.Flags().Uint("farm", 0, "only this farm")
	return cmd
}

func (a *app) plansCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List rotation plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			farm, err := farmFlag(cmd)
			if err != nil {
				return err
			}
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			plans := a.rotationService(store).ListPlans(types.PlanQuery{SearchTerm: search, FarmID: farm})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFARM\tSEQUENCE\tSTART\tYEARS\tNOTES")
			for _, p := range plans {
				fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%s\n",
					p.ID, p.FarmID, strings.Join(p.CropSequence, " > "), p.StartYear, p.Duration, p.Notes)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "match crop names or notes")
	cmd.Flags().Uint("farm", 0, "only this farm")
	return cmd
}
