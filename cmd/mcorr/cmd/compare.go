package cmd

import (
	"fmt"
	"strings"

	"github.com/SscSPs/monetary_correction_app/internal/dto"
	"github.com/spf13/cobra"
)

func newCompareCmd(app *cli) *cobra.Command {
	var (
		from    string
		to      string
		indices []string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the accumulated variation of several indices",
		Long: `Prints the accumulated factor of each index between two months.
Indices without data in the period are left out.

Examples:
  mcorr compare --from 2020-01 --to 2024-12
  mcorr compare --from 2020-01 --to 2024-12 --indices IPCA,IGP_M`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := dto.ComparisonQuery{Start: from, End: to}
			start, end, err := query.ParseDates()
			if err != nil {
				return err
			}

			windows, err := app.services.Correction.CompareIndices(cmd.Context(), start, end, indices)
			if err != nil {
				return err
			}

			res := dto.ToComparisonResponse(start, end, windows)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Period: %s -> %s\n\n", res.Start, res.End)
			fmt.Fprintf(out, "%-12s %8s %16s %14s\n", "INDEX", "MONTHS", "FACTOR", "CHANGE")
			fmt.Fprintln(out, strings.Repeat("-", 53))
			for _, idx := range res.Indices {
				fmt.Fprintf(out, "%-12s %8d %16.9f %14s\n", idx.Name, len(idx.Points), idx.AccumulatedFactor, app.formatter.Percent(idx.PeriodChangePercent))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First month (YYYY-MM or MM-YYYY)")
	cmd.Flags().StringVar(&to, "to", "", "Last month (YYYY-MM or MM-YYYY)")
	cmd.Flags().StringSliceVar(&indices, "indices", nil, "Index IDs to compare (default: all)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
