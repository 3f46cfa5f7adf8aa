package cmd

import (
	"fmt"
	"strings"

	"github.com/SscSPs/monetary_correction_app/internal/dto"
	"github.com/spf13/cobra"
)

func newIndicesCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "indices",
		Short: "List supported price indices",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %-14s %-20s %s\n", "ID", "NAME", "SOURCE", "DESCRIPTION")
			fmt.Fprintln(out, strings.Repeat("-", 80))
			for _, idx := range dto.ToListIndexResponse(app.services.Series.ListIndices(cmd.Context())) {
				fmt.Fprintf(out, "%-12s %-14s %-20s %s\n", idx.IndexID, idx.Name, idx.SourceCode, idx.Description)
			}
		},
	}
}

func newErasCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "eras",
		Short: "List Brazilian currency eras",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-15s %-6s %-12s %s\n", "CODE", "SYMBOL", "UNTIL", "TO REAL")
			fmt.Fprintln(out, strings.Repeat("-", 56))
			for _, era := range dto.ToListEraResponse(app.services.Correction.ListEras(cmd.Context())) {
				until := "-"
				if era.UpperBound != nil {
					until = *era.UpperBound
				}
				fmt.Fprintf(out, "%-15s %-6s %-12s %s\n", era.Code, era.Symbol, until, era.ToReal)
			}
		},
	}
}
