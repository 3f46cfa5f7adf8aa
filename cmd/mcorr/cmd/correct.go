package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCorrectCmd(app *cli) *cobra.Command {
	var (
		indexID   string
		from      string
		to        string
		value     string
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Correct a nominal amount between two months",
		Long: `Corrects a nominal amount from one month to another. When --from is after
--to the amount is deflated instead.

Examples:
  mcorr correct --index IPCA --from 2024-01 --to 2024-03 --value 100
  mcorr correct --index IGP-M --from 06-1994 --to 2024-12 --value 2750 --table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nominal, err := decimal.NewFromString(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("invalid --value %q: %w", value, err)
			}

			req := dto.CorrectionRequest{IndexID: indexID, StartDate: from, EndDate: to, NominalValue: &nominal}
			domainReq, err := req.ToDomain()
			if err != nil {
				return err
			}

			result, err := app.services.Correction.ComputeCorrection(cmd.Context(), domainReq)
			if err != nil {
				var domainErr *apperrors.OutOfDomainError
				if errors.As(err, &domainErr) && !domainErr.Min.IsZero() {
					return fmt.Errorf("%w (available: %s to %s)", err,
						domainErr.Min.Format("01-2006"), domainErr.Max.Format("01-2006"))
				}
				return err
			}

			res := dto.ToCorrectionResponse(result, app.formatter)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Index:          %s\n", res.IndexID)
			fmt.Fprintf(out, "Period:         %s -> %s (%s)\n", res.StartDate, res.EndDate, strings.ToLower(res.Mode))
			fmt.Fprintf(out, "Nominal value:  %s\n", res.NominalValueDisplay)
			fmt.Fprintf(out, "Factor:         %.9f\n", res.FinalFactor)
			fmt.Fprintf(out, "Period change:  %s\n", res.PeriodChangeDisplay)
			fmt.Fprintf(out, "Corrected:      %s\n", res.CorrectedValueDisplay)

			if showTable {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%-8s %12s %16s %24s\n", "MONTH", "VARIATION %", "FACTOR", "VALUE")
				fmt.Fprintln(out, strings.Repeat("-", 63))
				for _, row := range res.Rows {
					fmt.Fprintf(out, "%-8s %12.2f %16.9f %24s\n", row.Date, row.MonthlyVariation, row.CumulativeFactor, row.CorrectedValueDisplay)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&indexID, "index", "i", "IPCA", "Index ID (see 'mcorr indices')")
	cmd.Flags().StringVar(&from, "from", "", "Start month (YYYY-MM or MM-YYYY)")
	cmd.Flags().StringVar(&to, "to", "", "End month (YYYY-MM or MM-YYYY)")
	cmd.Flags().StringVar(&value, "value", "", "Nominal amount in the currency of the start month")
	cmd.Flags().BoolVar(&showTable, "table", false, "Print the month by month table")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
