package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/datetime"
	"github.com/iwvelando/lease-fees/pkg/fees"
)

type weeksView struct {
	Weeks        int    `json:"weeks"`
	MoveOut      string `json:"moveOut"`
	AgreementEnd string `json:"agreementEnd"`
}

func weeksCmd(a *app) *cobra.Command {
	var moveOut, end string

	c := &cobra.Command{
		Use:   "weeks",
		Short: "Show the whole weeks remaining between two dates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dates, err := fees.ParseDateRange(moveOut, end)
			if err != nil {
				return err
			}
			weeks, err := dates.Weeks()
			if err != nil {
				return err
			}
			return writeWeeks(cmd.OutOrStdout(), a.format(a.conf), weeksView{
				Weeks:        weeks,
				MoveOut:      datetime.Format(dates.MoveOut),
				AgreementEnd: datetime.Format(dates.AgreementEnd),
			})
		},
	}

	c.Flags().StringVar(&moveOut, "move-out", "", "move out date (required)")
	c.Flags().StringVar(&end, "end", "", "agreement end date (required)")
	_ = c.MarkFlagRequired("move-out")
	_ = c.MarkFlagRequired("end")
	return c
}

func writeWeeks(w io.Writer, outputFormat string, view weeksView) error {
	switch outputFormat {
	case constants.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(view)
	case constants.OutputFormatCSV:
		cw := csv.NewWriter(w)
		err := cw.WriteAll([][]string{
			{"moveOut", "agreementEnd", "weeks"},
			{view.MoveOut, view.AgreementEnd, strconv.Itoa(view.Weeks)},
		})
		if err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%s to %s: %d weeks remaining\n", view.MoveOut, view.AgreementEnd, view.Weeks)
	return err
}

func dateCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "date RAW...",
		Short: "Print the normalized form of each date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				t, err := fees.ParseDate("date", raw)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", raw, datetime.Format(t))
			}
			return nil
		},
	}
}

func termsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List the allowed agreed terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			defaultTerm := a.conf.DefaultTerm()
			fmt.Fprintf(out, "%-10s | %-5s | %s\n", "Term", "Weeks", "Effective Weeks")
			for _, term := range fees.Terms() {
				marker := ""
				if term == defaultTerm {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%-10s | %-5d | %d%s\n", term.Label(), int(term), term.EffectiveWeeks(), marker)
			}
			return nil
		},
	}
}
