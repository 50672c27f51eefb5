package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/lease-fees/internal/formstore"
	"github.com/iwvelando/lease-fees/pkg/fees"
	"github.com/iwvelando/lease-fees/pkg/output"
)

// calcFlags are the raw inputs shared by the calculator commands.
type calcFlags struct {
	amount     string
	term       int
	weeks      string
	moveOut    string
	end        string
	multiplier string
	save       bool
}

func (f *calcFlags) formState(kind fees.Kind) (formstore.FormState, error) {
	state := formstore.FormState{
		Calculator: kind,
		Amount:     f.amount,
	}
	if !kind.UsesTerm() {
		return state, nil
	}

	useDates := f.moveOut != "" || f.end != ""
	if useDates && f.weeks != "" {
		return formstore.FormState{}, errors.New("use either --weeks or --move-out and --end, not both")
	}

	state.Term = f.term
	state.UseDates = useDates
	state.Weeks = f.weeks
	state.MoveOut = f.moveOut
	state.AgreementEnd = f.end
	if kind == fees.KindReletting {
		state.Multiplier = f.multiplier
	}
	return state, nil
}

func addTermFlags(c *cobra.Command, f *calcFlags) {
	c.Flags().IntVar(&f.term, "term", 0, "agreed term in weeks: 26, 52, 104 or 156 (default from configuration)")
	c.Flags().StringVar(&f.weeks, "weeks", "", "weeks remaining on the agreement")
	c.Flags().StringVar(&f.moveOut, "move-out", "", "move out date, used with --end instead of --weeks")
	c.Flags().StringVar(&f.end, "end", "", "agreement end date, used with --move-out instead of --weeks")
}

func rentCmd(a *app) *cobra.Command {
	var f calcFlags

	c := &cobra.Command{
		Use:   "rent",
		Short: "Calculate two weeks rent in advance plus bond",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.calculate(cmd, fees.KindRent, &f)
		},
	}

	c.Flags().StringVar(&f.amount, "rent", "", "weekly rent amount (required)")
	c.Flags().BoolVar(&f.save, "save", false, "save the inputs and result to the form store")
	_ = c.MarkFlagRequired("rent")
	return c
}

func advertisingCmd(a *app) *cobra.Command {
	var f calcFlags

	c := &cobra.Command{
		Use:   "advertising",
		Short: "Calculate the pro-rated advertising fee for an early exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.calculate(cmd, fees.KindAdvertising, &f)
		},
	}

	c.Flags().StringVar(&f.amount, "cost", "", "total advertising cost (required)")
	addTermFlags(c, &f)
	c.Flags().BoolVar(&f.save, "save", false, "save the inputs and result to the form store")
	_ = c.MarkFlagRequired("cost")
	return c
}

func relettingCmd(a *app) *cobra.Command {
	var f calcFlags

	c := &cobra.Command{
		Use:   "reletting",
		Short: "Calculate the maximum reletting fee for an early exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.calculate(cmd, fees.KindReletting, &f)
		},
	}

	c.Flags().StringVar(&f.amount, "rent", "", "weekly rent amount excluding GST (required)")
	addTermFlags(c, &f)
	c.Flags().StringVar(&f.multiplier, "multiplier", "", "letting fee in weeks of rent, greater than 0 and at most 2 (default from configuration)")
	c.Flags().BoolVar(&f.save, "save", false, "save the inputs and result to the form store")
	_ = c.MarkFlagRequired("rent")
	return c
}

func (a *app) calculate(cmd *cobra.Command, kind fees.Kind, f *calcFlags) error {
	op := "cli." + string(kind)

	state, err := f.formState(kind)
	if err != nil {
		return err
	}

	result, err := state.Calculate(a.defaults())
	if err != nil {
		a.logger.Debug("calculation rejected",
			zap.String("op", op),
			zap.String("kind", string(fees.KindOf(err))),
			zap.Error(err),
		)
		return err
	}

	if f.save {
		store, err := a.openPersistentStore(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				a.logger.Warn("failed to close form store", zap.String("op", op), zap.Error(closeErr))
			}
		}()

		state.LastResult = &result
		if _, err := store.Save(cmd.Context(), state); err != nil {
			return err
		}
		a.logger.Info("saved form state",
			zap.String("op", op),
			zap.String("driver", a.conf.Store.Driver),
		)
	}

	return output.Write(cmd.OutOrStdout(), a.format(a.conf), result)
}
