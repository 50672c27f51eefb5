package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/lease-fees/internal/formstore"
	"github.com/iwvelando/lease-fees/pkg/fees"
)

func formCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "form",
		Short: "Inspect or clear saved calculator forms",
	}
	c.AddCommand(formShowCmd(a), formClearCmd(a))
	return c
}

func formShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "show KIND",
		Short:     "Print the saved form for a calculator as YAML",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := fees.ParseKind(args[0])
			if err != nil {
				return err
			}

			store, err := a.openPersistentStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := store.Load(cmd.Context(), kind)
			if errors.Is(err, formstore.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "no saved form for %s\n", kind)
				return nil
			}
			if err != nil {
				return err
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(state); err != nil {
				return fmt.Errorf("failed to encode form state: %w", err)
			}
			return encoder.Close()
		},
	}
}

func formClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "clear KIND",
		Short:     "Delete the saved form for a calculator",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := fees.ParseKind(args[0])
			if err != nil {
				return err
			}

			store, err := a.openPersistentStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), kind); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared saved form for %s\n", kind)
			return nil
		},
	}
}

func kindNames() []string {
	kinds := fees.Kinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return names
}
