package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dradle/my-bike-rent/internal/config"
	"github.com/dradle/my-bike-rent/internal/dates"
	"github.com/dradle/my-bike-rent/internal/logger"
	"github.com/dradle/my-bike-rent/internal/model"
)

func newLookupCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up one customer's rental status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(cfg.Log.Level, cfg.Log.Encoding)
			defer func() { _ = logger.Log.Sync() }()

			svc, cleanup, err := buildLookup(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Lookup(cmd.Context(), args[0])
			if err != nil {
				// the specific kind is in the log line
				return fmt.Errorf("customer %q not found or inaccessible (request %s)", args[0], res.RequestID)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res.Record)
			}
			printRecord(cmd.OutOrStdout(), res.Record)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}

func printRecord(w io.Writer, r model.CustomerRecord) {
	bold := color.New(color.Bold)

	bold.Fprintf(w, "%s\n", r.Identifier)
	fmt.Fprintf(w, "  Bike:          %s\n", r.BikeName)
	fmt.Fprintf(w, "  Tariff:        %s zl/week\n", num(r.Tariff))

	if r.LastPayment != nil {
		fmt.Fprintf(w, "  Last payment:  %szl - %s\n", num(r.LastPayment.Amount), r.LastPayment.DisplayDate)
	} else {
		fmt.Fprintf(w, "  Last payment:  no data\n")
	}
	if due, ok := r.NextPaymentDue(); ok {
		fmt.Fprintf(w, "  Next payment:  %s\n", dates.FormatCanonical(due))
	} else {
		fmt.Fprintf(w, "  Next payment:  -\n")
	}

	if r.HasDebt() {
		color.New(color.FgRed, color.Bold).Fprintf(w, "  Debt:          %s zl\n", num(-r.DebtFlag))
	} else {
		color.New(color.FgGreen).Fprintf(w, "  Status:        ok\n")
	}

	if r.AdminMessage != "" {
		color.New(color.FgYellow).Fprintf(w, "  Message:       %s\n", r.AdminMessage)
	}
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
