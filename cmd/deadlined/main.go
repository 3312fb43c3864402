// Command deadlined runs every enabled alert variant on its cron schedule
// and serves health endpoints. Subcommands run a single variant or list
// the configured ones.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deadline/internal/cli"
	"github.com/dmitrymomot/deadline/internal/config"
)

var rt *cli.Runtime

var rootCmd = &cobra.Command{
	Use:   "deadlined",
	Short: "Production deadline alert daemon",
	Long: `deadlined reads the factory schedule workbook and emails deadline
digests to the responsible teams.

Without a subcommand it behaves like "serve".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		rt, err = cli.Bootstrap(os.Environ())
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return rt.Serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run variants on their cron schedules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rt.Serve(cmd.Context())
	},
}

var runCmd = &cobra.Command{
	Use:   "run <variant>",
	Short: "Run one variant now and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := rt.RunOnce(cmd.Context(), args[0])
		return err
	},
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List configured variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLABEL\tSCHEDULE\tALERT DAYS\tRECIPIENTS\tDISABLED")
		for _, v := range rt.Variants {
			key := v.RecipientKey
			if key == "" {
				key = config.DefaultRecipientsKey
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%t\n",
				v.Name, v.Label, v.Schedule, v.AlertDays, key, v.Disabled)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(variantsCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if rt != nil {
		rt.Close()
	}
	if err != nil {
		cancel()
		os.Exit(cli.ExitError)
	}
}
