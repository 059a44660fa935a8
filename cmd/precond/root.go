package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/precond/pkg/environment"
)

func rootCmd() *cobra.Command {
	a := &app{}
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Dice simulator and MQTT file relay",
		Long: `precond rolls simulated dice and relays files over MQTT.

Settings come from the environment (optionally from --env-file), see the
DICE_*, MQTT_* and METRICS_* variables. Every operation is traced to the log at debug
level.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", nil, "dotenv files to load, later files win")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error), overrides LOG_LEVEL")

	cmd.AddCommand(
		diceCmd(a),
		mqttCmd(a),
		kindsCmd(a),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			env := environment.FromContext(contextOf(cmd))
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s, env: %s)\n", appName, Version, BuildTime, env)
		},
	}
}

func kindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the error kinds flags can be validated with",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range a.kinds.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
