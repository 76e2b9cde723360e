package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootCmd = &cobra.Command{
		Use:           "api",
		Short:         "Todo0 multi-role task manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Apply the schema, load the demonstration data and start the web server",
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		RunE:  runMigrate,
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load the demonstration data into empty tables",
		RunE:  runSeed,
	}
)

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		zap.L().Error("invalid flags", zap.String("command", cmd.Name()), zap.Error(err))
		return err
	})
}
