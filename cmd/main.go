package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "travel-booking-service",
		Short: "Tour and vehicle booking service",
	}

	rootCmd.AddCommand(
		ServeCmd(),
		WorkerCmd(),
		MigrateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
