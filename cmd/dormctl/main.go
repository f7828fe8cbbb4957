package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dormctl",
	Short:         "DormEats operator CLI",
	Long:          "dormctl manages the DormEats database and mints development tokens.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Database
	rootCmd.AddCommand(indexesCmd)
	rootCmd.AddCommand(statsCmd)

	// Auth
	rootCmd.AddCommand(tokenCmd)
}
