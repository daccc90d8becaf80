package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/orienta-pe/orienta_backend/cmd/http"
	systemcmd "github.com/orienta-pe/orienta_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "orienta",
	Short: "Orienta vocational guidance platform for Peruvian schools.",
	Long: `Orienta is an educational guidance platform for Peruvian secondary schools.
It connects institutions, tutors and students through vocational inventories,
academic predictions and association-scoped communication.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
