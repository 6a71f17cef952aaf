package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weddingly",
	Short: "Wedding website builder backend",
	Long: `Weddingly is the backend for a wedding-website builder: couples
configure a personalized site, publish it under a slug, optionally protect it
with a password, and collect guest RSVPs.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
