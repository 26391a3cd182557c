package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clerkmount",
		Short: "Drop-in Clerk auth pages for Go server-rendered apps",
		Long: `clerkmount serves ready-made Clerk sign-in and sign-up pages.

The pages are composed server-side and registered under catch-all routes,
so /signin, /signin/factor-two, /signup and friends all resolve without
any extra routing work. Configure the Clerk instance with
CLERK_PUBLISHABLE_KEY.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
