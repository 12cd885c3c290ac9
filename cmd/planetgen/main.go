// Command planetgen is the CLI entry point over the generation
// pipeline, structured the way medasdigital-client's cmd/main.go wires
// cobra: a root command with persistent config/verbose flags,
// subcommands added via AddCommand, and cobra.OnInitialize loading
// viper config before any subcommand body runs.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/thousandworlds/planetoid/internal/genconfig"
)

var (
	cfgFile string
	verbose bool
	cfg     *genconfig.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planetgen",
		Short: "Procedural planetary body generator",
		Long:  "Generates scientifically plausible planetary bodies from a seed and a set of constraints.",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(generateCmd())

	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	loaded, err := genconfig.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed, using defaults:", err)
		loaded = genconfig.DefaultConfig()
	}
	cfg = loaded
}
