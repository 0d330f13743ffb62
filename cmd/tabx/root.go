package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javajack/tabx/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tabx",
	Short: "Extract tabular data from spreadsheets",
	Long: `tabx pulls the data table out of a loosely structured XLSX worksheet -
skipping titles, dates, and blank rows above the header - and emits it as
CSV or JSON records keyed by slugged column names.`,
	SilenceUsage: true,
}

func execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
}

func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		c, _ = config.Load("")
	}
	cfg = c
}
