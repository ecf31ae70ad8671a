package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xll-gen/bin2h/internal/ui"
	"github.com/xll-gen/bin2h/pkg/log"
)

var (
	logLevel string
	logFile  string
	noColor  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bin2h",
	Short: "Embed binary files in C sources as static byte arrays",
	Long: `bin2h converts binary assets (such as Opus test clips) into C headers
holding a static uint8_t array and a matching size constant, so the data
can be compiled directly into a program.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			ui.DisableColor()
		}
		return log.Init(logFile, logLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
