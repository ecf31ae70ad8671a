package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xll-gen/bin2h/internal/config"
	"github.com/xll-gen/bin2h/internal/convert"
	"github.com/xll-gen/bin2h/internal/ui"
	"github.com/xll-gen/bin2h/pkg/log"
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Convert every asset listed in a YAML or TOML manifest",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBatch(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// runBatch loads the manifest at path and converts its assets in order,
// stopping at the first failure. Relative paths in the manifest, including
// the log file, are taken relative to the manifest's directory.
func runBatch(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	config.ApplyDefaults(cfg)
	config.Resolve(cfg, filepath.Dir(path))

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if cfg.Logging.Level != "" || cfg.Logging.Path != "" {
		level := cfg.Logging.Level
		if level == "" {
			level = logLevel
		}
		if err := log.Init(cfg.Logging.Path, level); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	ui.PrintHeader(fmt.Sprintf("Converting %d assets from %s", len(cfg.Assets), path))

	total := 0
	for _, a := range cfg.Assets {
		res, err := convert.File(convert.Options{
			Input:       a.Input,
			Output:      a.Output,
			ArrayName:   a.Name,
			Description: a.Description,
		})
		if err != nil {
			ui.PrintError(a.Name, err.Error())
			return fmt.Errorf("asset %s: %w", a.Input, err)
		}
		slog.Info("converted asset", "input", res.Input, "output", res.Output, "size", res.Size, "blake3", res.Digest)
		ui.PrintSuccess(res.ArrayName, fmt.Sprintf("%s (%d bytes)", res.Output, res.Size))
		warnIfEmpty(res)
		total += res.Size
	}

	ui.PrintSuccess("Total", fmt.Sprintf("%d bytes", total))
	return nil
}
