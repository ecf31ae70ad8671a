package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xll-gen/bin2h/internal/convert"
	"github.com/xll-gen/bin2h/internal/ui"
)

var (
	convertName        string
	convertDescription string
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a binary file to a C header",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args[0], args[1], convertName, convertDescription); err != nil {
			if errors.Is(err, convert.ErrMissingInput) {
				fmt.Printf("Error: Input file '%s' not found\n", args[0])
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertName, "name", "n", convert.DefaultArrayName, "Name for the data array")
	convertCmd.Flags().StringVarP(&convertDescription, "description", "d", "", "Multi-line description comment for the header")
	rootCmd.AddCommand(convertCmd)
}

// runConvert writes the header for input to output and prints a summary.
func runConvert(input, output, name, description string) error {
	res, err := convert.File(convert.Options{
		Input:       input,
		Output:      output,
		ArrayName:   name,
		Description: description,
	})
	if err != nil {
		return err
	}
	slog.Info("converted asset", "input", res.Input, "output", res.Output, "size", res.Size, "blake3", res.Digest)

	ui.PrintHeader(fmt.Sprintf("Converted %s to %s", res.Input, res.Output))
	ui.PrintSuccess("Array name", res.ArrayName)
	ui.PrintSuccess("Data size", fmt.Sprintf("%d bytes", res.Size))
	warnIfEmpty(res)
	return nil
}

// warnIfEmpty flags headers whose array literal has no elements, which some
// C compilers reject.
func warnIfEmpty(res *convert.Result) {
	if res.Size == 0 {
		ui.PrintWarning("Empty input", fmt.Sprintf("%s[] has no elements", res.ArrayName))
	}
}
