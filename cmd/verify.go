package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xll-gen/bin2h/internal/convert"
	"github.com/xll-gen/bin2h/internal/ui"
)

var verifyName string

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify <header> <source>",
	Short: "Check that a generated header reproduces its source file byte for byte",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runVerify(args[0], args[1], verifyName); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyName, "name", "n", convert.DefaultArrayName, "Name of the data array in the header")
	rootCmd.AddCommand(verifyCmd)
}

// runVerify checks that the array in header decodes to the bytes of source
// and prints the size and BLAKE3 digest on success.
func runVerify(header, source, name string) error {
	res, err := convert.Verify(header, source, name)
	if errors.Is(err, convert.ErrMismatch) {
		ui.PrintError("Mismatch", fmt.Sprintf("source %s, header %s", res.SourceDigest, res.HeaderDigest))
		return err
	}
	if err != nil {
		return err
	}

	ui.PrintHeader(fmt.Sprintf("Verified %s against %s", header, source))
	ui.PrintSuccess("Data size", fmt.Sprintf("%d bytes", res.Size))
	ui.PrintSuccess("BLAKE3", res.HeaderDigest)
	return nil
}
