package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jay-691/sumi"
)

var (
	inputPath  string
	outputPath string
	moduleName string
	evmID      string
)

var rootCmd = &cobra.Command{
	Use:   "sumi",
	Short: "Generate an ink! wrapper module from an EVM contract interface",
	Long: `Generate an ink! wrapper module from an EVM contract interface description.

Reads an ABI JSON document (a sequence of entry objects) and emits Rust
source for an ink! contract that forwards calls to the EVM contract through
the runtime's xvm_call dispatch. Only state-mutating, boolean-returning
functions are wrapped.

Examples:
  sumi --module-name erc20 < erc20.json          # stdin to stdout
  sumi -m erc20 -i erc20.json -o lib.rs          # files
  sumi -m erc20 -e 0x1F -i erc20.json            # custom EVM ID`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input filename or stdin if empty")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output filename or stdout if empty")
	rootCmd.Flags().StringVarP(&moduleName, "module-name", "m", "", "Ink module name to generate")
	rootCmd.Flags().StringVarP(&evmID, "evm-id", "e", "0x0F", "EVM ID to use in module")
	rootCmd.MarkFlagRequired("module-name")
}

func run(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading interface description")
	}

	generated, err := sumi.Generate(raw, moduleName, evmID)
	if err != nil {
		return err
	}

	// Generation is complete before the output stream is touched, so a
	// failed invocation never leaves partial output behind.
	if outputPath == "" {
		_, err := io.WriteString(os.Stdout, generated)
		return errors.Wrap(err, "writing module")
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if _, err := io.WriteString(f, generated); err != nil {
		f.Close()
		return errors.Wrap(err, "writing module")
	}
	return errors.Wrap(f.Close(), "writing module")
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.Sugar().Errorw("generation failed",
			"module", moduleName,
			"error", err,
		)
		os.Exit(1)
	}
}
