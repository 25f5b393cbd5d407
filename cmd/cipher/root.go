package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/capiscio/cipher/pkg/pipeline"
	"github.com/capiscio/cipher/pkg/report"
	"github.com/capiscio/cipher/pkg/selftest"
	"github.com/capiscio/cipher/pkg/validate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	testModeArgs   = 1
	cipherModeArgs = 4

	testCommand = "test"
)

// scenarios is the self-test battery run by "cipher test".
var scenarios = selftest.Scenarios

// cli holds the flag values and logger of a single invocation.
type cli struct {
	verbose bool
	report  string

	// args is the argv as given, used when it cannot be read as flags.
	args []string
	// helpErr is the outcome of a literal run started from the help hook.
	helpErr error

	stderr io.Writer
	logger *zap.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cipher <encode|decode> <k> <input> <output> | cipher test",
		Short: "Caesar cipher for text files",
		Long: `Shift the letters of a text file by a fixed offset.

Lowercase and uppercase letters rotate within their own case; every other
character is copied unchanged. The shift k is any decimal integer and may be
negative or larger than the alphabet.

Run "cipher test" to check the cipher against its built-in scenarios.`,
		Example: `  # Encode a file with a shift of 3
  cipher encode 3 plain.txt secret.txt

  # Decode it again
  cipher decode 3 secret.txt plain.txt

  # Negative shifts are positional arguments, not flags
  cipher encode -1 plain.txt secret.txt

  # Run the self-test and print its report
  cipher --report yaml test`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c.logger = newLogger(c.verbose, c.stderr)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// A leading "--" is an argument, not a terminator.
			if cmd.ArgsLenAtDash() >= 0 {
				return c.literal(cmd.Context(), cmd.OutOrStdout())
			}
			return c.dispatch(cmd.Context(), args, cmd.OutOrStdout())
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "Write debug logs to stderr")
	cmd.Flags().StringVar(&c.report, "report", "", "Print the self-test report to stdout (json or yaml)")
	// Everything after the first positional is positional, so "-3" is a shift.
	cmd.Flags().SetInterspersed(false)

	// An argv that does not parse as flags, or asks for help, is treated as
	// plain positionals: "cipher -h" is a bad test command, "cipher -3 ..." a
	// bad cipher command.
	cmd.SetFlagErrorFunc(func(fc *cobra.Command, _ error) error {
		return c.literal(fc.Context(), fc.OutOrStdout())
	})
	cmd.SetHelpFunc(func(hc *cobra.Command, _ []string) {
		c.helpErr = c.literal(hc.Context(), hc.OutOrStdout())
	})

	return cmd
}

// dispatch selects the run mode from the number of positionals.
func (c *cli) dispatch(ctx context.Context, args []string, stdout io.Writer) error {
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	switch len(args) {
	case testModeArgs:
		return c.testMode(args[0], stdout)
	case cipherModeArgs:
		return c.cipherMode(ctx, args)
	default:
		return validate.ErrArgCount
	}
}

// literal dispatches the raw argv with every flag value discarded.
func (c *cli) literal(ctx context.Context, stdout io.Writer) error {
	c.verbose = false
	c.report = ""
	c.logger = zap.NewNop()
	if ctx == nil {
		ctx = context.Background()
	}
	return c.dispatch(ctx, c.args, stdout)
}

// newLogger follows the production config, raised to debug when verbose.
// Without verbose nothing is logged, keeping stderr for diagnostics only.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	return zap.New(core)
}

func (c *cli) testMode(arg string, stdout io.Writer) error {
	if arg != testCommand {
		return validate.ErrUsage
	}

	res := selftest.Run(scenarios(), c.logger)
	if c.report != "" {
		if err := writeReport(stdout, c.report, res); err != nil {
			return err
		}
	}
	if !res.Success {
		return validate.ErrSelfTestFailed
	}
	return nil
}

func (c *cli) cipherMode(ctx context.Context, args []string) error {
	req, err := validate.Args(args[0], args[1], args[2], args[3], c.logger)
	if err != nil {
		return err
	}
	if _, err := pipeline.Run(ctx, req, c.logger); err != nil {
		return fmt.Errorf("%s failed: %w", req.Direction, err)
	}
	return nil
}

func writeReport(w io.Writer, format string, res *report.SelfTestResult) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(res)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(res); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported report format %q (want json or yaml)", format)
	}
}
