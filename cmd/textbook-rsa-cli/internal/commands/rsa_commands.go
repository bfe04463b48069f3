package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	rsaDomain "github.com/MGTheTrain/textbook-rsa/internal/domain/rsa"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Flag names
const (
	FlagDecrypt  = "decrypt"
	FlagLogLevel = "log-level"
	FlagEnvFile  = "env-file"
)

const requiredArgs = 4

var argNames = [requiredArgs]string{"p", "q", "e", "m"}

// RSACommandHandler encapsulates logic for handling textbook RSA evaluation via CLI.
type RSACommandHandler struct {
	evaluator rsaDomain.Evaluator
	logger    logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with a textbook RSA processor.
func NewRSACommandHandler(loggerInstance logger.Logger) (*RSACommandHandler, error) {
	evaluator, err := cryptography.NewTextbookRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		evaluator: evaluator,
		logger:    loggerInstance,
	}, nil
}

// EvaluateRSACmd parses p, q, e and m, evaluates them and prints "C: <c>" or "M: <m>".
func (commandHandler *RSACommandHandler) EvaluateRSACmd(cmd *cobra.Command, args []string) error {
	decrypt, err := cmd.Flags().GetBool(FlagDecrypt)
	if err != nil {
		return fmt.Errorf("%w: invalid %s flag: %v", rsaDomain.ErrMalformedInput, FlagDecrypt, err)
	}

	values, err := parseArgs(args)
	if err != nil {
		return err
	}

	req := rsaDomain.Request{
		Params: rsaDomain.KeyParameters{
			P: values[0],
			Q: values[1],
			E: values[2],
		},
		Message: values[3],
		Mode:    rsaDomain.ModeEncrypt,
	}
	if decrypt {
		req.Mode = rsaDomain.ModeDecrypt
	}

	result := commandHandler.evaluator.Evaluate(req)
	if result.Err != nil {
		return result.Err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return err
}

// parseArgs converts the positional arguments to uint32 values in p, q, e, m order.
func parseArgs(args []string) ([requiredArgs]uint32, error) {
	var values [requiredArgs]uint32
	for i, name := range argNames {
		v, err := strconv.ParseUint(args[i], 10, 32)
		if err != nil {
			return values, fmt.Errorf("%w: %s=%q is not a decimal 32-bit unsigned integer", rsaDomain.ErrMalformedInput, name, args[i])
		}
		values[i] = uint32(v)
	}
	return values, nil
}

func exactPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) != requiredArgs {
		return fmt.Errorf("%w: expected %d arguments (p q e m), got %d", rsaDomain.ErrMalformedInput, requiredArgs, len(args))
	}
	return nil
}

// NewRootCommand builds the textbook-rsa-cli command tree.
func NewRootCommand() *cobra.Command {
	var handler *RSACommandHandler

	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli p q e m [-d]",
		Short: "Textbook RSA encryption and decryption",
		Long: `textbook-rsa-cli evaluates unpadded RSA over 32-bit integers.

Given primes p and q, a public exponent e and a message m it prints
C: m^e mod n. With -d it treats m as a ciphertext and prints
M: m^d mod n, where d is the inverse of e modulo (p-1)(q-1).

The exponent must satisfy 1 < e < (p-1)(q-1) and be coprime to (p-1)(q-1).
p*q must fit in 32 bits. This tool is for teaching; it offers no padding
and no protection against side channels.`,
		Args:          exactPositionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString(FlagEnvFile)
			level, _ := cmd.Flags().GetString(FlagLogLevel)

			loggerInstance, err := setupLogger(envFile, level)
			if err != nil {
				return err
			}

			handler, err = NewRSACommandHandler(loggerInstance)
			if err != nil {
				return fmt.Errorf("failed to create RSA command handler: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.EvaluateRSACmd(cmd, args)
		},
	}

	rootCmd.Flags().BoolP(FlagDecrypt, "d", false, "Decrypt m instead of encrypting it")
	rootCmd.PersistentFlags().String(FlagLogLevel, "", "Log level (debug, info, warning, error, critical); overrides TEXTBOOK_RSA_LOG_LEVEL")
	rootCmd.PersistentFlags().String(FlagEnvFile, ".env", "Optional .env file with TEXTBOOK_RSA_LOG_* settings")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", rsaDomain.ErrMalformedInput, err)
	})

	return rootCmd
}

// Execute runs the CLI against args and returns the process exit code.
// Results go to stdout; diagnostics and usage go to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, rsaDomain.ErrMalformedInput) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
	}

	return rsaDomain.ExitCode(err)
}
