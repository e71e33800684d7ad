package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/needsgo/internal/app"
	"github.com/vk/needsgo/internal/cli"
	"github.com/vk/needsgo/internal/contract"
	"github.com/zclconf/go-cty/cty"
)

// main is the entrypoint for the needsgo binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx := context.Background()
	engine := app.NewApp(outW, opts.Config)
	if err := engine.Load(ctx); err != nil {
		return err
	}

	if opts.TypeName == "" {
		fmt.Fprintf(outW, "Validated %d widget types.\n", len(engine.Registry().Types()))
		return nil
	}

	bag := make(map[string]cty.Value, len(opts.Params))
	for name, val := range opts.Params {
		bag[name] = cty.StringVal(val)
	}

	inst, err := engine.Construct(ctx, opts.TypeName, bag)
	if err != nil {
		if isContractError(err) {
			return &cli.ExitError{Code: 1, Message: err.Error()}
		}
		return err
	}

	fmt.Fprintf(outW, "Constructed widget '%s':\n", inst.Type())
	for _, name := range inst.Names() {
		val, _ := inst.Get(name)
		fmt.Fprintf(outW, "  %s = %s\n", name, ctyDisplay(val))
	}
	return nil
}

// isContractError reports whether the error is one of the two contract
// violation kinds, which map to exit code 1 rather than a generic failure.
func isContractError(err error) bool {
	var missing *contract.MissingParametersError
	var unknown *contract.UnknownParameterError
	return errors.As(err, &missing) || errors.As(err, &unknown)
}

// ctyDisplay renders a cty value for terminal output.
func ctyDisplay(val cty.Value) string {
	if val.IsNull() {
		return "(null)"
	}
	if val.Type() == cty.String {
		return fmt.Sprintf("%q", val.AsString())
	}
	return val.GoString()
}
