package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hybscloud/unlambda/internal/config"
	"github.com/hybscloud/unlambda/internal/diag"
	"github.com/hybscloud/unlambda/internal/evaluator"
	"github.com/hybscloud/unlambda/internal/ioruntime"
	"github.com/hybscloud/unlambda/internal/parser"
	"github.com/hybscloud/unlambda/internal/printer"
)

var (
	configPath  string
	traceFile   string
	profileFlag string
)

// registerRunFlags attaches the interpreter's optional flags to cmd.
// Every one of them is optional: the bare invocation "unlambda < prog"
// with none of these set still runs with sensible defaults.
func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "Path to an optional TOML config file")
	cmd.Flags().StringVar(&traceFile, "trace-file", "", "Write an msgpack-encoded execution trace to this file")
	cmd.Flags().StringVar(&profileFlag, "profile", "", "Parser dialect: full (default) or minimal")
}

func runInterpret(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	log.Logger = log.With().Str("run_id", runID).Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	profileName := cfg.Unlambda.Profile
	if profileFlag != "" {
		profileName = profileFlag
	}
	profile := parser.Full
	if profileName == "minimal" {
		profile = parser.Minimal
	}

	stdin := bufio.NewReader(os.Stdin)
	program, err := parser.ParseProfile(stdin, profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err.Error()))
		return err
	}

	host := &ioruntime.Host{In: stdin, Out: os.Stdout}

	tracePath := traceFile
	if tracePath == "" && cfg.Unlambda.Trace {
		tracePath = "trace.msgpack"
	}
	var recorder *diag.Recorder
	var obs evaluator.Observer
	if tracePath != "" {
		recorder = diag.NewRecorder()
		obs = recorder.Observe
	}

	log.Debug().Str("profile", profileName).Int("max_steps", cfg.Unlambda.MaxSteps).Msg("starting evaluation")
	result, err := evaluator.RunBounded(program, host, obs, cfg.Unlambda.MaxSteps)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err.Error()))
		return err
	}

	fmt.Fprintf(os.Stdout, "\nResult: %s\n", printer.Function(result))

	if recorder != nil {
		f, err := os.Create(tracePath)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		if err := diag.WriteTrace(f, recorder.Trace()); err != nil {
			return fmt.Errorf("writing trace file: %w", err)
		}
	}

	return nil
}
