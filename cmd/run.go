package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/chip8deck/chip8deck/internal/applog"
	"github.com/chip8deck/chip8deck/internal/chip8"
	"github.com/chip8deck/chip8deck/internal/debugger"
	"github.com/chip8deck/chip8deck/internal/rom"
	"github.com/chip8deck/chip8deck/internal/tui"
	"github.com/spf13/cobra"
)

// startDiff is bound to --diff: start the TUI with diff highlighting on
// instead of requiring a keypress first.
var startDiff bool

// runCmd loads a ROM, wires up the reversible debugger, and hands control
// to the terminal UI until the user exits.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "load a program and step through it in the reversible debugger",
	Args:  cobra.ExactArgs(1),
	RunE:  runChippy,
}

func init() {
	runCmd.Flags().BoolVar(&startDiff, "diff", false, "start with register-diff highlighting enabled")
}

func runChippy(cmd *cobra.Command, args []string) error {
	logger := applog.New()
	path := args[0]

	program, err := rom.Load(path)
	if err != nil {
		logger.Error("failed to load rom", "path", path, "err", err)
		return err
	}

	machine := chip8.New()
	if err := machine.LoadMemory(program); err != nil {
		var loadErr *chip8.LoadError
		if errors.As(err, &loadErr) {
			return fmt.Errorf("%s: %w", path, loadErr)
		}
		return err
	}

	dbg := debugger.New(machine)
	if startDiff {
		dbg.ToggleDiff()
	}

	logger.Info("loaded rom", "path", path, "bytes", len(program))

	if err := tui.Run(dbg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
