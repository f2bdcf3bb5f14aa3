// Command intcode loads an intcode program from a file and runs it to
// completion, printing every produced output value on its own line.
//
// When the program suspends waiting for input, the runner either feeds it the
// next preset input, prompts on the terminal, or (in ASCII mode) passes raw
// keystrokes through.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aryanA101a/intcode-go/console"
	"github.com/aryanA101a/intcode-go/intcode"
)

var (
	flagInputs      []int64
	flagInteractive bool
	flagASCII       bool
	flagLogLevel    string
	flagConfig      string
)

var rootCmd = &cobra.Command{
	Use:          "intcode <program-file>",
	Short:        "Run an intcode program",
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().Int64SliceVar(&flagInputs, "input", nil, "preset input values, consumed in order")
	rootCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "prompt for input when the program suspends")
	rootCmd.Flags().BoolVar(&flagASCII, "ascii", false, "raw-terminal mode: outputs as characters, keystrokes as inputs")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file (default "+defaultConfigFile+" if present)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("input") {
		cfg.Inputs = flagInputs
	}
	if cmd.Flags().Changed("ascii") {
		cfg.ASCII = flagASCII
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	code, err := intcode.LoadFile(args[0])
	if err != nil {
		return err
	}

	program := intcode.New(code, intcode.WithLogger(logger))
	for _, v := range cfg.Inputs {
		program.Push(intcode.Word(v))
	}

	if cfg.ASCII {
		return runASCII(program)
	}

	// with no preset inputs, an attached terminal implies interactive use
	interactive := flagInteractive ||
		(len(cfg.Inputs) == 0 && term.IsTerminal(int(os.Stdin.Fd())))

	return runBatch(program, interactive)
}

// runBatch drives the program to completion, printing outputs between
// resumptions and prompting for input when allowed to.
func runBatch(program *intcode.Program, interactive bool) error {
	stdin := bufio.NewReader(os.Stdin)

	for {
		status, err := program.Run()
		for _, v := range program.Drain() {
			fmt.Println(v)
		}
		if err != nil {
			return err
		}
		if status == intcode.StatusHalted {
			return nil
		}

		if !interactive {
			return fmt.Errorf("program wants input and no preset input is left")
		}

		fmt.Print("Input: ")
		line, err := stdin.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		program.Push(intcode.Word(v))
	}
}

// runASCII attaches the program to the raw-mode terminal console: printable
// outputs go out as characters, everything else as a decimal, and each Input
// instruction is satisfied by one keystroke.
func runASCII(program *intcode.Program) error {
	con, err := console.Open()
	if err != nil {
		return err
	}
	defer con.Close()

	for {
		status, err := program.Run()
		for _, v := range program.Drain() {
			if v >= 0 && v < 128 {
				con.Write([]byte{byte(v)})
			} else {
				fmt.Fprintf(con, "%d", v)
			}
		}
		if err != nil {
			return err
		}
		if status == intcode.StatusHalted {
			return nil
		}

		key, ok := con.ReadKey()
		if !ok {
			return nil
		}
		program.Push(intcode.Word(key))
	}
}
