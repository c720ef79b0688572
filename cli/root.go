// SPDX-License-Identifier: MIT

// Package cli implements the matcalc command line: one cobra root command whose
// single-letter flags select the operation, positional arguments naming the input
// files and an optional output file.
package cli

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/matfile"
)

// Version and RevisionDate are written into the header of every output matrix.
const (
	Version      = "1.0.1"
	RevisionDate = "30-Oct-2019"
)

// CommandName is the binary name used in help text and output headers.
const CommandName = "matcalc"

// IOStreams carries the writers the command prints to.
type IOStreams struct {
	Out    io.Writer
	ErrOut io.Writer
}

// options holds the parsed flags of one invocation.
type options struct {
	selected   map[calc.Operation]*bool
	configPath string
	streams    IOStreams
	argv       []string // arguments as invoked, echoed into output headers
}

// NewCommand builds the matcalc root command. Output headers echo os.Args[1:],
// the arguments cobra parses when none are set explicitly.
func NewCommand(streams IOStreams) *cobra.Command {
	cmd, _ := newCommand(streams, os.Args[1:])

	return cmd
}

func newCommand(streams IOStreams, argv []string) (*cobra.Command, *options) {
	o := &options{
		argv:     argv,
		selected: make(map[calc.Operation]*bool, len(calc.Operations())),
		streams:  streams,
	}

	cmd := &cobra.Command{
		Use:   CommandName + " -f|-t|-m|-d|-a|-i input_file [input_file_2] [output_file]",
		Short: "Matrix calculator for matrix text files",
		Long:  longHelp(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return o.run(args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       fmt.Sprintf("%s (%s)", Version, RevisionDate),
	}
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	o.addFlags(cmd.Flags())

	// klog's -v only; the remaining klog flags stay at their defaults.
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlag(klogFlags.Lookup("v"))

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		o.printUsage()
		return fmt.Errorf("%w: %w", calc.ErrArguments, err)
	})

	return cmd, o
}

// addFlags registers one shorthand bool per operation plus --config.
func (o *options) addFlags(flags *pflag.FlagSet) {
	for _, op := range calc.Operations() {
		o.selected[op] = flags.BoolP(op.Name(), op.Flag(), false, op.Title())
	}
	flags.StringVar(&o.configPath, "config", "", "YAML file overriding limits and output precision")
}

// Run executes the command with args and returns the process exit status.
// The error, if any, is printed to streams.ErrOut.
func Run(args []string, streams IOStreams) int {
	if args == nil {
		args = []string{}
	}

	cmd, _ := newCommand(streams, args)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(streams.ErrOut, "%s: %v\n", CommandName, err)
	}

	return calc.ExitCode(err)
}

func (o *options) run(args []string) error {
	op, err := o.operation(args)
	if err != nil {
		o.printUsage()
		return err
	}

	cfg := DefaultConfig()
	if o.configPath != "" {
		if cfg, err = LoadConfig(o.configPath); err != nil {
			return err
		}
	}
	fileOpts := cfg.MatfileOptions()

	inputs := args[:op.Inputs()]
	res, err := calc.New(fileOpts...).Run(op, inputs...)
	if err != nil {
		return err
	}

	if !op.MatrixResult() {
		fmt.Fprintf(o.streams.Out, "The %s of the matrix is %.*g.\n", scalarLabel(op), cfg.ScalarPrecision, res.Scalar)
		return nil
	}

	if res.Swapped {
		fmt.Fprintln(o.streams.ErrOut, "The input order of these two matrices was swapped in order to find their product!")
	}

	comments := []string{
		commandLine(o.argv),
		fmt.Sprintf("Version = %s, Revision date = %s", Version, RevisionDate),
	}
	if len(args) == op.Inputs() {
		return matfile.NewWriter(o.streams.Out, fileOpts...).WriteMatrix(res.Matrix, comments...)
	}

	output := args[op.Inputs()]
	if err = matfile.WriteFile(output, res.Matrix, comments, fileOpts...); err != nil {
		return err
	}
	if isTerminal(o.streams.ErrOut) {
		fmt.Fprintf(o.streams.ErrOut, "Output matrix has been printed to file %s.\n", output)
	}

	return nil
}

// operation returns the single selected operation after checking the operand count.
func (o *options) operation(args []string) (calc.Operation, error) {
	var (
		op    calc.Operation
		count int
	)
	for _, candidate := range calc.Operations() {
		if *o.selected[candidate] {
			op = candidate
			count++
		}
	}

	switch {
	case count == 0:
		return 0, fmt.Errorf("%w: no operation selected", calc.ErrArguments)
	case count > 1:
		return 0, fmt.Errorf("%w: exactly one operation must be selected", calc.ErrArguments)
	case len(args) < op.Inputs() || len(args) > op.MaxArgs():
		return 0, fmt.Errorf("%w: -%s expects %s", calc.ErrArguments, op.Flag(), operandSyntax(op))
	}

	return op, nil
}

func (o *options) printUsage() {
	fmt.Fprint(o.streams.ErrOut, usageText())
}

// usageText lists every operation with its operand syntax.
func usageText() string {
	var sb strings.Builder
	sb.WriteString("Please choose one of the following operations and enter the correct command line arguments:\n")
	for _, op := range calc.Operations() {
		fmt.Fprintf(&sb, "'-%s': %s : %s -%s %s\n", op.Flag(), op.Title(), CommandName, op.Flag(), operandSyntax(op))
	}
	sb.WriteString("\nThe (output_file) is optional. If no file is given the matrix will be written to stdout.\n")

	return sb.String()
}

func longHelp() string {
	return "Reads matrices from text files, applies one operation and prints the result.\n\n" + usageText()
}

func operandSyntax(op calc.Operation) string {
	parts := []string{"input_file"}
	if op.Inputs() == 2 {
		parts = []string{"input_file_1", "input_file_2"}
	}
	if op.MatrixResult() {
		parts = append(parts, "(output_file)")
	}

	return strings.Join(parts, " ")
}

func scalarLabel(op calc.Operation) string {
	if op == calc.OpFrobenius {
		return "frobenius norm"
	}

	return op.Name()
}

// commandLine renders the invocation, flags and operands in their given order.
func commandLine(argv []string) string {
	return strings.Join(append([]string{CommandName}, argv...), " ")
}

// isTerminal reports whether w is a terminal (or a Cygwin/MSYS pty).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
