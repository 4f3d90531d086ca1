package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oc-lang/occ/pkg/oc"
	"github.com/oc-lang/occ/pkg/parser"
	"github.com/oc-lang/occ/pkg/text"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Debug flags for dumping intermediate stages
var (
	dParse bool
	dAST   bool
	dText  bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists all debug flags that should accept single-dash style
var debugFlagNames = []string{"dparse", "dast", "dtext"}

// normalizeFlags converts single-dash flags like -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "occ [file]",
		Short: "occ is a grammar-driven frontend for a small C subset",
		Long: `occ parses a small C subset with a memoizing recursive-descent
grammar and dumps the result in source or YAML form. It also
ships a prose segmenter for plain English text.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			filename := args[0]

			// Handle -dtext: segment a prose file
			if dText {
				return doText(filename, out, errOut)
			}

			// Handle -dparse: parse and pretty-print the AST
			if dParse {
				return doParse(filename, out, errOut)
			}

			// Handle -dast: parse and dump the AST as YAML
			if dAST {
				return doAST(filename, out, errOut)
			}

			fmt.Fprintf(errOut, "occ: checking %s\n", filename)
			_, err := parseFile(filename, errOut)
			return err
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVarP(&dParse, "dparse", "", false, "Dump after parsing")
	rootCmd.Flags().BoolVarP(&dAST, "dast", "", false, "Dump the AST as YAML")
	rootCmd.Flags().BoolVarP(&dText, "dtext", "", false, "Segment a prose file and dump the structure")

	return rootCmd
}

// parseFile reads and parses a source file, returning the AST
func parseFile(filename string, errOut io.Writer) (*oc.Program, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "occ: error reading %s: %v\n", filename, err)
		return nil, err
	}

	program, err := parser.Parse(string(content))
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", filename, err)
		return nil, err
	}
	return program, nil
}

// doParse parses the file and writes the pretty-printed AST to a .parsed.c file
func doParse(filename string, out, errOut io.Writer) error {
	program, err := parseFile(filename, errOut)
	if err != nil {
		return err
	}

	outputFilename := parsedOutputFilename(filename)

	outFile, err := os.Create(outputFilename)
	if err != nil {
		fmt.Fprintf(errOut, "occ: error creating %s: %v\n", outputFilename, err)
		return err
	}
	defer outFile.Close()

	printer := oc.NewPrinter(outFile)
	printer.PrintProgram(program)

	// Also print to stdout for convenience
	printer = oc.NewPrinter(out)
	printer.PrintProgram(program)

	return nil
}

// parsedOutputFilename returns the output filename for -dparse
// input.c -> input.parsed.c
func parsedOutputFilename(filename string) string {
	ext := ".c"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".parsed.c"
	}
	return filename + ".parsed.c"
}

// doAST parses the file and dumps the AST as YAML to stdout
func doAST(filename string, out, errOut io.Writer) error {
	program, err := parseFile(filename, errOut)
	if err != nil {
		return err
	}
	return oc.DumpYAML(out, program)
}

// doText normalizes a prose file and dumps its paragraph, sentence and
// word structure
func doText(filename string, out, errOut io.Writer) error {
	content, err := text.ReadAndNormalize(filename)
	if err != nil {
		fmt.Fprintf(errOut, "occ: error reading %s: %v\n", filename, err)
		return err
	}

	doc := text.NewParser().Parse(content)
	for pi, para := range doc {
		if pi > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "paragraph %d\n", pi+1)
		for si, words := range para {
			fmt.Fprintf(out, "  %d: %s\n", si+1, strings.Join(words, " "))
		}
	}
	return nil
}
