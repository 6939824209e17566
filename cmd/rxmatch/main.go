// Command rxmatch is a thin demo harness over the rxmatch library: it
// reads a pattern and a line of text, compiles the pattern, and prints
// whatever matches. It exists to exercise the facade end to end; spec.md
// §1 treats a full grep-style CLI as an external collaborator out of
// scope for this repository.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/devkanaya/rxmatch-go"
)

type options struct {
	Pattern string
	Text    string
	All     bool
	Dump    bool
	Verbose bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`rxmatch: compile a pattern and match it against a line of text.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "pattern to compile"),
		flagSet.StringVarP(&opts.Text, "text", "t", "", "text to match (default: read a line from stdin)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.All, "all", "a", false, "find all non-overlapping matches instead of just the first"),
		flagSet.BoolVar(&opts.Dump, "dump", false, "print the compiled NFA graph and exit"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not parse flags: %s\n", err)
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

func main() {
	opts := parseFlags()

	if opts.Pattern == "" {
		gologger.Fatal().Msgf("rxmatch: -pattern is required\n")
	}

	re, err := rxmatch.Compile(opts.Pattern)
	if err != nil {
		gologger.Error().Msgf("failed to compile pattern %q: %v", opts.Pattern, err)
		os.Exit(2)
	}

	if opts.Dump {
		fmt.Print(re.Dump())
		return
	}

	text := opts.Text
	if text == "" {
		line, readErr := readLine(os.Stdin)
		if readErr != nil {
			gologger.Error().Msgf("failed to read input text: %v", readErr)
			os.Exit(2)
		}
		text = line
	}

	gologger.Verbose().Msgf("matching %q against %q", opts.Pattern, text)

	if opts.All {
		matches := re.MatchAll(text)
		for _, m := range matches {
			fmt.Printf("%d: %q\n", m.Start, m.Text)
		}
		if len(matches) == 0 {
			os.Exit(1)
		}
		return
	}

	m, ok := re.MatchFirst(text)
	if !ok {
		os.Exit(1)
	}
	fmt.Printf("%d: %q\n", m.Start, m.Text)
	for i := 1; i <= re.GroupCount(); i++ {
		if g, ok := m.Group(i); ok {
			fmt.Printf("  group %d: %q\n", i, g)
		}
	}
}

func readLine(f *os.File) (string, error) {
	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}
