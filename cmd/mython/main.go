// Command mython is the CLI driver for the Mython interpreter: it runs a
// source file, syntax-checks one without executing it, or drops into an
// interactive REPL. Grounded on the teacher's cmd/able/main.go dispatch
// shape (a testable run(args) int instead of inline os.Exit calls,
// manual os.Args switch instead of a flag-parsing framework — no CLI
// framework appears anywhere in the retrieved pack) but trimmed of the
// teacher's manifest/lockfile/target-resolution machinery, none of which
// has an analogue in a language with no import system.
package main

import (
	"fmt"
	"os"

	"mython-go/pkg/driver"
	"mython-go/pkg/interpreter"
	"mython-go/pkg/parser"
	"mython-go/pkg/runtime"
)

const cliToolVersion = "mython-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := driver.LoadDefaultRunConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mython: %v\n", err)
		return 1
	}

	if len(args) == 0 {
		if cfg != nil && cfg.Entry != "" {
			if cfg.Check {
				return runCheck([]string{cfg.Entry})
			}
			return runRun([]string{cfg.Entry})
		}
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runRun(withConfigEntryFallback(args[1:], cfg))
	case "check":
		return runCheck(withConfigEntryFallback(args[1:], cfg))
	case "repl":
		return runRepl(args[1:], cfg)
	default:
		return runRun(args)
	}
}

// withConfigEntryFallback substitutes cfg.Entry when the user passed no
// file argument to `run`/`check`, mirroring the teacher's manifest-driven
// default-target resolution in cmd/able/main.go.
func withConfigEntryFallback(args []string, cfg *driver.RunConfig) []string {
	if len(args) == 0 && cfg != nil && cfg.Entry != "" {
		return []string{cfg.Entry}
	}
	return args
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: mython <command> [arguments]

commands:
  run <file>     parse and execute a Mython source file
  check <file>   parse a Mython source file without executing it
  repl           start an interactive read-eval-print loop
  version        print the CLI version

An optional mython.yml in the working directory supplies defaults for
the entry file, check-mode, and REPL styling (see pkg/driver.RunConfig).`)
}

func runRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "mython run requires exactly one source file")
		return 1
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mython: %v\n", err)
		return 1
	}
	program, err := parser.ParseProgram(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mython: %v\n", err)
		return 1
	}
	ev := interpreter.New(runtime.NewStreamContext(os.Stdout))
	if err := ev.Run(program); err != nil {
		fmt.Fprintf(os.Stderr, "mython: %v\n", err)
		return 1
	}
	return 0
}

func runCheck(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "mython check requires exactly one source file")
		return 1
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mython: %v\n", err)
		return 1
	}
	if _, err := parser.ParseProgram(string(src)); err != nil {
		fmt.Fprintf(os.Stderr, "mython: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stdout, "%s: ok\n", args[0])
	return 0
}
