// Command rectilinear is the CLI entrypoint for the driver package's five
// verbs.
//
// Usage:
//
//	rectilinear R refinement [threads]
//	rectilinear P refinement maxDist [threads]
//	rectilinear S leftToken base rightToken maxDist
//	rectilinear T base refinement minDist maxDist folderSuffixA folderSuffixB
//	rectilinear X
//
// Flags, placed before the verb, apply to every invocation:
//
//	-output dir    precomputation root directory (default ".")
//	-max-size n    X: upper bound on refinement total size to check (default 8)
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/rectilinear/driver"
)

// Exit codes per the external interfaces' "0 success; 1 usage error; 2-7
// various verification failures" scheme, one code per errors.go sentinel.
const (
	exitOK = iota
	exitUsage
	exitInvalidInput
	exitCrossCheckMismatch
	exitFileCorruption
	exitOverflow
	exitMissingInput
	exitBaseMismatch
)

func main() {
	outputDir := flag.String("output", ".", "precomputation root directory")
	maxSize := flag.Uint("max-size", 8, "X: upper bound on refinement total size to check")
	threads := flag.Int("threads", 0, "worker count (0 = GOMAXPROCS)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(exitUsage)
	}

	opts := []driver.Option{
		driver.WithOutputDir(*outputDir),
		driver.WithMaxSize(uint8(*maxSize)),
		driver.WithThreads(*threads),
		driver.WithProgress(func(e driver.Event) {
			logger.Printf("distance=%d signature=%v bases=%d %s", e.Distance, e.Signature, e.BasesFound, e.Message)
		}),
	}

	code, err := run(args[0], args[1:], opts, logger)
	if err != nil {
		logger.Printf("error: %v", err)
	}
	os.Exit(code)
}

func run(verb string, args []string, opts []driver.Option, logger *log.Logger) (int, error) {
	switch verb {
	case "R":
		return runR(args, opts, logger)
	case "P":
		return runP(args, opts, logger)
	case "S":
		return runS(args, opts, logger)
	case "T":
		return runT(args, opts, logger)
	case "X":
		return runX(opts, logger)
	default:
		usage()
		return exitUsage, fmt.Errorf("unknown verb %q", verb)
	}
}

func runR(args []string, opts []driver.Option, logger *log.Logger) (int, error) {
	if len(args) < 1 {
		usage()
		return exitUsage, errors.New("R requires a refinement argument")
	}
	refinement, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return exitUsage, fmt.Errorf("parsing refinement: %w", err)
	}
	if len(args) >= 2 {
		threads, err := strconv.Atoi(args[1])
		if err != nil {
			return exitUsage, fmt.Errorf("parsing threads: %w", err)
		}
		opts = append(opts, driver.WithThreads(threads))
	}

	result, err := driver.R(refinement, opts...)
	if err != nil {
		return exitCodeFor(err), err
	}
	counts := result.Counts[refinement]
	logger.Printf("refinement %d: all=%d symmetric180=%d symmetric90=%d (%s)",
		refinement, counts.All, counts.Symmetric180, counts.Symmetric90, result.Elapsed)
	return exitOK, nil
}

func runP(args []string, opts []driver.Option, logger *log.Logger) (int, error) {
	if len(args) < 2 {
		usage()
		return exitUsage, errors.New("P requires refinement and maxDist arguments")
	}
	refinement, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return exitUsage, fmt.Errorf("parsing refinement: %w", err)
	}
	maxDist, err := strconv.Atoi(args[1])
	if err != nil {
		return exitUsage, fmt.Errorf("parsing maxDist: %w", err)
	}
	if len(args) >= 3 {
		threads, err := strconv.Atoi(args[2])
		if err != nil {
			return exitUsage, fmt.Errorf("parsing threads: %w", err)
		}
		opts = append(opts, driver.WithThreads(threads))
	}

	if err := driver.P(refinement, maxDist, opts...); err != nil {
		return exitCodeFor(err), err
	}
	logger.Printf("refinement %d: precomputed through distance %d", refinement, maxDist)
	return exitOK, nil
}

func runS(args []string, opts []driver.Option, logger *log.Logger) (int, error) {
	if len(args) < 4 {
		usage()
		return exitUsage, errors.New("S requires leftToken, base, rightToken, maxDist arguments")
	}
	leftToken, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return exitUsage, fmt.Errorf("parsing leftToken: %w", err)
	}
	base, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return exitUsage, fmt.Errorf("parsing base: %w", err)
	}
	rightToken, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return exitUsage, fmt.Errorf("parsing rightToken: %w", err)
	}
	maxDist, err := strconv.Atoi(args[3])
	if err != nil {
		return exitUsage, fmt.Errorf("parsing maxDist: %w", err)
	}

	result, err := driver.S(leftToken, uint8(base), rightToken, maxDist, opts...)
	if err != nil {
		return exitCodeFor(err), err
	}
	counts := result.Counts[0]
	logger.Printf("combined %d+%d: all=%d symmetric180=%d symmetric90=%d (%s)",
		leftToken, rightToken, counts.All, counts.Symmetric180, counts.Symmetric90, result.Elapsed)
	return exitOK, nil
}

func runT(args []string, opts []driver.Option, logger *log.Logger) (int, error) {
	if len(args) < 6 {
		usage()
		return exitUsage, errors.New("T requires base, refinement, minDist, maxDist, folderSuffixA, folderSuffixB arguments")
	}
	base, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return exitUsage, fmt.Errorf("parsing base: %w", err)
	}
	refinement, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return exitUsage, fmt.Errorf("parsing refinement: %w", err)
	}
	minDist, err := strconv.Atoi(args[2])
	if err != nil {
		return exitUsage, fmt.Errorf("parsing minDist: %w", err)
	}
	maxDist, err := strconv.Atoi(args[3])
	if err != nil {
		return exitUsage, fmt.Errorf("parsing maxDist: %w", err)
	}

	diffs, err := driver.T(uint8(base), refinement, minDist, maxDist, args[4], args[5], opts...)
	if err != nil {
		return exitCodeFor(err), err
	}
	if len(diffs) == 0 {
		logger.Printf("refinement %d: %s and %s agree across distances %d..%d", refinement, args[4], args[5], minDist, maxDist)
		return exitOK, nil
	}
	for _, d := range diffs {
		logger.Printf("distance %d mismatch: %s=%+v %s=%+v", d.Distance, args[4], d.Left, args[5], d.Right)
	}
	return exitCrossCheckMismatch, fmt.Errorf("%w: %d distance(s) disagree", driver.ErrCrossCheckMismatch, len(diffs))
}

func runX(opts []driver.Option, logger *log.Logger) (int, error) {
	mismatches, err := driver.X(opts...)
	if err != nil {
		return exitCodeFor(err), err
	}
	if len(mismatches) == 0 {
		logger.Printf("regression suite passed")
		return exitOK, nil
	}
	for _, m := range mismatches {
		logger.Printf("token %d mismatch: want=%+v got=%+v", m.Token, m.Want, m.Got)
	}
	return exitCrossCheckMismatch, fmt.Errorf("%w: %d token(s) disagree with the registry", driver.ErrCrossCheckMismatch, len(mismatches))
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, driver.ErrInvalidInput):
		return exitInvalidInput
	case errors.Is(err, driver.ErrCrossCheckMismatch):
		return exitCrossCheckMismatch
	case errors.Is(err, driver.ErrFileCorruption):
		return exitFileCorruption
	case errors.Is(err, driver.ErrOverflow):
		return exitOverflow
	case errors.Is(err, driver.ErrMissingInput):
		return exitMissingInput
	case errors.Is(err, driver.ErrBaseMismatch):
		return exitBaseMismatch
	default:
		return exitInvalidInput
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  rectilinear R refinement [threads]
  rectilinear P refinement maxDist [threads]
  rectilinear S leftToken base rightToken maxDist
  rectilinear T base refinement minDist maxDist folderSuffixA folderSuffixB
  rectilinear X`)
}
