// Command dpllsat solves DIMACS CNF instances using the dpllsat DPLL engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"sync"
	"time"

	"github.com/arourke/dpllsat/internal/dimacs"
	"github.com/arourke/dpllsat/sat"
)

var (
	flagAlgorithm = flag.String(
		"algorithm",
		"unit+pure",
		"DPLL variant: naive, unit, pure, unit+pure, 2wl, 2wli, vsids, restarts",
	)
	flagGzip = flag.Bool(
		"gzip",
		false,
		"treat the instance file as gzip-compressed",
	)
	flagBenchDir = flag.String(
		"bench",
		"",
		"solve every .cnf/.cnf.gz instance in this directory concurrently, instead of a single file",
	)
	flagCPUProfile = flag.Bool(
		"cpuprof",
		false,
		"save pprof CPU profile to cpuprof",
	)
	flagMemProfile = flag.Bool(
		"memprof",
		false,
		"save pprof memory profile to memprof",
	)
)

func parseAlgorithm(name string) (sat.Algorithm, error) {
	switch name {
	case "naive":
		return sat.Naive, nil
	case "unit":
		return sat.Unit, nil
	case "pure":
		return sat.Pure, nil
	case "unit+pure":
		return sat.UnitPure, nil
	case "2wl":
		return sat.TwoWatched, nil
	case "2wli":
		return sat.TwoWatchedIterative, nil
	case "vsids":
		return sat.VSIDS, nil
	case "restarts":
		return sat.Restarts, nil
	default:
		return 0, fmt.Errorf("dpllsat: unknown -algorithm %q: %w", name, sat.ErrInvalidConfig)
	}
}

func solveFile(filename string, gzipped bool, algo sat.Algorithm) error {
	formula, err := dimacs.Load(filename, gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c instance:   %s\n", filename)
	fmt.Printf("c variables:  %d\n", len(formula.Variables))
	fmt.Printf("c clauses:    %d\n", len(formula.Clauses))

	t := time.Now()
	model, ok, err := sat.Solve(formula.Variables, formula.Clauses, sat.Config{Algorithm: algo})
	elapsed := time.Since(t)
	if err != nil {
		return err
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())

	if !ok {
		fmt.Println("c status:     unsat")
		return nil
	}
	if !sat.Verify(formula.Clauses, model) {
		return fmt.Errorf("dpllsat: solver returned a model that fails verification for %q", filename)
	}

	fmt.Println("c status:     sat")
	for _, v := range formula.Variables {
		fmt.Printf("v %s=%t\n", v, model[v])
	}
	return nil
}

// runBench solves every CNF instance under dir concurrently, one goroutine
// per file, and reports the first error encountered.
func runBench(dir string, gzipped bool, algo sat.Algorithm) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		isGzip := strings.HasSuffix(name, ".cnf.gz")
		if !isGzip && !strings.HasSuffix(name, ".cnf") {
			continue
		}

		wg.Add(1)
		go func(path string, gz bool) {
			defer wg.Done()
			if err := solveFile(path, gz, algo); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(filepath.Join(dir, name), gzipped || isGzip)
	}

	wg.Wait()
	return firstErr
}

func main() {
	flag.Parse()

	algo, err := parseAlgorithm(*flagAlgorithm)
	if err != nil {
		log.Fatal(err)
	}

	if *flagCPUProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagBenchDir != "" {
		if err := runBench(*flagBenchDir, *flagGzip, algo); err != nil {
			log.Fatal(err)
		}
	} else {
		if flag.NArg() == 0 || flag.Arg(0) == "" {
			log.Fatal("dpllsat: missing instance file")
		}
		if err := solveFile(flag.Arg(0), *flagGzip, algo); err != nil {
			log.Fatal(err)
		}
	}

	if *flagMemProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
