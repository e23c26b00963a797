// Command matbench times dense square matrix multiplication under all six
// orderings of the three nested loops (i=row, j=column, k=contraction) and
// prints two fixed-width reports: average time per (size, order) pair in
// microseconds, and the output checksum proving every order computed the
// same product.
//
// Usage:
//
//	matbench -all                       # sizes 100..500 × all six orders
//	matbench -N 100,200 -t ijk,kji      # explicit size and traversal lists
//	matbench -i 10 -s 3 -N 64 -t ikj    # 10 trials, seed 3
//	matbench                            # interactive: one size, one order
//
// Batch runs (-all, or both -N and -t) show a progress line per pair and end
// with the two reports. Interactive runs print one result block per pair
// immediately instead. An unknown traversal name aborts the whole run with a
// non-zero exit status.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matbench/bench"
)

var (
	runAll     = flag.Bool("all", false, "Evaluate default dataset (100-500 with all ijk permutations)")
	iterations = flag.Int("i", bench.DefaultTrials, "Number of iterations per invocation")
	seed       = flag.Int64("s", bench.DefaultSeed, "RNG seed for matrix generation")
	sizesFlag  = flag.String("N", "", "Sizes to evaluate (comma separated)")
	ordersFlag = flag.String("t", "", "Traversals to evaluate (comma separated)")
)

// defaultSizes is the -all dataset.
var defaultSizes = []int{100, 200, 300, 400, 500}

func main() {
	flag.Parse()

	fmt.Fprintf(os.Stderr, "CPU features: %s\n", cpuFeatures())

	if *iterations < 1 {
		fmt.Fprintf(os.Stderr, "Error: iterations must be >= 1: %d\n", *iterations)
		os.Exit(1)
	}

	// Batch mode when the full dataset is requested or both lists are given;
	// otherwise fall back to the interactive single-pair prompt.
	batch := *runAll || (*sizesFlag != "" && *ordersFlag != "")

	var (
		sizes  []int
		orders []bench.Order
		err    error
	)
	switch {
	case *runAll:
		sizes = defaultSizes
		orders = bench.Orders()
	case batch:
		if sizes, err = parseSizes(*sizesFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		orders = parseTraversals(strings.Split(*ordersFlag, ","))
	default:
		var n int
		var name string
		if n, name, err = promptInput(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sizes = []int{n}
		orders = parseTraversals([]string{name})
	}

	opts := bench.Options{Trials: *iterations, Seed: *seed}

	// Each (size, order) result surfaces as soon as it is computed: batch
	// runs overwrite one progress line, interactive runs print the result
	// block immediately.
	var observe bench.Observer
	if batch {
		observe = func(k bench.Key, _ bench.Result) {
			fmt.Fprintf(os.Stderr, "Trials for %d with order %s    \r", k.Size, k.Order)
		}
	} else {
		observe = func(_ bench.Key, r bench.Result) {
			fmt.Printf("-- BEGIN OUTPUT --\n")
			fmt.Printf("Time (us) = %g\n", r.TimeUS)
			fmt.Printf("Sum       = %d\n", r.Sum)
			fmt.Printf("-- END OUTPUT --\n")
		}
	}

	table, err := bench.Sweep(sizes, orders, &opts, observe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if batch {
		fmt.Println("Done!                                ")
		fmt.Print(table.RenderTimes())
		fmt.Print(table.RenderSums())
	}
}

// parseSizes splits a comma-separated size list, rejecting malformed or
// negative entries (size 0 is legal).
func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", p)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid size %d: must be >= 0", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes provided")
	}

	return sizes, nil
}

// parseTraversals resolves order names, aborting the whole run on the first
// unknown name — an invalid traversal must never fall back to a default.
func parseTraversals(names []string) []bench.Order {
	orders := make([]bench.Order, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		o, err := bench.ParseOrder(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid traversal provided: %s\n", name)
			os.Exit(1)
		}
		orders = append(orders, o)
	}
	if len(orders) == 0 {
		fmt.Fprintln(os.Stderr, "no traversals provided")
		os.Exit(1)
	}

	return orders
}

// promptInput interactively reads one size and one order name.
func promptInput() (int, string, error) {
	in := bufio.NewReader(os.Stdin)

	fmt.Println("-- BEGIN INPUT --")
	fmt.Print("N     ==> ")
	var n int
	if _, err := fmt.Fscan(in, &n); err != nil {
		return 0, "", fmt.Errorf("reading size: %w", err)
	}
	if n < 0 {
		return 0, "", fmt.Errorf("invalid size %d: must be >= 0", n)
	}

	fmt.Print("Order ==> ")
	var name string
	if _, err := fmt.Fscan(in, &name); err != nil {
		return 0, "", fmt.Errorf("reading order: %w", err)
	}
	fmt.Println("-- END INPUT --")

	return n, name, nil
}
