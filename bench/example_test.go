package bench_test

import (
	"fmt"

	"github.com/katalvlaran/matbench/bench"
)

// ExampleSweep evaluates one small size under all six traversal orders and
// shows the core guarantee: the orders may differ in time, never in the
// computed checksum.
func ExampleSweep() {
	opts := bench.DefaultOptions()
	opts.Trials = 1

	table, err := bench.Sweep([]int{8}, bench.Orders(), &opts, nil)
	if err != nil {
		fmt.Println("sweep failed:", err)
		return
	}

	distinct := make(map[int64]struct{})
	for _, o := range table.Orders() {
		r, _ := table.Get(bench.Key{Size: 8, Order: o})
		distinct[r.Sum] = struct{}{}
	}

	fmt.Println("results:", table.Len())
	fmt.Println("orders agree on checksum:", len(distinct) == 1)
	// Output:
	// results: 6
	// orders agree on checksum: true
}

// ExampleParseOrder shows order-name validation: unknown names abort, they
// never fall back to a default traversal.
func ExampleParseOrder() {
	o, err := bench.ParseOrder("ikj")
	fmt.Println(o, err)

	_, err = bench.ParseOrder("xyz")
	fmt.Println(err)
	// Output:
	// ikj <nil>
	// "xyz": bench: unknown traversal order
}
