package cmd

import (
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Action:    bench,
		Category:  "TOOL",
		Usage:     "time the sorting algorithms on worst-case input",
		ArgsUsage: "",
		Description: `It sorts a reversed array of the given size with each algorithm and reports
the average wall time per run.

Examples:
$ sortdemo bench
$ sortdemo bench --size 5000 --count 3`,
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Value:   1000,
				Usage:   "number of elements to sort",
			},
			&cli.UintFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Value:   10,
				Usage:   "timed runs per algorithm",
			},
		},
	}
}

// reversed input forces the quadratic path of all three algorithms
func makeTestArray(n int) sort.IntArray {
	v := make(sort.IntArray, n)
	for i := 0; i < n; i++ {
		v[i] = n - i
	}
	return v
}

func bench(ctx *cli.Context) error {
	setup(ctx, 0)

	size := int(ctx.Uint("size"))
	count := int(ctx.Uint("count"))
	if size == 0 || count == 0 {
		return os.ErrInvalid
	}

	algorithms := []struct {
		name string
		fn   func(sort.Sorter)
	}{
		{"bubble", sort.Bubble},
		{"selection", sort.Selection},
		{"insertion", sort.Insertion},
	}

	for _, a := range algorithms {
		var total time.Duration
		for i := 0; i < count; i++ {
			v := makeTestArray(size)
			start := time.Now()
			a.fn(v)
			total += time.Since(start)
			if !sort.IsSorted(v) {
				logger.Fatalf("%s left the array unsorted", a.name)
			}
		}
		logger.Infof("%s: %d elements, %s per run", a.name, size, total/time.Duration(count))
	}
	return nil
}
