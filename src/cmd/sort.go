package cmd

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
)

// the array the classic demonstrations sort
var demoArray = []int{1, 5, 99, 14, 56, 4, 78, 100, 45, 87, 1}

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    doSort,
		Category:  "TOOL",
		Usage:     "sort integers in place and print the result",
		ArgsUsage: "[N ...]",
		Description: `It builds an integer array from the arguments (or a built-in example array
when none are given), prints it, sorts it in place with the chosen algorithm
and prints it again.

Examples:
$ sortdemo sort
$ sortdemo sort --algorithm insertion 8 5 4 7 2 6 1 2 15`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "bubble",
				Usage:   "sorting algorithm (bubble, selection or insertion)",
			},
		},
	}
}

func sortFunc(name string) (func(sort.Sorter), error) {
	switch name {
	case "bubble":
		return sort.Bubble, nil
	case "selection":
		return sort.Selection, nil
	case "insertion":
		return sort.Insertion, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (expect bubble, selection or insertion)", name)
}

func doSort(ctx *cli.Context) error {
	setup(ctx, 0)

	algorithm := ctx.String("algorithm")
	fn, err := sortFunc(algorithm)
	if err != nil {
		return err
	}

	var arr sort.IntArray
	if ctx.NArg() == 0 {
		arr = append(arr, demoArray...)
	} else {
		arr = make(sort.IntArray, 0, ctx.NArg())
		for _, a := range ctx.Args().Slice() {
			v, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("argument %q is not an integer", a)
			}
			arr = append(arr, v)
		}
	}

	fmt.Println("Original array")
	fmt.Println(arr)
	fn(arr)
	fmt.Println("Sorted array")
	fmt.Println(arr)

	logger.Debugf("sorted %d elements with %s sort", arr.Len(), algorithm)
	return nil
}
