package cursor_test

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-containers/cursor"
	"github.com/amp-labs/amp-containers/sequence"
)

func ExampleConcat() {
	c := cursor.Concat(
		cursor.FromSlice([]string{"a", "b"}),
		cursor.FromSlice([]string{"c"}),
	)

	for v := range cursor.All(c) {
		fmt.Print(v)
	}

	fmt.Println()
	// Output: abc
}

func ExampleZip() {
	names := cursor.FromSlice([]string{"ada", "grace", "barbara"})
	years := cursor.FromSlice([]int{1815, 1906})

	for pair := range cursor.All(cursor.Zip(names, years)) {
		name, year := pair.Unpack()
		fmt.Println(name, year)
	}
	// Output:
	// ada 1815
	// grace 1906
}

func ExampleFilter() {
	words := cursor.FromSlice([]string{"sort", "merge", "scan", "zip"})
	short := cursor.Filter(words, func(w string) bool { return len(w) <= 4 })

	out, _ := cursor.Collect(short)
	fmt.Println(strings.Join(out, ","))
	// Output: sort,scan,zip
}

func ExampleBackwardRemovable() {
	l := sequence.NewList(1, 2, 3, 4)
	c := cursor.BackwardRemovable[int](l)

	for c.HasNext() {
		if v, _ := c.Next(); v%2 == 1 {
			_ = c.Remove()
		}
	}

	fmt.Println(l.Values())
	// Output: [2 4]
}
