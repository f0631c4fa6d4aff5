// Command symreduce runs the symmetry-reduction search engine over a
// symmetry-graph input (optionally alongside a CNF block) and writes
// the reduced prefixes as textual or incremental-cube output.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/symreduce/search"
)

func main() {
	root := rootCommand()
	if err := root.Execute(); err != nil {
		var fatal *search.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintln(os.Stderr, fatal)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
