package corpus_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/corpus"
)

// ExampleNew builds a corpus from whitespace-separated tokens and derives
// the three-letter working set.
func ExampleNew() {
	c, err := corpus.New(strings.NewReader("cat dog fish\ncot cat cog"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	set := c.WordSet(3)
	fmt.Println(set.Words())
	// Output:
	// [cat cog cot dog]
}
