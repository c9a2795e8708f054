package rule_test

import (
	"fmt"

	"github.com/katalvlaran/sarmine/record"
	"github.com/katalvlaran/sarmine/rule"
)

// ExampleEncode derives a rule from a wild-type/mutant pair and replays it.
func ExampleEncode() {
	wt := record.MustNew("wt", map[string]string{"1": "A", "2": "K", "3": "L"}, 10)
	mut := record.MustNew("m7", map[string]string{"1": "G", "3": "L", "4": "W"}, 31.5)

	r := rule.Encode(wt, mut)
	fmt.Println(r.Key(), r.Arity())

	back, _ := rule.Apply(wt, r)
	fmt.Println(back.Equal(mut))
	// Output:
	// 1:A>G;2:K>;4:>W 3
	// true
}
