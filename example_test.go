package flcs_test

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/flcs"
)

// ExampleEngine_Run aligns two integer sequences under binary equality —
// with threshold 1.0 this is exactly the classical LCS.
func ExampleEngine_Run() {
	a := []int{1, 2, 3, 4}
	b := []int{1, 3, 4}

	eng, err := flcs.New(len(a), len(b), func(i, j int) float64 {
		if a[i] == b[j] {
			return 1
		}

		return 0
	}, flcs.WithBranchThreshold(1.0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res := eng.Run()
	fmt.Printf("total=%.1f\n", res.TotalMatch)
	for _, m := range res.Matches {
		fmt.Printf("a[%d] ~ b[%d] (%.1f)\n", m.I, m.J, m.Value)
	}
	// Output:
	// total=3.0
	// a[0] ~ b[0] (1.0)
	// a[2] ~ b[1] (1.0)
	// a[3] ~ b[2] (1.0)
}

// ExampleEngine_Run_fuzzy matches characters case-insensitively: an exact
// character is worth 1.0, a case-folded one 0.8. The alignment keeps all
// five pairs and reports the per-pair quality.
func ExampleEngine_Run_fuzzy() {
	a := []rune("Hello")
	b := []rune("hello")

	eng, err := flcs.New(len(a), len(b), func(i, j int) float64 {
		switch {
		case a[i] == b[j]:
			return 1
		case unicode.ToLower(a[i]) == unicode.ToLower(b[j]):
			return 0.8
		}

		return 0
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res := eng.Run()
	fmt.Printf("total=%.2f evals=%d\n", res.TotalMatch, eng.NumEvals())
	for _, m := range res.Matches {
		fmt.Printf("%c ~ %c (%.2f)\n", a[m.I], b[m.J], m.Value)
	}
	// Output:
	// total=4.80 evals=5
	// H ~ h (0.80)
	// e ~ e (1.00)
	// l ~ l (1.00)
	// l ~ l (1.00)
	// o ~ o (1.00)
}
