package localsearch_test

import (
	"fmt"
	"math/rand"

	"github.com/andrewsmike/redhdl/localsearch"
)

func ExampleRun() {
	problem := numberProblem{target: 10}
	result := localsearch.Run[int](problem, localsearch.Options[int]{
		Rounds:   5000,
		Restarts: 1,
		RNG:      rand.New(rand.NewSource(1)),
	})
	fmt.Println(result)
	// Output: 10
}
