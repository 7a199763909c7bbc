package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/andrewsmike/redhdl/localsearch"
)

func BenchmarkRunNumberProblem(b *testing.B) {
	problem := numberProblem{target: 73}
	opts := localsearch.Options[int]{
		Rounds:   1000,
		Restarts: 4,
		RNG:      rand.New(rand.NewSource(1)),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		localsearch.Run[int](problem, opts)
	}
}
