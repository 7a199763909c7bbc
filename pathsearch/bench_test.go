package pathsearch_test

import (
	"testing"

	"github.com/andrewsmike/redhdl/pathsearch"
)

func BenchmarkRunOpenGrid(b *testing.B) {
	problem := &gridProblem{start: gridPoint{0, 0}, goal: gridPoint{20, 20}}
	opts := pathsearch.Options[gridPoint, string]{MaxSteps: 100000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathsearch.Run[gridPoint, string](problem, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunIDDFSOpenGrid(b *testing.B) {
	problem := &gridProblem{start: gridPoint{0, 0}, goal: gridPoint{10, 10}}
	opts := pathsearch.Options[gridPoint, string]{MaxSteps: 100000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathsearch.RunIDDFS[gridPoint, string](problem, opts); err != nil {
			b.Fatal(err)
		}
	}
}
