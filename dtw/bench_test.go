package dtw_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynprog/dtw"
)

var sinkDist float64

// series returns n deterministic pseudo-random samples.
func series(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()
	}

	return s
}

// BenchmarkDTW runs every memory mode on square inputs of growing size.
func BenchmarkDTW(b *testing.B) {
	modes := []struct {
		name string
		mode dtw.MemoryMode
	}{
		{"full", dtw.FullMatrix},
		{"tworows", dtw.TwoRows},
		{"row", dtw.NoMemory},
	}
	for _, n := range []int{100, 500} {
		rng := rand.New(rand.NewSource(1337))
		x, y := series(rng, n), series(rng, n)
		for _, m := range modes {
			opts := dtw.DefaultOptions()
			opts.MemoryMode = m.mode
			b.Run(fmt.Sprintf("%s/n=%d", m.name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					d, _, err := dtw.DTW(x, y, &opts)
					if err != nil {
						b.Fatal(err)
					}
					sinkDist = d
				}
			})
		}
	}
}

// BenchmarkDTW_Window measures a narrow band with path recovery.
func BenchmarkDTW_Window(b *testing.B) {
	rng := rand.New(rand.NewSource(4242))
	x, y := series(rng, 500), series(rng, 505)
	opts := dtw.DefaultOptions()
	opts.Window = 5
	opts.ReturnPath = true
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _, err := dtw.DTW(x, y, &opts)
		if err != nil {
			b.Fatal(err)
		}
		sinkDist = d
	}
}
