// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
	sinkI int
	sinkE *matrix.EigenDecomposition
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			B := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 11)
			B := RandFilledDense(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulFallback(b *testing.B) {
	b.ReportAllocs()
	A := RandFilledDense(b, 64, 64, 5)
	B := RandFilledDense(b, 64, 64, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Mul(hide{A}, hide{B})
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 77)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	A := RandFilledDense(b, 128, 64, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := matrix.Rank(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = r
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	A := RandFilledDense(b, 128, 128, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Inverse(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkEigen(b *testing.B) {
	b.ReportAllocs()
	A := RandFilledDense(b, 64, 64, 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := matrix.Eigen(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkE = e
	}
}
