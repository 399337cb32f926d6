package simdvec_test

import (
	"fmt"

	"github.com/hupe1980/simdvec"
)

func ExampleDistance() {
	a := simdvec.F32Vector([]float32{1, 0, 0, 0})
	b := simdvec.F32Vector([]float32{0, 1, 0, 0})

	d, err := simdvec.Distance(a, b, simdvec.Cosine)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 1
}

func ExampleBatch() {
	queries, _ := simdvec.F32Matrix([]float32{
		1, 0,
		0, 1,
	}, 2)
	targets, _ := simdvec.F32Matrix([]float32{
		1, 0,
		1, 0,
	}, 2)

	out, err := simdvec.Batch(queries, targets, simdvec.SqEuclidean, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [0 2]
}

func ExampleF32Kernel() {
	dot, err := simdvec.F32Kernel(simdvec.Inner)
	if err != nil {
		panic(err)
	}
	fmt.Println(dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
	// Output: 32
}
