package manifold_test

import (
	"context"
	"fmt"
	"log"

	manifold "github.com/sepkit/manifold"
)

func Example() {
	data := []byte("the quick brown fox jumps over the lazy dog")

	a := manifold.New()
	m, err := a.Analyze(context.Background(), data, manifold.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("windows:", m.Aggregate.Totals.WindowCount)
	fmt.Println("distinct:", m.Aggregate.Totals.DistinctSignatures)
	fmt.Printf("coverage: %.2f\n", m.Aggregate.Totals.Coverage)
	// Output:
	// windows: 1
	// distinct: 1
	// coverage: 1.00
}

func ExampleNewConfig() {
	cfg, err := manifold.NewConfig(32, 16, 2)
	if err != nil {
		log.Fatal(err)
	}

	m, err := manifold.Analyze(make([]byte, 100), cfg)
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range m.Windows {
		fmt.Printf("window %d: offset=%d length=%d\n", w.Index, w.Offset, w.Length)
	}
	// Output:
	// window 0: offset=0 length=32
	// window 1: offset=16 length=32
	// window 2: offset=32 length=32
	// window 3: offset=48 length=32
	// window 4: offset=64 length=32
	// window 5: offset=80 length=20
}
