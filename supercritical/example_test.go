package supercritical_test

import (
	"fmt"

	"github.com/tobony/ht/supercritical"
)

func ExampleJackson() {
	nu, err := supercritical.Jackson(1e5, 1.2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", nu)

	nu, err = supercritical.Jackson(1e5, 1.2,
		supercritical.WithDensities(330, 290),
		supercritical.WithHeatCapacities(2080.845, 2048.621),
		supercritical.WithTemperatures(620, 700, 600),
	)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", nu)
	// Output:
	// 252.3723
	// 264.1046
}

func ExampleLookup() {
	c, err := supercritical.Lookup("Nu_Bringer_Smith")
	if err != nil {
		panic(err)
	}
	nu, _ := c(1e5, 1.2)
	fmt.Printf("%.2f\n", nu)
	// Output: 208.18
}

func ExampleCompare() {
	cmp := supercritical.Compare(1e5, 1.2)
	fmt.Printf("%d correlations, mean %.1f, range %.1f-%.1f\n", cmp.OK, cmp.Mean, cmp.Min, cmp.Max)
	// Output: 19 correlations, mean 244.9, range 182.5-302.5
}
