package chemref_test

import (
	"fmt"
	"log"

	"github.com/qcforge/chemref"
)

// Example demonstrates resolving free-form element notations.
func Example() {
	eng, err := chemref.Default()
	if err != nil {
		log.Fatal(err)
	}
	table := eng.PeriodicTable()

	z, err := table.ToZ("KRYPTON")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(z)

	sym, err := table.ToE("kr-84")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sym)

	mass, err := table.ToMassDecimal("D")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(mass)
	// Output:
	// 36
	// Kr
	// 2.01410177812
}

// Example_constants demonstrates physical constant lookup by label.
func Example_constants() {
	eng, err := chemref.Default()
	if err != nil {
		log.Fatal(err)
	}

	hartree, err := eng.Constants().GetDecimal("Hartree energy in eV")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hartree)
	// Output: 27.21138602
}
