package model_test

import (
	"fmt"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/topology"
)

// ExampleBuild formulates the reference six-node, three-wavelength instance
// and prints its size.
func ExampleBuild() {
	m, err := model.Build(topology.Default())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := m.Stats()
	fmt.Println("variables:", m.NumVars())
	fmt.Println("constraints:", m.NumConstraints())
	fmt.Println("continuity:", s.Constraints[model.Continuity])
	fmt.Println("fiber_capacity:", s.Constraints[model.FiberCapacity])
	// Output:
	// variables: 4032
	// constraints: 1038
	// continuity: 450
	// fiber_capacity: 108
}

// ExampleModel_Constraint looks up one wavelength_split row and prints it
// using the model's column names.
func ExampleModel_Constraint() {
	in, _ := topology.Line(2, 2)
	m, _ := model.Build(in, model.WithSelfDemands(false))

	c, ok := m.Constraint(model.ID(model.WavelengthSplit, 0, 1))
	if !ok {
		return
	}
	fmt.Print(c.ID, ":")
	for _, t := range c.Expr {
		fmt.Printf(" %+g·%s", t.Coef, m.Name(t.Var))
	}
	fmt.Println("", c.Sense, c.RHS)
	// Output:
	// wavelength_split(0,1): +1·LPs_on_wl_0_1_0 +1·LPs_on_wl_0_1_1 -1·LPs_0_1 = 0
}
