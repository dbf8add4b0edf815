// Package testsuite declares the built-in cases shipped with the harness.
package testsuite

import (
	"github.com/Tythos/gtestbox/internal/check"
	"github.com/Tythos/gtestbox/internal/registry"
)

// Register adds the built-in cases to reg, in execution order.
func Register(reg *registry.Registry) {
	reg.Add(registry.Case{
		Suite: "HelloTest",
		Name:  "BasicAssertions",
		Fn:    basicAssertions,
	})
}

// basicAssertions performs two independent, non-fatal checks: two string
// literals differ in content, and an arithmetic expression evaluates to its
// expected value.
func basicAssertions(t *check.T) {
	t.ExpectNotEqual("hello", "world")
	t.ExpectEqual(42, 7*6)
}
