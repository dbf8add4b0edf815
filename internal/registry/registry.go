package registry

import "github.com/Tythos/gtestbox/internal/check"

// Func is the body of a test case. It records outcomes through the recorder
// and returns normally; fatal checks unwind through a recovered panic.
type Func func(t *check.T)

// Case is a registered test case descriptor.
type Case struct {
	Suite string // Suite grouping, e.g. "HelloTest"
	Name  string // Case name within the suite, e.g. "BasicAssertions"
	Fn    Func
}

// FullName returns the suite-qualified case name.
func (c Case) FullName() string {
	return c.Suite + "/" + c.Name
}

// Registry is an explicit collection of case descriptors, built at process
// start and handed to the runner. Registration happens before execution;
// execution never mutates the registry.
type Registry struct {
	cases []Case
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends a case. Cases run in registration order.
func (r *Registry) Add(c Case) {
	r.cases = append(r.cases, c)
}

// Cases returns the registered cases in registration order.
func (r *Registry) Cases() []Case {
	return r.cases
}

// Len returns the number of registered cases.
func (r *Registry) Len() int {
	return len(r.cases)
}
