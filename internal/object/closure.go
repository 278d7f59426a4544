package object

// Closure is a mutable name-to-Value scope: a method activation's locals
// (including the bound "self"), or a ClassInstance's field set. Unlike a
// lexical-scoping closure it has no parent link - VariableValue's
// dotted-path resolution walks ClassInstance.Fields explicitly instead of
// a scope chain.
type Closure struct {
	vars map[string]Value
}

// NewClosure returns an empty, ready-to-use Closure.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]Value)}
}

// Get looks up name, reporting whether it was bound.
func (c *Closure) Get(name string) (Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (c *Closure) Set(name string, v Value) {
	c.vars[name] = v
}

// Names returns every bound name, for internal/suggest "did you mean"
// candidates on an unresolved VariableValue.
func (c *Closure) Names() []string {
	names := make([]string, 0, len(c.vars))
	for name := range c.vars {
		names = append(names, name)
	}
	return names
}
