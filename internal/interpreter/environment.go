package interpreter

// Environment is a single lexical scope: a map of bindings plus a link to
// the enclosing scope. Variable resolution walks outward from the
// innermost scope until a binding or the global scope is found.
type Environment struct {
	Variables map[string]interface{}
	Parent    *Environment
}

// NewEnvironment creates a scope enclosed by parent. parent is nil for the
// global scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		Variables: make(map[string]interface{}),
		Parent:    parent,
	}
}

// Define binds name to value in this scope, shadowing any binding of the
// same name in an enclosing scope. Redeclaring a name already bound in
// this same scope simply replaces it.
func (e *Environment) Define(name string, value interface{}) {
	e.Variables[name] = value
}

// Get resolves name by walking outward through enclosing scopes.
func (e *Environment) Get(name string) (interface{}, bool) {
	if value, ok := e.Variables[name]; ok {
		return value, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign updates an existing binding in the scope where it was defined.
// It does not create a new binding: assigning to an undeclared name fails.
func (e *Environment) Assign(name string, value interface{}) bool {
	if _, ok := e.Variables[name]; ok {
		e.Variables[name] = value
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return false
}

// Names returns every identifier visible from this scope, innermost
// bindings first, for building "did you mean" suggestions.
func (e *Environment) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for env := e; env != nil; env = env.Parent {
		for name := range env.Variables {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
