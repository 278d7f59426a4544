package eval

// Signal reports whether an Evaluate call completed normally or is
// carrying a Return value that must bubble up to the nearest MethodBody.
type Signal int

const (
	// SignalNone means evaluation completed normally; the caller should
	// keep evaluating subsequent statements.
	SignalNone Signal = iota
	// SignalReturn means a Return statement fired somewhere below; the
	// accompanying Value is the return value, and every enclosing
	// Compound/IfElse must stop evaluating siblings and propagate the
	// signal unchanged until a MethodBody absorbs it.
	SignalReturn
)
