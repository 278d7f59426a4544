package ast

import (
	"strings"

	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
	"github.com/opal-lang/mython/internal/token"
)

// Print has two shapes: a bare-name form used internally,
// which prints a single named variable only if it is bound and truthy,
// and the general form, which evaluates a list of argument expressions
// and prints their renderings space-joined. Both always return None.
type Print struct {
	Position token.Position
	BareName string // non-empty selects the bare-name form
	Args     []Node
}

func NewPrintVariable(pos token.Position, name string) *Print {
	return &Print{Position: pos, BareName: name}
}

func NewPrint(pos token.Position, args ...Node) *Print {
	return &Print{Position: pos, Args: args}
}

func (p *Print) Pos() token.Position { return p.Position }

func (p *Print) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	if p.BareName != "" {
		v, ok := closure.Get(p.BareName)
		if ok && object.IsTrue(v) {
			if err := object.Print([]object.Value{v}, ctx); err != nil {
				return object.None, eval.SignalNone, err
			}
		}
		return object.None, eval.SignalNone, nil
	}

	values := make([]object.Value, 0, len(p.Args))
	for _, arg := range p.Args {
		v, sig, err := arg.Evaluate(closure, ctx)
		if err != nil || sig == eval.SignalReturn {
			return object.None, sig, err
		}
		values = append(values, v)
	}
	if err := object.Print(values, ctx); err != nil {
		return object.None, eval.SignalNone, err
	}
	return object.None, eval.SignalNone, nil
}

func (p *Print) String() string {
	if p.BareName != "" {
		return "print " + p.BareName
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return "print " + strings.Join(parts, ", ")
}

// Stringify renders a single Value as Print would, but returns it as a
// fresh String Value instead of writing it out.
type Stringify struct {
	Position token.Position
	Arg      Node
}

func (s *Stringify) Pos() token.Position { return s.Position }

func (s *Stringify) Evaluate(closure *object.Closure, ctx *eval.Context) (object.Value, eval.Signal, error) {
	v, sig, err := s.Arg.Evaluate(closure, ctx)
	if err != nil || sig == eval.SignalReturn {
		return object.None, sig, err
	}
	rendered, err := object.Render(v, ctx)
	if err != nil {
		return object.None, eval.SignalNone, err
	}
	return object.String(rendered), eval.SignalNone, nil
}

func (s *Stringify) String() string { return "str(" + s.Arg.String() + ")" }
