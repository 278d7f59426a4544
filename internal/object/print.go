package object

import (
	"fmt"
	"strconv"

	"github.com/opal-lang/mython/internal/eval"
)

// Render produces v's textual representation: a ClassInstance with a
// zero-arity __str__ defers to it; everything else uses a fixed per-Kind
// rendering, with a bare instance falling back to its identity token
// (original ClassInstance::Print's "os << this", reimplemented without
// leaking a pointer).
func Render(v Value, ctx *eval.Context) (string, error) {
	switch v.Kind {
	case KindNone:
		return "None", nil
	case KindNumber:
		return strconv.FormatInt(int64(v.Num), 10), nil
	case KindString:
		return v.Str, nil
	case KindBool:
		if v.Bool {
			return "True", nil
		}
		return "False", nil
	case KindClass:
		return "Class " + v.Class.Name, nil
	case KindInstance:
		return renderInstance(v.Instance, ctx)
	default:
		return "", fmt.Errorf("object: cannot render value of kind %s", v.Kind)
	}
}

func renderInstance(ci *ClassInstance, ctx *eval.Context) (string, error) {
	if ci.HasMethod("__str__", 0) {
		result, err := ci.Call("__str__", nil, ctx)
		if err != nil {
			return "", err
		}
		return Render(result, ctx)
	}
	return fmt.Sprintf("<%s instance %s>", ci.Class.Name, ci.identity), nil
}

// Print writes the space-joined rendering of args followed by a trailing
// newline to ctx.Out.
func Print(args []Value, ctx *eval.Context) error {
	for i, v := range args {
		if i > 0 {
			if _, err := ctx.Out.Write([]byte(" ")); err != nil {
				return err
			}
		}
		s, err := Render(v, ctx)
		if err != nil {
			return err
		}
		if _, err := ctx.Out.Write([]byte(s)); err != nil {
			return err
		}
	}
	_, err := ctx.Out.Write([]byte("\n"))
	return err
}
