package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/mython/internal/eval"
	"github.com/opal-lang/mython/internal/object"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := New([]byte(src)).ParseProgram()
	require.NoError(t, err)

	var buf bytes.Buffer
	ctx := eval.NewContext(&buf, 1000, false)
	closure := object.NewClosure()
	_, _, err = prog.Evaluate(closure, ctx)
	return buf.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, "x = 1 + 2\nprint x\n")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestOperatorPrecedence(t *testing.T) {
	out, err := run(t, "print 2 + 3 * 4\n")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	out, err := run(t, "print (2 + 3) * 4\n")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)
}

func TestUnaryMinusDesugarsToSubtraction(t *testing.T) {
	out, err := run(t, "x = 5\nprint -x + 1\n")
	require.NoError(t, err)
	assert.Equal(t, "-4\n", out)
}

func TestComparisonAndLogic(t *testing.T) {
	out, err := run(t, "print 1 < 2 and not False\n")
	require.NoError(t, err)
	assert.Equal(t, "True\n", out)
}

func TestIfElse(t *testing.T) {
	src := "x = 5\nif x > 3:\n  print \"big\"\nelse:\n  print \"small\"\n"
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "big\n", out)
}

func TestClassWithInheritanceAndMethodCall(t *testing.T) {
	src := "" +
		"class Animal:\n" +
		"  def __init__(name):\n" +
		"    self.name = name\n" +
		"  def speak():\n" +
		"    return \"...\"\n" +
		"\n" +
		"class Dog(Animal):\n" +
		"  def speak():\n" +
		"    return self.name\n" +
		"\n" +
		"d = Dog(\"Rex\")\n" +
		"print d.speak()\n"
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "Rex\n", out)
}

func TestStrBuiltinConvertsToString(t *testing.T) {
	out, err := run(t, "print str(1 + 2) + \"!\"\n")
	require.NoError(t, err)
	assert.Equal(t, "3!\n", out)
}

func TestUnknownClassIsParseError(t *testing.T) {
	_, err := New([]byte("x = Ghost()\n")).ParseProgram()
	require.Error(t, err)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "print 1 / 0\n")
	require.Error(t, err)
	rerr, ok := err.(*eval.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, eval.KindArithmetic, rerr.Kind)
}

func TestReturnFromNestedIf(t *testing.T) {
	src := "" +
		"class C:\n" +
		"  def f(x):\n" +
		"    if x > 0:\n" +
		"      return 1\n" +
		"    return 0\n" +
		"\n" +
		"c = C()\n" +
		"print c.f(5)\n" +
		"print c.f(-5)\n"
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n", out)
}

func TestFieldAssignmentThroughDottedPath(t *testing.T) {
	src := "" +
		"class Box:\n" +
		"  def __init__():\n" +
		"    self.value = 0\n" +
		"\n" +
		"b = Box()\n" +
		"b.value = 42\n" +
		"print b.value\n"
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestTrailingGarbageAfterMissingColonIsParseError(t *testing.T) {
	_, err := New([]byte("if True\n  print 1\n")).ParseProgram()
	require.Error(t, err)
}

func TestMethodDeclaringSelfIsParseError(t *testing.T) {
	src := "class C:\n  def f(self, x):\n    return x\n"
	_, err := New([]byte(src)).ParseProgram()
	require.Error(t, err)
}
