package formula

import "math"

type node interface {
	eval() float64
}

type numberNode struct {
	value float64
}

func (n numberNode) eval() float64 { return n.value }

type unaryNode struct {
	op      tokenKind
	operand node
}

func (n unaryNode) eval() float64 {
	v := n.operand.eval()
	if n.op == tokenMinus {
		return -v
	}
	return v
}

type binaryNode struct {
	op          tokenKind
	left, right node
}

func (n binaryNode) eval() float64 {
	l := n.left.eval()
	r := n.right.eval()
	switch n.op {
	case tokenPlus:
		return l + r
	case tokenMinus:
		return l - r
	case tokenStar:
		return l * r
	case tokenSlash:
		// IEEE semantics: x/0 is ±Inf, 0/0 is NaN. Both classify as
		// "Not defined" downstream.
		return l / r
	default:
		return math.Pow(l, r)
	}
}

type factorialNode struct {
	operand node
}

func (n factorialNode) eval() float64 {
	return factorial(n.operand.eval())
}

type callNode struct {
	fn      func(float64) float64
	operand node
}

func (n callNode) eval() float64 {
	return n.fn(n.operand.eval())
}

// functions maps formula function names to their implementations. All
// trig functions take their argument in degrees.
var functions = map[string]func(float64) float64{
	"sin":   func(x float64) float64 { return math.Sin(toRadians(x)) },
	"cos":   func(x float64) float64 { return math.Cos(toRadians(x)) },
	"tan":   func(x float64) float64 { return math.Tan(toRadians(x)) },
	"cosec": func(x float64) float64 { return 1 / math.Sin(toRadians(x)) },
	"sec":   func(x float64) float64 { return 1 / math.Cos(toRadians(x)) },
	"cot":   func(x float64) float64 { return 1 / math.Tan(toRadians(x)) },
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// factorial of anything that is not a non-negative integer is NaN.
// Arguments above 170 overflow float64 and come back as +Inf.
func factorial(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x != math.Trunc(x) {
		return math.NaN()
	}
	if x > 170 {
		return math.Inf(1)
	}
	result := 1.0
	for i := 2.0; i <= x; i++ {
		result *= i
	}
	return result
}
