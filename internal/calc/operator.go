package calc

import "math"

// Operator is a pending arithmetic operation.
type Operator int

const (
	// OpNone means no operation is in flight. Computing with it yields the
	// right-hand operand unchanged.
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// Compute applies op to a and b. Division by zero yields NaN.
func Compute(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	default:
		return b
	}
}
