package core

import "fmt"

// InvariantViolation reports a board mutation that would break a structural
// rule, such as two pieces sharing a cell. It signals a programming error.
type InvariantViolation struct {
	Op     string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("mirrorb: %s: invariant violated: %s", e.Op, e.Detail)
}

func violation(op, format string, args ...any) error {
	return &InvariantViolation{Op: op, Detail: fmt.Sprintf(format, args...)}
}
