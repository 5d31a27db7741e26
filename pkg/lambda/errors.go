package lambda

import (
	"errors"
	"fmt"
)

// ErrBudgetExceeded is matched by every *BudgetError.
var ErrBudgetExceeded = errors.New("reduction budget exceeded")

// BudgetError reports that a reduction ran out of beta steps. Term is the
// redex that would have fired next.
type BudgetError struct {
	Limit uint64
	Term  Term
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("reduction budget exceeded after %d steps", e.Limit)
}

func (e *BudgetError) Is(target error) bool {
	return target == ErrBudgetExceeded
}
