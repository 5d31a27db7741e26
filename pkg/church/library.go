package church

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vic/lamcalc/pkg/lambda"
)

// MaxNumeral bounds the numerals ParseArg will build.
const MaxNumeral = 1 << 12

var library = map[string]lambda.Term{
	"I":      I,
	"K":      K,
	"S":      S,
	"omega":  Omega,
	"Y":      Y,
	"true":   True,
	"false":  False,
	"not":    Not,
	"and":    And,
	"or":     Or,
	"zero":   Zero,
	"one":    One,
	"two":    Two,
	"three":  Three,
	"four":   Four,
	"five":   Five,
	"succ":   Succ,
	"plus":   Plus,
	"mult":   Mult,
	"pow":    Pow,
	"iszero": IsZero,
	"pair":   Pair,
	"fst":    Fst,
	"snd":    Snd,
	"phi":    Phi,
	"pred":   Pred,
	"sub":    Sub,
}

// UnknownNameError is returned by Lookup for names outside the library.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown combinator %q", e.Name)
}

func Lookup(name string) (lambda.Term, error) {
	t, ok := library[name]
	if !ok {
		return nil, &UnknownNameError{Name: name}
	}
	return t, nil
}

// Names returns the library names in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseArg resolves a command-line word: a decimal number becomes its
// numeral, anything else is looked up in the library.
func ParseArg(word string) (lambda.Term, error) {
	n, err := strconv.Atoi(word)
	if err != nil {
		return Lookup(word)
	}
	if n < 0 || n > MaxNumeral {
		return nil, fmt.Errorf("numeral %d out of range [0, %d]", n, MaxNumeral)
	}
	return Numeral(n), nil
}
