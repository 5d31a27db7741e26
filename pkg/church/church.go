// Package church defines Church encodings of booleans, natural numbers
// and pairs, along with the usual operators over them, as plain lambda
// terms. Nothing here reduces at construction time.
package church

import (
	"strings"

	"github.com/vic/lamcalc/pkg/lambda"
)

func v(name string) lambda.Var {
	return lambda.NewVar(name)
}

func lam(params string, body lambda.Term) lambda.Term {
	return lambda.Lam(strings.Fields(params), body)
}

func app(fun lambda.Term, args ...lambda.Term) lambda.Term {
	return lambda.AppN(fun, args...)
}

// Combinators.
var (
	I = lam("x", v("x"))
	K = lam("x y", v("x"))
	S = lam("x y z", app(app(v("x"), v("z")), app(v("y"), v("z"))))

	// Omega has no normal form.
	Omega = app(lam("x", app(v("x"), v("x"))), lam("x", app(v("x"), v("x"))))
	// Y is the fixed-point combinator. Simplifying it does not terminate.
	Y = lam("f", app(
		lam("x", app(v("f"), app(v("x"), v("x")))),
		lam("x", app(v("f"), app(v("x"), v("x")))),
	))
)

// Booleans.
var (
	True  = lam("x y", v("x"))
	False = lam("x y", v("y"))
	Not   = lam("b", app(v("b"), False, True))
	And   = lam("p q", app(v("p"), v("q"), v("p")))
	Or    = lam("p q", app(v("p"), v("p"), v("q")))
)

// Numerals and arithmetic.
var (
	Zero  = Numeral(0)
	One   = Numeral(1)
	Two   = Numeral(2)
	Three = Numeral(3)
	Four  = Numeral(4)
	Five  = Numeral(5)

	Succ   = lam("n f x", app(v("f"), app(v("n"), v("f"), v("x"))))
	Plus   = lam("m n f x", app(v("m"), v("f"), app(v("n"), v("f"), v("x"))))
	Mult   = lam("m n f", app(v("m"), app(v("n"), v("f"))))
	Pow    = lam("b e", app(v("e"), v("b")))
	IsZero = lam("n", app(v("n"), lam("x", False), True))
)

// Pairs and the predecessor built from them.
var (
	Pair = lam("x y f", app(v("f"), v("x"), v("y")))
	Fst  = lam("p", app(v("p"), True))
	Snd  = lam("p", app(v("p"), False))

	// Phi maps (a, b) to (b, b+1).
	Phi = lam("p", app(Pair, app(Snd, v("p")), app(Succ, app(Snd, v("p")))))
	// Pred takes the first component of n applications of Phi to (0, 0),
	// so Pred Zero is Zero.
	Pred = lam("n", app(Fst, app(v("n"), Phi, app(Pair, Zero, Zero))))
	// Sub is truncated subtraction: Sub m n is Zero when n >= m.
	Sub = lam("m n", app(v("n"), Pred, v("m")))
)

// Numeral returns λf.λx.f (f ... (f x)) with n applications of f.
func Numeral(n int) lambda.Term {
	var body lambda.Term = v("x")
	for i := 0; i < n; i++ {
		body = lambda.NewApp(v("f"), body)
	}
	return lam("f x", body)
}

// ToInt decodes a numeral in normal form. ok is false when t does not have
// the shape λf.λx.f (... (f x)).
func ToInt(t lambda.Term) (n int, ok bool) {
	outer, ok := t.(lambda.Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(lambda.Abs)
	if !ok || inner.Param == outer.Param {
		return 0, false
	}
	body := inner.Body
	for {
		switch x := body.(type) {
		case lambda.Var:
			return n, x == inner.Param
		case lambda.App:
			if f, ok := x.Fun.(lambda.Var); !ok || f != outer.Param {
				return 0, false
			}
			n++
			body = x.Arg
		default:
			return 0, false
		}
	}
}

// ToBool decodes True and False up to renaming of bound variables.
// Zero and False are the same term, so Zero decodes as false.
func ToBool(t lambda.Term) (b bool, ok bool) {
	switch {
	case lambda.AlphaEqual(t, True):
		return true, true
	case lambda.AlphaEqual(t, False):
		return false, true
	default:
		return false, false
	}
}
