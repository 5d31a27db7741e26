package lambda

// Term represents a lambda calculus term.
// The only implementations are Var, Abs and App.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (Var) term() {}

func (v Var) String() string {
	return Default.Render(v)
}

// Abs represents an abstraction (lambda) binding Param within Body.
type Abs struct {
	Param Var
	Body  Term
}

func (Abs) term() {}

func (a Abs) String() string {
	return Default.Render(a)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) term() {}

func (a App) String() string {
	return Default.Render(a)
}

func NewVar(name string) Var {
	return Var{Name: name}
}

func NewAbs(param Var, body Term) Abs {
	return Abs{Param: param, Body: body}
}

func NewApp(fun, arg Term) App {
	return App{Fun: fun, Arg: arg}
}

// Lam nests one abstraction per parameter, outermost first:
// Lam([]string{"f", "x"}, b) is λf.λx.b.
func Lam(params []string, body Term) Term {
	for i := len(params) - 1; i >= 0; i-- {
		body = Abs{Param: Var{Name: params[i]}, Body: body}
	}
	return body
}

// AppN builds the left-associated application ((fun a0) a1)... without
// reducing it.
func AppN(fun Term, args ...Term) Term {
	for _, arg := range args {
		fun = App{Fun: fun, Arg: arg}
	}
	return fun
}

// Equal reports whether a and b are the same variant with structurally
// equal fields.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Abs:
		y, ok := b.(Abs)
		return ok && x.Param == y.Param && Equal(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	default:
		return false
	}
}

// AlphaEqual reports whether a and b are equal up to consistent renaming
// of bound variables. Free variables must match by name.
func AlphaEqual(a, b Term) bool {
	return alphaEqual(a, b, nil, nil)
}

// left and right hold the binders in scope, innermost last.
func alphaEqual(a, b Term, left, right []string) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		if !ok {
			return false
		}
		i, j := binderIndex(left, x.Name), binderIndex(right, y.Name)
		if i < 0 && j < 0 {
			return x.Name == y.Name
		}
		return i == j
	case Abs:
		y, ok := b.(Abs)
		if !ok {
			return false
		}
		return alphaEqual(x.Body, y.Body, append(left, x.Param.Name), append(right, y.Param.Name))
	case App:
		y, ok := b.(App)
		return ok && alphaEqual(x.Fun, y.Fun, left, right) && alphaEqual(x.Arg, y.Arg, left, right)
	default:
		return false
	}
}

// binderIndex returns the de Bruijn index of name in scope, or -1 if free.
func binderIndex(scope []string, name string) int {
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i] == name {
			return len(scope) - 1 - i
		}
	}
	return -1
}
