package lambda

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

var lambdaDebug = os.Getenv("LAMCALC_DEBUG") != ""

// Config controls an Evaluator.
type Config struct {
	// MaxSteps bounds the beta steps of each top-level call. Zero means
	// unlimited, in which case a term without a normal form never returns.
	MaxSteps uint64
}

// Evaluator reduces terms. It owns the naming context (registry and
// fresh-name generator) used for capture-avoiding substitution, plus
// statistics and an optional trace.
type Evaluator struct {
	config   Config
	registry *Registry
	gen      *Generator

	statBeta   uint64
	statSubst  uint64
	statRename uint64
	statStuck  uint64

	traceBuf []TraceEvent
	traceCap uint64
	traceIdx uint64
	traceOn  uint32
}

// Default is the process-wide evaluator behind the package-level functions
// and the String methods of terms.
var Default = NewEvaluator(Config{})

func NewEvaluator(cfg Config) *Evaluator {
	registry := NewRegistry()
	return &Evaluator{
		config:   cfg,
		registry: registry,
		gen:      NewGenerator(registry),
	}
}

func (e *Evaluator) Config() Config        { return e.config }
func (e *Evaluator) Registry() *Registry   { return e.registry }
func (e *Evaluator) Generator() *Generator { return e.gen }

// Reset clears the naming context, statistics and trace buffer.
func (e *Evaluator) Reset() {
	e.registry.Reset()
	e.gen.Reset()
	atomic.StoreUint64(&e.statBeta, 0)
	atomic.StoreUint64(&e.statSubst, 0)
	atomic.StoreUint64(&e.statRename, 0)
	atomic.StoreUint64(&e.statStuck, 0)
	atomic.StoreUint64(&e.traceIdx, 0)
}

// Fresh returns a new variable standing in for v.
func (e *Evaluator) Fresh(v Var) Var {
	u := e.gen.Fresh(v)
	atomic.AddUint64(&e.statRename, 1)
	e.recordTrace(RuleRename, v, u)
	if lambdaDebug {
		log.Printf("lambda: rename %s -> %s", v.Name, u.Name)
	}
	return u
}

// Substitute replaces the free occurrences of target in t by repl.
//
// Every abstraction crossed gets its parameter renamed to a fresh variable
// first, whether or not a capture would happen.
func (e *Evaluator) Substitute(t Term, target Var, repl Term) Term {
	switch x := t.(type) {
	case Var:
		if x == target {
			atomic.AddUint64(&e.statSubst, 1)
			return repl
		}
		return x
	case Abs:
		u := e.Fresh(x.Param)
		body := e.Substitute(x.Body, x.Param, u)
		return Abs{Param: u, Body: e.Substitute(body, target, repl)}
	case App:
		return App{
			Fun: e.Substitute(x.Fun, target, repl),
			Arg: e.Substitute(x.Arg, target, repl),
		}
	default:
		panic(unknownTerm(t))
	}
}

// BetaReduce applies t to arg. An abstraction fires; an application is
// evaluated further in function position; a variable is returned as is.
func (e *Evaluator) BetaReduce(t, arg Term) (Term, error) {
	return e.run(e.config.MaxSteps).beta(t, arg)
}

// Simplify normalizes t. Both sides of an application are simplified
// before the head redex fires, and the result of firing is simplified
// again, so reduction continues under abstractions.
func (e *Evaluator) Simplify(t Term) (Term, error) {
	return e.run(e.config.MaxSteps).simplify(t)
}

// Evaluate returns variables and abstractions unchanged and simplifies
// applications.
func (e *Evaluator) Evaluate(t Term) (Term, error) {
	return e.run(e.config.MaxSteps).evaluate(t)
}

// Apply evaluates fun applied to arg.
func (e *Evaluator) Apply(fun, arg Term) (Term, error) {
	return e.Evaluate(App{Fun: fun, Arg: arg})
}

// ApplyAll applies fun to each argument in turn, evaluating after every
// application.
func (e *Evaluator) ApplyAll(fun Term, args ...Term) (Term, error) {
	res := fun
	for _, arg := range args {
		var err error
		if res, err = e.Apply(res, arg); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// reduction carries the step budget of one top-level call.
type reduction struct {
	e     *Evaluator
	limit uint64
	steps uint64
}

func (e *Evaluator) run(limit uint64) *reduction {
	return &reduction{e: e, limit: limit}
}

func (r *reduction) evaluate(t Term) (Term, error) {
	switch x := t.(type) {
	case Var, Abs:
		return x, nil
	case App:
		return r.simplify(x)
	default:
		panic(unknownTerm(t))
	}
}

func (r *reduction) simplify(t Term) (Term, error) {
	switch x := t.(type) {
	case Var:
		return x, nil
	case Abs:
		body, err := r.simplify(x.Body)
		if err != nil {
			return nil, err
		}
		return Abs{Param: x.Param, Body: body}, nil
	case App:
		fun, err := r.simplify(x.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := r.simplify(x.Arg)
		if err != nil {
			return nil, err
		}
		switch f := fun.(type) {
		case Abs:
			return r.beta(f, arg)
		case Var, App:
			atomic.AddUint64(&r.e.statStuck, 1)
			return App{Fun: f, Arg: arg}, nil
		default:
			panic(unknownTerm(fun))
		}
	default:
		panic(unknownTerm(t))
	}
}

func (r *reduction) beta(t, arg Term) (Term, error) {
	switch f := t.(type) {
	case Var:
		return f, nil
	case Abs:
		if r.limit > 0 && r.steps >= r.limit {
			return nil, &BudgetError{Limit: r.limit, Term: App{Fun: f, Arg: arg}}
		}
		r.steps++
		sa, err := r.simplify(arg)
		if err != nil {
			return nil, err
		}
		atomic.AddUint64(&r.e.statBeta, 1)
		r.e.recordTrace(RuleBeta, f.Param, sa)
		if lambdaDebug {
			log.Printf("lambda: beta %s <- %s", f.Param.Name, r.e.Render(sa))
		}
		return r.simplify(r.e.Substitute(f.Body, f.Param, sa))
	case App:
		return r.evaluate(App{Fun: f, Arg: arg})
	default:
		panic(unknownTerm(t))
	}
}

func unknownTerm(t Term) string {
	return fmt.Sprintf("lambda: unknown term %T", t)
}

// The package-level operations run on Default without a step budget.

func Substitute(t Term, target Var, repl Term) Term {
	return Default.Substitute(t, target, repl)
}

func BetaReduce(t, arg Term) Term {
	res, _ := Default.run(0).beta(t, arg)
	return res
}

func Simplify(t Term) Term {
	res, _ := Default.run(0).simplify(t)
	return res
}

func Evaluate(t Term) Term {
	res, _ := Default.run(0).evaluate(t)
	return res
}

func Apply(fun, arg Term) Term {
	return Evaluate(App{Fun: fun, Arg: arg})
}

func ApplyAll(fun Term, args ...Term) Term {
	for _, arg := range args {
		fun = Apply(fun, arg)
	}
	return fun
}
