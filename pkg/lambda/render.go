package lambda

import "strings"

// Render writes t with generated names mapped back to the names they
// replaced: λx.x for abstractions and (f y) for applications.
func (e *Evaluator) Render(t Term) string {
	var sb strings.Builder
	render(&sb, t, e.registry.Lookup, "λ")
	return sb.String()
}

// RenderASCII is Render with a backslash in place of λ.
func (e *Evaluator) RenderASCII(t Term) string {
	var sb strings.Builder
	render(&sb, t, e.registry.Lookup, `\`)
	return sb.String()
}

func Render(t Term) string {
	return Default.Render(t)
}

func render(sb *strings.Builder, t Term, lookup func(string) string, lambda string) {
	switch x := t.(type) {
	case Var:
		sb.WriteString(lookup(x.Name))
	case Abs:
		sb.WriteString(lambda)
		sb.WriteString(lookup(x.Param.Name))
		sb.WriteByte('.')
		render(sb, x.Body, lookup, lambda)
	case App:
		sb.WriteByte('(')
		render(sb, x.Fun, lookup, lambda)
		sb.WriteByte(' ')
		render(sb, x.Arg, lookup, lambda)
		sb.WriteByte(')')
	default:
		panic(unknownTerm(t))
	}
}
