package term

import (
	"fmt"

	"github.com/glossopoeia/pts/kernel/level"
)

// Terms of the calculus. Types are terms too: a type is any term that is
// classified by a universe. There are exactly five shapes of term, and the
// set is closed; every algorithm over terms is a type switch on these five
// variants. Terms are immutable, so subterms may be shared by any number of
// parents.
type Term interface {
	fmt.Stringer
	// The variant of the term, used for error reporting.
	Shape() Shape
	// Helper method to construct the free set of variables efficiently
	// for each term variant.
	freeAcc(map[Token]int)
}

// The universe at the given level. Universe(i) is classified by Universe(i+1).
type Universe struct {
	Level level.Level
}

func NewUniverse(l level.Level) Term {
	return Universe{l}
}

func (Universe) Shape() Shape { return ShapeUniverse }

func (t Universe) String() string {
	return fmt.Sprintf("U%s", t.Level)
}

func (Universe) freeAcc(acc map[Token]int) {}

// An occurrence of a variable bound by some enclosing binder or by a context.
type Var struct {
	Name Token
}

func NewVar(name Token) Term {
	return Var{name}
}

func (Var) Shape() Shape { return ShapeVar }

func (t Var) String() string {
	return t.Name.String()
}

func (t Var) freeAcc(acc map[Token]int) {
	if occ, ok := acc[t.Name]; ok {
		acc[t.Name] = occ + 1
	} else {
		acc[t.Name] = 1
	}
}

// Application of a function term to an argument term.
type App struct {
	Fn  Term
	Arg Term
}

func NewApp(fn Term, arg Term) Term {
	return App{fn, arg}
}

func (App) Shape() Shape { return ShapeApp }

func (t App) String() string {
	fn := t.Fn.String()
	switch t.Fn.(type) {
	case Abs, Pi:
		fn = "(" + fn + ")"
	}
	arg := t.Arg.String()
	switch t.Arg.(type) {
	case App, Abs, Pi:
		arg = "(" + arg + ")"
	}
	return fmt.Sprintf("%s %s", fn, arg)
}

func (t App) freeAcc(acc map[Token]int) {
	t.Fn.freeAcc(acc)
	t.Arg.freeAcc(acc)
}

// A function introduction: Body may mention Name, which ranges over ParamType.
type Abs struct {
	Name      Token
	ParamType Term
	Body      Term
}

func NewAbs(name Token, paramType Term, body Term) Term {
	return Abs{name, paramType, body}
}

func (Abs) Shape() Shape { return ShapeAbs }

func (t Abs) String() string {
	return fmt.Sprintf("λ(%s : %s). %s", t.Name, t.ParamType, t.Body)
}

func (t Abs) freeAcc(acc map[Token]int) {
	t.ParamType.freeAcc(acc)
	bindAcc(acc, t.Name, t.Body)
}

// The dependent function type classifying an Abs with the same bound name and
// parameter type. ReturnType may mention Name. When it does not, the type is
// an ordinary function arrow.
type Pi struct {
	Name       Token
	ParamType  Term
	ReturnType Term
}

func NewPi(name Token, paramType Term, returnType Term) Term {
	return Pi{name, paramType, returnType}
}

func (Pi) Shape() Shape { return ShapePi }

func (t Pi) String() string {
	if Occurs(t.Name, t.ReturnType) {
		return fmt.Sprintf("Π(%s : %s). %s", t.Name, t.ParamType, t.ReturnType)
	}
	switch t.ParamType.(type) {
	case Abs, Pi:
		return fmt.Sprintf("(%s) → %s", t.ParamType, t.ReturnType)
	default:
		return fmt.Sprintf("%s → %s", t.ParamType, t.ReturnType)
	}
}

func (t Pi) freeAcc(acc map[Token]int) {
	t.ParamType.freeAcc(acc)
	bindAcc(acc, t.Name, t.ReturnType)
}

func bindAcc(acc map[Token]int, name Token, scope Term) {
	inner := Free(scope)
	delete(inner, name)
	for v, occ := range inner {
		acc[v] += occ
	}
}

// The number of occurrences of each distinct free variable in the term.
func Free(t Term) map[Token]int {
	occ := make(map[Token]int)
	t.freeAcc(occ)
	return occ
}

// Whether the variable occurs free anywhere in the term.
func Occurs(name Token, t Term) bool {
	_, ok := Free(t)[name]
	return ok
}
