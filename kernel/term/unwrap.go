package term

import (
	"errors"
	"fmt"

	"github.com/glossopoeia/pts/kernel/level"
)

// Reported when a term was expected to have one shape but has another.
type ShapeError struct {
	Expected Shape
	Actual   Term
}

func (e *ShapeError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("term: expected %s but found no term", e.Expected)
	}
	return fmt.Sprintf("term: expected %s but found %s %s", e.Expected, e.Actual.Shape(), e.Actual)
}

// Whether err is, or wraps, a ShapeError.
func IsShapeMismatch(err error) bool {
	var se *ShapeError
	return errors.As(err, &se)
}

func UnwrapUniverse(t Term) (level.Level, error) {
	if u, ok := t.(Universe); ok {
		return u.Level, nil
	}
	return nil, &ShapeError{ShapeUniverse, t}
}

func UnwrapVar(t Term) (Token, error) {
	if v, ok := t.(Var); ok {
		return v.Name, nil
	}
	return Token{}, &ShapeError{ShapeVar, t}
}

func UnwrapApp(t Term) (App, error) {
	if a, ok := t.(App); ok {
		return a, nil
	}
	return App{}, &ShapeError{ShapeApp, t}
}

func UnwrapAbs(t Term) (Abs, error) {
	if a, ok := t.(Abs); ok {
		return a, nil
	}
	return Abs{}, &ShapeError{ShapeAbs, t}
}

func UnwrapPi(t Term) (Pi, error) {
	if p, ok := t.(Pi); ok {
		return p, nil
	}
	return Pi{}, &ShapeError{ShapePi, t}
}
