package beta

import (
	"github.com/glossopoeia/pts/kernel/term"
)

// A reduction is a rewrite of one term into another that the caller claims is
// a beta-reduction path. Reductions never search: a path is spelled out by
// composing the single redex step with congruence lifts that descend into the
// exact subterm to be rewritten. A reduction fails when its input does not
// have the shape the path expects.
type Reduction func(term.Term) (term.Term, error)

// The empty path, rewriting nothing.
func Identity(from term.Term) (term.Term, error) {
	return from, nil
}

// The redex step:
//
//	(λ(x : A). b) c  →β  b[x := c]
func Application(from term.Term) (term.Term, error) {
	app, err := term.UnwrapApp(from)
	if err != nil {
		return nil, err
	}
	abs, err := term.UnwrapAbs(app.Fn)
	if err != nil {
		return nil, err
	}
	return term.Substitute(abs.Name, app.Arg, abs.Body), nil
}

// Sequence two reductions right to left: Compose(f, g) applies g, then f.
func Compose(f Reduction, g Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		mid, err := g(from)
		if err != nil {
			return nil, err
		}
		return f(mid)
	}
}

// Sequence any number of reductions left to right.
func Chain(steps ...Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		res := from
		for _, step := range steps {
			next, err := step(res)
			if err != nil {
				return nil, err
			}
			res = next
		}
		return res, nil
	}
}
