package cmd

import (
	"github.com/glossopoeia/pts/derive"
	"github.com/glossopoeia/pts/kernel"
	"github.com/glossopoeia/pts/kernel/beta"
	"github.com/glossopoeia/pts/kernel/level"
)

type derivation struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	build   func(d *derive.Deriver, l level.Level) (kernel.Judgement, error)
}

// Types are postulated in the universe given by --level.
var derivations = []derivation{
	{"universe", "the universe at the given level", deriveUniverse},
	{"lift", "a universe lifted one level higher", deriveLift},
	{"unit", "the unit type, postulated in U0", deriveUnit},
	{"arrow", "the function type between two postulated types", deriveArrow},
	{"identity-type", "the type of endofunctions on a postulated type", deriveIdentityType},
	{"identity", "the identity function on a postulated type", deriveIdentity},
	{"compose", "composition of two postulated functions", deriveCompose},
	{"apply-identity", "the identity function applied to a postulated element", deriveApplyIdentity},
	{"convert", "an element retyped along a beta reduction", deriveConvert},
}

func deriveUniverse(_ *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	return kernel.UniverseHierarchy(l), nil
}

func deriveLift(_ *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	return kernel.LiftUniverse(kernel.UniverseHierarchy(l))
}

func deriveUnit(d *derive.Deriver, _ level.Level) (kernel.Judgement, error) {
	return d.Unit()
}

func deriveArrow(d *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	u := kernel.UniverseHierarchy(l)
	a, w, err := d.Assume("A", u, u)
	if err != nil {
		return kernel.Judgement{}, err
	}
	b, w, err := d.Assume("B", w[0], a)
	if err != nil {
		return kernel.Judgement{}, err
	}
	return d.Arrow(w[0], b)
}

func deriveIdentityType(d *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	a, err := d.Postulate("A", kernel.UniverseHierarchy(l))
	if err != nil {
		return kernel.Judgement{}, err
	}
	return d.IdentityType(a)
}

func deriveIdentity(d *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	a, err := d.Postulate("A", kernel.UniverseHierarchy(l))
	if err != nil {
		return kernel.Judgement{}, err
	}
	return d.Identity(a)
}

func deriveCompose(d *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	u := kernel.UniverseHierarchy(l)
	a, w, err := d.Assume("A", u, u)
	if err != nil {
		return kernel.Judgement{}, err
	}
	b, w, err := d.Assume("B", w[0], a, w[0])
	if err != nil {
		return kernel.Judgement{}, err
	}
	c, w, err := d.Assume("C", w[1], w[0], b)
	if err != nil {
		return kernel.Judgement{}, err
	}
	a, b = w[0], w[1]

	bc, err := d.Arrow(b, c)
	if err != nil {
		return kernel.Judgement{}, err
	}
	f, w, err := d.Assume("f", bc, a, b, c)
	if err != nil {
		return kernel.Judgement{}, err
	}
	a, b, c = w[0], w[1], w[2]

	ab, err := d.Arrow(a, b)
	if err != nil {
		return kernel.Judgement{}, err
	}
	g, w, err := d.Assume("g", ab, a, c, f)
	if err != nil {
		return kernel.Judgement{}, err
	}
	return d.Compose(w[0], w[1], w[2], g)
}

func deriveApplyIdentity(d *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	a, err := d.Postulate("A", kernel.UniverseHierarchy(l))
	if err != nil {
		return kernel.Judgement{}, err
	}
	e, w, err := d.Assume("e", a, a)
	if err != nil {
		return kernel.Judgement{}, err
	}
	return d.ApplyIdentity(w[0], e)
}

// e : (λ(x : U). x) A, retyped as e : A.
func deriveConvert(d *derive.Deriver, l level.Level) (kernel.Judgement, error) {
	u := kernel.UniverseHierarchy(l)
	typeID, err := d.Identity(u)
	if err != nil {
		return kernel.Judgement{}, err
	}
	a, w, err := d.Assume("A", u, typeID)
	if err != nil {
		return kernel.Judgement{}, err
	}
	redex, err := kernel.Apply(w[0], a)
	if err != nil {
		return kernel.Judgement{}, err
	}
	e, w, err := d.Assume("e", redex, a)
	if err != nil {
		return kernel.Judgement{}, err
	}
	return d.Reduce(w[0], beta.Application, e)
}
