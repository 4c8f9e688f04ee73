// Package derive builds common judgements out of the kernel rules: postulated
// types and elements, function types, the identity function and function
// composition. Nothing here is trusted; every judgement is produced by a
// chain of kernel rule applications, so a bug in this package can make a
// derivation fail but can never make the kernel accept an ill-typed term.
package derive

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/glossopoeia/pts/kernel"
	"github.com/glossopoeia/pts/kernel/beta"
	"github.com/glossopoeia/pts/kernel/level"
	"github.com/glossopoeia/pts/kernel/term"
)

const opArrow = "arrow"

// Runs derivations, logging every kernel rule application at debug level.
type Deriver struct {
	logger *slog.Logger
}

// A nil logger discards all output.
func New(logger *slog.Logger) *Deriver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Deriver{logger}
}

// Log the outcome of one rule application, passing it through unchanged.
func (d *Deriver) step(rule string) func(kernel.Judgement, error) (kernel.Judgement, error) {
	return func(j kernel.Judgement, err error) (kernel.Judgement, error) {
		if err != nil {
			d.logger.Debug("rule failed", "rule", rule, "err", err)
			return kernel.Judgement{}, err
		}
		d.logger.Debug("rule applied", "rule", rule, "judgement", j.String())
		return j, nil
	}
}

// Introduce a fresh variable named name whose type is the type judged by typ.
//
//	Γ ⊢ A : s
//	--------------------
//	Γ, name : A ⊢ name : A
func (d *Deriver) Postulate(name string, typ kernel.Judgement) (kernel.Judgement, error) {
	return d.step(kernel.RuleIntroduceVariable)(kernel.IntroduceVariable(term.NewToken(name), typ))
}

// Postulate a variable, and weaken every judgement in others by it so they
// can be combined with the new variable. The others must share typ's context.
func (d *Deriver) Assume(name string, typ kernel.Judgement, others ...kernel.Judgement) (kernel.Judgement, []kernel.Judgement, error) {
	v, weakened, err := d.assumeToken(term.NewToken(name), typ, others...)
	if err != nil {
		return kernel.Judgement{}, nil, fmt.Errorf("derive: assume %s: %w", name, err)
	}
	return v, weakened, nil
}

// The unit type, postulated in the lowest universe:
//
//	Unit : U0 ⊢ Unit : U0
func (d *Deriver) Unit() (kernel.Judgement, error) {
	return d.Postulate("Unit", kernel.UniverseHierarchy(level.NewZero()))
}

// The non-dependent function type from A to B, placed in the larger of the
// two universes:
//
//	Γ ⊢ A : U(i)        Γ ⊢ B : U(j)
//	--------------------------------
//	  Γ ⊢ A → B : U(max(i, j))
func (d *Deriver) Arrow(from kernel.Judgement, to kernel.Judgement) (kernel.Judgement, error) {
	fromLevel, err := sortLevel(opArrow, from)
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: arrow: %w", err)
	}
	toLevel, err := sortLevel(opArrow, to)
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: arrow: %w", err)
	}

	x := term.NewToken("x")
	body, err := d.step(kernel.RuleWeaken)(kernel.Weaken(x, from, to))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: arrow: %w", err)
	}
	arrow, err := d.step(kernel.RuleFormPi)(kernel.FormPi(x, from, body))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: arrow: %w", err)
	}

	target := level.Max(fromLevel, toLevel)
	for cur := toLevel; !level.Equal(cur, target); cur = level.NewSucc(cur) {
		arrow, err = d.step(kernel.RuleLiftUniverse)(kernel.LiftUniverse(arrow))
		if err != nil {
			return kernel.Judgement{}, fmt.Errorf("derive: arrow: %w", err)
		}
	}
	return arrow, nil
}

// The type of endofunctions on A.
func (d *Deriver) IdentityType(typ kernel.Judgement) (kernel.Judgement, error) {
	return d.Arrow(typ, typ)
}

// The identity function on A:
//
//	   Γ ⊢ A : s
//	-----------------------
//	Γ ⊢ λ(x : A). x : A → A
func (d *Deriver) Identity(typ kernel.Judgement) (kernel.Judgement, error) {
	x := term.NewToken("x")
	v, err := d.step(kernel.RuleIntroduceVariable)(kernel.IntroduceVariable(x, typ))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: identity: %w", err)
	}
	ret, err := d.step(kernel.RuleWeaken)(kernel.Weaken(x, typ, typ))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: identity: %w", err)
	}
	id, err := d.step(kernel.RuleAbstract)(kernel.Abstract(x, typ, ret, v))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: identity: %w", err)
	}
	return id, nil
}

// The composition of f after g:
//
//	Γ ⊢ A : s1    Γ ⊢ C : s2    Γ ⊢ f : B → C    Γ ⊢ g : A → B
//	----------------------------------------------------------
//	             Γ ⊢ λ(x : A). f (g x) : A → C
//
// The judgements for A and C are needed to type the abstraction; B is fixed
// by f and g.
func (d *Deriver) Compose(from kernel.Judgement, to kernel.Judgement, f kernel.Judgement, g kernel.Judgement) (kernel.Judgement, error) {
	x := term.NewToken("x")
	v, weakened, err := d.assumeToken(x, from, to, f, g)
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: compose: %w", err)
	}
	toX, fX, gX := weakened[0], weakened[1], weakened[2]

	inner, err := d.step(kernel.RuleApply)(kernel.Apply(gX, v))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: compose: %w", err)
	}
	outer, err := d.step(kernel.RuleApply)(kernel.Apply(fX, inner))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: compose: %w", err)
	}
	composed, err := d.step(kernel.RuleAbstract)(kernel.Abstract(x, from, toX, outer))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: compose: %w", err)
	}
	return composed, nil
}

// Apply the identity function on A to an element of A:
//
//	Γ ⊢ A : s        Γ ⊢ e : A
//	--------------------------
//	Γ ⊢ (λ(x : A). x) e : A
func (d *Deriver) ApplyIdentity(typ kernel.Judgement, elem kernel.Judgement) (kernel.Judgement, error) {
	id, err := d.Identity(typ)
	if err != nil {
		return kernel.Judgement{}, err
	}
	applied, err := d.step(kernel.RuleApply)(kernel.Apply(id, elem))
	if err != nil {
		return kernel.Judgement{}, fmt.Errorf("derive: apply identity: %w", err)
	}
	return applied, nil
}

// Retype j at the type judged by target, given a beta-reduction path from
// j's type to target's subject.
func (d *Deriver) Reduce(target kernel.Judgement, path beta.Reduction, j kernel.Judgement) (kernel.Judgement, error) {
	return d.step(kernel.RuleConvert)(kernel.Convert(target, path, j))
}

func (d *Deriver) assumeToken(tok term.Token, typ kernel.Judgement, others ...kernel.Judgement) (kernel.Judgement, []kernel.Judgement, error) {
	v, err := d.step(kernel.RuleIntroduceVariable)(kernel.IntroduceVariable(tok, typ))
	if err != nil {
		return kernel.Judgement{}, nil, err
	}
	weakened := make([]kernel.Judgement, len(others))
	for i, other := range others {
		weakened[i], err = d.step(kernel.RuleWeaken)(kernel.Weaken(tok, typ, other))
		if err != nil {
			return kernel.Judgement{}, nil, err
		}
	}
	return v, weakened, nil
}

// The level of the universe a type judgement places its subject in.
func sortLevel(op string, j kernel.Judgement) (level.Level, error) {
	typ := kernel.Extract(j, func(_ term.Term, typ term.Term) term.Term { return typ })
	if typ == nil {
		return nil, &kernel.EmptyJudgementError{Rule: op}
	}
	return term.UnwrapUniverse(typ)
}
