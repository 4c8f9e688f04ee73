package kernel

import (
	"fmt"

	"github.com/glossopoeia/pts/kernel/beta"
	"github.com/glossopoeia/pts/kernel/level"
	"github.com/glossopoeia/pts/kernel/term"
)

// The rules below are the whole trusted base. Each one re-checks its side
// conditions against the literal premises it is handed and never mutates
// them; on failure it returns the empty Judgement and an error, and the
// premises stay valid for further use.

func open(rule string, j Judgement) (*fact, error) {
	if j.fact == nil {
		return nil, &EmptyJudgementError{rule}
	}
	return j.fact, nil
}

// The level of the universe classifying the judged term, failing if the
// judged term is not a type.
func sortOf(rule string, f *fact) (level.Level, error) {
	l, err := term.UnwrapUniverse(f.typ)
	if err != nil {
		return nil, shapeError(rule, err)
	}
	return l, nil
}

//	-------------------
//	⊢ U(i) : U(succ(i))
//
// An invalid level, such as nil, gives the empty Judgement, which every other
// rule rejects.
func UniverseHierarchy(l level.Level) Judgement {
	if !level.IsValid(l) {
		return Judgement{}
	}
	return judge(NewSequent(), term.NewUniverse(l), term.NewUniverse(level.NewSucc(l)))
}

//	    Γ ⊢ A : U(i)
//	------------------
//	Γ ⊢ A : U(succ(i))
func LiftUniverse(j Judgement) (Judgement, error) {
	f, err := open(RuleLiftUniverse, j)
	if err != nil {
		return Judgement{}, err
	}
	l, err := sortOf(RuleLiftUniverse, f)
	if err != nil {
		return Judgement{}, err
	}
	return judge(j.context, f.subject, term.NewUniverse(level.NewSucc(l))), nil
}

//	Γ ⊢ A : s        x does not appear in Γ
//	---------------------------------------
//	           Γ, x : A ⊢ x : A
func IntroduceVariable(name term.Token, j Judgement) (Judgement, error) {
	f, err := open(RuleIntroduceVariable, j)
	if err != nil {
		return Judgement{}, err
	}
	if j.context.Has(name) {
		return Judgement{}, &DuplicateBinderError{RuleIntroduceVariable, name, j.context}
	}
	if _, err := sortOf(RuleIntroduceVariable, f); err != nil {
		return Judgement{}, err
	}
	return judge(j.context.With(name, f.subject), term.NewVar(name), f.subject), nil
}

//	Γ ⊢ C : s        Γ ⊢ a : A        x does not appear in Γ
//	--------------------------------------------------------
//	                    Γ, x : C ⊢ a : A
func Weaken(name term.Token, weaker Judgement, j Judgement) (Judgement, error) {
	wf, err := open(RuleWeaken, weaker)
	if err != nil {
		return Judgement{}, err
	}
	f, err := open(RuleWeaken, j)
	if err != nil {
		return Judgement{}, err
	}
	if !weaker.context.EqualKeys(j.context) {
		return Judgement{}, &ContextMismatchError{RuleWeaken, weaker.context, j.context}
	}
	if j.context.Has(name) {
		return Judgement{}, &DuplicateBinderError{RuleWeaken, name, j.context}
	}
	if _, err := sortOf(RuleWeaken, wf); err != nil {
		return Judgement{}, err
	}
	return judge(j.context.With(name, wf.subject), f.subject, f.typ), nil
}

//	Γ ⊢ f : Π(x : A). B        Γ ⊢ a : A
//	------------------------------------
//	       Γ ⊢ f a : B[x := a]
func Apply(fn Judgement, arg Judgement) (Judgement, error) {
	ff, err := open(RuleApply, fn)
	if err != nil {
		return Judgement{}, err
	}
	af, err := open(RuleApply, arg)
	if err != nil {
		return Judgement{}, err
	}
	if !fn.context.EqualKeys(arg.context) {
		return Judgement{}, &ContextMismatchError{RuleApply, fn.context, arg.context}
	}
	pi, err := term.UnwrapPi(ff.typ)
	if err != nil {
		return Judgement{}, shapeError(RuleApply, err)
	}
	if !term.EqualByDef(pi.ParamType, af.typ) {
		return Judgement{}, &TypeMismatchError{RuleApply, pi.ParamType, af.typ}
	}
	applied := term.NewApp(ff.subject, af.subject)
	return judge(fn.context, applied, term.Substitute(pi.Name, af.subject, pi.ReturnType)), nil
}

//	Γ ⊢ A : s1        Γ, x : A ⊢ B : s2
//	-----------------------------------
//	      Γ ⊢ Π(x : A). B : s2
//
// The second premise is j. The parameter type is read from j's context, and
// nameIsType must prove that very term is a type in the remaining context.
func FormPi(name term.Token, nameIsType Judgement, j Judgement) (Judgement, error) {
	tf, err := open(RuleFormPi, nameIsType)
	if err != nil {
		return Judgement{}, err
	}
	f, err := open(RuleFormPi, j)
	if err != nil {
		return Judgement{}, err
	}
	rest := j.context.Deleted(name)
	if !nameIsType.context.EqualKeys(rest) {
		return Judgement{}, &ContextMismatchError{RuleFormPi, nameIsType.context, rest}
	}
	paramType, ok := j.context.Lookup(name)
	if !ok {
		return Judgement{}, &UnboundBinderError{RuleFormPi, name, j.context}
	}
	if _, err := sortOf(RuleFormPi, tf); err != nil {
		return Judgement{}, err
	}
	if !term.EqualByDef(tf.subject, paramType) {
		return Judgement{}, &TypeMismatchError{RuleFormPi, paramType, tf.subject}
	}
	if _, err := sortOf(RuleFormPi, f); err != nil {
		return Judgement{}, err
	}
	return judge(rest, term.NewPi(name, paramType, f.subject), f.typ), nil
}

//	Γ ⊢ A : s1        Γ, x : A ⊢ B : s2        Γ, x : A ⊢ b : B
//	-----------------------------------------------------------
//	            Γ ⊢ λ(x : A). b : Π(x : A). B
func Abstract(name term.Token, paramIsType Judgement, returnIsType Judgement, j Judgement) (Judgement, error) {
	af, err := open(RuleAbstract, paramIsType)
	if err != nil {
		return Judgement{}, err
	}
	bf, err := open(RuleAbstract, returnIsType)
	if err != nil {
		return Judgement{}, err
	}
	f, err := open(RuleAbstract, j)
	if err != nil {
		return Judgement{}, err
	}
	if rest := returnIsType.context.Deleted(name); !paramIsType.context.EqualKeys(rest) {
		return Judgement{}, &ContextMismatchError{RuleAbstract, paramIsType.context, rest}
	}
	if rest := j.context.Deleted(name); !paramIsType.context.EqualKeys(rest) {
		return Judgement{}, &ContextMismatchError{RuleAbstract, paramIsType.context, rest}
	}
	if _, err := sortOf(RuleAbstract, af); err != nil {
		return Judgement{}, err
	}
	if _, err := sortOf(RuleAbstract, bf); err != nil {
		return Judgement{}, err
	}
	for _, scope := range []Sequent{returnIsType.context, j.context} {
		if declared, ok := scope.Lookup(name); ok && !term.EqualByDef(declared, af.subject) {
			return Judgement{}, &TypeMismatchError{RuleAbstract, af.subject, declared}
		}
	}
	if !term.EqualByDef(f.typ, bf.subject) {
		return Judgement{}, &TypeMismatchError{RuleAbstract, bf.subject, f.typ}
	}
	return judge(paramIsType.context, term.NewAbs(name, af.subject, f.subject), term.NewPi(name, af.subject, bf.subject)), nil
}

//	Γ ⊢ B : s        A →β B        Γ ⊢ a : A
//	----------------------------------------
//	               Γ ⊢ a : B
//
// The caller supplies the reduction path as evidence; the rule only runs it
// and compares the result with B. A nil path is the empty path.
func Convert(typeIsSort Judgement, path beta.Reduction, j Judgement) (Judgement, error) {
	bf, err := open(RuleConvert, typeIsSort)
	if err != nil {
		return Judgement{}, err
	}
	f, err := open(RuleConvert, j)
	if err != nil {
		return Judgement{}, err
	}
	if !typeIsSort.context.EqualKeys(j.context) {
		return Judgement{}, &ContextMismatchError{RuleConvert, typeIsSort.context, j.context}
	}
	if _, err := sortOf(RuleConvert, bf); err != nil {
		return Judgement{}, err
	}
	if path == nil {
		path = beta.Identity
	}
	reduced, err := path(f.typ)
	if err != nil {
		return Judgement{}, fmt.Errorf("kernel: %s: reduction path: %w", RuleConvert, err)
	}
	if !term.IsWellFormed(reduced) {
		return Judgement{}, &MalformedTermError{RuleConvert}
	}
	if !term.EqualByDef(reduced, bf.subject) {
		return Judgement{}, &TypeMismatchError{RuleConvert, bf.subject, reduced}
	}
	return judge(j.context, f.subject, bf.subject), nil
}
