package kernel

import (
	"fmt"

	"github.com/glossopoeia/pts/kernel/term"
)

// A judgement asserts that, in its context, its subject has its type:
//
//	Γ ⊢ a : A
//
// The assertion itself is held behind an unexported pointer, and nothing
// outside this package can create one. The rules in this package are the only
// producers of judgements, and each of them checks its own side conditions,
// so any non-empty Judgement value is a proof that its assertion is derivable.
//
// The zero Judgement is empty: it asserts nothing and every rule rejects it.
type Judgement struct {
	context Sequent
	fact    *fact
}

type fact struct {
	subject term.Term
	typ     term.Term
}

func judge(context Sequent, subject term.Term, typ term.Term) Judgement {
	return Judgement{context, &fact{subject, typ}}
}

// The context of the judgement.
func (j Judgement) Context() Sequent {
	return j.context
}

// True for the zero Judgement.
func (j Judgement) IsEmpty() bool {
	return j.fact == nil
}

// Read the subject and type of a judgement by handing them to belong. This is
// the only read access to a judgement's assertion. An empty judgement hands
// over nil terms.
func Extract[R any](j Judgement, belong func(subject term.Term, typ term.Term) R) R {
	if j.fact == nil {
		return belong(nil, nil)
	}
	return belong(j.fact.subject, j.fact.typ)
}

func (j Judgement) String() string {
	if j.fact == nil {
		return "<empty judgement>"
	}
	if j.context.Len() == 0 {
		return fmt.Sprintf("⊢ %s : %s", j.fact.subject, j.fact.typ)
	}
	return fmt.Sprintf("%s ⊢ %s : %s", j.context, j.fact.subject, j.fact.typ)
}
