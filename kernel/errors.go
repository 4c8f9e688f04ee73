package kernel

import (
	"errors"
	"fmt"

	"github.com/glossopoeia/pts/kernel/term"
)

// Names of the rules, as they appear in error messages.
const (
	RuleUniverseHierarchy = "universe-hierarchy"
	RuleLiftUniverse      = "lift-universe"
	RuleIntroduceVariable = "introduce-variable"
	RuleWeaken            = "weaken"
	RuleApply             = "apply"
	RuleFormPi            = "form-pi"
	RuleAbstract          = "abstract"
	RuleConvert           = "convert"
)

// A rule tried to bind a variable that its context already binds.
type DuplicateBinderError struct {
	Rule    string
	Binder  term.Token
	Context Sequent
}

func (e *DuplicateBinderError) Error() string {
	return fmt.Sprintf("kernel: %s: variable %s was already introduced in [%s]", e.Rule, e.Binder.Unique(), e.Context)
}

// Two premises of a rule do not bind the same variables.
type ContextMismatchError struct {
	Rule  string
	Left  Sequent
	Right Sequent
}

func (e *ContextMismatchError) Error() string {
	return fmt.Sprintf("kernel: %s: contexts [%s] and [%s] must bind the same variables", e.Rule, e.Left, e.Right)
}

// Two terms a rule requires to be definitionally equal are not.
type TypeMismatchError struct {
	Rule     string
	Expected term.Term
	Actual   term.Term
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("kernel: %s: expected %s but found %s", e.Rule, e.Expected, e.Actual)
}

// A rule referred to a variable its context does not bind.
type UnboundBinderError struct {
	Rule    string
	Binder  term.Token
	Context Sequent
}

func (e *UnboundBinderError) Error() string {
	return fmt.Sprintf("kernel: %s: variable %s was not introduced in [%s]", e.Rule, e.Binder.Unique(), e.Context)
}

// A rule was given the zero Judgement as a premise.
type EmptyJudgementError struct {
	Rule string
}

func (e *EmptyJudgementError) Error() string {
	return fmt.Sprintf("kernel: %s: premise is an empty judgement", e.Rule)
}

// A rule met a term built outside the kernel that is not well formed: a nil
// subterm, or a universe without a valid level.
type MalformedTermError struct {
	Rule string
}

func (e *MalformedTermError) Error() string {
	return fmt.Sprintf("kernel: %s: malformed term", e.Rule)
}

func IsDuplicateBinder(err error) bool {
	var e *DuplicateBinderError
	return errors.As(err, &e)
}

func IsContextMismatch(err error) bool {
	var e *ContextMismatchError
	return errors.As(err, &e)
}

func IsTypeMismatch(err error) bool {
	var e *TypeMismatchError
	return errors.As(err, &e)
}

func IsUnboundBinder(err error) bool {
	var e *UnboundBinderError
	return errors.As(err, &e)
}

func IsEmptyJudgement(err error) bool {
	var e *EmptyJudgementError
	return errors.As(err, &e)
}

func IsMalformedTerm(err error) bool {
	var e *MalformedTermError
	return errors.As(err, &e)
}

// Shape errors come from the term package; re-exported so callers of the
// rules need only one package to classify failures.
func IsShapeMismatch(err error) bool {
	return term.IsShapeMismatch(err)
}

func shapeError(rule string, err error) error {
	return fmt.Errorf("kernel: %s: %w", rule, err)
}
