package kernel

import (
	"strings"

	"github.com/glossopoeia/pts/kernel/term"
	"github.com/hashicorp/go-set/v2"
	"github.com/rjNemo/underscore"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A typing context: the variables in scope, each mapped to its declared type.
// Sequents are persistent. With and Deleted build a new sequent and leave the
// receiver untouched, so a rule can never change the context of a judgement
// that a caller still holds. The zero Sequent is the empty context.
type Sequent struct {
	bindings map[term.Token]term.Term
}

func NewSequent() Sequent {
	return Sequent{map[term.Token]term.Term{}}
}

func (s Sequent) Len() int {
	return len(s.bindings)
}

func (s Sequent) Has(name term.Token) bool {
	_, ok := s.bindings[name]
	return ok
}

// The declared type of the variable, if it is in scope.
func (s Sequent) Lookup(name term.Token) (term.Term, bool) {
	ty, ok := s.bindings[name]
	return ty, ok
}

// A copy of the sequent with name bound to ty, replacing any earlier binding.
func (s Sequent) With(name term.Token, ty term.Term) Sequent {
	res := maps.Clone(s.bindings)
	if res == nil {
		res = make(map[term.Token]term.Term, 1)
	}
	res[name] = ty
	return Sequent{res}
}

// A copy of the sequent without name. Deleting an unbound name is a no-op.
func (s Sequent) Deleted(name term.Token) Sequent {
	res := maps.Clone(s.bindings)
	delete(res, name)
	return Sequent{res}
}

// The bound variables, ordered by minting time.
func (s Sequent) Keys() []term.Token {
	keys := maps.Keys(s.bindings)
	slices.SortFunc(keys, func(l term.Token, r term.Token) bool { return l.Before(r) })
	return keys
}

// The set of bound variables.
func (s Sequent) Domain() *set.Set[term.Token] {
	return set.From(maps.Keys(s.bindings))
}

// Whether the two sequents bind exactly the same variables. The declared
// types are not compared. This is the compatibility check every rule uses
// when it combines premises.
func (s Sequent) EqualKeys(o Sequent) bool {
	if s.Len() != o.Len() {
		return false
	}
	return s.Domain().ContainsSlice(maps.Keys(o.bindings))
}

// Whether the two sequents bind the same variables to definitionally equal
// types.
func (s Sequent) Equal(o Sequent) bool {
	return s.EqualKeys(o) && underscore.All(s.Keys(), func(name term.Token) bool {
		return term.EqualByDef(s.bindings[name], o.bindings[name])
	})
}

func (s Sequent) String() string {
	return strings.Join(underscore.Map(s.Keys(), func(name term.Token) string {
		return name.String() + " : " + s.bindings[name].String()
	}), ", ")
}
