package term

import (
	"github.com/glossopoeia/pts/kernel/level"
)

// Definitional equality of two terms. This is syntactic equality up to level
// equality and token identity: binders must use the very same token on both
// sides, since no alpha-renaming is ever performed. Malformed terms are equal
// to nothing.
func EqualByDef(l Term, r Term) bool {
	switch lt := l.(type) {
	case Universe:
		rt, ok := r.(Universe)
		return ok && level.Equal(lt.Level, rt.Level)
	case Var:
		rt, ok := r.(Var)
		return ok && lt.Name == rt.Name
	case App:
		rt, ok := r.(App)
		return ok && EqualByDef(lt.Fn, rt.Fn) && EqualByDef(lt.Arg, rt.Arg)
	case Abs:
		rt, ok := r.(Abs)
		return ok && lt.Name == rt.Name && EqualByDef(lt.ParamType, rt.ParamType) && EqualByDef(lt.Body, rt.Body)
	case Pi:
		rt, ok := r.(Pi)
		return ok && lt.Name == rt.Name && EqualByDef(lt.ParamType, rt.ParamType) && EqualByDef(lt.ReturnType, rt.ReturnType)
	default:
		return false
	}
}

// Whether every node of the term is one of the five shapes, with no nil
// subterm and only valid levels. Client code can build terms that fail this,
// for instance the zero Universe.
func IsWellFormed(t Term) bool {
	switch tt := t.(type) {
	case Universe:
		return level.IsValid(tt.Level)
	case Var:
		return true
	case App:
		return IsWellFormed(tt.Fn) && IsWellFormed(tt.Arg)
	case Abs:
		return IsWellFormed(tt.ParamType) && IsWellFormed(tt.Body)
	case Pi:
		return IsWellFormed(tt.ParamType) && IsWellFormed(tt.ReturnType)
	default:
		return false
	}
}
