package term

import "fmt"

// Replace every free occurrence of target in source with into. A binder that
// rebinds target shadows it, so the whole binder node is returned unchanged.
// Binders are never renamed: every token is minted for exactly one binding
// site, so a binder inside source can never capture a free variable of into.
func Substitute(target Token, into Term, source Term) Term {
	switch st := source.(type) {
	case Universe:
		return st
	case Var:
		if st.Name == target {
			return into
		}
		return st
	case App:
		return App{Substitute(target, into, st.Fn), Substitute(target, into, st.Arg)}
	case Abs:
		if st.Name == target {
			return st
		}
		return Abs{st.Name, Substitute(target, into, st.ParamType), Substitute(target, into, st.Body)}
	case Pi:
		if st.Name == target {
			return st
		}
		return Pi{st.Name, Substitute(target, into, st.ParamType), Substitute(target, into, st.ReturnType)}
	default:
		panic(fmt.Sprintf("term: unknown term variant %T", source))
	}
}
