package beta

import (
	"github.com/glossopoeia/pts/kernel/term"
)

//	        b →β b'
//	---------------------------
//	λ(x : A). b →β λ(x : A). b'
func MapAbsBody(f Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		abs, err := term.UnwrapAbs(from)
		if err != nil {
			return nil, err
		}
		body, err := f(abs.Body)
		if err != nil {
			return nil, err
		}
		return term.NewAbs(abs.Name, abs.ParamType, body), nil
	}
}

//	        A →β A'
//	---------------------------
//	λ(x : A). b →β λ(x : A'). b
func MapAbsParamType(f Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		abs, err := term.UnwrapAbs(from)
		if err != nil {
			return nil, err
		}
		paramType, err := f(abs.ParamType)
		if err != nil {
			return nil, err
		}
		return term.NewAbs(abs.Name, paramType, abs.Body), nil
	}
}

//	        B →β B'
//	---------------------------
//	Π(x : A). B →β Π(x : A). B'
func MapPiReturnType(f Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		pi, err := term.UnwrapPi(from)
		if err != nil {
			return nil, err
		}
		returnType, err := f(pi.ReturnType)
		if err != nil {
			return nil, err
		}
		return term.NewPi(pi.Name, pi.ParamType, returnType), nil
	}
}

//	        A →β A'
//	---------------------------
//	Π(x : A). B →β Π(x : A'). B
func MapPiParamType(f Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		pi, err := term.UnwrapPi(from)
		if err != nil {
			return nil, err
		}
		paramType, err := f(pi.ParamType)
		if err != nil {
			return nil, err
		}
		return term.NewPi(pi.Name, paramType, pi.ReturnType), nil
	}
}

//	 f →β f'
//	----------
//	f a →β f' a
func MapAppFn(f Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		app, err := term.UnwrapApp(from)
		if err != nil {
			return nil, err
		}
		fn, err := f(app.Fn)
		if err != nil {
			return nil, err
		}
		return term.NewApp(fn, app.Arg), nil
	}
}

//	 a →β a'
//	----------
//	f a →β f a'
func MapAppArg(f Reduction) Reduction {
	return func(from term.Term) (term.Term, error) {
		app, err := term.UnwrapApp(from)
		if err != nil {
			return nil, err
		}
		arg, err := f(app.Arg)
		if err != nil {
			return nil, err
		}
		return term.NewApp(app.Fn, arg), nil
	}
}
