package term

// Every term has exactly one of five shapes. Rules and reduction steps
// destructure their inputs by expecting a particular shape, and report the
// expected shape when the input has another.
type Shape int

const (
	ShapeUniverse Shape = iota + 1
	ShapeVar
	ShapeApp
	ShapeAbs
	ShapePi
)

func (s Shape) String() string {
	switch s {
	case ShapeUniverse:
		return "universe"
	case ShapeVar:
		return "variable"
	case ShapeApp:
		return "application"
	case ShapeAbs:
		return "abstraction"
	case ShapePi:
		return "pi"
	default:
		panic("Invalid shape encountered.")
	}
}
