package level

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Universe levels are Peano naturals: either zero, or the successor of
// another level. Levels index the universe hierarchy, so that the universe
// at level i is itself classified by the universe at level i+1. Levels are
// plain immutable values and may be shared freely.
type Level interface {
	fmt.Stringer
	// Helper method to count the successor chain without reflection
	// for each level variant.
	depth() int
}

// The bottom of the universe hierarchy.
type Zero struct{}

func (Zero) String() string {
	return "0"
}

func (Zero) depth() int { return 0 }

// The level directly above Pred.
type Succ struct {
	Pred Level
}

func (l Succ) String() string {
	return fmt.Sprint(l.depth())
}

func (l Succ) depth() int {
	if l.Pred == nil {
		return 1
	}
	return l.Pred.depth() + 1
}

// Create the lowest level.
func NewZero() Level {
	return Zero{}
}

// Create the level directly above the given level.
func NewSucc(pred Level) Level {
	return Succ{Pred: pred}
}

// Build a level by iterating the successor n times. Any n below one
// yields the zero level.
func FromInt[I constraints.Integer](n I) Level {
	var res Level = Zero{}
	for i := I(0); i < n; i++ {
		res = Succ{res}
	}
	return res
}

// The length of the successor chain of the level.
func ToInt(l Level) int {
	return l.depth()
}

// Whether the level is a finite successor chain ending in zero. The nil
// Level, and a Succ built around one, are not levels.
func IsValid(l Level) bool {
	switch lt := l.(type) {
	case Zero:
		return true
	case Succ:
		return IsValid(lt.Pred)
	default:
		return false
	}
}

// Structural equality: both zero, or both successors of equal levels. A
// malformed level is equal to nothing, not even itself.
func Equal(l Level, r Level) bool {
	switch lt := l.(type) {
	case Zero:
		_, ok := r.(Zero)
		return ok
	case Succ:
		rt, ok := r.(Succ)
		return ok && Equal(lt.Pred, rt.Pred)
	default:
		return false
	}
}

// The least upper bound of two levels, computed by peeling successors off
// both sides at once until one of them reaches zero.
func Max(l Level, r Level) Level {
	lt, lok := l.(Succ)
	if !lok {
		return r
	}
	rt, rok := r.(Succ)
	if !rok {
		return l
	}
	return Succ{Max(lt.Pred, rt.Pred)}
}
