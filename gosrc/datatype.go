package gosrc

// DataType is the static runtime-type tag carried by a lowered expression.
// The set is closed; Join consults an explicit parent table instead of
// walking a type hierarchy.
type DataType int

const (
	TypeUnknown DataType = iota
	TypeBoolean
	TypeInteger
	TypeFloat
	// TypeNumber is an integer or float not known statically to be either.
	TypeNumber
	TypeString
	TypeList
	TypeMap
)

func (t DataType) String() string {
	switch t {
	case TypeUnknown:
		return "Unknown"
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeList:
		return "List"
	case TypeMap:
		return "Map"
	}
	panic("unknown data type")
}

// parent returns the immediate supertype. Unknown is the lattice top and is
// its own parent.
func (t DataType) parent() DataType {
	switch t {
	case TypeInteger, TypeFloat:
		return TypeNumber
	default:
		return TypeUnknown
	}
}

// AssignableFrom reports whether a value statically typed as other can be
// used where t is expected.
func (t DataType) AssignableFrom(other DataType) bool {
	for {
		if other == t {
			return true
		}
		if other == TypeUnknown {
			return false
		}
		other = other.parent()
	}
}

// Join returns the least common supertype of a and b. The lattice roots at
// Unknown, so a join always exists.
func Join(a, b DataType) DataType {
	for {
		if a.AssignableFrom(b) {
			return a
		}
		if a == TypeUnknown {
			// Unreachable: Unknown is assignable from everything.
			panic("data type join failed")
		}
		a = a.parent()
	}
}
