package main

// Type enumerates the semantic types the analyzer deduces for
// expressions and declarations. Grounded on
// original_source/src/syntactic/symbol/ty.py's TypeDeduction enum.
type Type int

const (
	TyInt Type = iota
	TyDouble
	TyVoid
	TyStringOffset // the type of a bare string-literal expression
	TyBool         // only valid as the result of a condition
)

func (t Type) String() string {
	switch t {
	case TyInt:
		return "int"
	case TyDouble:
		return "double"
	case TyVoid:
		return "void"
	case TyStringOffset:
		return "string"
	case TyBool:
		return "bool"
	default:
		return "?"
	}
}

// FromIsInt maps an is-int flag to a Type: TyInt when true, TyDouble
// otherwise.
func FromIsInt(isInt bool) Type {
	if isInt {
		return TyInt
	}
	return TyDouble
}

// FromTokenKind maps a type-specifier or literal token kind to a Type.
func FromTokenKind(tk TokenKind) Type {
	switch tk {
	case IntTypeSpec, UintLiteral:
		return TyInt
	case DblTypeSpec, DblLiteral:
		return TyDouble
	case VoidTypeSpec:
		return TyVoid
	case StrLiteral:
		return TyStringOffset
	default:
		return TyVoid
	}
}

// Evaluable reports whether a value of this type may be used as a
// boolean condition.
func (t Type) Evaluable() bool {
	switch t {
	case TyInt, TyDouble, TyBool:
		return true
	default:
		return false
	}
}
