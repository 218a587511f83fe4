package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// Deserialize mirrors Serialize exactly: it reads one node (and its full
// owned subtree) from r. The wire format carries no source position, so
// every deserialized node's Pos() reports (0, 0). An unknown discriminant
// or an out-of-range flag byte raises CorruptExpression (spec.md section
// 4.3).
func Deserialize(r *bytes.Reader) (Node, error) {
	return deserializeAt(r, 0)
}

func deserializeAt(r *bytes.Reader, depth int) (Node, error) {
	if !depthGuard(depth) {
		return nil, sqlerr.New(sqlerr.KindExpressionTooDeep, 0, 0, "expression exceeds maximum depth %d", MaxDepth)
	}
	t, err := readDiscriminant(r)
	if err != nil {
		return nil, corrupt(err)
	}
	switch t {
	case TypeConstant:
		v, err := variant.Deserialize(r)
		if err != nil {
			return nil, corrupt(err)
		}
		return &Constant{Value: v}, nil

	case TypeSingleColumnReference:
		table, err := readString(r)
		if err != nil {
			return nil, corrupt(err)
		}
		col, err := readString(r)
		if err != nil {
			return nil, corrupt(err)
		}
		return NewSingleColumnReference(0, 0, table, col), nil

	case TypeAllColumnsReference:
		table, err := readString(r)
		if err != nil {
			return nil, corrupt(err)
		}
		return NewAllColumnsReference(0, 0, table), nil

	case TypeList:
		n, err := readUvarint(r)
		if err != nil {
			return nil, corrupt(err)
		}
		items := make([]Node, n)
		for i := range items {
			items[i], err = deserializeAt(r, depth+1)
			if err != nil {
				return nil, err
			}
		}
		return &List{Items: items}, nil

	case TypeLogicalNot, TypeUnaryPlus, TypeUnaryMinus, TypeBitwiseComplement:
		child, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: t, Child: child}, nil

	case TypeLogicalAnd, TypeLogicalOr, TypeAdd, TypeSubtract, TypeMultiply, TypeDivide,
		TypeModulo, TypeConcatenate, TypeBitwiseOr, TypeBitwiseAnd, TypeBitwiseXor,
		TypeLeftShift, TypeRightShift, TypeEqual, TypeNotEqual, TypeLess, TypeLessOrEqual,
		TypeGreater, TypeGreaterOrEqual, TypeCast:
		left, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Op: t, Left: left, Right: right}, nil

	case TypeLike:
		value, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		pattern, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		notLike, err := readFlag(r)
		if err != nil {
			return nil, corrupt(err)
		}
		return &LikeOp{Value: value, Pattern: pattern, NotLike: notLike}, nil

	case TypeIs:
		left, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		isNot, err := readFlag(r)
		if err != nil {
			return nil, corrupt(err)
		}
		return &IsOp{Left: left, Right: right, IsNot: isNot}, nil

	case TypeBetween:
		value, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		lower, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		upper, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		notBetween, err := readFlag(r)
		if err != nil {
			return nil, corrupt(err)
		}
		return &BetweenOp{Value: value, Lower: lower, Upper: upper, NotBetween: notBetween}, nil

	case TypeIn:
		value, err := deserializeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		n, err := readUvarint(r)
		if err != nil {
			return nil, corrupt(err)
		}
		candidates := make([]Node, n)
		for i := range candidates {
			candidates[i], err = deserializeAt(r, depth+1)
			if err != nil {
				return nil, err
			}
		}
		notIn, err := readFlag(r)
		if err != nil {
			return nil, corrupt(err)
		}
		return &InOp{Value: value, Candidates: candidates, NotIn: notIn}, nil

	default:
		return nil, sqlerr.New(sqlerr.KindCorruptExpression, 0, 0, "unknown expression discriminant %d", t)
	}
}

func corrupt(cause error) error {
	return sqlerr.Wrap(sqlerr.KindCorruptExpression, 0, 0, cause, "corrupt expression payload")
}
