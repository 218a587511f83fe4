package exprfactory

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// buildLiteralValue interprets a RuleLiteralValue node: a single terminal
// that is a numeric, string, or hex-blob literal, or one of the keyword
// literals NULL/TRUE/FALSE/CURRENT_TIME/CURRENT_DATE/CURRENT_TIMESTAMP
// (spec.md section 4.5).
func buildLiteralValue(node navigator.Node) (expr.Node, error) {
	term := node.Children()[0]
	line, column := term.Line(), term.Column()

	switch term.TokenType() {
	case navigator.TokNumericLiteral:
		v, err := parseNumericLiteral(term.Text(), false, line, column)
		if err != nil {
			return nil, err
		}
		return expr.NewConstant(line, column, v), nil

	case navigator.TokStringLiteral:
		return expr.NewConstant(line, column, variant.NewString(navigator.UnquoteString(term.Text()))), nil

	case navigator.TokBlobLiteral:
		v, err := parseHexBlob(term.Text(), line, column)
		if err != nil {
			return nil, err
		}
		return expr.NewConstant(line, column, v), nil

	case navigator.TokKeyword:
		switch term.Text() {
		case "NULL":
			return expr.NewConstant(line, column, variant.NewNull()), nil
		case "TRUE":
			return expr.NewConstant(line, column, variant.NewBool(true)), nil
		case "FALSE":
			return expr.NewConstant(line, column, variant.NewBool(false)), nil
		case "CURRENT_TIME":
			now := time.Now().UTC()
			return expr.NewConstant(line, column, variant.NewDateTime(variant.RawDateTime{
				HasTime: true, Hour: now.Hour(), Minute: now.Minute(), Second: now.Second(),
			})), nil
		case "CURRENT_DATE":
			now := time.Now().UTC()
			return expr.NewConstant(line, column, variant.NewDateTime(variant.RawDateTime{
				HasDate: true, Year: now.Year(), Month: int(now.Month()), Day: now.Day(),
			})), nil
		case "CURRENT_TIMESTAMP":
			now := time.Now().UTC()
			return expr.NewConstant(line, column, variant.NewDateTime(variant.RawDateTime{
				HasDate: true, Year: now.Year(), Month: int(now.Month()), Day: now.Day(),
				HasTime: true, Hour: now.Hour(), Minute: now.Minute(), Second: now.Second(),
			})), nil
		}
	}
	return nil, sqlerr.New(sqlerr.KindInvalidConstant, line, column, "unrecognized literal %q", term.Text())
}

// buildSignedNumber interprets a RuleSignedNumber node: an optional leading
// +/- sign terminal followed by a numeric literal terminal.
func buildSignedNumber(node navigator.Node) (expr.Node, error) {
	children := node.Children()
	negate := false
	numTerm := children[0]
	if len(children) == 2 {
		negate = children[0].Text() == "-"
		numTerm = children[1]
	}
	line, column := numTerm.Line(), numTerm.Column()
	v, err := parseNumericLiteral(numTerm.Text(), negate, line, column)
	if err != nil {
		return nil, err
	}
	return expr.NewConstant(line, column, v), nil
}

// parseNumericLiteral narrows a numeric literal to the smallest type that
// holds it: unsigned integer, then signed integer, then Double (never
// Float, to avoid precision loss) — spec.md section 4.5. negate flips the
// sign before the narrowest type is chosen, so -200 selects Int16 rather
// than failing to fit UInt8.
func parseNumericLiteral(text string, negate bool, line, column int) (variant.Variant, error) {
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return variant.Variant{}, sqlerr.New(sqlerr.KindInvalidNumericLiteral, line, column,
				"invalid numeric literal %q", text)
		}
		if negate {
			f = -f
		}
		return variant.NewDouble(f), nil
	}

	mag, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return variant.Variant{}, sqlerr.New(sqlerr.KindInvalidNumericLiteral, line, column,
			"invalid numeric literal %q", text)
	}

	if !negate {
		switch {
		case mag <= math.MaxUint8:
			return variant.NewUInt8(uint8(mag)), nil
		case mag <= math.MaxUint16:
			return variant.NewUInt16(uint16(mag)), nil
		case mag <= math.MaxUint32:
			return variant.NewUInt32(uint32(mag)), nil
		default:
			return variant.NewUInt64(mag), nil
		}
	}

	if mag > 1<<63 {
		return variant.Variant{}, sqlerr.New(sqlerr.KindNumericDomain, line, column,
			"numeric literal out of range: -%s", text)
	}
	v := -int64(mag)
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return variant.NewInt8(int8(v)), nil
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return variant.NewInt16(int16(v)), nil
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return variant.NewInt32(int32(v)), nil
	default:
		return variant.NewInt64(v), nil
	}
}

// parseHexBlob decodes an x'...'/X'...' literal into a Binary variant,
// checking for an even digit count and valid hex digits (spec.md section
// 4.5's OddHexLiteral/InvalidHexDigit checks).
func parseHexBlob(text string, line, column int) (variant.Variant, error) {
	inner := text[2 : len(text)-1] // strip x'/X' prefix and closing quote
	if len(inner)%2 != 0 {
		return variant.Variant{}, sqlerr.New(sqlerr.KindOddHexLiteral, line, column,
			"hex blob literal has an odd digit count")
	}
	decoded, err := hex.DecodeString(inner)
	if err != nil {
		return variant.Variant{}, sqlerr.New(sqlerr.KindInvalidHexDigit, line, column,
			"invalid hex digit in blob literal")
	}
	return variant.NewBinary(decoded), nil
}
