package facade

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/request"
)

// Dump writes an indented textual rendering of every statement's request
// record to w (spec.md section 4.8's dump(stream)). A statement that fails
// to build is written inline as an error line rather than aborting the
// whole dump, so one bad statement does not hide the others; Dump still
// returns the first such error once the full dump has been written, so
// callers that want a non-zero exit status on failure (SPEC_FULL.md
// section 6.5) can have both the complete output and the right exit code.
func (p *Parser) Dump(w io.Writer) error {
	n := p.StatementCount()
	var firstErr error
	for i := 0; i < n; i++ {
		req, err := p.BuildRequest(i)
		if err != nil {
			fmt.Fprintf(w, "[%d] error: %s\n", i, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(w, "[%d] %s\n", i, req.Kind())
		fmt.Fprint(w, dumpFields(reflect.ValueOf(req), 1))
		fmt.Fprintln(w)
	}
	return firstErr
}

// DumpJSON writes every statement's request record to w as a JSON array,
// in the same order as Dump. A statement that fails to build is recorded
// as {"error": "..."} at its position rather than aborting the encode;
// like Dump, it still returns the first such error after writing the full
// array.
func (p *Parser) DumpJSON(w io.Writer) error {
	n := p.StatementCount()
	out := make([]any, 0, n)
	var firstErr error
	for i := 0; i < n; i++ {
		req, err := p.BuildRequest(i)
		if err != nil {
			out = append(out, map[string]any{"error": err.Error()})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, map[string]any{
			"kind":   req.Kind().String(),
			"fields": toJSONValue(reflect.ValueOf(req)),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	return firstErr
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

// dumpFields renders the exported fields of a request record (or any value
// reachable from one) as an indented tree. expr.Node leaves defer to their
// own ExpressionText, mirroring how internal/expr's Dump renders expression
// subtrees for the same purpose one layer down.
func dumpFields(v reflect.Value, depth int) string {
	v = unwrap(v)
	if !v.IsValid() {
		return ""
	}
	if en, ok := asExprNode(v); ok {
		return fmt.Sprintf("%s%s\n", indent(depth), en.ExpressionText())
	}
	switch v.Kind() {
	case reflect.Struct:
		var b strings.Builder
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := unwrap(v.Field(i))
			if isScalar(fv) {
				fmt.Fprintf(&b, "%s%s: %s\n", indent(depth), f.Name, scalarText(fv))
				continue
			}
			fmt.Fprintf(&b, "%s%s:\n", indent(depth), f.Name)
			b.WriteString(dumpFields(fv, depth+1))
		}
		return b.String()
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		for i := 0; i < v.Len(); i++ {
			ev := unwrap(v.Index(i))
			if isScalar(ev) {
				fmt.Fprintf(&b, "%s- %s\n", indent(depth), scalarText(ev))
				continue
			}
			fmt.Fprintf(&b, "%s-\n", indent(depth))
			b.WriteString(dumpFields(ev, depth+1))
		}
		return b.String()
	default:
		return fmt.Sprintf("%s%s\n", indent(depth), scalarText(v))
	}
}

// toJSONValue projects a request record into a JSON-safe tree: structs
// become objects keyed by field name, expr.Node leaves render via
// ExpressionText (the binary wire form in section 6.2 is not JSON's
// concern), and everything else maps onto its natural JSON shape.
func toJSONValue(v reflect.Value) any {
	v = unwrap(v)
	if !v.IsValid() {
		return nil
	}
	if en, ok := asExprNode(v); ok {
		return en.ExpressionText()
	}
	switch v.Kind() {
	case reflect.Struct:
		m := make(map[string]any)
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			m[f.Name] = toJSONValue(v.Field(i))
		}
		return m
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = toJSONValue(v.Index(i))
		}
		return out
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// unwrap follows pointers and interfaces down to the first concrete,
// non-nil value — except it stops as soon as it reaches something that
// already satisfies expr.Node, since expr types are implemented with
// pointer receivers and fully dereferencing past the pointer would lose
// the method set that makes the ExpressionText shortcut work.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() {
		if _, ok := asExprNode(v); ok {
			return v
		}
		if v.Kind() != reflect.Ptr && v.Kind() != reflect.Interface {
			return v
		}
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func asExprNode(v reflect.Value) (expr.Node, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	en, ok := v.Interface().(expr.Node)
	return en, ok
}

func isScalar(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array:
		if _, ok := asExprNode(v); ok {
			return true
		}
		return false
	default:
		return true
	}
}

func scalarText(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	if en, ok := asExprNode(v); ok {
		return en.ExpressionText()
	}
	return fmt.Sprintf("%v", v.Interface())
}

// RequestKinds lists every concrete request.Kind, sorted, so tests can
// assert the dump/JSON projections cover the full closed set without
// hard-coding its size twice.
func RequestKinds() []request.Kind {
	kinds := []request.Kind{
		request.KindCreateDatabase, request.KindDropDatabase, request.KindRenameDatabase,
		request.KindSetDatabaseAttributes, request.KindUseDatabase, request.KindAttachDatabase,
		request.KindDetachDatabase, request.KindCreateTable, request.KindDropTable,
		request.KindRenameTable, request.KindSetTableAttributes, request.KindAddColumn,
		request.KindDropColumn, request.KindRenameColumn, request.KindRedefineColumn,
		request.KindCreateIndex, request.KindDropIndex, request.KindCreateUser,
		request.KindDropUser, request.KindSetUserAttributes, request.KindAddUserAccessKey,
		request.KindDropUserAccessKey, request.KindRenameUserAccessKey, request.KindSetUserAccessKeyAttributes,
		request.KindAddUserToken, request.KindDropUserToken, request.KindRenameUserToken,
		request.KindSetUserTokenAttributes, request.KindCheckUserToken, request.KindGrantPermissions,
		request.KindRevokePermissions, request.KindShowPermissions, request.KindShowDatabases,
		request.KindShowTables, request.KindDescribeTable, request.KindSelect,
		request.KindInsert, request.KindUpdate, request.KindDelete,
		request.KindBeginTransaction, request.KindCommitTransaction, request.KindRollbackTransaction,
		request.KindSavepoint, request.KindRelease,
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
