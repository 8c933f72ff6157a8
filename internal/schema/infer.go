package schema

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/vektah/gqlparser/v2/ast"
)

// The three inference heuristics live here, isolated from the traversal so
// they can be tuned without touching the recursion or merge logic. They are
// guesses by field-name convention, not type checks, and they will sometimes
// be wrong; that is the tool's contract.

// outputTypeName decides what to call the type behind a field that has a
// sub-selection, in priority order:
//
//  1. any inline fragment in the selection set implies polymorphism, so a
//     union is synthesized (and wins even when fragment spreads are also
//     present — inline fragments are the stronger signal);
//  2. fragment spreads resolving to exactly one type condition mean the field
//     simply "is" that fragment's type;
//  3. otherwise an anonymous object type is named after its position,
//     {Parent}{PascalField}.
func (w *walker) outputTypeName(parent, fieldName string, selections ast.SelectionSet) string {
	inlineConds := make(map[string]struct{})
	spreadConds := make(map[string]struct{})

	for _, selection := range selections {
		switch sel := selection.(type) {
		case *ast.InlineFragment:
			if sel.TypeCondition != "" {
				inlineConds[sel.TypeCondition] = struct{}{}
			}
		case *ast.FragmentSpread:
			if frag, ok := w.fragments[sel.Name]; ok {
				spreadConds[frag.TypeCondition] = struct{}{}
			}
		}
	}

	if len(inlineConds) > 0 {
		// Deterministic and stable per (parent, field): repeat visits reuse
		// the same union and only add members.
		unionName := parent + pascalCase(fieldName) + "Union"
		for _, member := range slices.Sorted(maps.Keys(inlineConds)) {
			w.draft.EnsureObject(member)
			w.draft.AddUnionMember(unionName, member)
		}
		return unionName
	}

	if len(spreadConds) == 1 {
		for cond := range spreadConds {
			return cond
		}
	}

	return parent + pascalCase(fieldName)
}

// inferLeafScalar classifies a field with no sub-selection by naming
// convention. First matching rule wins.
func inferLeafScalar(fieldName string) TypeRef {
	switch {
	case fieldName == "id":
		return NonNull(Named("ID"))
	case fieldName == "cursor":
		return NonNull(Named("String"))
	case strings.HasSuffix(fieldName, "Id"), strings.HasSuffix(fieldName, "ID"):
		return Named("ID")
	case fieldName == "name", strings.HasSuffix(fieldName, "Name"):
		return Named("String")
	case fieldName == "date", fieldName == "month", strings.HasSuffix(fieldName, "Date"):
		return Named("String")
	case strings.HasPrefix(fieldName, "is"):
		return Named("Boolean")
	default:
		return Named(OpaqueScalar)
	}
}

// inferArgumentType classifies an argument value. Variable references resolve
// to the enclosing operation's declared type, wrapping preserved; scalar
// literals map to their built-in; everything else (enum, list, object, null,
// or a variable with no declaration in scope) is opaque.
func inferArgumentType(value *ast.Value, scope variableScope) TypeRef {
	switch value.Kind {
	case ast.Variable:
		if typ, ok := scope[value.Raw]; ok {
			return typ
		}
		return Named(OpaqueScalar)
	case ast.IntValue:
		return Named("Int")
	case ast.FloatValue:
		return Named("Float")
	case ast.StringValue, ast.BlockValue:
		return Named("String")
	case ast.BooleanValue:
		return Named("Boolean")
	default:
		return Named(OpaqueScalar)
	}
}

// pascalCase upper-cases the first letter and every letter following a
// separator, e.g. "budget_histories" -> "BudgetHistories".
func pascalCase(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
