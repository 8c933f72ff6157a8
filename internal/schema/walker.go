package schema

import (
	"maps"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"
)

// walker drives the recursive descent over every operation and fragment,
// mutating one shared Draft. The whole pass is single-threaded; the draft is
// threaded through as an exclusively owned accumulator, never shared.
type walker struct {
	draft     *Draft
	fragments map[string]*ast.FragmentDefinition
}

// variableScope maps an operation's declared variable names to their types so
// argument inference can resolve $var references. Standalone fragments are
// walked with a nil scope.
type variableScope map[string]TypeRef

func newWalker(draft *Draft, fragments map[string]*ast.FragmentDefinition) *walker {
	return &walker{draft: draft, fragments: fragments}
}

// walkOperation roots a query at Query and a mutation at Mutation.
// Subscriptions are rooted at Query as well: Copilot serves them from the same
// field namespace, and a separate Subscription root would just duplicate types.
func (w *walker) walkOperation(op *ast.OperationDefinition) {
	scope := make(variableScope, len(op.VariableDefinitions))
	for _, v := range op.VariableDefinitions {
		scope[v.Variable] = typeRefFromAST(v.Type)
		w.collectInputType(v.Type)
	}

	root := "Query"
	if op.Operation == ast.Mutation {
		root = "Mutation"
	}
	w.walkSelectionSet(root, op.SelectionSet, scope)
}

// walkFragments re-walks every standalone fragment rooted at its declared type
// condition, so fragments never spread by an operation still describe their
// type. Sorted by name to keep the pass deterministic.
func (w *walker) walkFragments() {
	for _, name := range slices.Sorted(maps.Keys(w.fragments)) {
		frag := w.fragments[name]
		w.draft.EnsureObject(frag.TypeCondition)
		w.walkSelectionSet(frag.TypeCondition, frag.SelectionSet, nil)
	}
}

func (w *walker) walkSelectionSet(typeName string, selections ast.SelectionSet, scope variableScope) {
	if w.draft.IsUnion(typeName) {
		w.walkUnionSelectionSet(selections, scope)
		return
	}

	w.draft.EnsureObject(typeName)

	for _, selection := range selections {
		switch sel := selection.(type) {
		case *ast.Field:
			w.walkField(typeName, sel, scope)

		case *ast.FragmentSpread:
			frag, ok := w.fragments[sel.Name]
			if !ok {
				continue
			}
			// Apply the fragment twice: once against the current context, so
			// its fields land on whatever type is using it at this call site,
			// and once against its own type condition, so that type is
			// independently describable.
			w.walkSelectionSet(typeName, frag.SelectionSet, scope)
			w.draft.EnsureObject(frag.TypeCondition)
			w.walkSelectionSet(frag.TypeCondition, frag.SelectionSet, scope)

		case *ast.InlineFragment:
			cond := sel.TypeCondition
			if cond == "" {
				cond = typeName
			}
			// Fields inside the inline fragment attach only to the narrowed
			// type, never to the enclosing context.
			w.walkSelectionSet(cond, sel.SelectionSet, scope)
		}
	}
}

func (w *walker) walkField(typeName string, field *ast.Field, scope variableScope) {
	if field.Name == "__typename" {
		return
	}

	for _, arg := range field.Arguments {
		w.draft.AddFieldArg(typeName, field.Name, arg.Name, inferArgumentType(arg.Value, scope))
	}

	if len(field.SelectionSet) == 0 {
		w.draft.AddField(typeName, field.Name, inferLeafScalar(field.Name))
		return
	}

	inferred := w.outputTypeName(typeName, field.Name, field.SelectionSet)
	w.draft.AddField(typeName, field.Name, Named(inferred))
	if w.draft.IsUnion(inferred) {
		w.walkUnionSelectionSet(field.SelectionSet, scope)
	} else {
		w.walkSelectionSet(inferred, field.SelectionSet, scope)
	}
}

// walkUnionSelectionSet handles a selection set whose context is a synthesized
// union. Only fragment spreads and inline fragments can contribute fields on a
// union, each routed to its resolved member type; direct field selections are
// structurally impossible there and are ignored.
func (w *walker) walkUnionSelectionSet(selections ast.SelectionSet, scope variableScope) {
	for _, selection := range selections {
		switch sel := selection.(type) {
		case *ast.InlineFragment:
			if sel.TypeCondition == "" {
				continue
			}
			w.draft.EnsureObject(sel.TypeCondition)
			w.walkSelectionSet(sel.TypeCondition, sel.SelectionSet, scope)

		case *ast.FragmentSpread:
			frag, ok := w.fragments[sel.Name]
			if !ok {
				continue
			}
			w.draft.EnsureObject(frag.TypeCondition)
			w.walkSelectionSet(frag.TypeCondition, frag.SelectionSet, scope)

		case *ast.Field:
			// includes __typename
		}
	}
}

// collectInputType records a variable's named type as an input stub unless it
// is a built-in scalar. We cannot tell input objects from custom scalars here;
// an opaque stub is the honest answer either way.
func (w *walker) collectInputType(t *ast.Type) {
	for t.Elem != nil {
		t = t.Elem
	}
	if isBuiltinScalar(t.NamedType) {
		return
	}
	w.draft.Inputs[t.NamedType] = struct{}{}
}

func isBuiltinScalar(name string) bool {
	switch name {
	case "String", "Int", "Float", "Boolean", "ID":
		return true
	}
	return false
}

// typeRefFromAST converts gqlparser's type expression into ours, preserving
// list and non-null wrapping exactly.
func typeRefFromAST(t *ast.Type) TypeRef {
	var ref TypeRef
	if t.Elem != nil {
		ref = List(typeRefFromAST(t.Elem))
	} else {
		ref = Named(t.NamedType)
	}
	if t.NonNull {
		ref = NonNull(ref)
	}
	return ref
}
