package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Render projects a draft into SDL text. It is a pure function of its inputs:
// identical draft and path list produce byte-identical output on every call.
// Only the header comment depends on file order; every declaration section is
// sorted.
func Render(draft *Draft, paths []string) string {
	var b strings.Builder

	b.WriteString("# Generated stub schema (best-effort)\n")
	b.WriteString("# Source docs:\n")
	for _, p := range paths {
		fmt.Fprintf(&b, "# - %s\n", p)
	}
	b.WriteString("\n")

	for _, scalar := range slices.Sorted(maps.Keys(draft.Scalars)) {
		fmt.Fprintf(&b, "scalar %s\n", scalar)
	}
	b.WriteString("\n")

	if len(draft.Objects["Mutation"]) > 0 {
		b.WriteString("schema { query: Query mutation: Mutation }\n\n")
	} else {
		b.WriteString("schema { query: Query }\n\n")
	}

	for _, unionName := range slices.Sorted(maps.Keys(draft.Unions)) {
		members := slices.Sorted(maps.Keys(draft.Unions[unionName]))
		fmt.Fprintf(&b, "union %s = %s\n\n", unionName, strings.Join(members, " | "))
	}

	for _, typeName := range slices.Sorted(maps.Keys(draft.Objects)) {
		fields := draft.Objects[typeName]
		if typeName == "Mutation" && len(fields) == 0 {
			// An empty Mutation referenced by nothing confuses some tools.
			continue
		}

		fmt.Fprintf(&b, "type %s {\n", typeName)
		if len(fields) == 0 {
			// SDL forbids empty object bodies.
			fmt.Fprintf(&b, "  _placeholder: %s\n", OpaqueScalar)
		} else {
			for _, fieldName := range slices.Sorted(maps.Keys(fields)) {
				b.WriteString(renderField(fields[fieldName]))
			}
		}
		b.WriteString("}\n\n")
	}

	for _, inputName := range slices.Sorted(maps.Keys(draft.Inputs)) {
		// A name observed as an output type is not an input stub, whatever
		// the variable declarations said.
		if _, ok := draft.Objects[inputName]; ok {
			continue
		}
		if _, ok := draft.Unions[inputName]; ok {
			continue
		}
		if _, ok := draft.Scalars[inputName]; ok {
			continue
		}
		fmt.Fprintf(&b, "input %s {\n  _stub: %s\n}\n\n", inputName, OpaqueScalar)
	}

	return b.String()
}

func renderField(field *FieldDef) string {
	if len(field.Args) == 0 {
		return fmt.Sprintf("  %s: %s\n", field.Name, field.Type)
	}

	args := make([]string, 0, len(field.Args))
	for _, argName := range slices.Sorted(maps.Keys(field.Args)) {
		args = append(args, fmt.Sprintf("%s: %s", argName, field.Args[argName]))
	}
	return fmt.Sprintf("  %s(%s): %s\n", field.Name, strings.Join(args, ", "), field.Type)
}
