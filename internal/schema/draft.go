// Package schema infers a best-effort GraphQL SDL stub from a corpus of
// captured query/mutation/fragment documents. The Copilot Money API publishes
// no schema, so the only signal we have is how the client uses it.
package schema

// OpaqueScalar is the fallback type used whenever inference is uncertain or
// two documents disagree about a field.
const OpaqueScalar = "JSON"

// TypeKind discriminates the three forms of a GraphQL type expression.
type TypeKind int

const (
	KindNamed TypeKind = iota
	KindList
	KindNonNull
)

// TypeRef mirrors GraphQL's type-expression grammar: a named type, a list
// wrapping, or a non-null wrapping. Used for both field output types and
// argument types.
type TypeRef struct {
	Kind TypeKind
	Name string   // set when Kind == KindNamed
	Elem *TypeRef // set when Kind == KindList or KindNonNull
}

// Named returns a TypeRef for a bare named type.
func Named(name string) TypeRef {
	return TypeRef{Kind: KindNamed, Name: name}
}

// List wraps a TypeRef in a list type.
func List(inner TypeRef) TypeRef {
	return TypeRef{Kind: KindList, Elem: &inner}
}

// NonNull wraps a TypeRef in a non-null type.
func NonNull(inner TypeRef) TypeRef {
	return TypeRef{Kind: KindNonNull, Elem: &inner}
}

// String renders the TypeRef in SDL syntax, e.g. "[ID!]".
func (t TypeRef) String() string {
	switch t.Kind {
	case KindList:
		return "[" + t.Elem.String() + "]"
	case KindNonNull:
		return t.Elem.String() + "!"
	default:
		return t.Name
	}
}

// Equal reports whether two type expressions are structurally identical.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == KindNamed {
		return t.Name == o.Name
	}
	return t.Elem.Equal(*o.Elem)
}

// FieldDef is one inferred field on an object type.
type FieldDef struct {
	Name string
	Type TypeRef
	Args map[string]TypeRef

	// placeholder marks a field created by AddFieldArg before any AddField
	// registration; the first real registration installs its type instead of
	// widening.
	placeholder bool
}

// Draft is the accumulating schema model. One Draft is created per run,
// mutated by a single walker pass, then rendered once.
//
// Plain maps are fine here: every externally observable section is sorted at
// render time, so the output stays deterministic regardless of insertion or
// iteration order.
type Draft struct {
	Objects map[string]map[string]*FieldDef
	Inputs  map[string]struct{}
	Unions  map[string]map[string]struct{}
	Scalars map[string]struct{}
}

// NewDraft returns an empty draft pre-seeded with the opaque scalar and the
// Query/Mutation roots. Mutation is dropped again at render time if it never
// gains a field.
func NewDraft() *Draft {
	d := &Draft{
		Objects: make(map[string]map[string]*FieldDef),
		Inputs:  make(map[string]struct{}),
		Unions:  make(map[string]map[string]struct{}),
		Scalars: make(map[string]struct{}),
	}
	d.Scalars[OpaqueScalar] = struct{}{}
	d.EnsureObject("Query")
	d.EnsureObject("Mutation")
	return d
}

// EnsureObject creates an empty field map for name if absent.
func (d *Draft) EnsureObject(name string) {
	if _, ok := d.Objects[name]; !ok {
		d.Objects[name] = make(map[string]*FieldDef)
	}
}

// AddField registers a field on an object. A repeat registration with an
// identical type is a no-op; a differing type permanently widens the field to
// the opaque scalar. Widening is one-directional: once opaque, a field never
// narrows back.
func (d *Draft) AddField(object, fieldName string, typ TypeRef) {
	d.EnsureObject(object)
	fields := d.Objects[object]

	existing, ok := fields[fieldName]
	if !ok {
		fields[fieldName] = &FieldDef{
			Name: fieldName,
			Type: typ,
			Args: make(map[string]TypeRef),
		}
		return
	}
	if existing.placeholder {
		existing.Type = typ
		existing.placeholder = false
		return
	}
	if !existing.Type.Equal(typ) {
		existing.Type = Named(OpaqueScalar)
	}
}

// AddFieldArg registers an argument on a field, creating an opaque placeholder
// field entry if the field itself has not been registered yet. Conflicting
// argument types widen the same way field types do.
func (d *Draft) AddFieldArg(object, fieldName, argName string, typ TypeRef) {
	d.EnsureObject(object)
	fields := d.Objects[object]

	field, ok := fields[fieldName]
	if !ok {
		field = &FieldDef{
			Name:        fieldName,
			Type:        Named(OpaqueScalar),
			Args:        make(map[string]TypeRef),
			placeholder: true,
		}
		fields[fieldName] = field
	}

	existing, ok := field.Args[argName]
	if !ok {
		field.Args[argName] = typ
		return
	}
	if !existing.Equal(typ) {
		field.Args[argName] = Named(OpaqueScalar)
	}
}

// IsUnion reports whether name has been synthesized as a union type.
func (d *Draft) IsUnion(name string) bool {
	_, ok := d.Unions[name]
	return ok
}

// AddUnionMember records a member type on a union, creating the union if
// needed. Membership only grows; members are never removed or replaced.
func (d *Draft) AddUnionMember(union, member string) {
	if _, ok := d.Unions[union]; !ok {
		d.Unions[union] = make(map[string]struct{})
	}
	d.Unions[union][member] = struct{}{}
}
