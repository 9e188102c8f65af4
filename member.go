package docbot

// MemberKind identifies the kind of a type member.
type MemberKind int

// Member kinds, in the order they are indexed.
const (
	MemberMethod MemberKind = iota
	MemberProperty
	MemberConstant
)

// MemberKinds returns every member kind in indexing order.
func MemberKinds() []MemberKind {
	return []MemberKind{MemberMethod, MemberProperty, MemberConstant}
}

// String returns the generator's field name for the kind.
func (k MemberKind) String() string {
	switch k {
	case MemberMethod:
		return "methods"
	case MemberProperty:
		return "properties"
	case MemberConstant:
		return "constants"
	default:
		return "unknown"
	}
}

// DisplayName returns the member name as it appears after "::" in an
// entry name. Only methods are decorated; property names already carry
// their "$" from the generator.
func (k MemberKind) DisplayName(name string) string {
	if k == MemberMethod {
		return name + "()"
	}
	return name
}
