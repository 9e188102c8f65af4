package docbot

import "io"

// TypeRecord is the documentation of one class, trait or interface as
// emitted by the API documentation generator.
type TypeRecord struct {
	// Fully-qualified, namespace-separated name, e.g. `yii\db\Query`.
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`

	Methods    []*MemberRecord `json:"methods,omitempty"`
	Properties []*MemberRecord `json:"properties,omitempty"`
	Constants  []*MemberRecord `json:"constants,omitempty"`
}

// Members returns the members of the given kind in source order.
func (t *TypeRecord) Members(kind MemberKind) []*MemberRecord {
	switch kind {
	case MemberMethod:
		return t.Methods
	case MemberProperty:
		return t.Properties
	case MemberConstant:
		return t.Constants
	}
	return nil
}

// MemberRecord is the documentation of one method, property or constant.
type MemberRecord struct {
	// Name as stored by the generator. Properties carry their leading "$",
	// methods do not carry "()".
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`

	// Fully-qualified name of the type that declares the member. Differs
	// from the containing type for inherited members.
	DefinedBy string `json:"definedBy"`
}

// Source is a fully materialized documentation dump. Types are kept in the
// order the generator emitted them.
type Source struct {
	Types []*TypeRecord `json:"types"`
}

// SourceParser decodes a documentation dump.
type SourceParser interface {
	// ParseSource reads a documentation dump from r.
	// Returns EINVALID if the input is not a mapping of type records.
	ParseSource(r io.Reader) (*Source, error)
}
