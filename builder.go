package docbot

// BuildIndex builds a keyword index from a documentation dump.
//
// Every type contributes one entry under the keyword of its bare name and
// every method, property and constant contributes one entry under the
// keyword of its own name. Entries are never merged or overwritten.
// The first malformed record aborts the build and no index is returned.
func BuildIndex(src *Source) (*Index, error) {
	idx, _, err := (&Builder{}).Build(src)
	return idx, err
}

// Skipped describes a record left out of the index by a Builder running
// with SkipMalformed.
type Skipped struct {
	TypeName string
	Kind     string // "type" or a member kind
	Name     string
	Reason   string
}

// Builder builds indexes. The zero value fails on the first malformed
// record, the same as BuildIndex.
type Builder struct {
	// SkipMalformed leaves out records whose name yields no keyword instead
	// of failing the build. Each skipped record is reported.
	SkipMalformed bool

	// OnSkip, if set, is called for every skipped record.
	OnSkip func(Skipped)
}

// Build builds an index from src and returns it with the records that were
// skipped. A nil source or nil record returns EINVALID regardless of
// SkipMalformed.
func (b *Builder) Build(src *Source) (*Index, []Skipped, error) {
	if src == nil {
		return nil, nil, Errorf(EINVALID, "documentation source required")
	}

	idx := NewIndex()
	var skipped []Skipped

	skip := func(s Skipped) {
		skipped = append(skipped, s)
		if b.OnSkip != nil {
			b.OnSkip(s)
		}
	}

	for i, t := range src.Types {
		if t == nil {
			return nil, nil, Errorf(EINVALID, "type record %d is null", i)
		}

		keyword, err := Keyword(t.Name)
		if err != nil {
			if !b.SkipMalformed {
				return nil, nil, Errorf(EMALFORMED, "type %d: %s", i, ErrorMessage(err))
			}
			// A type without a usable name cannot qualify its members either.
			skip(Skipped{TypeName: t.Name, Kind: "type", Name: t.Name, Reason: ErrorMessage(err)})
			continue
		}
		idx.Add(keyword, &Entry{
			Name: t.Name,
			Desc: t.ShortDescription,
		})

		for _, kind := range MemberKinds() {
			for j, m := range t.Members(kind) {
				if m == nil {
					return nil, nil, Errorf(EINVALID, "type %q: %s record %d is null", t.Name, kind, j)
				}

				keyword, err := Keyword(m.Name)
				if err != nil {
					if !b.SkipMalformed {
						return nil, nil, Errorf(EMALFORMED, "type %q: %s: %s", t.Name, kind, ErrorMessage(err))
					}
					skip(Skipped{TypeName: t.Name, Kind: kind.String(), Name: m.Name, Reason: ErrorMessage(err)})
					continue
				}
				idx.Add(keyword, &Entry{
					Name:      t.Name + "::" + kind.DisplayName(m.Name),
					Desc:      m.ShortDescription,
					DefinedBy: m.DefinedBy,
				})
			}
		}
	}

	return idx, skipped, nil
}
