// Package jsonparser decodes yii2-apidoc JSON dumps into documentation
// sources without losing the order in which the generator emitted them.
package jsonparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/buger/jsonparser"
	"github.com/fwojciec/docbot"
)

// Ensure SourceParser implements docbot.SourceParser at compile time.
var _ docbot.SourceParser = (*SourceParser)(nil)

// SourceParser implements docbot.SourceParser for yii2-apidoc output.
type SourceParser struct{}

// NewSourceParser creates a new SourceParser.
func NewSourceParser() *SourceParser {
	return &SourceParser{}
}

// ParseSource reads the whole dump from r and parses it.
func (p *SourceParser) ParseSource(r io.Reader) (*docbot.Source, error) {
	if r == nil {
		return nil, docbot.Errorf(docbot.EINVALID, "documentation source required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read documentation source: %w", err)
	}
	return Parse(data)
}

// Parse decodes a dump. The top level must be an object mapping type names
// to type records; types and members keep their document order.
func Parse(data []byte) (*docbot.Source, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, docbot.Errorf(docbot.EINVALID, "documentation source is empty")
	}
	if data[0] != '{' {
		return nil, docbot.Errorf(docbot.EINVALID, "documentation source must be an object of type records")
	}

	src := &docbot.Source{Types: []*docbot.TypeRecord{}}
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		if dataType != jsonparser.Object {
			return docbot.Errorf(docbot.EINVALID, "type record %q is not an object", unquote(key))
		}
		t, err := parseType(value)
		if err != nil {
			return err
		}
		src.Types = append(src.Types, t)
		return nil
	})
	if err != nil {
		return nil, invalid(err)
	}
	return src, nil
}

func parseType(data []byte) (*docbot.TypeRecord, error) {
	var t docbot.TypeRecord
	var err error

	if t.Name, err = stringField(data, "name"); err != nil {
		return nil, err
	}
	if t.ShortDescription, err = stringField(data, "shortDescription"); err != nil {
		return nil, err
	}

	for _, kind := range docbot.MemberKinds() {
		members, err := memberField(data, kind)
		if err != nil {
			return nil, err
		}
		switch kind {
		case docbot.MemberMethod:
			t.Methods = members
		case docbot.MemberProperty:
			t.Properties = members
		case docbot.MemberConstant:
			t.Constants = members
		}
	}

	return &t, nil
}

// memberField reads the members of one kind. Objects and arrays are walked
// in document order; null, false and a missing field mean no members.
func memberField(data []byte, kind docbot.MemberKind) ([]*docbot.MemberRecord, error) {
	key := kind.String()
	value, dataType, _, err := jsonparser.Get(data, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var members []*docbot.MemberRecord
	switch dataType {
	case jsonparser.Object:
		err = jsonparser.ObjectEach(value, func(k, v []byte, t jsonparser.ValueType, _ int) error {
			if t != jsonparser.Object {
				return docbot.Errorf(docbot.EINVALID, "%s record %q is not an object", key, unquote(k))
			}
			m, err := parseMember(v)
			if err != nil {
				return err
			}
			members = append(members, m)
			return nil
		})
	case jsonparser.Array:
		var cbErr error
		_, err = jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, _ error) {
			if cbErr != nil {
				return
			}
			if t != jsonparser.Object {
				cbErr = docbot.Errorf(docbot.EINVALID, "%s record %d is not an object", key, len(members))
				return
			}
			m, err := parseMember(v)
			if err != nil {
				cbErr = err
				return
			}
			members = append(members, m)
		})
		if err == nil {
			err = cbErr
		}
	case jsonparser.Null, jsonparser.Boolean:
		return nil, nil
	default:
		return nil, docbot.Errorf(docbot.EINVALID, "%s must be an object or an array", key)
	}
	if err != nil {
		return nil, err
	}
	return members, nil
}

func parseMember(data []byte) (*docbot.MemberRecord, error) {
	var m docbot.MemberRecord
	var err error

	if m.Name, err = stringField(data, "name"); err != nil {
		return nil, err
	}
	if m.ShortDescription, err = stringField(data, "shortDescription"); err != nil {
		return nil, err
	}
	if m.DefinedBy, err = stringField(data, "definedBy"); err != nil {
		return nil, err
	}
	return &m, nil
}

// stringField reads a string field of an object. Missing and null fields
// read as the empty string.
func stringField(data []byte, key string) (string, error) {
	value, dataType, _, err := jsonparser.Get(data, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return "", nil
	} else if err != nil {
		return "", err
	}

	switch dataType {
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Null:
		return "", nil
	default:
		return "", docbot.Errorf(docbot.EINVALID, "field %q is not a string", key)
	}
}

// invalid maps decoding failures onto EINVALID, leaving application errors
// untouched.
func invalid(err error) error {
	var e *docbot.Error
	if errors.As(err, &e) {
		return err
	}
	return docbot.Errorf(docbot.EINVALID, "malformed documentation JSON: %v", err)
}

func unquote(key []byte) string {
	s, err := jsonparser.ParseString(key)
	if err != nil {
		return string(key)
	}
	return s
}
