package docbot

import (
	"regexp"
	"strings"
)

// trailingWordRe matches the bare name at the end of a qualified name,
// e.g. "Query" in `yii\db\Query` or "query" in "$query".
var trailingWordRe = regexp.MustCompile(`\w+$`)

// Normalize returns s with underscores removed, in lower case.
// It is applied to names when indexing and to tokens when looking up.
func Normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// Keyword derives the index keyword for an API item name.
// Returns EMALFORMED if the name does not end in an identifier or the
// identifier normalizes to an empty string.
func Keyword(name string) (string, error) {
	bare := trailingWordRe.FindString(name)
	if bare == "" {
		return "", Errorf(EMALFORMED, "name %q has no identifier", name)
	}
	keyword := Normalize(bare)
	if keyword == "" {
		return "", Errorf(EMALFORMED, "name %q normalizes to an empty keyword", name)
	}
	return keyword, nil
}
