package cache

import (
	"sort"
	"strings"
)

// Key identifies one cached query: a kind (the resource family, e.g. a topic
// collection) plus the canonicalized query parameters. Two keys built from the
// same kind and the same parameters are equal regardless of the order the
// parameters were supplied in, so they share one cache slot.
type Key struct {
	kind      string
	canonical string
}

// NewKey builds a Key for the given kind. Parameters are serialized sorted by
// name so the representation is canonical.
func NewKey(kind string, params map[string]string) Key {
	if len(params) == 0 {
		return Key{kind: kind, canonical: kind}
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(kind)
	for _, name := range names {
		b.WriteByte('|')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}

	return Key{kind: kind, canonical: b.String()}
}

// Kind returns the resource family the key belongs to.
func (k Key) Kind() string {
	return k.kind
}

// String returns the canonical representation of the key.
func (k Key) String() string {
	return k.canonical
}
