package mindmap

import (
	"strconv"
	"strings"
	"unicode"
)

// IDRegistry issues node ids for one document build. Every id it returns is
// distinct from every other id it has returned.
type IDRegistry struct {
	issued   map[string]struct{}
	counters map[string]int
}

// NewIDRegistry creates an empty registry.
func NewIDRegistry() *IDRegistry {
	return &IDRegistry{
		issued:   make(map[string]struct{}),
		counters: make(map[string]int),
	}
}

// Slug normalizes a label: lower-cased, every non-word rune replaced by '-',
// runs of '-' collapsed to one.
func Slug(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	dash := false
	for _, r := range strings.ToLower(label) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return b.String()
}

// Assign returns a unique id for label.
func (r *IDRegistry) Assign(label string) string {
	return r.Reserve(Slug(label))
}

// Reserve claims id as-is if nothing has claimed it yet, otherwise returns
// id with a "-N" suffix, N counting up per base.
func (r *IDRegistry) Reserve(id string) string {
	if _, taken := r.issued[id]; !taken {
		r.issued[id] = struct{}{}
		return id
	}
	for {
		r.counters[id]++
		candidate := id + "-" + strconv.Itoa(r.counters[id])
		if _, taken := r.issued[candidate]; !taken {
			r.issued[candidate] = struct{}{}
			return candidate
		}
	}
}

// Len returns the number of ids issued so far.
func (r *IDRegistry) Len() int {
	return len(r.issued)
}
