package utils

import (
	"strconv"
	"strings"
)

// CrossRef builds the filtered-listing links that accompany aggregates on the
// administrative surface: each count or collection links to "show these N
// rows" via a comma-joined identifier set. Centralised here so the href rule
// is not repeated per entity.
type CrossRef struct {
	base string
}

// NewCrossRef constructs a link builder rooted at the given base path.
// An empty base defaults to /admin.
func NewCrossRef(base string) CrossRef {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = "/admin"
	}
	return CrossRef{base: base}
}

// Link renders a filtered listing URL for the resource, e.g.
// /admin/students?id__in=1,2,3. An empty id set yields an empty link.
func (c CrossRef) Link(resource string, ids []uint) string {
	if len(ids) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(c.base)
	b.WriteByte('/')
	b.WriteString(strings.Trim(resource, "/"))
	b.WriteString("?id__in=")
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}
