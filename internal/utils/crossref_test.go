package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCrossRefLink(t *testing.T) {
	crossref := NewCrossRef("/admin")

	require.Equal(t, "/admin/students?id__in=1,2,3", crossref.Link("students", []uint{1, 2, 3}))
	require.Equal(t, "/admin/courses?id__in=42", crossref.Link("/courses/", []uint{42}))
	require.Empty(t, crossref.Link("students", nil), "no ids means no link")
}

func TestNewCrossRefNormalisesBase(t *testing.T) {
	require.Equal(t, "/panel/students?id__in=1", NewCrossRef("/panel/").Link("students", []uint{1}))
	require.Equal(t, "/admin/students?id__in=1", NewCrossRef("").Link("students", []uint{1}))
	require.Equal(t, "/admin/students?id__in=1", NewCrossRef("  ").Link("students", []uint{1}))
}
