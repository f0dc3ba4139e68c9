package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	squillerrors "squill.dev/squill/internal/errors"
)

func TestParseProperties(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{"empty file", "", map[string]string{}},
		{"parent", "Parent: abc\n", map[string]string{"Parent": "abc"}},
		{"missing final newline", "Parent: abc", map[string]string{"Parent": "abc"}},
		{"unknown properties are kept", "Parent: abc\nAuthor: me\n", map[string]string{"Parent": "abc", "Author": "me"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			props, err := parseProperties(strings.NewReader(tc.input), "revision")
			require.NoError(t, err)
			require.Equal(t, tc.expected, props)
		})
	}
}

func TestParsePropertiesErrors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		message string
		kind    error
	}{
		{"no colon", "xxx\n", `malformed line: "xxx\n" (revision:1)`, squillerrors.ErrMalformedLine},
		{"no space after colon", "Parent:abc\n", `malformed line: "Parent:abc\n" (revision:1)`, squillerrors.ErrMalformedLine},
		{"two spaces after colon", "Parent:  abc\n", `malformed line: "Parent:  abc\n" (revision:1)`, squillerrors.ErrMalformedLine},
		{"trailing whitespace", "Parent: abc \n", `malformed line: "Parent: abc \n" (revision:1)`, squillerrors.ErrMalformedLine},
		{"value with space", "Parent: a b\n", `malformed line: "Parent: a b\n" (revision:1)`, squillerrors.ErrMalformedLine},
		{"blank line", "Parent: abc\n\n", `malformed line: "\n" (revision:2)`, squillerrors.ErrMalformedLine},
		{"last line without newline", "Parent: abc\nxxx", `malformed line: "xxx" (revision:2)`, squillerrors.ErrMalformedLine},
		{"duplicate property", "foo: bar\nfoo: bar\n", `duplicate property: "foo" (revision:2)`, squillerrors.ErrDuplicateProperty},
		{"duplicate with different values", "Parent: a\nfoo: x\nParent: b\n", `duplicate property: "Parent" (revision:3)`, squillerrors.ErrDuplicateProperty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseProperties(strings.NewReader(tc.input), "revision")
			require.EqualError(t, err, tc.message)
			require.ErrorIs(t, err, squillerrors.ErrRead)
			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestStore(t *testing.T) {
	t.Run("create writes placeholders and metadata", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "nested", "repo")
		s := &store{root: root}

		require.NoError(t, s.create(Revision{Key: "a"}))
		require.NoError(t, s.create(Revision{Key: "b", Parent: "a"}))

		for _, name := range []string{DeployScriptFilename, RevertScriptFilename} {
			data, err := os.ReadFile(filepath.Join(root, "a", name))
			require.NoError(t, err)
			require.Empty(t, data)
		}

		data, err := os.ReadFile(filepath.Join(root, "b", RevisionFilename))
		require.NoError(t, err)
		require.Equal(t, "Parent: a\n", string(data))

		revisions, err := s.scan()
		require.NoError(t, err)
		require.Equal(t, map[string]Revision{
			"a": {Key: "a"},
			"b": {Key: "b", Parent: "a"},
		}, revisions)
	})

	t.Run("create fails on existing directory", func(t *testing.T) {
		root := t.TempDir()
		s := &store{root: root}
		require.NoError(t, os.Mkdir(filepath.Join(root, "a"), 0755))

		err := s.create(Revision{Key: "a"})
		require.ErrorIs(t, err, squillerrors.ErrDuplicateRevision)
	})

	t.Run("write overwrites metadata", func(t *testing.T) {
		s := &store{root: t.TempDir()}
		require.NoError(t, s.create(Revision{Key: "a"}))
		require.NoError(t, s.create(Revision{Key: "b", Parent: "a"}))

		require.NoError(t, s.write(Revision{Key: "b"}))

		rev, err := s.read(s.metadataPath("b"))
		require.NoError(t, err)
		require.Equal(t, Revision{Key: "b"}, rev)
		require.True(t, rev.IsRoot())
	})

	t.Run("read keeps unknown properties out of the revision", func(t *testing.T) {
		s := &store{root: t.TempDir()}
		require.NoError(t, os.Mkdir(s.revisionDir("x"), 0755))
		require.NoError(t, os.WriteFile(s.metadataPath("x"), []byte("Author: me\nParent: y\n"), 0644))

		rev, err := s.read(s.metadataPath("x"))
		require.NoError(t, err)
		require.Equal(t, Revision{Key: "x", Parent: "y"}, rev)
	})
}
