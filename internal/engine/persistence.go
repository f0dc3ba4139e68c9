package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	squillerrors "squill.dev/squill/internal/errors"
)

const (
	// RevisionFilename is the name of the metadata file in a revision directory
	RevisionFilename = "revision"
	// DeployScriptFilename is the name of the deploy script in a revision directory
	DeployScriptFilename = "deploy.sql"
	// RevertScriptFilename is the name of the revert script in a revision directory
	RevertScriptFilename = "revert.sql"
	// ParentProperty is the only metadata property interpreted by the engine
	ParentProperty = "Parent"
)

// propertyPattern matches one metadata line without its trailing newline
var propertyPattern = regexp.MustCompile(`^([^:]+): (\S+)$`)

// store maps revisions to directories below root
type store struct {
	root string
}

func (s *store) revisionDir(key string) string {
	return filepath.Join(s.root, key)
}

func (s *store) metadataPath(key string) string {
	return filepath.Join(s.root, key, RevisionFilename)
}

// scan reads every revision directory below root.
// A root that does not exist yet holds no revisions.
func (s *store) scan() (map[string]Revision, error) {
	revisions := make(map[string]Revision)

	if _, err := os.Stat(s.root); errors.Is(err, fs.ErrNotExist) {
		return revisions, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", s.root, err)
	}

	matches, err := doublestar.Glob(os.DirFS(s.root), "*/"+RevisionFilename,
		doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("failed to scan repository %s: %w", s.root, err)
	}

	for _, match := range matches {
		rev, err := s.read(filepath.Join(s.root, filepath.FromSlash(match)))
		if err != nil {
			return nil, err
		}
		revisions[rev.Key] = rev
	}

	return revisions, nil
}

// read reads the metadata file at path. The revision key is the name of
// the directory containing the file.
func (s *store) read(path string) (Revision, error) {
	f, err := os.Open(path)
	if err != nil {
		return Revision{}, fmt.Errorf("failed to open metadata %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	props, err := parseProperties(f, path)
	if err != nil {
		return Revision{}, err
	}

	return Revision{
		Key:    filepath.Base(filepath.Dir(path)),
		Parent: props[ParentProperty],
	}, nil
}

// write overwrites the metadata file of rev
func (s *store) write(rev Revision) error {
	var content string
	if rev.Parent != "" {
		content = fmt.Sprintf("%s: %s\n", ParentProperty, rev.Parent)
	}

	if err := os.WriteFile(s.metadataPath(rev.Key), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write metadata for %s: %w", rev.Key, err)
	}

	return nil
}

// create makes the directory of a new revision with empty scripts and
// writes its metadata. The directory is removed again if any step fails.
func (s *store) create(rev Revision) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create repository %s: %w", s.root, err)
	}

	dir := s.revisionDir(rev.Key)
	if err := os.Mkdir(dir, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return squillerrors.NewDuplicateRevisionError(rev.Key)
		}
		return fmt.Errorf("failed to create revision %s: %w", rev.Key, err)
	}

	if err := s.populate(dir, rev); err != nil {
		_ = os.RemoveAll(dir)
		return err
	}

	return nil
}

func (s *store) populate(dir string, rev Revision) error {
	for _, name := range []string{DeployScriptFilename, RevertScriptFilename} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			return fmt.Errorf("failed to create %s for %s: %w", name, rev.Key, err)
		}
	}
	return s.write(rev)
}

// parseProperties parses metadata lines of the form "Name: value".
// Line numbers in errors are 1-based.
func parseProperties(r io.Reader, path string) (map[string]string, error) {
	props := make(map[string]string)
	br := bufio.NewReader(r)

	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read metadata %s: %w", path, err)
		}
		if line == "" {
			break
		}

		match := propertyPattern.FindStringSubmatch(strings.TrimSuffix(line, "\n"))
		if match == nil {
			return nil, squillerrors.NewMalformedLineError(line, path, lineno)
		}

		name, value := match[1], match[2]
		if _, ok := props[name]; ok {
			return nil, squillerrors.NewDuplicatePropertyError(name, path, lineno)
		}
		props[name] = value

		if err != nil {
			break // last line without newline
		}
	}

	return props, nil
}
