package content

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `owner: Ada Lovelace
title: Ada — Engineer
hero:
  greeting: Hello!
  intro: Building *analytical* engines.
  email: ada@example.com
headings:
  education:
    title: Schooling
projects:
  - title: Engine
    summary: Difference engine notes.
    bullets:
      - First bullet
      - Second bullet
      - Third bullet
    tech: Brass • Steam
skills:
  - category: Maths
    icon: code
    skills: [Analysis, Algebra]
publications:
  - title: Notes
    venue: Scientific Memoirs
    date: "1843"
    url: https://example.com/notes
socials:
  - label: GitHub
    icon: github
    url: https://github.com/ada
`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, "Ada Lovelace", p.Owner)
	assert.Equal(t, "Schooling", p.Heading(SectionEducation).Title)
	assert.Empty(t, p.Heading(SectionProjects).Title)
	require.Len(t, p.Projects, 1)
	if diff := cmp.Diff([]string{"First bullet", "Second bullet", "Third bullet"}, p.Projects[0].Bullets); diff != "" {
		t.Errorf("bullets mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Analysis", "Algebra"}, p.Skills[0].Skills)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("owner: x\nprojcts: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projcts")
}

func TestDecode_EmptyDocument(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello!", p.Hero.Greeting)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestEncode_ScaffoldsLoadableContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	p, err := Decode(&buf)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	if diff := cmp.Diff(Default(), p); diff != "" {
		t.Errorf("scaffolded content differs (-want +got):\n%s", diff)
	}
}
