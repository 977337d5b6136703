package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pizza = `@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix ex: <http://ex/pizza#> .

<http://ex/pizza> a owl:Ontology .
ex:Food a owl:Class ; rdfs:label "Food" .
ex:Pizza a owl:Class ; rdfs:subClassOf ex:Food .
`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pizza.ttl")
	require.NoError(t, os.WriteFile(path, []byte(pizza), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDocumentURI(t *testing.T) {
	assert.Equal(t, "http://ex/onto", documentURI("http://ex/onto"))

	uri := documentURI("onto.ttl")
	assert.True(t, strings.HasPrefix(uri, "file://"))
	path, ok := localFile(uri)
	require.True(t, ok)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "onto.ttl", filepath.Base(path))

	_, ok = localFile("http://ex/onto")
	assert.False(t, ok)
}

func TestHierarchyJSON(t *testing.T) {
	out, err := run(t, "hierarchy", "--format", "json", writeDoc(t))
	require.NoError(t, err)

	var export struct {
		Nodes []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"nodes"`
		Edges []struct {
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &export))
	assert.Len(t, export.Nodes, 2)
	require.Len(t, export.Edges, 1)
	assert.Contains(t, export.Edges[0].Source, "Pizza")
	assert.Contains(t, export.Edges[0].Target, "Food")
}

func TestHierarchyUnknownFormat(t *testing.T) {
	_, err := run(t, "hierarchy", "--format", "svg", writeDoc(t))
	require.Error(t, err)
}

func TestWriteNTriples(t *testing.T) {
	out, err := run(t, "write", "--format", "nt", writeDoc(t))
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, " .\n"))
	assert.Contains(t, out, "<http://ex/pizza#Pizza> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://ex/pizza#Food>")
}

func TestUnknownLanguage(t *testing.T) {
	_, err := run(t, "--lang", "klingon", "classes", writeDoc(t))
	require.Error(t, err)
}
