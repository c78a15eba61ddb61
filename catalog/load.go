package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the YAML layout of a catalog.
type file struct {
	Project           string   `yaml:"project"`
	Document          string   `yaml:"document"`
	RootDocuments     []string `yaml:"root_documents"`
	Auxiliary         []string `yaml:"auxiliary"`
	MarkdownSummaries bool     `yaml:"markdown_summaries"`
	Labels            Labels   `yaml:"labels"`
	Directories       []Entry  `yaml:"directories"`
}

// Load reads a YAML catalog from the named file.
func Load(filename string) (*Catalog, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Unknown keys, duplicate directories and
// invalid entries are errors. An empty document yields an empty catalog with
// default settings.
func Parse(r io.Reader) (*Catalog, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	b := NewBuilder(Settings{
		Project:           doc.Project,
		Document:          doc.Document,
		RootDocuments:     doc.RootDocuments,
		Auxiliary:         doc.Auxiliary,
		MarkdownSummaries: doc.MarkdownSummaries,
		Labels:            doc.Labels,
	})
	for i, e := range doc.Directories {
		if err := b.Add(e); err != nil {
			return nil, fmt.Errorf("directories[%d]: %w", i, err)
		}
	}
	return b.Build()
}
