package almanac

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/rangemap/pkg/remap"
)

// Document is the YAML rendition of an Almanac.
type Document struct {
	Seeds  []int64         `yaml:"seeds"`
	Stages []StageDocument `yaml:"stages"`
}

type StageDocument struct {
	Name    string          `yaml:"name"`
	Entries []EntryDocument `yaml:"entries"`
}

type EntryDocument struct {
	Destination int64 `yaml:"destination"`
	Source      int64 `yaml:"source"`
	Length      int64 `yaml:"length"`
}

// ParseYAML reads the YAML form.
func ParseYAML(r io.Reader) (*Almanac, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseErrorf(0, "empty document")
		}
		return nil, parseErrorf(0, "%v", err)
	}
	return doc.Almanac()
}

// Almanac validates every stage of the document.
func (d Document) Almanac() (*Almanac, error) {
	a := &Almanac{Seeds: d.Seeds}
	for i, s := range d.Stages {
		if s.Name == "" {
			return nil, parseErrorf(0, "stage %d has no name", i+1)
		}
		entries := make([]remap.Entry, 0, len(s.Entries))
		for _, e := range s.Entries {
			if e.Length <= 0 {
				return nil, parseErrorf(0, "in %s: range length must be positive, got %d", s.Name, e.Length)
			}
			entries = append(entries, remap.Entry{DestinationStart: e.Destination, SourceStart: e.Source, Length: e.Length})
		}
		stage, err := remap.NewStage(s.Name, entries...)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i+1, err)
		}
		a.Stages = append(a.Stages, stage)
	}
	return a, nil
}

// Document renders a with every stage's entries in validated order.
func (a *Almanac) Document() Document {
	doc := Document{Seeds: a.Seeds, Stages: make([]StageDocument, 0, len(a.Stages))}
	for _, stage := range a.Stages {
		s := StageDocument{Name: stage.Name()}
		for _, e := range stage.Entries() {
			s.Entries = append(s.Entries, EntryDocument{Destination: e.DestinationStart, Source: e.SourceStart, Length: e.Length})
		}
		doc.Stages = append(doc.Stages, s)
	}
	return doc
}

// WriteYAML encodes a's Document to w.
func WriteYAML(w io.Writer, a *Almanac) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a.Document()); err != nil {
		return err
	}
	return enc.Close()
}
