// Package corpus provides annotated Portuguese sentences in BIO format,
// loading of external corpora from YAML files, and gazetteer extraction.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Annotation is a single (word, BIO tag) pair.
type Annotation struct {
	Word string
	Tag  string
}

// UnmarshalYAML accepts either a two element sequence `[word, tag]` or a
// mapping with `word` and `tag` keys.
func (a *Annotation) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		if len(value.Content) != 2 {
			return fmt.Errorf("nerbr: annotation sequence must have 2 elements, got %d", len(value.Content))
		}
		a.Word = value.Content[0].Value
		a.Tag = value.Content[1].Value
		return nil
	}
	var aux struct {
		Word string `yaml:"word"`
		Tag  string `yaml:"tag"`
	}
	if err := value.Decode(&aux); err != nil {
		return fmt.Errorf("nerbr: %w", err)
	}
	a.Word = aux.Word
	a.Tag = aux.Tag
	return nil
}

// MarshalYAML renders the annotation as a compact two element sequence.
func (a Annotation) MarshalYAML() (interface{}, error) {
	return []string{a.Word, a.Tag}, nil
}

// Sentence is a fully annotated training sentence.
type Sentence struct {
	Text        string       `yaml:"text"`
	Domain      string       `yaml:"domain"`
	Annotations []Annotation `yaml:"annotations"`
}

// Words returns the tokens of the sentence in order.
func (s Sentence) Words() []string {
	words := make([]string, len(s.Annotations))
	for i, a := range s.Annotations {
		words[i] = a.Word
	}
	return words
}

// Tags returns the BIO labels of the sentence in order.
func (s Sentence) Tags() []string {
	tags := make([]string, len(s.Annotations))
	for i, a := range s.Annotations {
		tags[i] = a.Tag
	}
	return tags
}

type corpusFile struct {
	Sentences []Sentence `yaml:"sentences"`
}

// Load reads annotated sentences from a YAML file.
func Load(path string) ([]Sentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nerbr: %w", err)
	}
	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("nerbr: %w", err)
	}
	for i, s := range file.Sentences {
		for j, a := range s.Annotations {
			if a.Word == "" {
				return nil, fmt.Errorf("nerbr: sentence %d annotation %d has empty word", i, j)
			}
		}
	}
	return file.Sentences, nil
}

// Save writes annotated sentences to a YAML file.
func Save(path string, sentences []Sentence) error {
	data, err := yaml.Marshal(corpusFile{Sentences: sentences})
	if err != nil {
		return fmt.Errorf("nerbr: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("nerbr: %w", err)
	}
	return nil
}
