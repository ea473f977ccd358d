package nerbr

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tupilabs/nerbr/crf"
	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/hmm"
	"github.com/tupilabs/nerbr/maxent"
	"github.com/tupilabs/nerbr/perceptron"
	"github.com/tupilabs/nerbr/span"
)

type modelFile struct {
	CRF        *crf.Model         `json:"crf"`
	HMM        *hmm.Model         `json:"hmm"`
	MaxEnt     *maxent.Model      `json:"maxent"`
	Perceptron *perceptron.Model  `json:"perceptron"`
	Span       *span.Model        `json:"span"`
	Gazetteers feature.Gazetteers `json:"gazetteers"`
}

// Save writes all models and the gazetteers to a single JSON file.
func (t *Tagger) Save(path string) error {
	data, err := json.Marshal(modelFile{
		CRF:        t.CRF,
		HMM:        t.HMM,
		MaxEnt:     t.MaxEnt,
		Perceptron: t.Perceptron,
		Span:       t.Span,
		Gazetteers: t.Gazetteers,
	})
	if err != nil {
		return fmt.Errorf("nerbr: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("nerbr: %w", err)
	}
	return nil
}

// Load reads a tagger previously written by Save.
func Load(path string) (*Tagger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nerbr: %w", err)
	}
	var file modelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("nerbr: %w", err)
	}
	t := &Tagger{
		CRF:        file.CRF,
		HMM:        file.HMM,
		MaxEnt:     file.MaxEnt,
		Perceptron: file.Perceptron,
		Span:       file.Span,
		Gazetteers: file.Gazetteers,
	}
	if t.Gazetteers.Persons == nil {
		t.Gazetteers = feature.NewGazetteers()
	}
	return t, nil
}
