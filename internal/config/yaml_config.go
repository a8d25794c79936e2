package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"krishisahay/internal/knowledge"
	"krishisahay/internal/models"
)

// KnowledgeFile is the structure of the optional knowledge override file.
// Each map replaces or adds facts in the built-in knowledge base; the mention
// vocabularies and aliases are not configurable.
type KnowledgeFile struct {
	Crops     map[string]string `yaml:"crops"`
	Pests     map[string]string `yaml:"pests"`
	Nutrients map[string]string `yaml:"nutrients"`
}

// LoadKnowledgeFile reads fact overrides from path.
// Returns nil without error if path is empty or the file doesn't exist.
func LoadKnowledgeFile(path string) (*KnowledgeFile, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Override file is optional
			return nil, nil
		}
		return nil, err
	}

	var kf KnowledgeFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &kf, nil
}

// Overrides returns the file's facts keyed by category.
func (k *KnowledgeFile) Overrides() map[models.Category]map[string]string {
	if k == nil {
		return nil
	}
	out := map[models.Category]map[string]string{}
	if len(k.Crops) > 0 {
		out[models.CategoryCrops] = k.Crops
	}
	if len(k.Pests) > 0 {
		out[models.CategoryPests] = k.Pests
	}
	if len(k.Nutrients) > 0 {
		out[models.CategoryFertilizers] = k.Nutrients
	}
	return out
}

// LoadKnowledge builds the knowledge base from the built-in data plus any
// overrides in path.
func LoadKnowledge(path string) (*knowledge.Base, error) {
	kf, err := LoadKnowledgeFile(path)
	if err != nil {
		return nil, err
	}
	base := knowledge.Default()
	if kf == nil {
		return base, nil
	}
	return base.WithFacts(kf.Overrides())
}
