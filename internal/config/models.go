package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model is one entry of the ordered fallback list
type Model struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ModelsConfig holds the ordered model fallback list. The first entry is
// tried first; later entries are fallbacks.
type ModelsConfig struct {
	models []Model
}

// NewModelsConfig loads the fallback list from a JSON file
func NewModelsConfig(configPath string) (*ModelsConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var models []Model
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("models config %s is empty", configPath)
	}

	return &ModelsConfig{models: models}, nil
}

// FallbackOrder returns model IDs in the order they should be tried
func (mc *ModelsConfig) FallbackOrder() []string {
	ids := make([]string, len(mc.models))
	for i, m := range mc.models {
		ids[i] = m.ID
	}
	return ids
}

// Models returns the configured list
func (mc *ModelsConfig) Models() []Model {
	return mc.models
}

// GetDefaultModel returns the first model of the list
func (mc *ModelsConfig) GetDefaultModel() string {
	if len(mc.models) > 0 {
		return mc.models[0].ID
	}
	return ""
}
