package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/carefinder/carefinder-cli/internal/model"
)

// loadFacilities reads the candidate facility list from a JSON or YAML
// file.
func loadFacilities(path string) ([]model.Facility, error) {
	var facilities []model.Facility
	if err := loadFile(path, &facilities); err != nil {
		return nil, eris.Wrapf(err, "load facilities %s", path)
	}
	return facilities, nil
}

// loadQuestionnaire reads the user questionnaire from a JSON or YAML
// file.
func loadQuestionnaire(path string) (*model.Questionnaire, error) {
	var q model.Questionnaire
	if err := loadFile(path, &q); err != nil {
		return nil, eris.Wrapf(err, "load questionnaire %s", path)
	}
	return &q, nil
}

// loadFile decodes a JSON or YAML file into out, sniffing by extension.
func loadFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrap(err, "read file")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, out); err != nil {
			return eris.Wrap(err, "parse json")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return eris.Wrap(err, "parse yaml")
		}
	default:
		return eris.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
	return nil
}
