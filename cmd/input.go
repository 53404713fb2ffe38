package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kass/matchmap/pkg/models"
	"gopkg.in/yaml.v3"
)

// readInput reads the named file, or stdin for "" and "-"
func readInput(stdin io.Reader, args []string) (data []byte, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "", nil
	}
	data, err = os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return data, args[0], nil
}

// toJSON converts YAML input to JSON so that a single set of json tags
// drives decoding. JSON input is returned unchanged.
func toJSON(data []byte, name string) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	ext := strings.ToLower(filepath.Ext(name))
	isYAML := ext == ".yaml" || ext == ".yml"
	if !isYAML && len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return trimmed, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return out, nil
}

// decodeMatches accepts a single match or a list of matches
func decodeMatches(data []byte, name string) ([]models.Match, error) {
	raw, err := toJSON(data, name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '{' {
		var m models.Match
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		return []models.Match{m}, nil
	}

	var matches []models.Match
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	return matches, nil
}

func loadMatches(stdin io.Reader, args []string) ([]models.Match, error) {
	data, name, err := readInput(stdin, args)
	if err != nil {
		return nil, err
	}
	return decodeMatches(data, name)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func matchName(m models.Match) string {
	home, away := m.Teams.Home.Name, m.Teams.Away.Name
	if home == "" && away == "" {
		return "match"
	}
	return home + " vs " + away
}
