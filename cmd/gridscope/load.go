package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxGridFileSize bounds input files; puzzle grids are tiny.
const maxGridFileSize = 1 << 20

var (
	errEmptyGridFile = errors.New("grid file is empty")
	errNoGridKey     = errors.New(`grid file mapping has no "grid" key`)
)

// gridFile is the mapping form of a grid file: {grid: [[...], ...]}.
type gridFile struct {
	Grid *[][]int `yaml:"grid"`
}

// loadGrid reads a YAML or JSON grid file. Two shapes are accepted: a bare
// list of rows, or a mapping with a "grid" key.
func loadGrid(path string) ([][]int, error) {
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat grid file: %w", err)
	}
	if info.Size() > maxGridFileSize {
		return nil, fmt.Errorf("grid file too large: %d bytes (max %d)", info.Size(), maxGridFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	return parseGrid(data)
}

// parseGrid decodes a bare list of rows or a {grid: rows} mapping. An empty
// document or a mapping without a "grid" key is an error; an explicit empty
// list is a valid empty grid.
func parseGrid(data []byte) ([][]int, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse grid: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, errEmptyGridFile
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var rows [][]int
		if err := root.Decode(&rows); err != nil {
			return nil, fmt.Errorf("failed to parse grid: %w", err)
		}
		return rows, nil
	case yaml.MappingNode:
		var f gridFile
		if err := root.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse grid: %w", err)
		}
		if f.Grid == nil {
			return nil, errNoGridKey
		}
		return *f.Grid, nil
	default:
		return nil, fmt.Errorf("failed to parse grid: expected a list of rows or a mapping, got %q", root.Value)
	}
}
