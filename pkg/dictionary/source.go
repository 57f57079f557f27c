package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk representation of a dictionary
type File struct {
	Name        string                 `yaml:"name,omitempty" json:"name,omitempty"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  []*AttributeDefinition `yaml:"attributes" json:"attributes"`
}

var decoders = map[string]func([]byte, any) error{
	"yaml": yaml.Unmarshal,
	"json": json.Unmarshal,
}

// FileSource loads attribute definitions from YAML or JSON files
type FileSource struct {
	// Path is a single file to load
	Path string

	// Paths are additional files, loaded after Path
	Paths []string

	// Dir is scanned for *.yaml, *.yml and *.json files, loaded in name order
	Dir string

	// Format forces "yaml" or "json"; empty or "auto" picks by extension and content
	Format string
}

// Load reads the configured files into a new Dictionary
func (s *FileSource) Load(ctx context.Context) (*Dictionary, error) {
	dict := New()
	if err := s.LoadInto(ctx, dict); err != nil {
		return nil, err
	}
	return dict, nil
}

// LoadInto reads every configured file and registers their attributes in dict
// as one batch: a conflict with dict or between files leaves dict unchanged.
func (s *FileSource) LoadInto(ctx context.Context, dict *Dictionary) error {
	paths, err := s.files()
	if err != nil {
		return err
	}

	var attrs []*AttributeDefinition
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		file, err := s.readFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		attrs = append(attrs, file.Attributes...)
	}

	if err := dict.AddStandardAttributes(attrs); err != nil {
		return fmt.Errorf("failed to merge %s: %w", strings.Join(paths, ", "), err)
	}
	return nil
}

func (s *FileSource) files() ([]string, error) {
	var paths []string
	if s.Path != "" {
		paths = append(paths, s.Path)
	}
	paths = append(paths, s.Paths...)

	if s.Dir != "" {
		found, err := scanDir(s.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.Dir, err)
		}
		paths = append(paths, found...)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no dictionary files configured")
	}
	return paths, nil
}

func scanDir(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return paths, nil
}

func (s *FileSource) readFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	format := s.Format
	if format == "" || format == "auto" {
		format = detectFormat(path, data)
	}
	if format == "yml" {
		format = "yaml"
	}

	decode, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	var file File
	if err := decode(data, &file); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", format, err)
	}
	return &file, nil
}

// detectFormat picks the decoder by extension, then by the first non-blank byte
func detectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}

	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return "json"
	}
	return "yaml"
}
