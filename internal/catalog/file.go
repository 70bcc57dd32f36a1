package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tinysteps/internal/model"
)

// Format names a catalogue serialisation.
type Format string

const (
	FormatTOML   Format = "toml"
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

type fileCatalogue struct {
	AgeGroups []fileAgeGroup `toml:"age-group,omitempty" yaml:"age-groups,omitempty" json:"ageGroups,omitempty"`
	Records   []fileRecord   `toml:"record" yaml:"records" json:"records"`
}

type fileAgeGroup struct {
	ID        string `toml:"id" yaml:"id" json:"id" validate:"required"`
	Label     string `toml:"label" yaml:"label" json:"label" validate:"required"`
	MinMonths int    `toml:"min-months" yaml:"min-months" json:"minMonths" validate:"gte=0"`
	MaxMonths int    `toml:"max-months" yaml:"max-months" json:"maxMonths" validate:"gtefield=MinMonths"`
}

type fileRecord struct {
	ID               string     `toml:"id" yaml:"id" json:"id" validate:"required"`
	Category         string     `toml:"category" yaml:"category" json:"category" validate:"required"`
	Kind             string     `toml:"kind,omitempty" yaml:"kind,omitempty" json:"type,omitempty" validate:"omitempty,oneof=milestone essential"`
	Icon             string     `toml:"icon,omitempty" yaml:"icon,omitempty" json:"icon,omitempty"`
	Title            string     `toml:"title" yaml:"title" json:"title" validate:"required"`
	ShortDescription string     `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	LongDescription  string     `toml:"full-description,omitempty" yaml:"full-description,omitempty" json:"fullDescription,omitempty"`
	StartAgeMonths   int        `toml:"start-age-months" yaml:"start-age-months" json:"startAgeMonths" validate:"gte=0"`
	EndAgeMonths     *int       `toml:"end-age-months,omitempty" yaml:"end-age-months,omitempty" json:"endAgeMonths,omitempty" validate:"omitempty,gte=0"`
	Links            []fileLink `toml:"link,omitempty" yaml:"links,omitempty" json:"links,omitempty" validate:"dive"`
}

type fileLink struct {
	Label       string `toml:"label" yaml:"label" json:"label" validate:"required"`
	URL         string `toml:"url" yaml:"url" json:"url" validate:"required,url"`
	Type        string `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=web instagram expert video"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Author      string `toml:"author,omitempty" yaml:"author,omitempty" json:"author,omitempty"`
	AuthorIcon  string `toml:"author-icon,omitempty" yaml:"author-icon,omitempty" json:"authorIcon,omitempty" validate:"omitempty,url"`
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported catalogue extension %q (use .toml, .yaml, .json or .db)", filepath.Ext(path))
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatTOML:
		return FormatTOML, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatSQLite, "db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unknown catalogue format %q (use toml, yaml, json or sqlite)", name)
	}
}

// LoadFile reads a TOML, YAML or JSON catalogue file.
func LoadFile(path string) (*Catalogue, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	if format == FormatSQLite {
		return LoadDatabase(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}
	fc, err := decodeFile(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalogue %s: %w", path, err)
	}
	records, groups := fc.toModel()
	return New(path, records, groups)
}

func decodeFile(format Format, data []byte) (fileCatalogue, error) {
	var fc fileCatalogue
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), &fc)
		if err != nil {
			return fileCatalogue{}, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fileCatalogue{}, fmt.Errorf("unknown catalogue key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return fileCatalogue{}, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return fileCatalogue{}, err
		}
	default:
		return fileCatalogue{}, fmt.Errorf("format %q is not a file format", format)
	}
	return fc, nil
}

// WriteFile serialises the catalogue to path in the given format.
func WriteFile(path string, format Format, c *Catalogue) error {
	if format == FormatSQLite {
		return WriteDatabase(path, c)
	}
	data, err := encodeFile(format, fromCatalogue(c))
	if err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalogue dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "catalogue-*")
	if err != nil {
		return fmt.Errorf("failed to create temp catalogue: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write catalogue: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close catalogue: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write catalogue: %w", err)
	}
	return nil
}

func encodeFile(format Format, fc fileCatalogue) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(fc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(fc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("format %q is not a file format", format)
	}
	return buf.Bytes(), nil
}

func (fc fileCatalogue) toModel() ([]model.Record, []model.AgeGroup) {
	records := make([]model.Record, 0, len(fc.Records))
	for _, fr := range fc.Records {
		r := model.Record{
			ID:               fr.ID,
			Category:         fr.Category,
			Kind:             model.Kind(fr.Kind),
			StartAgeMonths:   fr.StartAgeMonths,
			EndAgeMonths:     fr.EndAgeMonths,
			Title:            fr.Title,
			ShortDescription: fr.ShortDescription,
			LongDescription:  fr.LongDescription,
			Icon:             fr.Icon,
		}
		for _, fl := range fr.Links {
			r.Links = append(r.Links, model.Link{
				Label:       fl.Label,
				URL:         fl.URL,
				Type:        model.LinkType(fl.Type),
				Description: fl.Description,
				Author:      fl.Author,
				AuthorIcon:  fl.AuthorIcon,
			})
		}
		records = append(records, r)
	}
	var groups []model.AgeGroup
	if len(fc.AgeGroups) > 0 {
		groups = make([]model.AgeGroup, 0, len(fc.AgeGroups))
		for _, g := range fc.AgeGroups {
			groups = append(groups, model.AgeGroup(g))
		}
	}
	return records, groups
}

func fromCatalogue(c *Catalogue) fileCatalogue {
	fc := fileCatalogue{}
	for _, g := range c.AgeGroups() {
		fc.AgeGroups = append(fc.AgeGroups, toFileAgeGroup(g))
	}
	for _, r := range c.Records() {
		fc.Records = append(fc.Records, toFileRecord(r))
	}
	return fc
}

func toFileAgeGroup(g model.AgeGroup) fileAgeGroup {
	return fileAgeGroup(g)
}

func toFileRecord(r model.Record) fileRecord {
	fr := fileRecord{
		ID:               r.ID,
		Category:         r.Category,
		Kind:             string(r.Kind),
		Icon:             r.Icon,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		StartAgeMonths:   r.StartAgeMonths,
		EndAgeMonths:     r.EndAgeMonths,
	}
	for _, l := range r.Links {
		fr.Links = append(fr.Links, fileLink{
			Label:       l.Label,
			URL:         l.URL,
			Type:        string(l.Type),
			Description: l.Description,
			Author:      l.Author,
			AuthorIcon:  l.AuthorIcon,
		})
	}
	return fr
}
