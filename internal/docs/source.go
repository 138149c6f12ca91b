package docs

import (
	"encoding/xml"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a documentation source format.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// Source names one documentation file and the module it documents.
type Source struct {
	Owner string
	Path  string
}

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported documentation format %q", filepath.Ext(path))
	}
}

// Parse decodes a documentation source held in memory.
func Parse(format Format, data []byte) ([]Entry, error) {
	switch format {
	case FormatXML:
		return parseXML(data)
	case FormatYAML:
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported documentation format %q", format)
	}
}

type xmlDoc struct {
	XMLName xml.Name    `xml:"doc"`
	Members []xmlMember `xml:"members>member"`
}

type xmlMember struct {
	Name    string     `xml:"name,attr"`
	Summary xmlText    `xml:"summary"`
	Remarks xmlText    `xml:"remarks"`
	Params  []xmlParam `xml:"param"`
}

type xmlParam struct {
	Name  string `xml:"name,attr"`
	Inner string `xml:",innerxml"`
}

type xmlText struct {
	Inner string `xml:",innerxml"`
}

func parseXML(data []byte) ([]Entry, error) {
	var doc xmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Members))
	for _, m := range doc.Members {
		key, err := ParseKey(m.Name)
		if err != nil {
			return nil, err
		}

		entry := Entry{
			Key:     key,
			Summary: cleanText(m.Summary.Inner),
			Remarks: cleanText(m.Remarks.Inner),
		}
		for _, p := range m.Params {
			if entry.Params == nil {
				entry.Params = make(map[string]string, len(m.Params))
			}
			entry.Params[p.Name] = cleanText(p.Inner)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

type yamlDoc struct {
	Members []yamlMember `yaml:"members"`
}

type yamlMember struct {
	Name    string            `yaml:"name"`
	Summary string            `yaml:"summary"`
	Remarks string            `yaml:"remarks"`
	Params  map[string]string `yaml:"params"`
}

func parseYAML(data []byte) ([]Entry, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Members))
	for _, m := range doc.Members {
		key, err := ParseKey(m.Name)
		if err != nil {
			return nil, err
		}

		entry := Entry{
			Key:     key,
			Summary: dedent(m.Summary),
			Remarks: dedent(m.Remarks),
		}
		if len(m.Params) > 0 {
			entry.Params = make(map[string]string, len(m.Params))
			for name, text := range m.Params {
				entry.Params[name] = dedent(text)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

var (
	// <see cref="T:Ns.Type"/> and <paramref name="x"/> render as their target.
	crefPattern = regexp.MustCompile(`<(?:see|seealso)\s+cref="[A-Z]:([^"]*)"\s*/>`)
	refPattern  = regexp.MustCompile(`<(?:paramref|typeparamref)\s+name="([^"]*)"\s*/>`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// cleanText flattens inline markup and strips source indentation.
func cleanText(s string) string {
	s = crefPattern.ReplaceAllString(s, "$1")
	s = refPattern.ReplaceAllString(s, "$1")
	s = tagPattern.ReplaceAllString(s, "")
	return dedent(html.UnescapeString(s))
}

// dedent trims every line and drops leading and trailing blank lines.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
