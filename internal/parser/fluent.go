package parser

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// FluentParser extracts messages, terms, and attributes from Fluent (.ftl)
// files.
type FluentParser struct{}

func NewFluentParser() *FluentParser { return &FluentParser{} }

func (p *FluentParser) CanParse(ext string) bool {
	return ext == ".ftl"
}

// fluentEntryPattern matches the start of a message or term definition.
var fluentEntryPattern = regexp.MustCompile(`^(-?[A-Za-z][A-Za-z0-9_-]*)\s*=\s*(.*)$`)

// fluentAttrPattern matches an attribute line inside an entry.
var fluentAttrPattern = regexp.MustCompile(`^\s+\.([A-Za-z][A-Za-z0-9_-]*)\s*=\s*(.*)$`)

// fluentEntry accumulates a message with its attributes before flushing.
type fluentEntry struct {
	id         string
	value      []string
	attrs      []string            // attribute names, in file order
	attrValues map[string][]string // attribute name → value lines
	current    string              // attribute currently being continued, "" for the value
}

func (p *FluentParser) Parse(filePath, relPath string) (*ParseResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open ftl file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{
		FilePath: filePath,
		RelPath:  relPath,
		FileType: "ftl",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var entry *fluentEntry
	flush := func() {
		if entry == nil {
			return
		}
		value := strings.TrimSpace(strings.Join(entry.value, "\n"))
		baseID := relPath + ":" + entry.id
		if len(entry.attrs) > 0 {
			// Entries with attributes store the value only when non-empty.
			if value != "" {
				result.Entries = append(result.Entries, StringEntry{ID: baseID, Text: value})
			}
			for _, attr := range entry.attrs {
				attrValue := strings.TrimSpace(strings.Join(entry.attrValues[attr], "\n"))
				result.Entries = append(result.Entries, StringEntry{
					ID:   baseID + "." + attr,
					Text: attrValue,
				})
			}
		} else {
			result.Entries = append(result.Entries, StringEntry{ID: baseID, Text: value})
		}
		entry = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		// Comments end the current entry.
		if strings.HasPrefix(trimmed, "#") {
			flush()
			continue
		}

		if m := fluentEntryPattern.FindStringSubmatch(line); m != nil {
			flush()
			entry = &fluentEntry{
				id:         m[1],
				attrValues: make(map[string][]string),
			}
			if m[2] != "" {
				entry.value = append(entry.value, m[2])
			}
			continue
		}

		if entry == nil {
			continue
		}

		if m := fluentAttrPattern.FindStringSubmatch(line); m != nil {
			entry.current = m[1]
			entry.attrs = append(entry.attrs, m[1])
			if m[2] != "" {
				entry.attrValues[m[1]] = append(entry.attrValues[m[1]], m[2])
			}
			continue
		}

		// Continuation line: indented content belonging to the value or to
		// the attribute opened last. Blank lines end the entry.
		if trimmed == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if entry.current != "" {
				entry.attrValues[entry.current] = append(entry.attrValues[entry.current], trimmed)
			} else {
				entry.value = append(entry.value, trimmed)
			}
			continue
		}

		flush()
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ftl file: %w", err)
	}

	return result, nil
}
