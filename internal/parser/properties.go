package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PropertiesParser extracts key-value pairs from Java-style .properties
// files.
type PropertiesParser struct{}

func NewPropertiesParser() *PropertiesParser { return &PropertiesParser{} }

func (p *PropertiesParser) CanParse(ext string) bool {
	return ext == ".properties"
}

func (p *PropertiesParser) Parse(filePath, relPath string) (*ParseResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open properties file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{
		FilePath: filePath,
		RelPath:  relPath,
		FileType: "properties",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var pendingKey string
	var pendingValue []string

	flush := func() {
		if pendingKey == "" {
			return
		}
		result.Entries = append(result.Entries, StringEntry{
			ID:   relPath + ":" + pendingKey,
			Text: strings.Join(pendingValue, ""),
		})
		pendingKey = ""
		pendingValue = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		// Value continued from a previous line ending in a backslash.
		if pendingKey != "" {
			value, continued := trimContinuation(strings.TrimLeft(line, " \t"))
			pendingValue = append(pendingValue, value)
			if !continued {
				flush()
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}

		sepIdx := strings.IndexAny(trimmed, "=:")
		if sepIdx <= 0 {
			continue
		}

		key := strings.TrimSpace(trimmed[:sepIdx])
		value, continued := trimContinuation(strings.TrimLeft(trimmed[sepIdx+1:], " \t"))

		pendingKey = key
		pendingValue = []string{value}
		if !continued {
			flush()
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan properties file: %w", err)
	}

	return result, nil
}

// trimContinuation strips a trailing line-continuation backslash and reports
// whether the value continues on the next line.
func trimContinuation(value string) (string, bool) {
	if strings.HasSuffix(value, "\\") && !strings.HasSuffix(value, "\\\\") {
		return value[:len(value)-1], true
	}
	return value, false
}
