package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// INIParser extracts key-value pairs from INI localization files. Entry IDs
// use the bare key without the section name.
type INIParser struct{}

func NewINIParser() *INIParser { return &INIParser{} }

func (p *INIParser) CanParse(ext string) bool {
	return ext == ".ini"
}

func (p *INIParser) Parse(filePath, relPath string) (*ParseResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open ini file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{
		FilePath: filePath,
		RelPath:  relPath,
		FileType: "ini",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())

		// Skip empty lines, comments, and section headers.
		if trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			continue
		}

		eqIdx := strings.Index(trimmed, "=")
		if eqIdx <= 0 {
			continue
		}

		key := strings.TrimSpace(trimmed[:eqIdx])
		value := strings.TrimSpace(trimmed[eqIdx+1:])

		result.Entries = append(result.Entries, StringEntry{
			ID:   relPath + ":" + key,
			Text: value,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ini file: %w", err)
	}

	return result, nil
}
