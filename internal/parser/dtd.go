package parser

import (
	"fmt"
	"os"
	"regexp"
)

// DTDParser extracts entity declarations from .dtd localization files.
type DTDParser struct{}

func NewDTDParser() *DTDParser { return &DTDParser{} }

func (p *DTDParser) CanParse(ext string) bool {
	return ext == ".dtd"
}

// dtdEntityPattern matches <!ENTITY name "value"> declarations, with either
// quote style and values spanning multiple lines.
var dtdEntityPattern = regexp.MustCompile(`(?s)<!ENTITY\s+([A-Za-z0-9._-]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// dtdCommentPattern removes comments before scanning for entities,
// so commented-out declarations are not extracted.
var dtdCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

func (p *DTDParser) Parse(filePath, relPath string) (*ParseResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read dtd file: %w", err)
	}

	result := &ParseResult{
		FilePath: filePath,
		RelPath:  relPath,
		FileType: "dtd",
	}

	content := dtdCommentPattern.ReplaceAllString(string(data), "")

	for _, m := range dtdEntityPattern.FindAllStringSubmatch(content, -1) {
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		result.Entries = append(result.Entries, StringEntry{
			ID:   relPath + ":" + m[1],
			Text: value,
		})
	}

	return result, nil
}
