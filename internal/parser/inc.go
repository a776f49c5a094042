package parser

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
)

// IncParser extracts #define entries from .inc preprocessor files.
type IncParser struct{}

func NewIncParser() *IncParser { return &IncParser{} }

func (p *IncParser) CanParse(ext string) bool {
	return ext == ".inc"
}

// incDefinePattern matches "#define NAME value" lines. The value may be
// empty for marker defines, which are skipped.
var incDefinePattern = regexp.MustCompile(`^#define\s+([A-Za-z0-9_]+)\s+(.+)$`)

func (p *IncParser) Parse(filePath, relPath string) (*ParseResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open inc file: %w", err)
	}
	defer file.Close()

	result := &ParseResult{
		FilePath: filePath,
		RelPath:  relPath,
		FileType: "inc",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		m := incDefinePattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		result.Entries = append(result.Entries, StringEntry{
			ID:   relPath + ":" + m[1],
			Text: m[2],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan inc file: %w", err)
	}

	return result, nil
}
