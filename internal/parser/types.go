package parser

// StringEntry represents one translatable unit extracted from a localization
// file.
type StringEntry struct {
	// ID is "<relative_file_path>:<entry_id>[.<attribute>]", unique within a
	// run and stable across runs while the source entry is unchanged.
	ID string
	// Text is the raw message value.
	Text string
}

// ParseResult holds extraction output for a single file.
type ParseResult struct {
	// FilePath is the absolute path to the parsed file.
	FilePath string
	// RelPath is the repository-relative path used as the ID prefix.
	RelPath string
	// FileType is the detected type (ftl, properties, dtd, inc, ini).
	FileType string
	// Entries are the extracted strings in file order.
	Entries []StringEntry
}

// Parser is the interface for all localization format parsers.
type Parser interface {
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse extracts string entries from a file. relPath is used to build
	// entry IDs.
	Parse(filePath, relPath string) (*ParseResult, error)
}
