package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

var (
	esImportPattern = regexp.MustCompile(`^import\s+(?:(?:[\w\s{},*]+)\s+from\s+)?['"]([^'"]+)['"]`)
	requirePattern  = regexp.MustCompile(`(?:const|let|var)\s+.*?=\s*require\(['"]([^'"]+)['"]\)`)
)

// ImportParser implements domain.ImportExtractor with two line patterns:
// ES module imports and CommonJS requires bound to a variable. Dynamic
// import(), re-exports and import clauses spanning several lines are not
// recognized.
type ImportParser struct{}

func New() *ImportParser {
	return &ImportParser{}
}

func (p *ImportParser) ExtractImports(filePath string, content []byte) ([]domain.ImportStatement, error) {
	return ParseImports(filePath, content), nil
}

// ParseImports extracts the imports of content as if it were read from
// filePath. Content that is not valid UTF-8 yields no imports. A leading
// byte order mark is ignored.
func ParseImports(filePath string, content []byte) []domain.ImportStatement {
	if !utf8.Valid(content) {
		return nil
	}

	var imports []domain.ImportStatement
	for i, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(strings.TrimPrefix(raw, "\uFEFF"))
		if line == "" {
			continue
		}

		for _, re := range []*regexp.Regexp{esImportPattern, requirePattern} {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			imports = append(imports, domain.ImportStatement{
				Source:     m[1],
				File:       filePath,
				Line:       i + 1,
				IsRelative: IsRelative(m[1]),
			})
		}
	}
	return imports
}

// IsRelative reports whether an import specifier is a path rather than a
// package name.
func IsRelative(source string) bool {
	return strings.HasPrefix(source, ".") || strings.HasPrefix(source, "/")
}
