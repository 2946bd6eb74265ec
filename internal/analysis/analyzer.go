package analysis

import (
	"context"
	"fmt"
	"strings"
)

// File is an uploaded video handed to a backend as embedded binary content.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Analyzer is the single capability both hosted backends implement.
// Failures are deliberately flattened into the returned text (missing
// credential, unsupported format, transport error) so the chat surface
// has exactly one rendering path and never branches per backend.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string, video File) string
}

// Backend identifiers recognized by config.
const (
	BackendPrimary   = "primary"
	BackendSecondary = "secondary"
)

// isPlaceholderKey reports whether a credential is missing or still the
// template value shipped in .env.example.
func isPlaceholderKey(key string) bool {
	return key == "" || strings.Contains(key, "API_KEY")
}

func transportFailure(err error) string {
	return fmt.Sprintf("Analysis failed: %s", err.Error())
}

// extension returns the lower-cased extension of a filename, without the dot.
func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
