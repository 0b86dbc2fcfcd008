// Package fileurl turns catalog file paths into absolute URLs on the
// file server.
package fileurl

// DefaultBaseURL is the catalog file server used when none is configured.
const DefaultBaseURL = "http://10.0.32.112:8200/"

// Builder prefixes file paths with a configured origin.
type Builder struct {
	BaseURL string
}

func New(baseURL string) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Builder{BaseURL: baseURL}
}

// URLFromFilePath returns BaseURL followed by path. The path is neither
// escaped nor cleaned.
func (b *Builder) URLFromFilePath(path string) string {
	return b.BaseURL + path
}
