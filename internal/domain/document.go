package domain

// Document is one generated text document destined for the archive.
type Document struct {
	// Path is the archive-relative location of the document. Paths always use
	// forward slashes regardless of host platform.
	Path string `json:"path"`

	// Content is the rendered document body.
	Content []byte `json:"content"`
}
