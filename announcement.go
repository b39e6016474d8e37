package usacr

// Announcement holds the extracted announcement content from a permit page.
type Announcement struct {
	// Title is the announcement title extracted from page metadata.
	Title string

	// ContentHTML is the announcement body as clean HTML.
	// Boilerplate (nav, footer, sidebar) has been removed.
	ContentHTML string
}

// AnnouncementExtractor extracts announcement content from permit pages,
// removing site boilerplate.
type AnnouncementExtractor interface {
	Extract(html string) (*Announcement, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an AnnouncementExtractor).
	Convert(html string) (string, error)
}
