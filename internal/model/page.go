package model

// Page is a standalone Markdown page such as the about section.
type Page struct {
	Title       string
	Slug        string
	Description string
	HTMLContent string
}
