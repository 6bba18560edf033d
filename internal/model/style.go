package model

// Article styles, matching the style check in schema.sql.
const (
	StyleListicle  = "Listicle"
	StyleHowTo     = "How-to"
	StyleNews      = "News"
	StyleInterview = "Interview"
	StyleStory     = "Story"
)

var styles = []string{StyleListicle, StyleHowTo, StyleNews, StyleInterview, StyleStory}

// Styles returns the accepted style values in declaration order.
func Styles() []string {
	out := make([]string, len(styles))
	copy(out, styles)

	return out
}
