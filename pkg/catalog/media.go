// Package catalog provides the media shown on the page: a remote TMDB client,
// an embedded local dataset with the same shape, and the one-shot choice
// between them.
package catalog

// Source names where a Catalog came from.
type Source string

const (
	SourceTMDB  Source = "tmdb"
	SourceLocal Source = "local"
)

// Media is one movie or series.
type Media struct {
	Title    string `yaml:"title"`
	Year     string `yaml:"year,omitempty"`
	Rating   string `yaml:"rating,omitempty"`
	Poster   string `yaml:"poster,omitempty"`
	Backdrop string `yaml:"backdrop,omitempty"`
	Overview string `yaml:"overview,omitempty"`
}

// CardImage is the image shown on a carousel card.
func (m Media) CardImage() string {
	if m.Poster != "" {
		return m.Poster
	}
	return m.Backdrop
}

// HeroImage is the image shown on a hero slide.
func (m Media) HeroImage() string {
	if m.Backdrop != "" {
		return m.Backdrop
	}
	return m.Poster
}

// Label is the accessible card label: "Título: X" for dated media, "Item: X"
// otherwise.
func (m Media) Label() string {
	if m.Year == "" {
		return "Item: " + m.Title
	}
	return "Título: " + m.Title
}

// Section is one carousel row.
type Section struct {
	ID    string  `yaml:"id"`
	Title string  `yaml:"title"`
	Items []Media `yaml:"items"`
}

// Catalog is everything the page renders.
type Catalog struct {
	Source      Source    `yaml:"source"`
	Attribution string    `yaml:"attribution"`
	Hero        []Media   `yaml:"hero"`
	Sections    []Section `yaml:"sections"`
}

// Section returns the section with id.
func (c Catalog) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
