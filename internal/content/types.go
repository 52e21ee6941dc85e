package content

// Content entities mirror the shape of the bundled JSON datasets.

type Artwork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

type Artist struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	ShortBio string    `json:"shortBio"`
	Bio      []string  `json:"bio"`
	Artworks []Artwork `json:"artworks,omitempty"`
}

type ChapterSection struct {
	Title     string   `json:"title"`
	AuthorIDs []string `json:"authorIds"`
	Content   []string `json:"content"`
}

type Chapter struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Image       string           `json:"image,omitempty"`
	Description string           `json:"description,omitempty"`
	Intro       []string         `json:"intro,omitempty"`
	Content     []string         `json:"content,omitempty"`
	Artists     []string         `json:"artists,omitempty"`
	Sections    []ChapterSection `json:"sections,omitempty"`
}

type Speaker struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	ShortBio string   `json:"shortBio"`
	Bio      []string `json:"bio"`
}

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	DateText    string   `json:"dateText,omitempty"`
	Summary     string   `json:"summary"`
	Description []string `json:"description"`
	Image       string   `json:"image,omitempty"`
	Speakers    []string `json:"speakers,omitempty"`
}
