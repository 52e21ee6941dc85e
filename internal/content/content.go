package content

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed data/*.json
var dataFS embed.FS

//go:embed schema/*.json
var schemaFS embed.FS

// Catalog holds the site's bundled datasets. It is loaded once at startup,
// validated against the embedded JSON Schemas, and never mutated afterwards.
type Catalog struct {
	Artists  []Artist
	Chapters []Chapter
	Speakers []Speaker
	Events   []Event
}

// Load reads, validates and decodes every embedded dataset. Invalid data is
// a startup failure, not a request-time one.
func Load(ctx context.Context) (*Catalog, error) {
	c := &Catalog{}

	if err := loadDataset(ctx, "artists", &c.Artists); err != nil {
		return nil, err
	}
	if err := loadDataset(ctx, "chapters", &c.Chapters); err != nil {
		return nil, err
	}
	if err := loadDataset(ctx, "speakers", &c.Speakers); err != nil {
		return nil, err
	}
	if err := loadDataset(ctx, "events", &c.Events); err != nil {
		return nil, err
	}

	return c, nil
}

func loadDataset(ctx context.Context, name string, dst any) error {
	schemaBytes, err := schemaFS.ReadFile("schema/" + name + ".schema.json")
	if err != nil {
		return fmt.Errorf("read schema %s: %w", name, err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaBytes, rs); err != nil {
		return fmt.Errorf("compile schema %s: %w", name, err)
	}

	data, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("read dataset %s: %w", name, err)
	}

	verrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return fmt.Errorf("validate dataset %s: %w", name, err)
	}
	if len(verrs) > 0 {
		var sb strings.Builder
		for _, v := range verrs {
			sb.WriteString(v.Message)
			sb.WriteString("; ")
		}
		return fmt.Errorf("dataset %s does not match schema: %s", name, sb.String())
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode dataset %s: %w", name, err)
	}

	return nil
}

func (c *Catalog) ArtistByID(id string) (*Artist, bool) {
	for i := range c.Artists {
		if c.Artists[i].ID == id {
			return &c.Artists[i], true
		}
	}
	return nil, false
}

func (c *Catalog) ChapterByID(id int) (*Chapter, bool) {
	for i := range c.Chapters {
		if c.Chapters[i].ID == id {
			return &c.Chapters[i], true
		}
	}
	return nil, false
}

func (c *Catalog) SpeakerByID(id string) (*Speaker, bool) {
	for i := range c.Speakers {
		if c.Speakers[i].ID == id {
			return &c.Speakers[i], true
		}
	}
	return nil, false
}

func (c *Catalog) EventByID(id string) (*Event, bool) {
	for i := range c.Events {
		if c.Events[i].ID == id {
			return &c.Events[i], true
		}
	}
	return nil, false
}

// ChaptersFeaturing returns the chapters that name the artist.
func (c *Catalog) ChaptersFeaturing(artistID string) []Chapter {
	out := []Chapter{}
	for _, ch := range c.Chapters {
		for _, a := range ch.Artists {
			if a == artistID {
				out = append(out, ch)
				break
			}
		}
	}
	return out
}

// EventsFeaturing returns the events that name the speaker or artist.
func (c *Catalog) EventsFeaturing(personID string) []Event {
	out := []Event{}
	for _, ev := range c.Events {
		for _, s := range ev.Speakers {
			if s == personID {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}
