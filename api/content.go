package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hauts/exhibition/internal/content"
)

type ContentHandler struct {
	catalog *content.Catalog
}

func NewContentHandler(catalog *content.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

func (h *ContentHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.catalog.Artists, http.StatusOK)
}

func (h *ContentHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.catalog.Chapters, http.StatusOK)
}

func (h *ContentHandler) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.catalog.Speakers, http.StatusOK)
}

func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.catalog.Events, http.StatusOK)
}

type artistDetail struct {
	Artist   *content.Artist   `json:"artist"`
	Chapters []content.Chapter `json:"chapters"`
	Events   []content.Event   `json:"events"`
}

func (h *ContentHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	artist, ok := h.catalog.ArtistByID(id)
	if !ok {
		writeError(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, artistDetail{
		Artist:   artist,
		Chapters: h.catalog.ChaptersFeaturing(id),
		Events:   h.catalog.EventsFeaturing(id),
	}, http.StatusOK)
}

type chapterDetail struct {
	Chapter *content.Chapter `json:"chapter"`
	Artists []content.Artist `json:"artists"`
}

func (h *ContentHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	chapter, ok := h.catalog.ChapterByID(id)
	if !ok {
		writeError(w, "not found", http.StatusNotFound)
		return
	}

	artists := []content.Artist{}
	for _, aid := range chapter.Artists {
		if a, ok := h.catalog.ArtistByID(aid); ok {
			artists = append(artists, *a)
		}
	}

	writeJSON(w, chapterDetail{Chapter: chapter, Artists: artists}, http.StatusOK)
}

type speakerDetail struct {
	Speaker *content.Speaker `json:"speaker"`
	Events  []content.Event  `json:"events"`
}

func (h *ContentHandler) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	speaker, ok := h.catalog.SpeakerByID(id)
	if !ok {
		writeError(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, speakerDetail{
		Speaker: speaker,
		Events:  h.catalog.EventsFeaturing(id),
	}, http.StatusOK)
}

type eventDetail struct {
	Event    *content.Event    `json:"event"`
	Speakers []content.Speaker `json:"speakers"`
}

func (h *ContentHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	event, ok := h.catalog.EventByID(id)
	if !ok {
		writeError(w, "not found", http.StatusNotFound)
		return
	}

	speakers := []content.Speaker{}
	for _, sid := range event.Speakers {
		if s, ok := h.catalog.SpeakerByID(sid); ok {
			speakers = append(speakers, *s)
		}
	}

	writeJSON(w, eventDetail{Event: event, Speakers: speakers}, http.StatusOK)
}
