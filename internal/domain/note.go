package domain

import "time"

// Note represents a private note owned by a single user. The slug is the
// note's unique business key and is globally unique across all notes.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Slug      string    `json:"slug"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteForm carries the submitted fields of the note create/edit form.
// An empty slug means the slug is derived from the title.
type NoteForm struct {
	Title string `json:"title" form:"title"`
	Text  string `json:"text" form:"text"`
	Slug  string `json:"slug" form:"slug"`
}
