package domain

import "time"

// Comment represents a comment on a news item. A comment belongs to
// exactly one news item and exactly one author; deleting the news item
// deletes its comments.
type Comment struct {
	ID         string    `json:"id"`
	NewsID     string    `json:"news_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

// CommentForm carries the submitted text of the comment form. Only the
// text field is subject to moderation.
type CommentForm struct {
	Text string `json:"text" form:"text"`
}
