package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-notes/internal/domain"
	"news-notes/internal/metrics"
	"news-notes/internal/middleware"
	"news-notes/internal/policy"
	"news-notes/internal/service"
)

// NoteHandler serves the notes pages. Every slug route runs the same
// access check: anonymous visitors go to login, and any note that is
// missing or belongs to someone else renders as 404.
type NoteHandler struct {
	notes service.NoteServiceInterface
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// authorize fetches the note behind the slug and applies the ownership
// policy. It writes the response itself on denial and reports false.
func (h *NoteHandler) authorize(c *gin.Context, slug string) (*domain.Note, bool) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		metrics.ObservePolicyDecision("note", policy.DenyLogin.String())
		redirectToLogin(c)
		return nil, false
	}

	note, err := h.notes.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		serverError(c, err)
		return nil, false
	}

	var ownerID string
	if note != nil {
		ownerID = note.AuthorID
	}
	decision := policy.Decide(actor, ownerID)
	metrics.ObservePolicyDecision("note", decision.String())
	if decision != policy.Allow {
		renderNotFound(c)
		return nil, false
	}
	return note, true
}

// Home renders the public notes landing page.
func (h *NoteHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "notes_home.html", page(c, "Notes", nil))
}

// List renders the signed-in user's notes, oldest first.
func (h *NoteHandler) List(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	notes, err := h.notes.ListForAuthor(c.Request.Context(), user.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "notes_list.html", page(c, "Your notes", gin.H{
		"Notes": notes,
	}))
}

// AddForm renders the empty note form.
func (h *NoteHandler) AddForm(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	h.renderForm(c, http.StatusOK, "Add a note", "/notes/add", &domain.NoteForm{}, nil)
}

// Add creates a note from the submitted form. Validation and slug
// collisions re-render the form with field errors; success redirects to
// the confirmation page.
func (h *NoteHandler) Add(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var form domain.NoteForm
	if err := c.ShouldBind(&form); err != nil {
		serverError(c, err)
		return
	}

	_, fieldErrs, err := h.notes.Create(c.Request.Context(), user.ID, &form)
	if err != nil {
		serverError(c, err)
		return
	}
	if fieldErrs != nil {
		h.renderForm(c, http.StatusOK, "Add a note", "/notes/add", &form, fieldErrs)
		return
	}

	c.Redirect(http.StatusFound, "/notes/success")
}

// Success renders the post-save confirmation page.
func (h *NoteHandler) Success(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	c.HTML(http.StatusOK, "success.html", page(c, "Done", nil))
}

// Detail renders one note for its author.
func (h *NoteHandler) Detail(c *gin.Context) {
	note, ok := h.authorize(c, c.Param("slug"))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "note_detail.html", page(c, note.Title, gin.H{
		"Note": note,
	}))
}

// EditForm renders the note form prefilled with the current values.
func (h *NoteHandler) EditForm(c *gin.Context) {
	note, ok := h.authorize(c, c.Param("slug"))
	if !ok {
		return
	}
	form := &domain.NoteForm{Title: note.Title, Text: note.Text, Slug: note.Slug}
	h.renderForm(c, http.StatusOK, "Edit note", "/notes/"+note.Slug+"/edit", form, nil)
}

// Edit rewrites the note from the submitted form.
func (h *NoteHandler) Edit(c *gin.Context) {
	note, ok := h.authorize(c, c.Param("slug"))
	if !ok {
		return
	}

	var form domain.NoteForm
	if err := c.ShouldBind(&form); err != nil {
		serverError(c, err)
		return
	}

	_, fieldErrs, err := h.notes.Update(c.Request.Context(), note, &form)
	if err != nil {
		serverError(c, err)
		return
	}
	if fieldErrs != nil {
		h.renderForm(c, http.StatusOK, "Edit note", "/notes/"+note.Slug+"/edit", &form, fieldErrs)
		return
	}

	c.Redirect(http.StatusFound, "/notes/success")
}

// DeleteForm renders the delete confirmation page.
func (h *NoteHandler) DeleteForm(c *gin.Context) {
	note, ok := h.authorize(c, c.Param("slug"))
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "note_delete.html", page(c, "Delete note", gin.H{
		"Note": note,
	}))
}

// Delete removes the note and redirects to the confirmation page.
func (h *NoteHandler) Delete(c *gin.Context) {
	note, ok := h.authorize(c, c.Param("slug"))
	if !ok {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), note.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/notes/success")
}

func (h *NoteHandler) renderForm(c *gin.Context, status int, heading, action string, form *domain.NoteForm, errs domain.FieldErrors) {
	c.HTML(status, "note_form.html", page(c, heading, gin.H{
		"Heading": heading,
		"Action":  action,
		"Form":    form,
		"Errors":  errs,
	}))
}
