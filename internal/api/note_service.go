package api

import (
	"fmt"

	"github.com/matheus3301/netwall/internal/bus"
	"github.com/matheus3301/netwall/internal/logging"
	"github.com/matheus3301/netwall/internal/store"
	"go.uber.org/zap"
)

// NoteService exposes the note store to callers, logging each operation
// and publishing note.* events.
type NoteService struct {
	store  *store.NoteStore
	bus    *bus.Bus
	logger *zap.Logger
}

// NewNoteService creates a new note service backed by the store.
func NewNoteService(s *store.NoteStore, b *bus.Bus, logger *zap.Logger) *NoteService {
	return &NoteService{store: s, bus: b, logger: logging.OrNop(logger).Named("notes")}
}

func (s *NoteService) AddNote(note store.Note) store.Note {
	n := s.store.Add(note)
	s.logger.Info("note added", zap.Int("note_id", n.ID), zap.Int("owner_id", n.OwnerID))
	s.bus.Publish(bus.NewEvent(KindNoteAdded, n))
	return n
}

func (s *NoteService) UpdateNote(note store.Note) bool {
	ok := s.store.Update(note)
	s.logger.Info("note update", zap.Int("note_id", note.ID), zap.Bool("found", ok))
	if ok {
		s.bus.Publish(bus.NewEvent(KindNoteUpdated, note))
	}
	return ok
}

func (s *NoteService) DeleteNote(noteID int) bool {
	return s.toggle(noteID, s.store.Delete, KindNoteDeleted, "note delete")
}

func (s *NoteService) RestoreNote(noteID int) bool {
	return s.toggle(noteID, s.store.Restore, KindNoteRestored, "note restore")
}

func (s *NoteService) Note(id int) (store.Note, bool) {
	return s.store.NoteByID(id)
}

func (s *NoteService) UserNotes(userID int) []store.Note {
	return s.store.UserNotes(userID)
}

func (s *NoteService) CreateComment(noteID int, comment store.NoteComment) (store.NoteComment, error) {
	c, err := s.store.CreateComment(noteID, comment)
	if err != nil {
		s.logger.Info("comment rejected", zap.Int("note_id", noteID), zap.Error(err))
		return store.NoteComment{}, fmt.Errorf("create note comment: %w", err)
	}
	s.logger.Info("comment added", zap.Int("note_id", noteID), zap.Int("comment_id", c.ID))
	s.bus.Publish(bus.NewEvent(KindNoteCommentAdded, NoteCommentRef{NoteID: noteID, CommentID: c.ID}))
	return c, nil
}

func (s *NoteService) Comments(noteID int) []store.NoteComment {
	return s.store.CommentsForNote(noteID)
}

// EditComment edits a comment by id alone; see store.NoteStore for how
// colliding ids are resolved.
func (s *NoteService) EditComment(commentID int, text string) bool {
	ok := s.store.EditComment(commentID, text)
	s.commentResult("comment edit", KindNoteCommentEdited, 0, commentID, ok)
	return ok
}

func (s *NoteService) DeleteComment(commentID int) bool {
	ok := s.store.DeleteComment(commentID)
	s.commentResult("comment delete", KindNoteCommentDeleted, 0, commentID, ok)
	return ok
}

func (s *NoteService) RestoreComment(commentID int) bool {
	ok := s.store.RestoreComment(commentID)
	s.commentResult("comment restore", KindNoteCommentRestore, 0, commentID, ok)
	return ok
}

func (s *NoteService) EditNoteComment(noteID, commentID int, text string) bool {
	ok := s.store.EditNoteComment(noteID, commentID, text)
	s.commentResult("comment edit", KindNoteCommentEdited, noteID, commentID, ok)
	return ok
}

func (s *NoteService) DeleteNoteComment(noteID, commentID int) bool {
	ok := s.store.DeleteNoteComment(noteID, commentID)
	s.commentResult("comment delete", KindNoteCommentDeleted, noteID, commentID, ok)
	return ok
}

func (s *NoteService) RestoreNoteComment(noteID, commentID int) bool {
	ok := s.store.RestoreNoteComment(noteID, commentID)
	s.commentResult("comment restore", KindNoteCommentRestore, noteID, commentID, ok)
	return ok
}

func (s *NoteService) toggle(noteID int, fn func(int) bool, kind, msg string) bool {
	ok := fn(noteID)
	s.logger.Info(msg, zap.Int("note_id", noteID), zap.Bool("changed", ok))
	if ok {
		s.bus.Publish(bus.NewEvent(kind, NoteRef{NoteID: noteID}))
	}
	return ok
}

func (s *NoteService) commentResult(msg, kind string, noteID, commentID int, ok bool) {
	s.logger.Info(msg, zap.Int("note_id", noteID), zap.Int("comment_id", commentID), zap.Bool("changed", ok))
	if ok {
		s.bus.Publish(bus.NewEvent(kind, NoteCommentRef{NoteID: noteID, CommentID: commentID}))
	}
}
