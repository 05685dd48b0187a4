package store

import "sync"

// NoteStore owns notes and the comment threads embedded in them.
//
// Comment ids restart at 1 in every note, while EditComment, DeleteComment
// and RestoreComment look a comment up by id alone across all notes. When two
// notes hold comments with the same id the first match in store order wins.
// The *NoteComment variants take the owning note id and are unambiguous.
type NoteStore struct {
	mu     sync.Mutex
	nextID int
	notes  []Note
}

// NewNoteStore creates an empty note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{nextID: 1}
}

// Add stores a copy of note under the next sequential id and returns it.
func (s *NoteStore) Add(note Note) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := note.clone()
	n.ID = s.nextID
	if n.Comments == nil {
		n.Comments = []NoteComment{}
	}
	s.nextID++
	s.notes = append(s.notes, n)
	return n.clone()
}

// Update replaces the note with the same id wholesale, comments and deleted
// flag included. Returns false if no such note exists.
func (s *NoteStore) Update(note Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(note.ID)
	if i < 0 {
		return false
	}
	s.notes[i] = note.clone()
	return true
}

// CreateComment appends comment to the thread of a visible note. The comment
// id is the thread length plus one.
func (s *NoteStore) CreateComment(noteID int, comment NoteComment) (NoteComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.visible(noteID)
	if n == nil {
		return NoteComment{}, notFound(EntityNote, noteID)
	}
	comment.ID = len(n.Comments) + 1
	n.Comments = append(n.Comments, comment)
	return comment, nil
}

// EditComment overwrites the text of the first non-deleted comment with
// commentID in any note.
func (s *NoteStore) EditComment(commentID int, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findComment(0, commentID, false)
	if c == nil {
		return false
	}
	c.Text = text
	return true
}

// DeleteComment soft-deletes the first non-deleted comment with commentID.
func (s *NoteStore) DeleteComment(commentID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setCommentDeleted(0, commentID, true)
}

// RestoreComment restores the first deleted comment with commentID.
func (s *NoteStore) RestoreComment(commentID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setCommentDeleted(0, commentID, false)
}

// EditNoteComment is EditComment restricted to the thread of noteID.
func (s *NoteStore) EditNoteComment(noteID, commentID int, text string) bool {
	if noteID <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findComment(noteID, commentID, false)
	if c == nil {
		return false
	}
	c.Text = text
	return true
}

// DeleteNoteComment is DeleteComment restricted to the thread of noteID.
func (s *NoteStore) DeleteNoteComment(noteID, commentID int) bool {
	if noteID <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setCommentDeleted(noteID, commentID, true)
}

// RestoreNoteComment is RestoreComment restricted to the thread of noteID.
func (s *NoteStore) RestoreNoteComment(noteID, commentID int) bool {
	if noteID <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setCommentDeleted(noteID, commentID, false)
}

// CommentsForNote returns the non-deleted comments of a visible note in
// insertion order. A missing or deleted note yields an empty slice.
func (s *NoteStore) CommentsForNote(noteID int) []NoteComment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []NoteComment{}
	n := s.visible(noteID)
	if n == nil {
		return out
	}
	for _, c := range n.Comments {
		if !c.Deleted {
			out = append(out, c)
		}
	}
	return out
}

// UserNotes returns the non-deleted notes owned by userID in store order.
func (s *NoteStore) UserNotes(userID int) []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Note{}
	for _, n := range s.notes {
		if n.OwnerID == userID && !n.Deleted {
			out = append(out, n.clone())
		}
	}
	return out
}

// Delete soft-deletes a note. Returns false if the note is missing or
// already deleted.
func (s *NoteStore) Delete(noteID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setDeleted(noteID, true)
}

// Restore undoes Delete. Returns false if the note is missing or not deleted.
func (s *NoteStore) Restore(noteID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setDeleted(noteID, false)
}

// NoteByID returns the note if it exists and is not deleted.
func (s *NoteStore) NoteByID(id int) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.visible(id)
	if n == nil {
		return Note{}, false
	}
	return n.clone(), true
}

// Reset drops all notes and restarts ids at 1.
func (s *NoteStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = nil
	s.nextID = 1
}

func (s *NoteStore) indexOf(id int) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// visible returns a pointer into s.notes, or nil when the note is missing
// or deleted. Callers must hold s.mu.
func (s *NoteStore) visible(id int) *Note {
	i := s.indexOf(id)
	if i < 0 || s.notes[i].Deleted {
		return nil
	}
	return &s.notes[i]
}

func (s *NoteStore) setDeleted(id int, deleted bool) bool {
	i := s.indexOf(id)
	if i < 0 || s.notes[i].Deleted == deleted {
		return false
	}
	s.notes[i].Deleted = deleted
	return true
}

// findComment scans notes in store order for the first comment with the
// given id whose Deleted flag equals deleted. noteID 0 means any note.
func (s *NoteStore) findComment(noteID, commentID int, deleted bool) *NoteComment {
	for i := range s.notes {
		n := &s.notes[i]
		if noteID != 0 && n.ID != noteID {
			continue
		}
		for j := range n.Comments {
			c := &n.Comments[j]
			if c.ID == commentID && c.Deleted == deleted {
				return c
			}
		}
	}
	return nil
}

func (s *NoteStore) setCommentDeleted(noteID, commentID int, deleted bool) bool {
	c := s.findComment(noteID, commentID, !deleted)
	if c == nil {
		return false
	}
	c.Deleted = deleted
	return true
}
