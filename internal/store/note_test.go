package store

import (
	"errors"
	"reflect"
	"testing"
)

func testNote(owner int) Note {
	return Note{OwnerID: owner, Title: "Test note", Text: "Test note text"}
}

func TestNoteAdd(t *testing.T) {
	s := NewNoteStore()

	n := s.Add(Note{ID: 9, OwnerID: 1, Title: "t", Text: "x"})
	if n.ID != 1 {
		t.Errorf("ID = %d, want 1", n.ID)
	}
	if n.Comments == nil || len(n.Comments) != 0 {
		t.Errorf("Comments = %#v, want empty non-nil slice", n.Comments)
	}
	if n.Deleted {
		t.Error("new note is deleted")
	}

	got, ok := s.NoteByID(n.ID)
	if !ok {
		t.Fatal("NoteByID() not found")
	}
	if !reflect.DeepEqual(got, n) {
		t.Errorf("NoteByID() = %+v, want %+v", got, n)
	}

	if n2 := s.Add(testNote(1)); n2.ID != 2 {
		t.Errorf("second ID = %d, want 2", n2.ID)
	}
}

func TestNoteUpdate(t *testing.T) {
	s := NewNoteStore()
	n := s.Add(testNote(1))

	updated := n
	updated.Text = "Updated note text"
	if !s.Update(updated) {
		t.Fatal("Update() = false, want true")
	}
	got, _ := s.NoteByID(n.ID)
	if !reflect.DeepEqual(got, updated) {
		t.Errorf("NoteByID() = %+v, want %+v", got, updated)
	}

	if s.Update(Note{ID: 42}) {
		t.Error("Update() of unknown id = true, want false")
	}
}

func TestNoteUpdateReplacesComments(t *testing.T) {
	s := NewNoteStore()
	n := s.Add(testNote(1))
	if _, err := s.CreateComment(n.ID, NoteComment{Text: "old"}); err != nil {
		t.Fatal(err)
	}

	replacement := Note{ID: n.ID, OwnerID: 1, Title: "t", Comments: []NoteComment{{ID: 1, Text: "new"}}}
	if !s.Update(replacement) {
		t.Fatal("Update() = false")
	}
	replacement.Comments[0].Text = "mutated by caller"

	got := s.CommentsForNote(n.ID)
	if len(got) != 1 || got[0].Text != "new" {
		t.Errorf("CommentsForNote() = %+v, want [new]", got)
	}
}

func TestNoteCreateComment(t *testing.T) {
	s := NewNoteStore()
	a := s.Add(testNote(1))
	b := s.Add(testNote(2))

	for i, text := range []string{"a1", "a2"} {
		c, err := s.CreateComment(a.ID, NoteComment{FromID: 1, Date: 123456, Text: text})
		if err != nil {
			t.Fatal(err)
		}
		if c.ID != i+1 {
			t.Errorf("comment %q id = %d, want %d", text, c.ID, i+1)
		}
	}

	// Ids restart per note.
	c, err := s.CreateComment(b.ID, NoteComment{FromID: 2, Text: "b1"})
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != 1 {
		t.Errorf("first comment of second note id = %d, want 1", c.ID)
	}
}

func TestNoteCreateCommentMissingNote(t *testing.T) {
	s := NewNoteStore()

	_, err := s.CreateComment(1, NoteComment{Text: "x"})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("err = %v, want ErrNoteNotFound", err)
	}

	n := s.Add(testNote(1))
	if !s.Delete(n.ID) {
		t.Fatal("Delete() = false")
	}
	_, err = s.CreateComment(n.ID, NoteComment{Text: "x"})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("comment on deleted note: err = %v, want ErrNoteNotFound", err)
	}

	s.Restore(n.ID)
	if got := s.CommentsForNote(n.ID); len(got) != 0 {
		t.Errorf("failed creates left %d comments", len(got))
	}
}

func TestNoteEditComment(t *testing.T) {
	s := NewNoteStore()
	n := s.Add(testNote(1))
	if _, err := s.CreateComment(n.ID, NoteComment{FromID: 1, Text: "Test comment"}); err != nil {
		t.Fatal(err)
	}

	if !s.EditComment(1, "Edited comment") {
		t.Fatal("EditComment() = false, want true")
	}
	got, _ := s.NoteByID(n.ID)
	if got.Comments[0].Text != "Edited comment" {
		t.Errorf("text = %q, want Edited comment", got.Comments[0].Text)
	}

	if s.EditComment(2, "nope") {
		t.Error("EditComment() of unknown id = true, want false")
	}

	s.DeleteComment(1)
	if s.EditComment(1, "on deleted") {
		t.Error("EditComment() of deleted comment = true, want false")
	}
}

func TestNoteDeleteRestoreComment(t *testing.T) {
	s := NewNoteStore()
	n := s.Add(testNote(1))
	for _, text := range []string{"one", "two", "three"} {
		if _, err := s.CreateComment(n.ID, NoteComment{Text: text}); err != nil {
			t.Fatal(err)
		}
	}

	if s.RestoreComment(2) {
		t.Error("RestoreComment() of visible comment = true, want false")
	}
	if !s.DeleteComment(2) {
		t.Fatal("DeleteComment() = false, want true")
	}
	if s.DeleteComment(2) {
		t.Error("second DeleteComment() = true, want false")
	}

	got, _ := s.NoteByID(n.ID)
	if !got.Comments[1].Deleted {
		t.Error("comment 2 not flagged deleted")
	}
	visible := s.CommentsForNote(n.ID)
	if len(visible) != 2 || visible[0].Text != "one" || visible[1].Text != "three" {
		t.Errorf("CommentsForNote() = %+v, want [one three]", visible)
	}

	if !s.RestoreComment(2) {
		t.Fatal("RestoreComment() = false, want true")
	}
	got, _ = s.NoteByID(n.ID)
	if got.Comments[1].Deleted {
		t.Error("comment 2 still deleted after restore")
	}
	if n := len(s.CommentsForNote(n.ID)); n != 3 {
		t.Errorf("visible comments = %d, want 3", n)
	}
}

func TestNoteCommentIDCollisionFirstMatchWins(t *testing.T) {
	s := NewNoteStore()
	a := s.Add(testNote(1))
	b := s.Add(testNote(2))
	if _, err := s.CreateComment(a.ID, NoteComment{Text: "a1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateComment(b.ID, NoteComment{Text: "b1"}); err != nil {
		t.Fatal(err)
	}

	if !s.EditComment(1, "edited") {
		t.Fatal("EditComment() = false")
	}
	if got := s.CommentsForNote(a.ID)[0].Text; got != "edited" {
		t.Errorf("note a comment = %q, want edited", got)
	}
	if got := s.CommentsForNote(b.ID)[0].Text; got != "b1" {
		t.Errorf("note b comment = %q, want b1 untouched", got)
	}

	// Once a's comment is deleted the unscoped lookup falls through to b.
	if !s.DeleteComment(1) || !s.DeleteComment(1) {
		t.Fatal("DeleteComment() should hit a then b")
	}
	if n := len(s.CommentsForNote(b.ID)); n != 0 {
		t.Errorf("note b visible comments = %d, want 0", n)
	}
}

func TestNoteScopedCommentOps(t *testing.T) {
	s := NewNoteStore()
	a := s.Add(testNote(1))
	b := s.Add(testNote(2))
	s.CreateComment(a.ID, NoteComment{Text: "a1"})
	s.CreateComment(b.ID, NoteComment{Text: "b1"})

	if !s.EditNoteComment(b.ID, 1, "edited b") {
		t.Fatal("EditNoteComment() = false")
	}
	if got := s.CommentsForNote(a.ID)[0].Text; got != "a1" {
		t.Errorf("note a comment = %q, want a1", got)
	}
	if got := s.CommentsForNote(b.ID)[0].Text; got != "edited b" {
		t.Errorf("note b comment = %q, want edited b", got)
	}

	if !s.DeleteNoteComment(b.ID, 1) {
		t.Fatal("DeleteNoteComment() = false")
	}
	if len(s.CommentsForNote(a.ID)) != 1 || len(s.CommentsForNote(b.ID)) != 0 {
		t.Error("scoped delete touched the wrong note")
	}
	if s.RestoreNoteComment(a.ID, 1) {
		t.Error("RestoreNoteComment() on visible comment = true, want false")
	}
	if !s.RestoreNoteComment(b.ID, 1) {
		t.Error("RestoreNoteComment() = false, want true")
	}
	if s.EditNoteComment(0, 1, "x") {
		t.Error("EditNoteComment() with note 0 = true, want false")
	}
}

func TestNoteCommentsForMissingOrDeletedNote(t *testing.T) {
	s := NewNoteStore()
	if got := s.CommentsForNote(5); got == nil || len(got) != 0 {
		t.Errorf("CommentsForNote(missing) = %#v, want empty slice", got)
	}

	n := s.Add(testNote(1))
	s.CreateComment(n.ID, NoteComment{Text: "x"})
	s.Delete(n.ID)
	if got := s.CommentsForNote(n.ID); len(got) != 0 {
		t.Errorf("CommentsForNote(deleted) = %+v, want empty", got)
	}
}

func TestNoteUserNotes(t *testing.T) {
	s := NewNoteStore()
	n1 := s.Add(Note{OwnerID: 1, Title: "Note 1"})
	s.Add(Note{OwnerID: 2, Title: "Note 2"})
	n3 := s.Add(Note{OwnerID: 1, Title: "Note 3"})

	got := s.UserNotes(1)
	if len(got) != 2 || got[0].ID != n1.ID || got[1].ID != n3.ID {
		t.Fatalf("UserNotes(1) = %+v, want ids %d,%d", got, n1.ID, n3.ID)
	}

	s.Delete(n1.ID)
	got = s.UserNotes(1)
	if len(got) != 1 || got[0].ID != n3.ID {
		t.Errorf("UserNotes(1) after delete = %+v, want only %d", got, n3.ID)
	}
	if got := s.UserNotes(3); len(got) != 0 {
		t.Errorf("UserNotes(3) = %+v, want empty", got)
	}
}

func TestNoteDeleteRestore(t *testing.T) {
	s := NewNoteStore()
	n := s.Add(testNote(1))
	s.CreateComment(n.ID, NoteComment{Text: "kept"})
	before, _ := s.NoteByID(n.ID)

	if s.Restore(n.ID) {
		t.Error("Restore() of visible note = true, want false")
	}
	if !s.Delete(n.ID) {
		t.Fatal("Delete() = false, want true")
	}
	if _, ok := s.NoteByID(n.ID); ok {
		t.Error("NoteByID() found deleted note")
	}
	if s.Delete(n.ID) {
		t.Error("Delete() of deleted note = true, want false")
	}
	if s.Delete(99) {
		t.Error("Delete() of missing note = true, want false")
	}

	if !s.Restore(n.ID) {
		t.Fatal("Restore() = false, want true")
	}
	after, ok := s.NoteByID(n.ID)
	if !ok {
		t.Fatal("NoteByID() missing after restore")
	}
	if !reflect.DeepEqual(after, before) {
		t.Errorf("after restore = %+v, want %+v", after, before)
	}
	if s.Restore(99) {
		t.Error("Restore() of missing note = true, want false")
	}
}

func TestNoteByIDReturnsCopy(t *testing.T) {
	s := NewNoteStore()
	n := s.Add(testNote(1))
	s.CreateComment(n.ID, NoteComment{Text: "orig"})

	got, _ := s.NoteByID(n.ID)
	got.Comments[0].Text = "changed"
	got.Title = "changed"

	again, _ := s.NoteByID(n.ID)
	if again.Comments[0].Text != "orig" || again.Title != "Test note" {
		t.Errorf("stored note mutated through returned copy: %+v", again)
	}
}

func TestNoteReset(t *testing.T) {
	s := NewNoteStore()
	s.Add(testNote(1))
	s.Add(testNote(1))
	s.Reset()

	if got := s.UserNotes(1); len(got) != 0 {
		t.Errorf("UserNotes after Reset = %d, want 0", len(got))
	}
	if n := s.Add(testNote(1)); n.ID != 1 {
		t.Errorf("id after Reset = %d, want 1", n.ID)
	}
}
