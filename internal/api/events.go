package api

// Event kinds published on the bus by the services.
const (
	KindPostAdded      = "wall.post_added"
	KindPostUpdated    = "wall.post_updated"
	KindWallCommentAdd = "wall.comment_added"

	KindNoteAdded          = "note.added"
	KindNoteUpdated        = "note.updated"
	KindNoteDeleted        = "note.deleted"
	KindNoteRestored       = "note.restored"
	KindNoteCommentAdded   = "note.comment_added"
	KindNoteCommentEdited  = "note.comment_edited"
	KindNoteCommentDeleted = "note.comment_deleted"
	KindNoteCommentRestore = "note.comment_restored"

	KindChatCreated    = "chat.created"
	KindChatDeleted    = "chat.deleted"
	KindChatRead       = "chat.read"
	KindMessageCreated = "message.created"
	KindMessageDeleted = "message.deleted"
	KindMessageRead    = "message.read"
)

// NoteRef identifies a note.
type NoteRef struct {
	NoteID int
}

// NoteCommentRef identifies a note comment. NoteID is zero when the comment
// was matched by id alone.
type NoteCommentRef struct {
	NoteID    int
	CommentID int
}

// ChatRef identifies a chat.
type ChatRef struct {
	ChatID int
}

// MessageRef identifies a message.
type MessageRef struct {
	MessageID int
}

// MessagesRead lists messages flipped to read by a fetch.
type MessagesRead struct {
	ChatID     int
	ReaderID   int
	MessageIDs []int
}
