package store

import "slices"

// PostTypePost is the post type used for regular wall posts.
const PostTypePost = "post"

// Post represents a wall post.
type Post struct {
	ID          int
	OwnerID     int
	CreatedBy   int
	Date        int64
	Text        string
	PostType    string
	CanPin      *bool
	CanDelete   *bool
	CanEdit     bool
	Attachments []Attachment
}

func (p Post) clone() Post {
	p.Attachments = slices.Clone(p.Attachments)
	if p.CanPin != nil {
		v := *p.CanPin
		p.CanPin = &v
	}
	if p.CanDelete != nil {
		v := *p.CanDelete
		p.CanDelete = &v
	}
	return p
}

// Comment represents a comment left on a wall post.
type Comment struct {
	ID      int
	FromID  int
	PostID  int
	Date    int64
	Text    string
	Count   int
	CanPost bool
	Deleted bool
}

// Note represents a user note with its own comment thread.
type Note struct {
	ID       int
	OwnerID  int
	Title    string
	Text     string
	Comments []NoteComment
	Deleted  bool
}

func (n Note) clone() Note {
	n.Comments = slices.Clone(n.Comments)
	return n
}

// NoteComment is a comment embedded in a note. IDs are local to the note.
type NoteComment struct {
	ID      int
	FromID  int
	Date    int64
	Text    string
	Deleted bool
}

// Chat represents a conversation owned by the user who created it.
type Chat struct {
	ID          int
	OwnerID     int
	UnreadCount int
}

// Message represents a single chat message.
type Message struct {
	ID       int
	ChatID   int
	SenderID int
	Text     string
	Read     bool
}
