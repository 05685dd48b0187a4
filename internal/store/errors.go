package store

import "fmt"

// Entity kinds reported by NotFoundError.
const (
	EntityPost    = "post"
	EntityNote    = "note"
	EntityChat    = "chat"
	EntityMessage = "message"
)

// NotFoundError is returned when an operation's target identity cannot be
// resolved. It matches the Err*NotFound sentinels of the same entity kind
// via errors.Is.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Is reports whether target is a NotFoundError for the same entity.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Entity == e.Entity
}

var (
	ErrPostNotFound    = &NotFoundError{Entity: EntityPost}
	ErrNoteNotFound    = &NotFoundError{Entity: EntityNote}
	ErrChatNotFound    = &NotFoundError{Entity: EntityChat}
	ErrMessageNotFound = &NotFoundError{Entity: EntityMessage}
)

func notFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}
