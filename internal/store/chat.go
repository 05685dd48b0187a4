package store

import "sync"

// ConversationStore owns chats and messages and keeps a per-chat unread
// counter in step with them.
//
// The counter and the per-message Read flags are updated independently:
// MessagesFromChat marks messages read without touching the counter, and
// MarkAllRead zeroes the counter without touching the flags.
type ConversationStore struct {
	mu              sync.Mutex
	autoCreateChats bool
	nextChatID      int
	nextMessageID   int
	chats           []Chat
	messages        []Message
}

// ConversationOption configures a ConversationStore.
type ConversationOption func(*ConversationStore)

// WithAutoCreateChats controls whether CreateMessage creates a new chat when
// the requested one does not exist. Enabled by default.
func WithAutoCreateChats(enabled bool) ConversationOption {
	return func(s *ConversationStore) {
		s.autoCreateChats = enabled
	}
}

// NewConversationStore creates an empty conversation store.
func NewConversationStore(opts ...ConversationOption) *ConversationStore {
	s := &ConversationStore{
		autoCreateChats: true,
		nextChatID:      1,
		nextMessageID:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateChat creates a chat owned by userID with no unread messages.
func (s *ConversationStore) CreateChat(userID int) Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.createChat(userID)
}

// DeleteChat removes a chat. Its messages are left in place.
func (s *ConversationStore) DeleteChat(chatID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.chatIndex(chatID)
	if i < 0 {
		return notFound(EntityChat, chatID)
	}
	s.chats = append(s.chats[:i], s.chats[i+1:]...)
	return nil
}

// Chats returns a snapshot of all chats in creation order.
func (s *ConversationStore) Chats() []Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Chat, len(s.chats))
	copy(out, s.chats)
	return out
}

// Chat returns the chat with the given id.
func (s *ConversationStore) Chat(chatID int) (Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.chat(chatID)
	if c == nil {
		return Chat{}, false
	}
	return *c, true
}

// UnreadChatsCount returns how many chats owned by userID have unread
// messages. It counts chats, not messages.
func (s *ConversationStore) UnreadChatsCount(userID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.chats {
		if c.OwnerID == userID && c.UnreadCount > 0 {
			n++
		}
	}
	return n
}

// MarkAllRead zeroes the unread counter of a chat. Message Read flags are
// not changed.
func (s *ConversationStore) MarkAllRead(chatID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.chat(chatID)
	if c == nil {
		return notFound(EntityChat, chatID)
	}
	c.UnreadCount = 0
	return nil
}

// Reset drops all chats and messages and restarts ids at 1.
func (s *ConversationStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = nil
	s.messages = nil
	s.nextChatID = 1
	s.nextMessageID = 1
}

func (s *ConversationStore) createChat(userID int) *Chat {
	s.chats = append(s.chats, Chat{ID: s.nextChatID, OwnerID: userID})
	s.nextChatID++
	return &s.chats[len(s.chats)-1]
}

func (s *ConversationStore) chatIndex(chatID int) int {
	for i := range s.chats {
		if s.chats[i].ID == chatID {
			return i
		}
	}
	return -1
}

// chat returns a pointer into s.chats or nil. Callers must hold s.mu.
func (s *ConversationStore) chat(chatID int) *Chat {
	i := s.chatIndex(chatID)
	if i < 0 {
		return nil
	}
	return &s.chats[i]
}
