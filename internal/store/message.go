package store

import "fmt"

// CreateMessage appends an unread message from userID to a chat and bumps
// the chat's unread counter.
//
// If chatID does not exist and auto-creation is enabled, a new chat owned by
// userID is created under the next chat id (not chatID) and the message goes
// there. With auto-creation disabled the call fails with ErrChatNotFound.
func (s *ConversationStore) CreateMessage(chatID, userID int, text string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.chat(chatID)
	if c == nil {
		if !s.autoCreateChats {
			return Message{}, notFound(EntityChat, chatID)
		}
		c = s.createChat(userID)
	}

	m := Message{
		ID:       s.nextMessageID,
		ChatID:   c.ID,
		SenderID: userID,
		Text:     text,
	}
	s.nextMessageID++
	s.messages = append(s.messages, m)
	c.UnreadCount++
	return m, nil
}

// DeleteMessage removes a message and decrements its chat's unread counter
// if the chat still exists. The counter never drops below zero.
func (s *ConversationStore) DeleteMessage(messageID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := -1
	for j := range s.messages {
		if s.messages[j].ID == messageID {
			i = j
			break
		}
	}
	if i < 0 {
		return notFound(EntityMessage, messageID)
	}

	if c := s.chat(s.messages[i].ChatID); c != nil && c.UnreadCount > 0 {
		c.UnreadCount--
	}
	s.messages = append(s.messages[:i], s.messages[i+1:]...)
	return nil
}

// MessagesFromChat returns up to count messages of chatID sent by someone
// other than userID, oldest first, and marks each returned message read.
// The chat's unread counter is left unchanged.
func (s *ConversationStore) MessagesFromChat(chatID, userID, count int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Message{}
	for i := range s.messages {
		if len(out) >= count {
			break
		}
		m := &s.messages[i]
		if m.ChatID != chatID || m.SenderID == userID {
			continue
		}
		m.Read = true
		out = append(out, *m)
	}
	return out
}

// LatestMessages returns, for each chat owned by userID, its most recently
// appended message formatted as "sender <id>: <text>". Chats without
// messages are skipped.
func (s *ConversationStore) LatestMessages(userID int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []string{}
	for _, c := range s.chats {
		if c.OwnerID != userID {
			continue
		}
		if m := s.lastMessage(c.ID); m != nil {
			out = append(out, FormatLatest(*m))
		}
	}
	return out
}

// Messages returns a snapshot of the messages in chatID, oldest first.
func (s *ConversationStore) Messages(chatID int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Message{}
	for _, m := range s.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

// FormatLatest renders a message the way LatestMessages reports it.
func FormatLatest(m Message) string {
	return fmt.Sprintf("sender %d: %s", m.SenderID, m.Text)
}

func (s *ConversationStore) lastMessage(chatID int) *Message {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].ChatID == chatID {
			return &s.messages[i]
		}
	}
	return nil
}
