package api

import (
	"fmt"

	"github.com/matheus3301/netwall/internal/bus"
	"github.com/matheus3301/netwall/internal/logging"
	"github.com/matheus3301/netwall/internal/store"
	"go.uber.org/zap"
)

// ChatService exposes the conversation store to callers, logging each
// operation and publishing chat.* and message.* events.
type ChatService struct {
	store  *store.ConversationStore
	bus    *bus.Bus
	logger *zap.Logger
}

// NewChatService creates a new chat service backed by the store.
func NewChatService(s *store.ConversationStore, b *bus.Bus, logger *zap.Logger) *ChatService {
	return &ChatService{store: s, bus: b, logger: logging.OrNop(logger).Named("chat")}
}

func (s *ChatService) CreateChat(userID int) store.Chat {
	c := s.store.CreateChat(userID)
	s.logger.Info("chat created", zap.Int("chat_id", c.ID), zap.Int("owner_id", userID))
	s.bus.Publish(bus.NewEvent(KindChatCreated, c))
	return c
}

func (s *ChatService) DeleteChat(chatID int) error {
	if err := s.store.DeleteChat(chatID); err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	s.logger.Info("chat deleted", zap.Int("chat_id", chatID))
	s.bus.Publish(bus.NewEvent(KindChatDeleted, ChatRef{ChatID: chatID}))
	return nil
}

func (s *ChatService) Chats() []store.Chat {
	return s.store.Chats()
}

func (s *ChatService) UnreadChatsCount(userID int) int {
	return s.store.UnreadChatsCount(userID)
}

func (s *ChatService) LatestMessages(userID int) []string {
	return s.store.LatestMessages(userID)
}

func (s *ChatService) MarkAllRead(chatID int) error {
	if err := s.store.MarkAllRead(chatID); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	s.logger.Info("chat marked read", zap.Int("chat_id", chatID))
	s.bus.Publish(bus.NewEvent(KindChatRead, ChatRef{ChatID: chatID}))
	return nil
}

func (s *ChatService) SendMessage(chatID, userID int, text string) (store.Message, error) {
	_, existed := s.store.Chat(chatID)
	m, err := s.store.CreateMessage(chatID, userID, text)
	if err != nil {
		return store.Message{}, fmt.Errorf("send message: %w", err)
	}
	if !existed {
		s.logger.Info("chat auto-created for message", zap.Int("requested_chat_id", chatID), zap.Int("chat_id", m.ChatID))
		if c, ok := s.store.Chat(m.ChatID); ok {
			s.bus.Publish(bus.NewEvent(KindChatCreated, c))
		}
	}
	s.logger.Info("message created", zap.Int("message_id", m.ID), zap.Int("chat_id", m.ChatID), zap.Int("sender_id", userID))
	s.bus.Publish(bus.NewEvent(KindMessageCreated, m))
	return m, nil
}

func (s *ChatService) DeleteMessage(messageID int) error {
	if err := s.store.DeleteMessage(messageID); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	s.logger.Info("message deleted", zap.Int("message_id", messageID))
	s.bus.Publish(bus.NewEvent(KindMessageDeleted, MessageRef{MessageID: messageID}))
	return nil
}

// FetchMessages returns up to count messages of chatID written by others
// than userID and marks them read.
func (s *ChatService) FetchMessages(chatID, userID, count int) []store.Message {
	msgs := s.store.MessagesFromChat(chatID, userID, count)
	if len(msgs) == 0 {
		return msgs
	}
	ids := make([]int, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	s.logger.Info("messages read", zap.Int("chat_id", chatID), zap.Int("reader_id", userID), zap.Ints("message_ids", ids))
	s.bus.Publish(bus.NewEvent(KindMessageRead, MessagesRead{ChatID: chatID, ReaderID: userID, MessageIDs: ids}))
	return msgs
}

func (s *ChatService) Messages(chatID int) []store.Message {
	return s.store.Messages(chatID)
}
