package api

import (
	"fmt"

	"github.com/matheus3301/netwall/internal/bus"
	"github.com/matheus3301/netwall/internal/logging"
	"github.com/matheus3301/netwall/internal/store"
	"go.uber.org/zap"
)

// WallService exposes the wall store to callers, logging each operation
// and publishing wall.* events.
type WallService struct {
	store  *store.PostStore
	bus    *bus.Bus
	logger *zap.Logger
}

// NewWallService creates a new wall service backed by the store.
func NewWallService(s *store.PostStore, b *bus.Bus, logger *zap.Logger) *WallService {
	return &WallService{store: s, bus: b, logger: logging.OrNop(logger).Named("wall")}
}

func (s *WallService) AddPost(post store.Post) store.Post {
	p := s.store.Add(post)
	s.logger.Info("post added", zap.Int("post_id", p.ID), zap.Int("owner_id", p.OwnerID), zap.Int("attachments", len(p.Attachments)))
	s.bus.Publish(bus.NewEvent(KindPostAdded, p))
	return p
}

func (s *WallService) UpdatePost(post store.Post) bool {
	ok := s.store.Update(post)
	s.logger.Info("post update", zap.Int("post_id", post.ID), zap.Bool("found", ok))
	if ok {
		s.bus.Publish(bus.NewEvent(KindPostUpdated, post))
	}
	return ok
}

func (s *WallService) Post(id int) (store.Post, bool) {
	return s.store.Post(id)
}

func (s *WallService) Posts() []store.Post {
	return s.store.Posts()
}

func (s *WallService) CreateComment(postID int, comment store.Comment) (store.Comment, error) {
	c, err := s.store.CreateComment(postID, comment)
	if err != nil {
		s.logger.Info("comment rejected", zap.Int("post_id", postID), zap.Error(err))
		return store.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	s.logger.Info("comment added", zap.Int("post_id", postID), zap.Int("comment_id", c.ID), zap.Int("from_id", c.FromID))
	s.bus.Publish(bus.NewEvent(KindWallCommentAdd, c))
	return c, nil
}

func (s *WallService) Comments(postID int) []store.Comment {
	return s.store.Comments(postID)
}
