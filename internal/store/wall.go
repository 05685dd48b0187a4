package store

import "sync"

// PostStore owns wall posts and the flat list of comments left on them.
type PostStore struct {
	mu       sync.Mutex
	nextID   int
	posts    []Post
	comments []Comment
}

// NewPostStore creates an empty wall store.
func NewPostStore() *PostStore {
	return &PostStore{nextID: 1}
}

// Add stores a copy of post under the next sequential id and returns it.
// Any id carried by the argument is ignored.
func (s *PostStore) Add(post Post) Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := post.clone()
	p.ID = s.nextID
	s.nextID++
	s.posts = append(s.posts, p)
	return p.clone()
}

// Update replaces the post with the same id wholesale.
// Returns false if no such post exists.
func (s *PostStore) Update(post Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(post.ID)
	if i < 0 {
		return false
	}
	s.posts[i] = post.clone()
	return true
}

// Post returns the post with the given id.
func (s *PostStore) Post(id int) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Post{}, false
	}
	return s.posts[i].clone(), true
}

// Posts returns all posts in insertion order.
func (s *PostStore) Posts() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.clone()
	}
	return out
}

// CreateComment attaches comment to the post with postID, overwriting the
// comment's PostID. The comment id is assigned from the number of comments in
// the store, not per post.
func (s *PostStore) CreateComment(postID int, comment Comment) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(postID) < 0 {
		return Comment{}, notFound(EntityPost, postID)
	}
	comment.ID = len(s.comments) + 1
	comment.PostID = postID
	s.comments = append(s.comments, comment)
	return comment, nil
}

// Comments returns the visible comments whose PostID is postID.
func (s *PostStore) Comments(postID int) []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Comment{}
	for _, c := range s.comments {
		if c.PostID == postID && !c.Deleted {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all posts and comments and restarts ids at 1.
func (s *PostStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = nil
	s.comments = nil
	s.nextID = 1
}

func (s *PostStore) indexOf(id int) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}
