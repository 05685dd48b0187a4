package store

// Attachment is an opaque media payload carried by a post.
type Attachment interface {
	Type() string
}

// Photo is an image payload.
type Photo struct {
	ID      int
	OwnerID int
	UserID  int
	Text    string
}

// Video is a video payload.
type Video struct {
	ID       int
	OwnerID  int
	Title    string
	Duration int
}

// Audio is an audio track payload.
type Audio struct {
	ID       int
	OwnerID  int
	Artist   string
	Duration int
	URL      string
}

// File is a document payload.
type File struct {
	ID      int
	OwnerID int
	Title   string
	Size    int
	URL     string
}

// Geo is a location payload.
type Geo struct {
	Type        string
	Coordinates string
	Place       string
}

type PhotoAttachment struct{ Photo Photo }

type VideoAttachment struct{ Video Video }

type AudioAttachment struct{ Audio Audio }

type FileAttachment struct{ File File }

type GeoAttachment struct{ Geo Geo }

func (PhotoAttachment) Type() string { return "photo" }
func (VideoAttachment) Type() string { return "video" }
func (AudioAttachment) Type() string { return "audio" }
func (FileAttachment) Type() string  { return "file" }
func (GeoAttachment) Type() string   { return "geo" }
