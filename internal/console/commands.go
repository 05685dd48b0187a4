package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matheus3301/netwall/internal/store"
)

const usage = `commands:
  post add <owner> <text...>            post update <id> <owner> <text...>
  post get <id>                         post list
  post comment <post> <from> <text...>  post comments <post>
  note add <owner> <title> <text...>    note update <id> <owner> <title> <text...>
  note get <id>                         note list <user>
  note delete <id>                      note restore <id>
  note comment <note> <from> <text...>  note comments <note>
  comment edit <id> <text...>           comment delete <id>
  comment restore <id>
  chat create <user>                    chat delete <id>
  chat list                             chat unread <user>
  chat latest <user>                    chat read <id>
  msg send <chat> <user> <text...>      msg delete <id>
  msg fetch <chat> <user> <count>
  events                                status
  help                                  quit
`

func unixNow() int64 { return time.Now().Unix() }

// Exec runs a single command line and returns its result.
func (c *Console) Exec(line string) (any, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	switch f[0] {
	case "help":
		return usage, nil
	case "quit", "exit":
		return nil, ErrQuit
	case "events":
		if c.activity == nil {
			return nil, fmt.Errorf("activity tracking disabled")
		}
		return c.activity.Snapshot(), nil
	case "status":
		if c.machine == nil {
			return nil, fmt.Errorf("status unavailable")
		}
		return c.machine.Current(), nil
	}
	if len(f) < 2 {
		return nil, fmt.Errorf("usage: %s <subcommand>", f[0])
	}

	a := args(f[2:])
	switch f[0] + " " + f[1] {
	case "post add":
		owner, text, err := a.intAndText(1)
		if err != nil {
			return nil, err
		}
		return c.wall.AddPost(store.Post{
			OwnerID:   owner[0],
			CreatedBy: owner[0],
			Date:      c.opts.Now(),
			Text:      text,
			PostType:  store.PostTypePost,
		}), nil
	case "post update":
		n, text, err := a.intAndText(2)
		if err != nil {
			return nil, err
		}
		prev, ok := c.wall.Post(n[0])
		if !ok {
			return false, nil
		}
		prev.OwnerID = n[1]
		prev.Text = text
		return c.wall.UpdatePost(prev), nil
	case "post get":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		p, ok := c.wall.Post(id[0])
		if !ok {
			return nil, &store.NotFoundError{Entity: store.EntityPost, ID: id[0]}
		}
		return p, nil
	case "post list":
		return c.wall.Posts(), nil
	case "post comment":
		n, text, err := a.intAndText(2)
		if err != nil {
			return nil, err
		}
		return c.wall.CreateComment(n[0], store.Comment{FromID: n[1], Date: c.opts.Now(), Text: text})
	case "post comments":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.wall.Comments(id[0]), nil

	case "note add":
		n, rest, err := a.intAndText(1)
		if err != nil {
			return nil, err
		}
		title, text, _ := strings.Cut(rest, " ")
		return c.notes.AddNote(store.Note{OwnerID: n[0], Title: title, Text: text}), nil
	case "note update":
		n, rest, err := a.intAndText(2)
		if err != nil {
			return nil, err
		}
		prev, ok := c.notes.Note(n[0])
		if !ok {
			return false, nil
		}
		prev.OwnerID = n[1]
		prev.Title, prev.Text, _ = strings.Cut(rest, " ")
		return c.notes.UpdateNote(prev), nil
	case "note get":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		n, ok := c.notes.Note(id[0])
		if !ok {
			return nil, &store.NotFoundError{Entity: store.EntityNote, ID: id[0]}
		}
		return n, nil
	case "note list":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.notes.UserNotes(id[0]), nil
	case "note delete":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.notes.DeleteNote(id[0]), nil
	case "note restore":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.notes.RestoreNote(id[0]), nil
	case "note comment":
		n, text, err := a.intAndText(2)
		if err != nil {
			return nil, err
		}
		return c.notes.CreateComment(n[0], store.NoteComment{FromID: n[1], Date: c.opts.Now(), Text: text})
	case "note comments":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.notes.Comments(id[0]), nil

	case "comment edit":
		n, text, err := a.intAndText(1)
		if err != nil {
			return nil, err
		}
		return c.notes.EditComment(n[0], text), nil
	case "comment delete":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.notes.DeleteComment(id[0]), nil
	case "comment restore":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.notes.RestoreComment(id[0]), nil

	case "chat create":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.chat.CreateChat(id[0]), nil
	case "chat delete":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return done(c.chat.DeleteChat(id[0]))
	case "chat list":
		return c.chat.Chats(), nil
	case "chat unread":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.chat.UnreadChatsCount(id[0]), nil
	case "chat latest":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return c.chat.LatestMessages(id[0]), nil
	case "chat read":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return done(c.chat.MarkAllRead(id[0]))

	case "msg send":
		n, text, err := a.intAndText(2)
		if err != nil {
			return nil, err
		}
		return c.chat.SendMessage(n[0], n[1], text)
	case "msg delete":
		id, err := a.ints(1)
		if err != nil {
			return nil, err
		}
		return done(c.chat.DeleteMessage(id[0]))
	case "msg fetch":
		n, err := a.ints(3)
		if err != nil {
			return nil, err
		}
		return c.chat.FetchMessages(n[0], n[1], n[2]), nil
	}
	return nil, fmt.Errorf("unknown command: %s %s", f[0], f[1])
}

func done(err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return true, nil
}

type args []string

// ints parses exactly n integer arguments.
func (a args) ints(n int) ([]int, error) {
	if len(a) != n {
		return nil, fmt.Errorf("expected %d argument(s), got %d", n, len(a))
	}
	return a.parse(n)
}

// intAndText parses n integer arguments followed by non-empty free text.
func (a args) intAndText(n int) ([]int, string, error) {
	if len(a) <= n {
		return nil, "", fmt.Errorf("expected %d argument(s) and text", n)
	}
	ids, err := a.parse(n)
	if err != nil {
		return nil, "", err
	}
	return ids, strings.Join(a[n:], " "), nil
}

func (a args) parse(n int) ([]int, error) {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(a[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, a[i])
		}
		out[i] = v
	}
	return out, nil
}
