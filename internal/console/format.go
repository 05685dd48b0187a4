package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matheus3301/netwall/internal/activity"
	"github.com/matheus3301/netwall/internal/store"
)

// format renders a command result as human-readable text ending in a newline.
func format(res any) string {
	var b strings.Builder
	switch v := res.(type) {
	case string:
		b.WriteString(strings.TrimSuffix(v, "\n"))
		b.WriteByte('\n')
	case bool:
		if v {
			b.WriteString("ok\n")
		} else {
			b.WriteString("no change\n")
		}
	case int:
		fmt.Fprintf(&b, "%d\n", v)
	case fmt.Stringer:
		fmt.Fprintf(&b, "%s\n", v)
	case store.Post:
		writePost(&b, v)
	case []store.Post:
		for _, p := range v {
			writePost(&b, p)
		}
	case store.Comment:
		writeComment(&b, v)
	case []store.Comment:
		for _, c := range v {
			writeComment(&b, c)
		}
	case store.Note:
		writeNote(&b, v)
		for _, c := range v.Comments {
			b.WriteString("  ")
			writeNoteComment(&b, c)
		}
	case []store.Note:
		for _, n := range v {
			writeNote(&b, n)
		}
	case store.NoteComment:
		writeNoteComment(&b, v)
	case []store.NoteComment:
		for _, c := range v {
			writeNoteComment(&b, c)
		}
	case store.Chat:
		writeChat(&b, v)
	case []store.Chat:
		for _, c := range v {
			writeChat(&b, c)
		}
	case store.Message:
		writeMessage(&b, v)
	case []store.Message:
		for _, m := range v {
			writeMessage(&b, m)
		}
	case []string:
		for _, s := range v {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	case activity.Stats:
		writeStats(&b, v)
	default:
		fmt.Fprintf(&b, "%v\n", v)
	}
	return b.String()
}

func writePost(b *strings.Builder, p store.Post) {
	fmt.Fprintf(b, "post %d owner=%d: %s", p.ID, p.OwnerID, p.Text)
	if len(p.Attachments) > 0 {
		types := make([]string, len(p.Attachments))
		for i, a := range p.Attachments {
			types[i] = a.Type()
		}
		fmt.Fprintf(b, " [%s]", strings.Join(types, ","))
	}
	b.WriteByte('\n')
}

func writeComment(b *strings.Builder, c store.Comment) {
	fmt.Fprintf(b, "comment %d post=%d from=%d: %s\n", c.ID, c.PostID, c.FromID, c.Text)
}

func writeNote(b *strings.Builder, n store.Note) {
	fmt.Fprintf(b, "note %d owner=%d %q: %s\n", n.ID, n.OwnerID, n.Title, n.Text)
}

func writeNoteComment(b *strings.Builder, c store.NoteComment) {
	state := ""
	if c.Deleted {
		state = " (deleted)"
	}
	fmt.Fprintf(b, "comment %d from=%d%s: %s\n", c.ID, c.FromID, state, c.Text)
}

func writeChat(b *strings.Builder, c store.Chat) {
	fmt.Fprintf(b, "chat %d owner=%d unread=%d\n", c.ID, c.OwnerID, c.UnreadCount)
}

func writeMessage(b *strings.Builder, m store.Message) {
	read := "unread"
	if m.Read {
		read = "read"
	}
	fmt.Fprintf(b, "message %d chat=%d sender=%d %s: %s\n", m.ID, m.ChatID, m.SenderID, read, m.Text)
}

func writeStats(b *strings.Builder, st activity.Stats) {
	fmt.Fprintf(b, "events: %d\n", st.Total)
	kinds := make([]string, 0, len(st.ByKind))
	for k := range st.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(b, "  %-24s %d\n", k, st.ByKind[k])
	}
}
