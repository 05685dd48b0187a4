package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matheus3301/netwall/internal/activity"
	"github.com/matheus3301/netwall/internal/api"
	"github.com/matheus3301/netwall/internal/logging"
	"github.com/matheus3301/netwall/internal/status"
	"go.uber.org/zap"
)

// ErrQuit is returned by Exec for the quit command.
var ErrQuit = errors.New("quit")

// Options configures a Console.
type Options struct {
	JSON bool
	// Now returns the unix time stamped on new posts and comments.
	Now func() int64
}

// Console executes line commands against the services.
type Console struct {
	wall     *api.WallService
	notes    *api.NoteService
	chat     *api.ChatService
	activity *activity.Engine
	machine  *status.Machine
	logger   *zap.Logger
	opts     Options
}

// New creates a console. activity and machine may be nil; the commands that
// need them then report an error.
func New(wall *api.WallService, notes *api.NoteService, chat *api.ChatService, act *activity.Engine, machine *status.Machine, logger *zap.Logger, opts Options) *Console {
	if opts.Now == nil {
		opts.Now = unixNow
	}
	return &Console{
		wall:     wall,
		notes:    notes,
		chat:     chat,
		activity: act,
		machine:  machine,
		logger:   logging.OrNop(logger).Named("console"),
		opts:     opts,
	}
}

// Run reads commands from in until EOF, quit, or ctx is cancelled, writing
// one result per command to out. Command failures are printed and do not
// stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res, err := c.Exec(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			c.logger.Debug("command failed", zap.String("line", line), zap.Error(err))
		}
		if werr := c.write(out, res, err); werr != nil {
			return werr
		}
	}
	return sc.Err()
}

func (c *Console) write(out io.Writer, res any, err error) error {
	if c.opts.JSON {
		v := map[string]any{"result": res}
		if err != nil {
			v = map[string]any{"error": err.Error()}
		}
		return json.NewEncoder(out).Encode(v)
	}
	if err != nil {
		_, werr := fmt.Fprintf(out, "error: %v\n", err)
		return werr
	}
	_, werr := io.WriteString(out, format(res))
	return werr
}
