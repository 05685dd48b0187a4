package app

import (
	"context"
	"io"

	"github.com/matheus3301/netwall/internal/activity"
	"github.com/matheus3301/netwall/internal/api"
	"github.com/matheus3301/netwall/internal/bus"
	"github.com/matheus3301/netwall/internal/config"
	"github.com/matheus3301/netwall/internal/console"
	"github.com/matheus3301/netwall/internal/logging"
	"github.com/matheus3301/netwall/internal/profile"
	"github.com/matheus3301/netwall/internal/status"
	"github.com/matheus3301/netwall/internal/store"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the resolved profile and I/O passed to the fx module.
type Params struct {
	Profile string
	Config  *config.Config
	In      io.Reader
	Out     io.Writer
	LogPath string // optional override for testing; empty = profile default
}

// Module returns the fx module for the application, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	if p.Config == nil {
		p.Config = config.Default()
	}
	return fx.Module("netwall",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideBus,
			provideStateMachine,
			store.NewPostStore,
			store.NewNoteStore,
			provideConversationStore,
			api.NewWallService,
			api.NewNoteService,
			api.NewChatService,
			provideActivity,
			provideConsole,
		),
		fx.Invoke(registerLifecycle),
	)
}

// WithZapLogger routes fx's own lifecycle events to the application logger.
func WithZapLogger() fx.Option {
	return fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Named("fx")}
	})
}

func provideLogger(p Params) (*zap.Logger, error) {
	path := p.LogPath
	if path == "" {
		path = profile.LogPath(p.Profile)
	}
	return logging.New(path, p.Profile, p.Config.LogLevel)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideConversationStore(p Params) *store.ConversationStore {
	return store.NewConversationStore(store.WithAutoCreateChats(p.Config.Chat.AutoCreateChats))
}

func provideActivity(p Params, b *bus.Bus, logger *zap.Logger) *activity.Engine {
	return activity.NewEngine(b, logger, p.Config.Console.RecentEvents)
}

func provideConsole(p Params, wall *api.WallService, notes *api.NoteService, chat *api.ChatService, act *activity.Engine, machine *status.Machine, logger *zap.Logger) *console.Console {
	return console.New(wall, notes, chat, act, machine, logger, console.Options{JSON: p.Config.Console.JSON})
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, p Params, cons *console.Console, engine *activity.Engine, machine *status.Machine, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Start before the first transition so it is recorded too.
			engine.Start(ctx)

			if err := machine.Transition(status.Ready); err != nil {
				return err
			}
			logger.Info("netwall ready")

			if p.In == nil || p.Out == nil {
				return nil
			}
			go func() {
				code := 0
				if err := cons.Run(ctx, p.In, p.Out); err != nil {
					logger.Error("console stopped", zap.Error(err))
					code = 1
				}
				if err := sd.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Warn("shutdown request failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			if err := machine.Transition(status.Stopping); err != nil {
				logger.Warn("unexpected state on stop", zap.Error(err))
			}
			engine.Stop()
			_ = machine.Transition(status.Stopped)
			logger.Info("netwall stopped")
			return nil
		},
	})
}
