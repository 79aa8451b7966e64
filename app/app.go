package app

import (
	"context"

	"log/slog"

	"github.com/sam365724/lemmy/config"
	httpapi "github.com/sam365724/lemmy/internal/api/http"
	"github.com/sam365724/lemmy/internal/cache"
	"github.com/sam365724/lemmy/internal/dependency"
	"github.com/sam365724/lemmy/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting language manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	languages, err := a.db.Languages().GetAllLanguages(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't load language catalog",
			slog.String("err", err.Error()),
		)
		return err
	}
	dict, err := cache.NewLanguageCache(languages)
	if err != nil {
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, a.db, dict); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		close(a.done)
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		_ = a.hs.Stop(ctx)
	}
	a.db.Close()
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
