package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sam365724/lemmy/internal/cache"
	"github.com/sam365724/lemmy/internal/dependency"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router(rep dependency.Repository, dict *cache.LanguageCache) http.Handler {
	h := &handlers{
		dict:      dict,
		site:      rep.SiteLanguages(),
		community: rep.CommunityLanguages(),
		user:      rep.UserLanguages(),
		actors:    rep.Actors(),
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", h.getAllLanguages)

		r.Get("/site/languages", h.getSiteLanguages)
		r.Put("/site/languages", h.updateSiteLanguages)

		r.Post("/community", h.addCommunity)
		r.Route("/community/{id}", func(sr chi.Router) {
			sr.Get("/languages", h.getCommunityLanguages)
			sr.Put("/languages", h.updateCommunityLanguages)
			sr.Get("/languages/check", h.checkCommunityLanguage)
		})

		r.Post("/user", h.addLocalUser)
		r.Route("/user/{id}", func(sr chi.Router) {
			sr.Get("/languages", h.getUserLanguages)
			sr.Put("/languages", h.updateUserLanguages)
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context, rep dependency.Repository, dict *cache.LanguageCache) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.router(rep, dict),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("listening on http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}
