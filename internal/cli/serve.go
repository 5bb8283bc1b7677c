package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/wintryx/progressmaker/pkg/apiclient"
	"github.com/wintryx/progressmaker/pkg/config"
	"github.com/wintryx/progressmaker/pkg/environment"
	"github.com/wintryx/progressmaker/pkg/httpserver"
	"github.com/wintryx/progressmaker/pkg/logger"
	"github.com/wintryx/progressmaker/pkg/mockapi"
	"github.com/wintryx/progressmaker/pkg/notifications"
	"github.com/wintryx/progressmaker/pkg/redis"
	"github.com/wintryx/progressmaker/pkg/requestid"
	"github.com/wintryx/progressmaker/svc/auth"
	"github.com/wintryx/progressmaker/svc/playground"
)

type serveConfig struct {
	App    AppConfig
	HTTP   httpserver.Config
	Notify notifications.Config
	Mock   mockapi.Config
	Redis  redis.Config
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mock backend, the toast stream and the playground",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg serveConfig
			if err := loadServeConfig(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func loadServeConfig(cfg *serveConfig) error {
	return errors.Join(
		config.Load(&cfg.App),
		config.Load(&cfg.HTTP),
		config.Load(&cfg.Notify),
		config.Load(&cfg.Mock),
		config.Load(&cfg.Redis),
	)
}

func serve(ctx context.Context, cfg serveConfig, logOut io.Writer) error {
	log := newLogger(cfg.App, logOut)
	env := environment.Parse(cfg.App.Env)

	checks := map[string]httpserver.Check{}
	var client goredis.UniversalClient
	if cfg.Notify.Store == notifications.StoreRedis {
		rc, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rc.Close()
		client = rc
		checks["redis"] = redis.Healthcheck(rc)
	}

	store, err := notifications.NewStore(cfg.Notify, client)
	if err != nil {
		return err
	}

	stream := notifications.NewBroadcastPresenter(cfg.Notify.StreamBuffer, notifications.WithBroadcastLogger(log))
	defer stream.Close()

	presenter := notifications.NewMultiPresenter(
		[]notifications.Presenter{stream, notifications.NewLogPresenter(log)},
		notifications.WithMultiPresenterLogger(log),
	)
	notifier := notifications.NewFromConfig(cfg.Notify, presenter,
		notifications.WithStore(store),
		notifications.WithLogger(log),
	)

	// The backend is mounted below its base path, so its own routes start at the root.
	api, err := mockapi.NewFromConfig(cfg.Mock, mockapi.WithBasePath(""), mockapi.WithLogger(log))
	if err != nil {
		return err
	}
	base := "/" + strings.Trim(cfg.Mock.BasePath, "/")

	r := chi.NewRouter()

	session := auth.NewSession(auth.WithLogger(log))
	if err := session.Login(auth.User{ID: "demo", Name: "Demo user"}); err != nil {
		return err
	}

	// The playground reaches the backend in-process, with the caller's
	// request id forwarded.
	httpClient := notifier.Client(notifications.WithBase(requestid.Transport{Base: mockapi.Transport(r)}))
	pg := playground.New(apiclient.New("http://progressmaker.local"+strings.TrimSuffix(base, "/"), httpClient), notifier, session,
		playground.WithLogger(log),
	)

	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(env))
	r.Get("/healthz", httpserver.HealthHandler(log, checks))
	r.Get("/toasts", stream.ServeHTTP)
	r.Mount("/playground", playground.Router(pg))
	r.Mount(base, api.Handler())

	log.InfoContext(ctx, "starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("store", cfg.Notify.Store),
		slog.String("api", base),
	)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("httpserver"))))
	return srv.Run(ctx, r)
}
