package app

import (
	"context"
	"fmt"

	"github.com/afishabot/discovery/internal/datasources"
	"github.com/afishabot/discovery/internal/datasources/mysql"
	"github.com/afishabot/discovery/internal/jobs"
	"github.com/afishabot/discovery/internal/transport/web/router"
	"github.com/afishabot/discovery/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupContentRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up content repository: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		repo,
		MustGetEnvAsString(ctx, "IMAGE_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "FEED_CACHE_MAX_AGE"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		&jobs.Cleanup{
			Purger: repo,
			RunAt:  MustGetEnvAsString(ctx, "CLEANUP_RUN_AT"),
		},
	}, nil
}

func setupContentRepository(ctx context.Context) (datasources.ContentRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}
