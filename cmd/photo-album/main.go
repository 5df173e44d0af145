package main

import (
	"context"
	"log"
	"os"
	"photo-album/internal/hosting"
	"photo-album/internal/http"
	"photo-album/internal/metrics"
	"photo-album/internal/postgres"
	"syscall"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/kelseyhightower/envconfig"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/zap"
)

var version string

type variables struct {
	Addr           string `required:"true" envconfig:"addr"`
	PostgresHost   string `required:"true" envconfig:"postgres_host"`
	PostgresPort   int    `required:"false" envconfig:"postgres_port"`
	PostgresDB     string `required:"true" envconfig:"postgres_db"`
	PostgresUser   string `required:"true" envconfig:"postgres_user"`
	PostgresPass   string `required:"true" envconfig:"postgres_pass"`
	LogLevel       string `required:"false" envconfig:"log_level"`
	AppName        string `required:"true" envconfig:"app_name"`
	CloudName      string `required:"true" envconfig:"cloud_name"`
	CloudAPIKey    string `required:"true" envconfig:"cloud_api_key"`
	CloudAPISecret string `required:"true" envconfig:"cloud_api_secret"`
	UploadPreset   string `required:"false" envconfig:"upload_preset"`
	HostingBaseURL string `required:"false" envconfig:"hosting_base_url"`
}

var v variables

func init() {
	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("PHOTO_ALBUM_ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	envconfig.MustProcess("photo_album", &v)
	if v.LogLevel == "" {
		v.LogLevel = "info"
	}
}

func main() {
	logger := zap.New("photo-album", version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}
	logger.Info("starting photo-album",
		"addr", v.Addr,
		"postgres_host", v.PostgresHost,
		"postgres_db", v.PostgresDB,
		"cloud_name", v.CloudName,
	)

	stats := metrics.New("photo_album")
	host, err := hosting.New(hosting.Config{
		BaseURL:      v.HostingBaseURL,
		CloudName:    v.CloudName,
		APIKey:       v.CloudAPIKey,
		APISecret:    v.CloudAPISecret,
		UploadPreset: v.UploadPreset,
	}, hosting.WithStats(stats))
	if err != nil {
		logger.Error("failed to configure media hosting", "error", err.Error())
		os.Exit(1)
	}

	pg := newPostgres(v, stats)
	defer pg.Close()

	ctx := context.Background()

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("photo-album root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		Logger:     logger,
		Version:    version,
		Stats:      stats,
		AlbumStore: pg,
		MediaStore: pg,
		MediaHost:  host,
		AppName:    v.AppName,
	}
	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(15 * time.Second)
}

func newPostgres(v variables, sc tools.StatsClient) *postgres.Postgres {
	pgConfig := postgres.Config{
		Host:       v.PostgresHost,
		Name:       v.PostgresDB,
		Password:   v.PostgresPass,
		Username:   v.PostgresUser,
		DisableSSL: true,
	}
	// Only use a Postgres port if one was provided
	if v.PostgresPort > 0 {
		pgConfig.Port = v.PostgresPort
	}
	pg, err := postgres.New(pgConfig, sc)
	if err != nil {
		panic(err)
	}
	return pg
}
