package postgres

import (
	"context"
	"net/http"
	"os"
	cl "photo-album/pkg/catelog"
	"strconv"
	"testing"

	"gopkg.in/guregu/null.v3"
)

// StatsClient implements the tools StatsClient interface for mocking purposes.
type StatsClient struct {
	CountFn     func(string, float64, []string)
	GaugeFn     func(string, float64, []string)
	HistogramFn func(string, float64, []string)
	HandlerFn   func() http.Handler
}

// Count calls the StatsClient's CountFn.
func (sc *StatsClient) Count(name string, incBy float64, labels []string) {
	sc.CountFn(name, incBy, labels)
}

// Gauge calls the StatsClient's GaugeFn.
func (sc *StatsClient) Gauge(name string, value float64, labels []string) {
	sc.GaugeFn(name, value, labels)
}

// Histogram calls the StatsClient's HistogramFn.
func (sc *StatsClient) Histogram(name string, value float64, labels []string) {
	sc.HistogramFn(name, value, labels)
}

// Handler calls the StatsClient's HandlerFn.
func (sc *StatsClient) Handler() http.Handler {
	return sc.HandlerFn()
}

// NopStatsClient implements the StatsClient interface where all functions
// are no-ops.
var NopStatsClient = &StatsClient{
	CountFn:     func(string, float64, []string) {},
	GaugeFn:     func(string, float64, []string) {},
	HistogramFn: func(string, float64, []string) {},
	HandlerFn:   func() http.Handler { return nil },
}

// newPostgres connects to the test database, skipping the test when no
// database is configured.
func newPostgres(t *testing.T) *Postgres {
	t.Helper()
	dbHost := os.Getenv("POSTGRES_HOST")
	if dbHost == "" {
		t.Skip("POSTGRES_HOST not set, skipping database test")
	}
	dbPort, _ := strconv.Atoi(os.Getenv("POSTGRES_PORT"))
	if dbPort == 0 {
		dbPort = 5432
	}
	dbName := os.Getenv("POSTGRES_DB")
	if dbName == "" {
		dbName = "photo_album_test"
	}

	p, err := New(Config{
		DisableSSL: true,
		Host:       dbHost,
		Port:       dbPort,
		Name:       dbName,
		Password:   os.Getenv("POSTGRES_PASS"),
		Username:   "postgres",
	}, NopStatsClient)
	if err != nil {
		t.Fatalf("Unable to create postgres instance: %s", err.Error())
	}
	clearPostgres(p, t)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func clearPostgres(p *Postgres, t *testing.T) {
	_, err := p.sqldb.Exec(`
		TRUNCATE TABLE media CASCADE;
		TRUNCATE TABLE albums CASCADE;
	`)
	if err != nil {
		t.Fatalf("Unable to clear postgres: %s", err.Error())
	}
}

func createTestAlbum(ctx context.Context, p *Postgres, t *testing.T, name string, parentID null.String) cl.Album {
	t.Helper()
	a, err := p.CreateAlbum(ctx, cl.CreateAlbumRequest{Name: name, ParentID: parentID})
	if err != nil {
		t.Fatalf("error creating album %q: %s", name, err.Error())
	}
	return a
}

func createTestMedia(ctx context.Context, p *Postgres, t *testing.T, albumID, title, description string) cl.Media {
	t.Helper()
	m, err := p.AddMedia(ctx, cl.AddMediaRequest{
		AlbumID:     null.StringFrom(albumID),
		Type:        cl.MediaTypeImage,
		URL:         "https://res.example.com/demo/image/upload/v1/" + title + ".jpg",
		Title:       null.StringFrom(title),
		Description: null.StringFrom(description),
	})
	if err != nil {
		t.Fatalf("error creating media %q: %s", title, err.Error())
	}
	return m
}
