package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationsContainSchema(t *testing.T) {
	table := []struct {
		label  string
		glob   string
		checks []string
	}{
		{
			label: "albums up",
			glob:  "*_create_albums.up.sql",
			checks: []string{
				"CREATE TABLE IF NOT EXISTS albums",
				"parent_id text REFERENCES albums (id)",
				"CREATE INDEX IF NOT EXISTS idx_albums_parent_id_created_at",
			},
		},
		{
			label: "media up",
			glob:  "*_create_media.up.sql",
			checks: []string{
				"CREATE TABLE IF NOT EXISTS media",
				"album_id text REFERENCES albums (id)",
				"CHECK (type IN ('image', 'video'))",
				"asset_id text",
				"CREATE INDEX IF NOT EXISTS idx_media_album_id_created_at",
			},
		},
		{
			label:  "albums down",
			glob:   "*_create_albums.down.sql",
			checks: []string{"DROP TABLE IF EXISTS albums"},
		},
		{
			label:  "media down",
			glob:   "*_create_media.down.sql",
			checks: []string{"DROP TABLE IF EXISTS media"},
		},
	}

	for _, ts := range table {
		t.Run(ts.label, func(t *testing.T) {
			matches, err := filepath.Glob(filepath.Join("migrations", ts.glob))
			if err != nil {
				t.Fatalf("glob migrations: %v", err)
			}
			if len(matches) != 1 {
				t.Fatalf("expected one migration file for %s, got %d", ts.glob, len(matches))
			}

			data, err := os.ReadFile(matches[0])
			if err != nil {
				t.Fatalf("read migration file: %v", err)
			}
			content := string(data)
			for _, sub := range ts.checks {
				if !strings.Contains(content, sub) {
					t.Errorf("missing expected statement %q", sub)
				}
			}
		})
	}
}
