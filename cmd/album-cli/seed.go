package main

import (
	"context"
	"fmt"
	"io"
	"photo-album/internal/client"
	cl "photo-album/pkg/catelog"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

type demoMedia struct {
	url, title, description string
}

var (
	demoAlbumName = "Travel memories (demo)"

	demoAlbumMedia = []demoMedia{
		{"https://images.unsplash.com/photo-1542281286-9e0a16bb7366", "Kyoto scenery", "The spring cherry blossoms were beautiful."},
		{"https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1", "Lakeside camp", "Recharging in the great outdoors."},
	}

	demoRootMedia = []demoMedia{
		{"https://images.unsplash.com/photo-1506744626753-dba7e411b2c1", "A wonderful sunset", "Taken near the sea."},
		{"https://images.unsplash.com/photo-1469474968028-56623f02e42e", "Forest walk", "Plenty of fresh air."},
	}
)

// seedDemo creates one album holding two images and two images with no
// album. A failing media row is reported and the rest are still added.
func seedDemo(ctx context.Context, api *client.Client, w io.Writer) error {
	album, err := api.CreateAlbum(ctx, demoAlbumName, "")
	if err != nil {
		return errors.Wrap(err, "create demo album")
	}
	fmt.Fprintln(w, "created album:", album.Name)

	add := func(albumID string, items []demoMedia) {
		for _, d := range items {
			_, err := api.AddMedia(ctx, cl.AddMediaRequest{
				AlbumID:     null.StringFrom(albumID),
				Type:        cl.MediaTypeImage,
				URL:         d.url,
				Title:       null.StringFrom(d.title),
				Description: null.StringFrom(d.description),
			})
			if err != nil {
				fmt.Fprintf(w, "%s %s: %s\n", red("failed"), d.title, err.Error())
				continue
			}
			fmt.Fprintln(w, "added media:", d.title)
		}
	}
	add(album.ID, demoAlbumMedia)
	add(cl.RootAlbum, demoRootMedia)
	return nil
}
