package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"photo-album/internal/client"
	cl "photo-album/pkg/catelog"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// cli holds the state of one terminal session.
type cli struct {
	api  *client.Client
	host client.Uploader
	nav  client.Navigation
	in   io.Reader
	out  io.Writer
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "album-cli",
		Short:         "Browse and manage photo albums",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var album string
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List the albums and media of an album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.list(cmd.Context(), album, "")
		},
	}
	ls.Flags().StringVarP(&album, "album", "a", "", "album id (top level when empty)")

	var searchAlbum string
	search := &cobra.Command{
		Use:   "search [query]",
		Short: "Search media by title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.list(cmd.Context(), searchAlbum, args[0])
		},
	}
	search.Flags().StringVarP(&searchAlbum, "album", "a", "", "album id to search in")

	var parent string
	mkdir := &cobra.Command{
		Use:   "mkdir [name]",
		Short: "Create an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.api.CreateAlbum(cmd.Context(), args[0], parent)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s %s %s\n", green("created"), bold(a.Name), gray(a.ID))
			return nil
		},
	}
	mkdir.Flags().StringVarP(&parent, "parent", "p", "", "parent album id")

	rename := &cobra.Command{
		Use:   "rename [id] [name]",
		Short: "Rename an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.api.RenameAlbum(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s %s\n", green("renamed"), bold(a.Name))
			return nil
		},
	}

	rmdir := &cobra.Command{
		Use:   "rmdir [id]",
		Short: "Delete an empty album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.api.DeleteAlbum(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(c.out, green("deleted"), args[0])
			return nil
		},
	}

	var upAlbum string
	var upTitles, upDescs []string
	upload := &cobra.Command{
		Use:   "upload [files...]",
		Short: "Upload images and videos into an album",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := uploadFiles(args, upTitles, upDescs)
			if err != nil {
				return err
			}
			return c.upload(cmd.Context(), upAlbum, files)
		},
	}
	upload.Flags().StringVarP(&upAlbum, "album", "a", "", "album id (no album when empty)")
	upload.Flags().StringArrayVarP(&upTitles, "title", "t", nil, "title of the file in the same position; repeat per file (file name when empty)")
	upload.Flags().StringArrayVarP(&upDescs, "description", "d", nil, "description of the file in the same position; repeat per file")

	var editTitle, editDesc string
	edit := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit the title and description of a media item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := cl.UpdateMediaRequest{
				ID:    args[0],
				Title: null.StringFrom(editTitle),
			}
			// The service always writes the title, so keep the stored one
			// when no new title was given.
			if !cmd.Flags().Changed("title") {
				m, err := c.api.GetMedia(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				req.Title = m.Title
			}
			if cmd.Flags().Changed("description") {
				req.Description = null.StringFrom(editDesc)
			}
			m, err := c.api.UpdateMedia(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s %s\n", green("updated"), formatMedia(m))
			return nil
		},
	}
	edit.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	edit.Flags().StringVarP(&editDesc, "description", "d", "", "new description")

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a media item and its hosted file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.api.DeleteMedia(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(c.out, green("deleted"), args[0])
			return nil
		},
	}

	crumbs := &cobra.Command{
		Use:   "crumbs [id]",
		Short: "Show the path from the top level to an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.nav.Open(cmd.Context(), c.api, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(c.out, formatCrumbs(c.nav.Breadcrumbs))
			return nil
		},
	}

	var viewAlbum string
	view := &cobra.Command{
		Use:   "view [id]",
		Short: "Step through the media of an album starting at id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.view(cmd.Context(), viewAlbum, args[0])
		},
	}
	view.Flags().StringVarP(&viewAlbum, "album", "a", "", "album the media belongs to")

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo albums and media",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedDemo(cmd.Context(), c.api, c.out)
		},
	}

	root.AddCommand(ls, search, mkdir, rename, rmdir, upload, edit, rm, crumbs, view, seed)
	return root
}

func (c *cli) list(ctx context.Context, albumID, query string) error {
	if err := c.nav.Open(ctx, c.api, albumID); err != nil {
		return err
	}
	c.nav.Search = query

	v, err := client.Fetch(ctx, c.api, &c.nav)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, formatCrumbs(c.nav.Breadcrumbs))
	for _, a := range v.Albums {
		fmt.Fprintf(c.out, "  %s/ %s\n", cyan(a.Name), gray(a.ID))
	}
	for _, m := range v.Media {
		fmt.Fprintf(c.out, "  %s\n", formatMedia(m))
	}
	if len(v.Albums) == 0 && len(v.Media) == 0 {
		fmt.Fprintln(c.out, gray("  (empty)"))
	}
	return nil
}

// uploadFiles pairs each path with the title and description given in the
// same position. Paths past the end of either list get none.
func uploadFiles(paths, titles, descs []string) ([]client.File, error) {
	if len(titles) > len(paths) || len(descs) > len(paths) {
		return nil, errors.Errorf("got %d titles and %d descriptions for %d files", len(titles), len(descs), len(paths))
	}

	files := make([]client.File, 0, len(paths))
	for i, p := range paths {
		p := p
		f := client.File{
			Name:        p,
			ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(p))),
			Open:        func() (io.ReadCloser, error) { return os.Open(p) },
		}
		if i < len(titles) {
			f.Title = titles[i]
		}
		if i < len(descs) {
			f.Description = descs[i]
		}
		files = append(files, f)
	}
	return files, nil
}

func (c *cli) upload(ctx context.Context, albumID string, files []client.File) error {
	b := client.Batch{
		Host: c.host,
		API:  c.api,
		Progress: func(percent int) {
			fmt.Fprintf(c.out, "\ruploading... %d%%", percent)
		},
	}
	res := b.Run(ctx, albumID, files)
	fmt.Fprintln(c.out)

	for _, e := range res.Errors {
		fmt.Fprintf(c.out, "%s %s: %s\n", red("failed"), e.Name, e.Err.Error())
	}
	if res.TotalFailure() {
		return errors.Errorf("upload failed: none of %d files were stored", res.Failed)
	}
	if res.Failed > 0 {
		fmt.Fprintf(c.out, "%d uploaded, %d failed\n", res.Succeeded, res.Failed)
		return nil
	}
	fmt.Fprintf(c.out, "%s %d files\n", green("uploaded"), res.Succeeded)
	return nil
}

func (c *cli) view(ctx context.Context, albumID, id string) error {
	items, err := c.api.ListMedia(ctx, albumID, "")
	if err != nil {
		return err
	}
	v, ok := client.NewViewer(items, id)
	if !ok {
		return errors.Wrap(cl.ErrNotFound, "view "+id)
	}

	fmt.Fprintln(c.out, gray("n/l: next  p/h: previous  q: close"))
	showViewer(c.out, v)
	s := bufio.NewScanner(c.in)
	for s.Scan() {
		if !v.Key(strings.TrimSpace(s.Text())) {
			return nil
		}
		showViewer(c.out, v)
	}
	return s.Err()
}

func showViewer(w io.Writer, v *client.Viewer) {
	m := v.Current()
	fmt.Fprintln(w, formatMedia(m))
	fmt.Fprintln(w, "  "+m.URL)
	if m.Description.String != "" {
		fmt.Fprintln(w, "  "+m.Description.String)
	}
}

func formatMedia(m cl.Media) string {
	title := m.Title.String
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("[%s] %s %s", m.Type, bold(title), gray(m.ID))
}

func formatCrumbs(crumbs []cl.Album) string {
	parts := []string{"Home"}
	for _, a := range crumbs {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, " / ")
}
