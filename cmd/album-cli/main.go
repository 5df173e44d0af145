package main

import (
	"fmt"
	"os"
	"photo-album/internal/client"
	"photo-album/internal/hosting"

	"github.com/kelseyhightower/envconfig"
)

type variables struct {
	APIURL         string `required:"false" envconfig:"api_url" default:"http://localhost:8080"`
	CloudName      string `required:"false" envconfig:"cloud_name"`
	UploadPreset   string `required:"false" envconfig:"upload_preset"`
	HostingBaseURL string `required:"false" envconfig:"hosting_base_url"`
}

func main() {
	var v variables
	envconfig.MustProcess("album_cli", &v)

	host, err := hosting.New(hosting.Config{
		BaseURL:      v.HostingBaseURL,
		CloudName:    v.CloudName,
		UploadPreset: v.UploadPreset,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}

	c := &cli{
		api:  client.New(v.APIURL, nil),
		host: host,
		in:   os.Stdin,
		out:  os.Stdout,
	}
	if err := newRootCommand(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}
