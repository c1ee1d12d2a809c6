package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/enc-notes/internal/client"
	"github.com/MKhiriev/enc-notes/internal/tui"
	"github.com/MKhiriev/enc-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var app client.Client = client.NewCLI(
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		client.DefaultAppBuilder,
	)

	err := app.Run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}
