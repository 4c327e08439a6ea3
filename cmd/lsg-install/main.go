// Command lsg-install downloads the Vaunix LSG SDK archive and installs
// vnx_fsynth.dll. One-time setup for machines that will run the binding.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labbrick/lsg-go/internal/installer"
	"github.com/labbrick/lsg-go/internal/logging"
)

func main() {
	var (
		manifestPath = flag.String("config", "", "yaml install manifest (optional; flags override it)")
		dest         = flag.String("dest", "", "destination directory")
		url          = flag.String("url", "", "vendor archive url")
		sha          = flag.String("sha256", "", "expected archive sha256 (hex)")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	lg := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ctx := context.Background()

	m := installer.Default()
	if *manifestPath != "" {
		loaded, err := installer.Load(*manifestPath)
		if err != nil {
			lg.Error(ctx, "manifest rejected", "err", err)
			os.Exit(1)
		}
		m = loaded
	}
	if *dest != "" {
		m.Dest = *dest
	}
	if *url != "" {
		m.URL = *url
	}
	if *sha != "" {
		m.SHA256 = *sha
	}

	path, err := installer.Install(ctx, m, lg)
	if err != nil {
		lg.Error(ctx, "install failed", "err", err)
		os.Exit(1)
	}
	lg.Info(ctx, "vendor library ready", "path", path)
}
