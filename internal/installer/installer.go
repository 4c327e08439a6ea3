// Package installer obtains the vendor's prebuilt vnx_fsynth.dll: it
// downloads the SDK archive, digs the 64-bit SDK zip out of it, and places
// the DLL at the destination. One-time, offline from the binding's point of
// view; nothing else in the module touches the network.
package installer

import (
	"archive/zip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/labbrick/lsg-go/internal/logging"
)

var (
	// ErrUnsupportedPlatform reports a host the vendor ships no binary for.
	// This is a permanent restriction of the vendor SDK, not a defect: on
	// other platforms the operator compiles LSGhid and installs it by hand.
	ErrUnsupportedPlatform = errors.New("installer: vendor ships vnx_fsynth.dll for windows/amd64 only")

	// ErrEntryNotFound reports that an expected entry was missing from an
	// archive listing.
	ErrEntryNotFound = errors.New("installer: archive entry not found")

	// ErrChecksum reports a digest mismatch on the downloaded archive.
	ErrChecksum = errors.New("installer: archive sha256 mismatch")
)

// Test seam; Install refuses to run when these differ from windows/amd64.
var hostOS, hostArch = runtime.GOOS, runtime.GOARCH

// Install runs the whole flow and returns the installed DLL path. The
// scratch directory is always disposed; a failed install leaves nothing
// behind except whatever already existed at the destination.
func Install(ctx context.Context, m Manifest, lg logging.Logger) (string, error) {
	if lg == nil {
		lg = logging.New(nil)
	}
	if err := Validate(m); err != nil {
		return "", err
	}
	if hostOS != "windows" || hostArch != "amd64" {
		return "", fmt.Errorf("%w (host is %s/%s)", ErrUnsupportedPlatform, hostOS, hostArch)
	}

	scratch, err := os.MkdirTemp("", "lsg-install-")
	if err != nil {
		return "", fmt.Errorf("installer: scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	lg.Info(ctx, "downloading vendor SDK", "url", m.URL)
	archive := filepath.Join(scratch, "vnx_LSG_API.zip")
	digest, err := download(ctx, m.URL, archive)
	if err != nil {
		return "", err
	}

	if m.SHA256 == "" {
		lg.Warn(ctx, "no sha256 pinned for the vendor archive; pin this digest in the manifest", "sha256", digest)
	} else if !strings.EqualFold(m.SHA256, digest) {
		return "", fmt.Errorf("%w: want %s, got %s", ErrChecksum, m.SHA256, digest)
	}

	lg.Info(ctx, "unpacking SDK archive", "marker", m.SDKMarker)
	sdkZip, err := extractMatch(archive, scratch, "sdk archive", func(name string) bool {
		return strings.Contains(name, m.SDKMarker)
	})
	if err != nil {
		return "", err
	}

	lg.Info(ctx, "unpacking nested SDK", "dll", m.DLLName)
	dll, err := extractMatch(sdkZip, scratch, "dll", func(name string) bool {
		return strings.HasSuffix(name, m.DLLName)
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(m.Dest, 0o755); err != nil {
		return "", fmt.Errorf("installer: create destination: %w", err)
	}
	dest := filepath.Join(m.Dest, m.DLLName)
	if err := move(dll, dest); err != nil {
		return "", err
	}

	lg.Info(ctx, "installed vendor library", "path", dest)
	return dest, nil
}

// download streams url into dst and returns the hex sha256 of the bytes.
func download(ctx context.Context, url, dst string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("installer: build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("installer: download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("installer: download %s: unexpected status %s", url, resp.Status)
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("installer: create %s: %w", dst, err)
	}
	defer out.Close()

	sum := sha256.New()
	if _, err := io.Copy(io.MultiWriter(out, sum), resp.Body); err != nil {
		return "", fmt.Errorf("installer: write %s: %w", dst, err)
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}

// extractMatch pulls the first entry of zipPath accepted by match into the
// scratch directory and returns its path. A miss is fatal and carries the
// listing so the operator can see what the vendor actually shipped.
func extractMatch(zipPath, scratch, what string, match func(string) bool) (string, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("installer: open %s: %w", filepath.Base(zipPath), err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		if match(f.Name) {
			return extractFile(f, scratch)
		}
		names = append(names, f.Name)
	}
	return "", fmt.Errorf("%w: no %s in %s (entries: %s)",
		ErrEntryNotFound, what, filepath.Base(zipPath), strings.Join(names, ", "))
}

func extractFile(f *zip.File, scratch string) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("installer: open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	// Flatten to the base name; the entry path is vendor-controlled input
	// and must not steer writes outside the scratch directory.
	dst := filepath.Join(scratch, filepath.Base(f.Name))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("installer: create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return "", fmt.Errorf("installer: extract %s: %w", f.Name, err)
	}
	return dst, nil
}

// move renames src to dst, copying when the rename crosses filesystems.
func move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("installer: move %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("installer: move to %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("installer: copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("installer: finish %s: %w", dst, err)
	}
	return os.Remove(src)
}
