package installer

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dllBytes = []byte("MZ\x90\x00 not a real PE, close enough for the installer")

func zipOf(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// vendorArchive mirrors the vendor layout: an outer SDK zip holding docs
// plus a nested 64-bit SDK zip that contains the DLL.
func vendorArchive(t *testing.T) []byte {
	t.Helper()
	inner := zipOf(t, map[string][]byte{
		"vnx_sdk/readme.txt":     []byte("labbrick sdk"),
		"vnx_sdk/vnx_fsynth.dll": dllBytes,
	})
	return zipOf(t, map[string][]byte{
		"vnx_LSG_API/Manual.pdf":            []byte("pdf"),
		"vnx_LSG_API/64Bit SDK/vnx_sdk.zip": inner,
		"vnx_LSG_API/32Bit SDK/vnx_sdk.zip": []byte("ignored"),
	})
}

func serve(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func onWindows(t *testing.T) {
	t.Helper()
	prevOS, prevArch := hostOS, hostArch
	hostOS, hostArch = "windows", "amd64"
	t.Cleanup(func() { hostOS, hostArch = prevOS, prevArch })
}

func TestInstallEndToEnd(t *testing.T) {
	onWindows(t)
	archive := vendorArchive(t)
	srv := serve(t, archive)

	sum := sha256.Sum256(archive)
	m := Default()
	m.URL = srv.URL + "/vnx_LSG_API.zip"
	m.Dest = t.TempDir()
	m.SHA256 = hex.EncodeToString(sum[:])

	path, err := Install(context.Background(), m, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(m.Dest, "vnx_fsynth.dll"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dllBytes, got)

	// Exactly one file lands at the destination.
	entries, err := os.ReadDir(m.Dest)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInstallChecksumMismatch(t *testing.T) {
	onWindows(t)
	srv := serve(t, vendorArchive(t))

	m := Default()
	m.URL = srv.URL
	m.Dest = t.TempDir()
	m.SHA256 = strings.Repeat("0", 64)

	_, err := Install(context.Background(), m, nil)
	require.ErrorIs(t, err, ErrChecksum)
}

func TestInstallMissingSDKMarker(t *testing.T) {
	onWindows(t)
	outer := zipOf(t, map[string][]byte{
		"vnx_LSG_API/Manual.pdf": []byte("pdf"),
	})
	srv := serve(t, outer)

	m := Default()
	m.URL = srv.URL
	m.Dest = t.TempDir()

	_, err := Install(context.Background(), m, nil)
	require.ErrorIs(t, err, ErrEntryNotFound)
	assert.Contains(t, err.Error(), "Manual.pdf")
}

func TestInstallMissingDLLInNestedArchive(t *testing.T) {
	onWindows(t)
	inner := zipOf(t, map[string][]byte{"vnx_sdk/readme.txt": []byte("no dll here")})
	outer := zipOf(t, map[string][]byte{"64Bit SDK/vnx_sdk.zip": inner})
	srv := serve(t, outer)

	m := Default()
	m.URL = srv.URL
	m.Dest = t.TempDir()

	_, err := Install(context.Background(), m, nil)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestInstallRefusesUnsupportedHost(t *testing.T) {
	prevOS, prevArch := hostOS, hostArch
	hostOS, hostArch = "linux", "amd64"
	t.Cleanup(func() { hostOS, hostArch = prevOS, prevArch })

	_, err := Install(context.Background(), Default(), nil)
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestInstallBadStatus(t *testing.T) {
	onWindows(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	m := Default()
	m.URL = srv.URL
	m.Dest = t.TempDir()

	_, err := Install(context.Background(), m, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
