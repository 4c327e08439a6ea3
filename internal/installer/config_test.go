package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dest: C:/vaunix\n"), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultURL, m.URL)
	assert.Equal(t, "C:/vaunix", m.Dest)
	assert.Equal(t, DefaultSDKMarker, m.SDKMarker)
	assert.Equal(t, DefaultDLLName, m.DLLName)
	assert.Empty(t, m.SHA256)
}

func TestLoadFullManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.yaml")
	doc := strings.Join([]string{
		"url: https://example.test/sdk.zip",
		"dest: out",
		"sha256: " + strings.Repeat("ab", 32),
		"sdk_marker: 64Bit SDK",
		"dll_name: vnx_fsynth.dll",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/sdk.zip", m.URL)
	assert.Equal(t, strings.Repeat("ab", 32), m.SHA256)
}

func TestValidateRejectsShortDigest(t *testing.T) {
	m := Default()
	m.SHA256 = "abcd"
	require.Error(t, Validate(m))
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t::not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
