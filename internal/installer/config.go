package installer

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vendor defaults. The archive layout (an outer SDK zip holding a nested
// per-platform zip) is the vendor's, not ours.
const (
	DefaultURL       = "https://vaunix.com/resources/vnx_LSG_API.zip"
	DefaultSDKMarker = "64Bit SDK"
	DefaultDLLName   = "vnx_fsynth.dll"
)

// Manifest describes one install of the vendor binary.
type Manifest struct {
	// URL of the vendor SDK archive.
	URL string `yaml:"url"`

	// Dest is the directory the DLL lands in.
	Dest string `yaml:"dest"`

	// SHA256 is the expected hex digest of the downloaded archive. Empty
	// skips verification; the installer then logs the computed digest so the
	// operator can pin it. The vendor publishes no digest, so first installs
	// bootstrap trust-on-first-use.
	SHA256 string `yaml:"sha256"`

	// SDKMarker selects the nested archive inside the outer one.
	SDKMarker string `yaml:"sdk_marker"`

	// DLLName selects the binary inside the nested archive (by suffix) and
	// names the installed file.
	DLLName string `yaml:"dll_name"`
}

// Default returns a Manifest pointing at the vendor archive, installing into
// the current directory.
func Default() Manifest {
	return Manifest{
		URL:       DefaultURL,
		Dest:      ".",
		SDKMarker: DefaultSDKMarker,
		DLLName:   DefaultDLLName,
	}
}

// Load reads a yaml manifest and fills unset fields with the defaults.
func Load(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("installer: read manifest: %w", err)
	}

	m := Default()
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("installer: parse manifest %s: %w", path, err)
	}
	m.normalize()

	if err := Validate(m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m *Manifest) normalize() {
	if m.URL == "" {
		m.URL = DefaultURL
	}
	if m.Dest == "" {
		m.Dest = "."
	}
	if m.SDKMarker == "" {
		m.SDKMarker = DefaultSDKMarker
	}
	if m.DLLName == "" {
		m.DLLName = DefaultDLLName
	}
}

// Validate rejects manifests the installer cannot act on.
func Validate(m Manifest) error {
	if m.URL == "" {
		return errors.New("installer: manifest has no url")
	}
	if m.Dest == "" {
		return errors.New("installer: manifest has no destination directory")
	}
	if m.SDKMarker == "" {
		return errors.New("installer: manifest has no sdk marker")
	}
	if m.DLLName == "" {
		return errors.New("installer: manifest has no dll name")
	}
	if m.SHA256 != "" && len(m.SHA256) != 64 {
		return fmt.Errorf("installer: sha256 must be 64 hex chars, got %d", len(m.SHA256))
	}
	return nil
}
