package lsg

import "github.com/labbrick/lsg-go/internal/bindings"

// Config carries the knobs for Open.
type Config struct {
	// Path locates the vendor DLL. Empty means DefaultDLLName resolved
	// through the system loader's search order.
	Path string

	// Policy is the failure convention of the installed DLL generation.
	// The zero value, PolicyErrorBit, matches current vnx_LSG_API releases;
	// select PolicyThreshold only for the older DLLs that used it. The two
	// conventions are incompatible and are never mixed.
	Policy ResultPolicy
}

// Library is an open handle to the native LSG API. The underlying DLL is
// loaded at most once per path within the process; a second Open of the same
// path shares the loaded library. There is no unload: the handle lives as
// long as the process.
type Library struct {
	b *bindings.Library
}

// Open loads the vendor library and resolves its complete symbol table,
// failing with the offending symbol name if one is missing.
func Open(cfg Config) (*Library, error) {
	b, err := bindings.Open(bindings.Config{Path: cfg.Path, Policy: cfg.Policy})
	if err != nil {
		return nil, err
	}
	return &Library{b: b}, nil
}

func newLibrary(b *bindings.Library) *Library { return &Library{b: b} }

// Policy reports the failure convention applied to checked calls.
func (l *Library) Policy() ResultPolicy { return l.b.Policy() }

// Path reports where the native library was loaded from.
func (l *Library) Path() string { return l.b.Path() }

// SetTestMode toggles the DLL's simulated-hardware mode, globally for the
// whole process.
func (l *Library) SetTestMode(on bool) error { return l.b.SetTestMode(on) }

// GetNumDevices reports how many devices the library currently sees.
func (l *Library) GetNumDevices() (int, error) { return l.b.GetNumDevices() }

// GetDevInfo enumerates the connected devices. At most MaxNumDevices entries
// come back, truncated to the active count the library reports.
func (l *Library) GetDevInfo() ([]DeviceID, error) { return l.b.GetDevInfo() }

// GetModelName reads the device's model name, truncated to the length the
// library reports (at most MaxModelName bytes).
func (l *Library) GetModelName(id DeviceID) (string, error) { return l.b.GetModelName(id) }

func (l *Library) GetSerialNumber(id DeviceID) (int32, error) { return l.b.GetSerialNumber(id) }

func (l *Library) GetDLLVersion() (int32, error) { return l.b.GetDLLVersion() }

// InitDevice opens the device for use. Callers own the matching CloseDevice;
// nothing closes a device automatically.
func (l *Library) InitDevice(id DeviceID) error { return l.b.InitDevice(id) }

func (l *Library) CloseDevice(id DeviceID) error { return l.b.CloseDevice(id) }

// Parameter setters apply a value in vendor units and report only success or
// failure; confirmation of the applied value requires the matching getter.

func (l *Library) SetFrequency(id DeviceID, v int32) error { return l.b.SetFrequency(id, v) }

func (l *Library) SetStartFrequency(id DeviceID, v int32) error { return l.b.SetStartFrequency(id, v) }

func (l *Library) SetEndFrequency(id DeviceID, v int32) error { return l.b.SetEndFrequency(id, v) }

func (l *Library) SetFrequencyStep(id DeviceID, v int32) error { return l.b.SetFrequencyStep(id, v) }

func (l *Library) SetDwellTime(id DeviceID, v int32) error { return l.b.SetDwellTime(id, v) }

func (l *Library) SetPowerLevel(id DeviceID, v int32) error { return l.b.SetPowerLevel(id, v) }

func (l *Library) SetRFOn(id DeviceID, on bool) error { return l.b.SetRFOn(id, on) }

func (l *Library) SetUseInternalRef(id DeviceID, on bool) error {
	return l.b.SetUseInternalRef(id, on)
}

// Sweep control is write-only in the native surface: no getters exist, and
// the only readback is the sweep bits of GetDeviceStatus.

func (l *Library) SetSweepDirection(id DeviceID, up bool) error {
	return l.b.SetSweepDirection(id, up)
}

func (l *Library) SetSweepMode(id DeviceID, repeat bool) error { return l.b.SetSweepMode(id, repeat) }

func (l *Library) StartSweep(id DeviceID, start bool) error { return l.b.StartSweep(id, start) }

// SaveSettings persists the current parameters into the device's
// non-volatile storage. The vendor API has no rollback.
func (l *Library) SaveSettings(id DeviceID) error { return l.b.SaveSettings(id) }

func (l *Library) GetFrequency(id DeviceID) (int32, error) { return l.b.GetFrequency(id) }

func (l *Library) GetStartFrequency(id DeviceID) (int32, error) { return l.b.GetStartFrequency(id) }

func (l *Library) GetEndFrequency(id DeviceID) (int32, error) { return l.b.GetEndFrequency(id) }

func (l *Library) GetDwellTime(id DeviceID) (int32, error) { return l.b.GetDwellTime(id) }

func (l *Library) GetFrequencyStep(id DeviceID) (int32, error) { return l.b.GetFrequencyStep(id) }

func (l *Library) GetRFOn(id DeviceID) (bool, error) { return l.b.GetRFOn(id) }

func (l *Library) GetUseInternalRef(id DeviceID) (bool, error) { return l.b.GetUseInternalRef(id) }

// GetPowerLevel reads the vendor's relative power value. Known vendor quirk:
// some DLL generations return an unexpected scale here. GetPowerLevelAbs is
// the absolute variant; the two are deliberately distinct and neither
// aliases the other.
func (l *Library) GetPowerLevel(id DeviceID) (int32, error) { return l.b.GetPowerLevel(id) }

func (l *Library) GetPowerLevelAbs(id DeviceID) (int32, error) { return l.b.GetPowerLevelAbs(id) }

// Device-reported operating bounds, in vendor units.

func (l *Library) GetMaxPwr(id DeviceID) (int32, error) { return l.b.GetMaxPwr(id) }

func (l *Library) GetMinPwr(id DeviceID) (int32, error) { return l.b.GetMinPwr(id) }

func (l *Library) GetMaxFreq(id DeviceID) (int32, error) { return l.b.GetMaxFreq(id) }

func (l *Library) GetMinFreq(id DeviceID) (int32, error) { return l.b.GetMinFreq(id) }

// GetDeviceStatus reads the raw status word for id. The call bypasses the
// failure convention: a word with the invalid-device bit set is a legitimate
// reading, not a call error. Decode it with Status.
func (l *Library) GetDeviceStatus(id DeviceID) (Status, error) {
	raw, err := l.b.GetDeviceStatus(id)
	return Status(raw), err
}
