package bindings

import "errors"

// DeviceID is the opaque handle the native library assigns to one physical
// unit during enumeration. It stays valid until the device is closed or
// unplugged; the binding keeps no liveness state of its own.
type DeviceID uint32

// Buffer capacities fixed by the vendor API.
const (
	MaxNumDevices = 64
	MaxModelName  = 32
)

// Status word flags reported by fnLSG_GetDeviceStatus. The word is not an
// error code: bit 31 set means "invalid device id", which is a legitimate
// reading, so the status call bypasses the result policy entirely.
const (
	StatusInvalidDevID     uint32 = 0x80000000
	StatusConnected        uint32 = 0x00000001
	StatusOpened           uint32 = 0x00000002
	StatusSweepActive      uint32 = 0x00000004
	StatusSweepUp          uint32 = 0x00000008
	StatusSweepRepeat      uint32 = 0x00000010
	StatusSweepBidirection uint32 = 0x00000020
	StatusPLLLocked        uint32 = 0x00000040
)

// Result codes returned by checked calls. Bit 31 marks failure; the next
// sixteen bits carry the failure category.
const (
	StatusOK       uint32 = 0
	BadParameter   uint32 = 0x80010000
	BadHIDIO       uint32 = 0x80020000
	DeviceNotReady uint32 = 0x80030000
	ErrorBit       uint32 = 0x80000000

	categoryMask uint32 = 0xFFFF0000
)

// Sentinels used by the DLL's float-returning calls (none are bound here).
// They exist so "device not ready" is distinguishable from a real reading of
// zero.
const (
	FInvalidDevID   = -1.0
	FDeviceNotReady = -3.0
)

// Mode bits inside the settings word persisted by fnLSG_SaveSettings.
const (
	ModeRFOn   uint32 = 0x00000010
	ModeIntRef uint32 = 0x00000020
	ModeSweep  uint32 = 0x0000000F
)

// ErrUnsupported reports that the current platform cannot load the vendor
// library. Vaunix ships vnx_fsynth.dll for 64-bit Windows only; on other
// platforms the operator has to compile LSGhid themselves and point Config.Path
// at the result, which still requires a windows build of this package.
var ErrUnsupported = errors.New("bindings: vnx_fsynth.dll is only available on windows/amd64")
