package bindings

import (
	"runtime"
	"unsafe"
)

// All values in this file are vendor units: the DLL's own scale for
// frequency, power and dwell time. Nothing here rescales them.

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// SetTestMode switches the DLL into its simulated-hardware mode. Global,
// void, unchecked.
func (l *Library) SetTestMode(on bool) error {
	_, err := l.call(ProcSetTestMode, boolArg(on))
	return err
}

// GetNumDevices reports how many devices the DLL currently sees.
func (l *Library) GetNumDevices() (int, error) {
	raw, err := l.call(ProcGetNumDevices)
	return int(int32(raw)), err
}

// GetDevInfo enumerates the connected devices. The DLL fills a fixed
// 64-entry array and reports the active count separately; the result is
// truncated to that count and never exceeds the array.
func (l *Library) GetDevInfo() ([]DeviceID, error) {
	var ids [MaxNumDevices]uint32
	var pin runtime.Pinner
	pin.Pin(&ids[0])
	defer pin.Unpin()
	raw, err := l.call(ProcGetDevInfo, uintptr(unsafe.Pointer(&ids[0])))
	if err != nil {
		return nil, err
	}
	n := int(int32(raw))
	if n < 0 {
		n = 0
	}
	if n > MaxNumDevices {
		n = MaxNumDevices
	}
	out := make([]DeviceID, n)
	for i := range out {
		out[i] = DeviceID(ids[i])
	}
	return out, nil
}

// GetModelName reads the device's model name from its fixed 32-byte buffer,
// truncated to the length the DLL reports.
func (l *Library) GetModelName(id DeviceID) (string, error) {
	buf := make([]byte, MaxModelName)
	var pin runtime.Pinner
	pin.Pin(&buf[0])
	defer pin.Unpin()
	raw, err := l.call(ProcGetModelName, uintptr(id), uintptr(unsafe.Pointer(&buf[0])))
	if err != nil {
		return "", err
	}
	n := int(int32(raw))
	if n < 0 {
		n = 0
	}
	if n > MaxModelName {
		n = MaxModelName
	}
	return string(buf[:n]), nil
}

func (l *Library) GetSerialNumber(id DeviceID) (int32, error) {
	raw, err := l.call(ProcGetSerialNumber, uintptr(id))
	return int32(raw), err
}

func (l *Library) GetDLLVersion() (int32, error) {
	raw, err := l.call(ProcGetDLLVersion)
	return int32(raw), err
}

// InitDevice opens the device for use. There is no automatic close: callers
// own the InitDevice/CloseDevice pairing.
func (l *Library) InitDevice(id DeviceID) error {
	_, err := l.call(ProcInitDevice, uintptr(id))
	return err
}

func (l *Library) CloseDevice(id DeviceID) error {
	_, err := l.call(ProcCloseDevice, uintptr(id))
	return err
}

func (l *Library) setInt(p Proc, id DeviceID, v int32) error {
	_, err := l.call(p, uintptr(id), uintptr(uint32(v)))
	return err
}

func (l *Library) setBool(p Proc, id DeviceID, v bool) error {
	_, err := l.call(p, uintptr(id), boolArg(v))
	return err
}

func (l *Library) getInt(p Proc, id DeviceID) (int32, error) {
	raw, err := l.call(p, uintptr(id))
	return int32(raw), err
}

func (l *Library) getBool(p Proc, id DeviceID) (bool, error) {
	raw, err := l.call(p, uintptr(id))
	return raw != 0, err
}

// Setters return the native status only as success/failure; a caller that
// wants confirmation of the applied value must issue the matching getter.

func (l *Library) SetFrequency(id DeviceID, v int32) error {
	return l.setInt(ProcSetFrequency, id, v)
}

func (l *Library) SetStartFrequency(id DeviceID, v int32) error {
	return l.setInt(ProcSetStartFrequency, id, v)
}

func (l *Library) SetEndFrequency(id DeviceID, v int32) error {
	return l.setInt(ProcSetEndFrequency, id, v)
}

func (l *Library) SetFrequencyStep(id DeviceID, v int32) error {
	return l.setInt(ProcSetFrequencyStep, id, v)
}

func (l *Library) SetDwellTime(id DeviceID, v int32) error {
	return l.setInt(ProcSetDwellTime, id, v)
}

func (l *Library) SetPowerLevel(id DeviceID, v int32) error {
	return l.setInt(ProcSetPowerLevel, id, v)
}

func (l *Library) SetRFOn(id DeviceID, on bool) error {
	return l.setBool(ProcSetRFOn, id, on)
}

func (l *Library) SetUseInternalRef(id DeviceID, on bool) error {
	return l.setBool(ProcSetUseInternalRef, id, on)
}

// Sweep configuration is write-only in the native surface; the only readback
// is the sweep bits of the device status word.

func (l *Library) SetSweepDirection(id DeviceID, up bool) error {
	return l.setBool(ProcSetSweepDirection, id, up)
}

func (l *Library) SetSweepMode(id DeviceID, repeat bool) error {
	return l.setBool(ProcSetSweepMode, id, repeat)
}

func (l *Library) StartSweep(id DeviceID, start bool) error {
	return l.setBool(ProcStartSweep, id, start)
}

// SaveSettings persists the current parameters into the device's
// non-volatile storage. There is no rollback call.
func (l *Library) SaveSettings(id DeviceID) error {
	_, err := l.call(ProcSaveSettings, uintptr(id))
	return err
}

func (l *Library) GetFrequency(id DeviceID) (int32, error) {
	return l.getInt(ProcGetFrequency, id)
}

func (l *Library) GetStartFrequency(id DeviceID) (int32, error) {
	return l.getInt(ProcGetStartFrequency, id)
}

func (l *Library) GetEndFrequency(id DeviceID) (int32, error) {
	return l.getInt(ProcGetEndFrequency, id)
}

func (l *Library) GetDwellTime(id DeviceID) (int32, error) {
	return l.getInt(ProcGetDwellTime, id)
}

func (l *Library) GetFrequencyStep(id DeviceID) (int32, error) {
	return l.getInt(ProcGetFrequencyStep, id)
}

func (l *Library) GetRFOn(id DeviceID) (bool, error) {
	return l.getBool(ProcGetRFOn, id)
}

func (l *Library) GetUseInternalRef(id DeviceID) (bool, error) {
	return l.getBool(ProcGetUseInternalRef, id)
}

// GetPowerLevel reads the vendor's relative power value. Known quirk: some
// DLL generations return an unexpected scale here; GetPowerLevelAbs is the
// absolute variant and the two are deliberately separate methods.
func (l *Library) GetPowerLevel(id DeviceID) (int32, error) {
	return l.getInt(ProcGetPowerLevel, id)
}

func (l *Library) GetPowerLevelAbs(id DeviceID) (int32, error) {
	return l.getInt(ProcGetPowerLevelAbs, id)
}

// Device-reported operating bounds, read-only.

func (l *Library) GetMaxPwr(id DeviceID) (int32, error) {
	return l.getInt(ProcGetMaxPwr, id)
}

func (l *Library) GetMinPwr(id DeviceID) (int32, error) {
	return l.getInt(ProcGetMinPwr, id)
}

func (l *Library) GetMaxFreq(id DeviceID) (int32, error) {
	return l.getInt(ProcGetMaxFreq, id)
}

func (l *Library) GetMinFreq(id DeviceID) (int32, error) {
	return l.getInt(ProcGetMinFreq, id)
}

// GetDeviceStatus reads the raw 32-bit status word. Unchecked by design:
// the invalid-device flag shares bit 31 with the failure convention.
func (l *Library) GetDeviceStatus(id DeviceID) (uint32, error) {
	return l.call(ProcGetDeviceStatus, uintptr(id))
}
