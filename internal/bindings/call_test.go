package bindings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedCallFailureCarriesContext(t *testing.T) {
	f := NewFake()
	f.Return(ProcSetFrequency, BadParameter)
	lib := NewFakeLibrary(f, PolicyErrorBit)

	err := lib.SetFrequency(42, 9999999)
	require.Error(t, err)

	var ce *CallError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "fnLSG_SetFrequency", ce.Symbol)
	assert.Equal(t, BadParameter, ce.Code)
	assert.Equal(t, []uintptr{42, 9999999}, ce.Args)
	assert.Equal(t, BadParameter, ce.Category())
}

func TestCheckedCallSuccessPassesRawThrough(t *testing.T) {
	f := NewFake()
	f.Return(ProcGetFrequency, 5000000)
	lib := NewFakeLibrary(f, PolicyErrorBit)

	v, err := lib.GetFrequency(1)
	require.NoError(t, err)
	assert.Equal(t, int32(5000000), v)
}

func TestStatusReadNeverFailsOnHighBit(t *testing.T) {
	f := NewFake()
	f.Return(ProcGetDeviceStatus, StatusInvalidDevID|StatusConnected)
	lib := NewFakeLibrary(f, PolicyErrorBit)

	raw, err := lib.GetDeviceStatus(7)
	require.NoError(t, err)
	assert.Equal(t, StatusInvalidDevID|StatusConnected, raw)
}

func TestThresholdPolicyOnCheckedCall(t *testing.T) {
	f := NewFake()
	f.Return(ProcInitDevice, DeviceNotReady)
	lib := NewFakeLibrary(f, PolicyThreshold)

	err := lib.InitDevice(3)
	var ce *CallError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, DeviceNotReady, ce.Code)

	// -1 passes under the threshold convention.
	f.Return(ProcInitDevice, 0xFFFFFFFF)
	assert.NoError(t, lib.InitDevice(3))
}

func TestGetModelNameTruncatesToReportedLength(t *testing.T) {
	f := NewFake()
	f.ReturnModelName("LSG-402")
	lib := NewFakeLibrary(f, PolicyErrorBit)

	name, err := lib.GetModelName(1)
	require.NoError(t, err)
	assert.Equal(t, "LSG-402", name)
	assert.Len(t, name, 7)
}

func TestGetDevInfoRespectsCapacityAndCount(t *testing.T) {
	f := NewFake()
	f.ReturnDevInfo([]DeviceID{11, 12, 13})
	lib := NewFakeLibrary(f, PolicyErrorBit)

	ids, err := lib.GetDevInfo()
	require.NoError(t, err)
	assert.Equal(t, []DeviceID{11, 12, 13}, ids)

	// A count beyond the fixed capacity must be clamped, never read past
	// the array.
	f.Handle(ProcGetDevInfo, func([]uintptr) uint32 { return MaxNumDevices + 6 })
	ids, err = lib.GetDevInfo()
	require.NoError(t, err)
	assert.Len(t, ids, MaxNumDevices)
}

func TestBoolGetterDecodes(t *testing.T) {
	f := NewFake()
	f.Return(ProcGetRFOn, 1)
	lib := NewFakeLibrary(f, PolicyErrorBit)

	on, err := lib.GetRFOn(2)
	require.NoError(t, err)
	assert.True(t, on)

	f.Return(ProcGetRFOn, 0)
	on, err = lib.GetRFOn(2)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestSetterArgumentsReachTheTable(t *testing.T) {
	f := NewFake()
	lib := NewFakeLibrary(f, PolicyErrorBit)

	require.NoError(t, lib.SetRFOn(9, true))
	require.NoError(t, lib.SetSweepDirection(9, false))
	require.NoError(t, lib.SaveSettings(9))

	calls := f.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, FakeCall{Proc: ProcSetRFOn, Args: []uintptr{9, 1}}, calls[0])
	assert.Equal(t, FakeCall{Proc: ProcSetSweepDirection, Args: []uintptr{9, 0}}, calls[1])
	assert.Equal(t, FakeCall{Proc: ProcSaveSettings, Args: []uintptr{9}}, calls[2])
}

func TestOpenOffPlatform(t *testing.T) {
	if _, err := Open(Config{}); err != nil {
		// Off windows this must be the documented sentinel; on windows a
		// machine without the vendor SDK fails the load instead.
		if !errors.Is(err, ErrUnsupported) {
			t.Logf("Open failed with non-sentinel error (expected on windows without the DLL): %v", err)
		}
		return
	}
	t.Log("vendor DLL present; Open succeeded")
}
