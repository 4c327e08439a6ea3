package bindings

// Proc names one native entry point in the declaration table.
type Proc int

const (
	ProcSetTestMode Proc = iota
	ProcGetNumDevices
	ProcGetDevInfo
	ProcGetModelName
	ProcInitDevice
	ProcCloseDevice
	ProcGetSerialNumber
	ProcGetDLLVersion
	ProcSetFrequency
	ProcSetStartFrequency
	ProcSetEndFrequency
	ProcSetFrequencyStep
	ProcSetDwellTime
	ProcSetPowerLevel
	ProcSetRFOn
	ProcSetUseInternalRef
	ProcSetSweepDirection
	ProcSetSweepMode
	ProcStartSweep
	ProcSaveSettings
	ProcGetFrequency
	ProcGetStartFrequency
	ProcGetEndFrequency
	ProcGetDwellTime
	ProcGetFrequencyStep
	ProcGetRFOn
	ProcGetUseInternalRef
	ProcGetPowerLevel
	ProcGetPowerLevelAbs
	ProcGetMaxPwr
	ProcGetMinPwr
	ProcGetMaxFreq
	ProcGetMinFreq
	ProcGetDeviceStatus

	numProcs
)

type resultMode int

const (
	// checked results run through the Library's ResultPolicy.
	checked resultMode = iota
	// unchecked results are handed back raw. GetDeviceStatus must be
	// unchecked: a status word with bit 31 set is a reading, not a failure.
	unchecked
)

type procSpec struct {
	symbol string
	nargs  int
	mode   resultMode
}

// procTable is the complete native surface. The vendor API is fixed and
// known in advance, so the table is compile-time data: Open resolves every
// symbol listed here and refuses to come up if one is missing.
var procTable = [numProcs]procSpec{
	ProcSetTestMode:       {"fnLSG_SetTestMode", 1, unchecked},
	ProcGetNumDevices:     {"fnLSG_GetNumDevices", 0, unchecked},
	ProcGetDevInfo:        {"fnLSG_GetDevInfo", 1, unchecked},
	ProcGetModelName:      {"fnLSG_GetModelNameA", 2, checked},
	ProcInitDevice:        {"fnLSG_InitDevice", 1, checked},
	ProcCloseDevice:       {"fnLSG_CloseDevice", 1, checked},
	ProcGetSerialNumber:   {"fnLSG_GetSerialNumber", 1, checked},
	ProcGetDLLVersion:     {"fnLSG_GetDLLVersion", 0, checked},
	ProcSetFrequency:      {"fnLSG_SetFrequency", 2, checked},
	ProcSetStartFrequency: {"fnLSG_SetStartFrequency", 2, checked},
	ProcSetEndFrequency:   {"fnLSG_SetEndFrequency", 2, checked},
	ProcSetFrequencyStep:  {"fnLSG_SetFrequencyStep", 2, checked},
	ProcSetDwellTime:      {"fnLSG_SetDwellTime", 2, checked},
	ProcSetPowerLevel:     {"fnLSG_SetPowerLevel", 2, checked},
	ProcSetRFOn:           {"fnLSG_SetRFOn", 2, checked},
	ProcSetUseInternalRef: {"fnLSG_SetUseInternalRef", 2, checked},
	ProcSetSweepDirection: {"fnLSG_SetSweepDirection", 2, checked},
	ProcSetSweepMode:      {"fnLSG_SetSweepMode", 2, checked},
	ProcStartSweep:        {"fnLSG_StartSweep", 2, checked},
	ProcSaveSettings:      {"fnLSG_SaveSettings", 1, checked},
	ProcGetFrequency:      {"fnLSG_GetFrequency", 1, checked},
	ProcGetStartFrequency: {"fnLSG_GetStartFrequency", 1, checked},
	ProcGetEndFrequency:   {"fnLSG_GetEndFrequency", 1, checked},
	ProcGetDwellTime:      {"fnLSG_GetDwellTime", 1, checked},
	ProcGetFrequencyStep:  {"fnLSG_GetFrequencyStep", 1, checked},
	ProcGetRFOn:           {"fnLSG_GetRF_On", 1, checked},
	ProcGetUseInternalRef: {"fnLSG_GetUseInternalRef", 1, checked},
	ProcGetPowerLevel:     {"fnLSG_GetPowerLevel", 1, checked},
	ProcGetPowerLevelAbs:  {"fnLSG_GetPowerLevelAbs", 1, checked},
	ProcGetMaxPwr:         {"fnLSG_GetMaxPwr", 1, checked},
	ProcGetMinPwr:         {"fnLSG_GetMinPwr", 1, checked},
	ProcGetMaxFreq:        {"fnLSG_GetMaxFreq", 1, checked},
	ProcGetMinFreq:        {"fnLSG_GetMinFreq", 1, checked},
	ProcGetDeviceStatus:   {"fnLSG_GetDeviceStatus", 1, unchecked},
}

// Symbols returns the native symbol names of the declaration table, in Proc
// order. Used for diagnostics and to keep the exported name table honest.
func Symbols() []string {
	out := make([]string, numProcs)
	for i, sp := range procTable {
		out[i] = sp.symbol
	}
	return out
}

// ResultPolicy selects the failure convention applied to checked calls.
// Vaunix shipped two incompatible conventions across DLL generations; pick
// the one matching the DLL actually installed. The policies are never mixed
// within one Library.
type ResultPolicy int

const (
	// PolicyErrorBit fails a checked result when bit 31 is set. This is the
	// convention of the constants in current vnx_LSG_API headers.
	PolicyErrorBit ResultPolicy = iota

	// PolicyThreshold fails a checked result when, read as a signed 32-bit
	// value, it is at or below DEVICE_NOT_READY. Older DLL generations used
	// this convention.
	PolicyThreshold
)

func (p ResultPolicy) failed(raw uint32) bool {
	if p == PolicyThreshold {
		threshold := DeviceNotReady
		return int32(raw) <= int32(threshold)
	}
	return raw&ErrorBit != 0
}

func (p ResultPolicy) String() string {
	if p == PolicyThreshold {
		return "threshold"
	}
	return "error-bit"
}
