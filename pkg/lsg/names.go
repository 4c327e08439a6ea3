package lsg

import "strings"

// MethodName pairs one native symbol with the Library method that wraps it.
type MethodName struct {
	Native string
	Method string
}

// MethodNames pins the full native-symbol-to-method mapping. The list was
// generated once with exportedName and is embedded as fixed data rather than
// recomputed; the tests keep it honest against both the conversion and the
// bindings declaration table. The one irregular entry is the model-name
// call, where the ANSI "A" variant is wrapped under the plain name.
var MethodNames = []MethodName{
	{"fnLSG_SetTestMode", "SetTestMode"},
	{"fnLSG_GetNumDevices", "GetNumDevices"},
	{"fnLSG_GetDevInfo", "GetDevInfo"},
	{"fnLSG_GetModelNameA", "GetModelName"},
	{"fnLSG_InitDevice", "InitDevice"},
	{"fnLSG_CloseDevice", "CloseDevice"},
	{"fnLSG_GetSerialNumber", "GetSerialNumber"},
	{"fnLSG_GetDLLVersion", "GetDLLVersion"},
	{"fnLSG_SetFrequency", "SetFrequency"},
	{"fnLSG_SetStartFrequency", "SetStartFrequency"},
	{"fnLSG_SetEndFrequency", "SetEndFrequency"},
	{"fnLSG_SetFrequencyStep", "SetFrequencyStep"},
	{"fnLSG_SetDwellTime", "SetDwellTime"},
	{"fnLSG_SetPowerLevel", "SetPowerLevel"},
	{"fnLSG_SetRFOn", "SetRFOn"},
	{"fnLSG_SetUseInternalRef", "SetUseInternalRef"},
	{"fnLSG_SetSweepDirection", "SetSweepDirection"},
	{"fnLSG_SetSweepMode", "SetSweepMode"},
	{"fnLSG_StartSweep", "StartSweep"},
	{"fnLSG_SaveSettings", "SaveSettings"},
	{"fnLSG_GetFrequency", "GetFrequency"},
	{"fnLSG_GetStartFrequency", "GetStartFrequency"},
	{"fnLSG_GetEndFrequency", "GetEndFrequency"},
	{"fnLSG_GetDwellTime", "GetDwellTime"},
	{"fnLSG_GetFrequencyStep", "GetFrequencyStep"},
	{"fnLSG_GetRF_On", "GetRFOn"},
	{"fnLSG_GetUseInternalRef", "GetUseInternalRef"},
	{"fnLSG_GetPowerLevel", "GetPowerLevel"},
	{"fnLSG_GetPowerLevelAbs", "GetPowerLevelAbs"},
	{"fnLSG_GetMaxPwr", "GetMaxPwr"},
	{"fnLSG_GetMinPwr", "GetMinPwr"},
	{"fnLSG_GetMaxFreq", "GetMaxFreq"},
	{"fnLSG_GetMinFreq", "GetMinFreq"},
	{"fnLSG_GetDeviceStatus", "GetDeviceStatus"},
}

// irregularNames lists the entries where the exposed method deliberately
// deviates from the mechanical conversion.
var irregularNames = map[string]string{
	"fnLSG_GetModelNameA": "GetModelName",
}

// exportedName converts a native fnLSG_* symbol to the exposed method name:
// strip the prefix, drop separators (collapsing the doubled one in
// fnLSG_GetRF_On). Deterministic; kept only to regenerate and verify
// MethodNames.
func exportedName(native string) string {
	s := strings.TrimPrefix(native, "fnLSG_")
	return strings.ReplaceAll(s, "_", "")
}
