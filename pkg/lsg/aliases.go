package lsg

import "github.com/labbrick/lsg-go/internal/bindings"

// The bindings layer owns the vendor constants and error surface; they are
// re-exported here so callers never import internal packages.

// DeviceID is the opaque handle assigned by the native library during
// enumeration.
type DeviceID = bindings.DeviceID

// CallError is the structured failure for a checked native call: symbol
// name, raw code and the exact arguments passed.
type CallError = bindings.CallError

// ResultPolicy selects the failure convention for checked calls.
type ResultPolicy = bindings.ResultPolicy

const (
	PolicyErrorBit  = bindings.PolicyErrorBit
	PolicyThreshold = bindings.PolicyThreshold
)

// Buffer capacities fixed by the vendor API.
const (
	MaxNumDevices = bindings.MaxNumDevices
	MaxModelName  = bindings.MaxModelName
)

// Vendor result codes. CallError.Category compares against these.
const (
	StatusOK       = bindings.StatusOK
	BadParameter   = bindings.BadParameter
	BadHIDIO       = bindings.BadHIDIO
	DeviceNotReady = bindings.DeviceNotReady
	ErrorBit       = bindings.ErrorBit
)

// DefaultDLLName is the file name the vendor SDK ships under.
const DefaultDLLName = bindings.DefaultDLLName

// ErrUnsupported reports that the current platform cannot load the vendor
// library.
var ErrUnsupported = bindings.ErrUnsupported
