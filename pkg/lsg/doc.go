// Package lsg is a typed Go binding for the Vaunix LabBrick LSG signal
// generator API (vnx_fsynth.dll). Every method is a direct blocking
// pass-through to one fixed native entry point; there is no retry layer and
// no unit conversion — frequency, power and dwell values are the vendor's
// own units, not assumed SI.
//
// The native library ships for 64-bit Windows only. cmd/lsg-install fetches
// it from the vendor SDK archive; on other platforms Open returns
// ErrUnsupported.
//
// The DLL's thread-safety is unspecified upstream. Treat it as not
// thread-safe: keep at most one in-flight call per process.
package lsg
