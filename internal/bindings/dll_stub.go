//go:build !windows

package bindings

// DefaultDLLName is the file name the vendor SDK ships under.
const DefaultDLLName = "vnx_fsynth.dll"

// The vendor ships prebuilt binaries for 64-bit Windows only; everywhere
// else Open reports ErrUnsupported and the fake backend carries the tests.
func openDLL(string) (rawCaller, error) {
	return nil, ErrUnsupported
}
