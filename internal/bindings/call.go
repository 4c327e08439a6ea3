package bindings

import "fmt"

// rawCaller is the transport under the dispatch path: one blocking native
// call per invocation, no interpretation. The windows implementation drives
// the real DLL; Fake drives tests.
type rawCaller interface {
	call(p Proc, args ...uintptr) (uint32, error)
	path() string
}

// Config carries the parameters for Open.
type Config struct {
	// Path locates the vendor DLL. Empty means "vnx_fsynth.dll", resolved
	// through the system loader's search order.
	Path string

	// Policy is the failure convention of the installed DLL generation.
	Policy ResultPolicy
}

// Library is an open handle to the native LSG API. Every method is a direct
// blocking pass-through to one native entry point; the calling goroutine
// blocks for the duration of the hardware I/O and there is no cancellation.
// The native library's thread-safety is unspecified upstream, so callers
// must serialize access themselves.
type Library struct {
	raw    rawCaller
	policy ResultPolicy
}

// Open loads the vendor DLL (at most once per path within the process),
// resolves every symbol in the declaration table, and returns a handle bound
// to the given result policy. A missing symbol fails Open; there is no
// partial or optional-symbol mode.
func Open(cfg Config) (*Library, error) {
	raw, err := openDLL(cfg.Path)
	if err != nil {
		return nil, err
	}
	return &Library{raw: raw, policy: cfg.Policy}, nil
}

// NewFakeLibrary binds a Library to an in-memory backend. Test use only.
func NewFakeLibrary(f *Fake, policy ResultPolicy) *Library {
	return &Library{raw: f, policy: policy}
}

// Policy reports the failure convention this handle applies to checked calls.
func (l *Library) Policy() ResultPolicy { return l.policy }

// Path reports where the native library was loaded from.
func (l *Library) Path() string { return l.raw.path() }

// CallError reports a checked native call whose raw result matched the
// active failure convention. The raw code and the exact arguments are kept
// verbatim; interpreting the vendor category is left to the caller.
type CallError struct {
	Symbol string
	Code   uint32
	Args   []uintptr
}

func (e *CallError) Error() string {
	return fmt.Sprintf("bindings: %s%v returned 0x%08X", e.Symbol, e.Args, e.Code)
}

// Category masks the code down to the vendor failure category, comparable
// against BadParameter, BadHIDIO and DeviceNotReady.
func (e *CallError) Category() uint32 {
	return e.Code & categoryMask
}

// call dispatches one entry point and applies its registered result mode.
// On failure the raw code still comes back alongside the error, mirroring
// the native convention of encoding everything in the return value.
func (l *Library) call(p Proc, args ...uintptr) (uint32, error) {
	sp := &procTable[p]
	if len(args) != sp.nargs {
		return 0, fmt.Errorf("bindings: %s takes %d args, got %d", sp.symbol, sp.nargs, len(args))
	}
	raw, err := l.raw.call(p, args...)
	if err != nil {
		return 0, err
	}
	if sp.mode == checked && l.policy.failed(raw) {
		return raw, &CallError{Symbol: sp.symbol, Code: raw, Args: append([]uintptr(nil), args...)}
	}
	return raw, nil
}
