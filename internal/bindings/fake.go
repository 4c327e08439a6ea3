package bindings

import (
	"sync"
	"unsafe"
)

// FakeHandler computes the raw native result for one faked entry point. The
// args are the exact machine words the dispatch path would hand the DLL.
type FakeHandler func(args []uintptr) uint32

// FakeCall records one dispatched call.
type FakeCall struct {
	Proc Proc
	Args []uintptr
}

// Fake is an in-memory stand-in for the vendor DLL, so the dispatch path,
// result policies and buffer marshalling can be exercised without hardware.
// Unhandled procs return StatusOK.
type Fake struct {
	mu       sync.Mutex
	handlers map[Proc]FakeHandler
	calls    []FakeCall
}

func NewFake() *Fake {
	return &Fake{handlers: map[Proc]FakeHandler{}}
}

// Handle installs fn as the implementation of p.
func (f *Fake) Handle(p Proc, fn FakeHandler) {
	f.mu.Lock()
	f.handlers[p] = fn
	f.mu.Unlock()
}

// Return makes p always return raw.
func (f *Fake) Return(p Proc, raw uint32) {
	f.Handle(p, func([]uintptr) uint32 { return raw })
}

// ReturnModelName makes the model-name proc fill its buffer argument with
// name and report the length, the way the DLL does.
func (f *Fake) ReturnModelName(name string) {
	f.Handle(ProcGetModelName, func(args []uintptr) uint32 {
		buf := unsafe.Slice((*byte)(unsafe.Pointer(args[1])), MaxModelName)
		n := copy(buf, name)
		return uint32(n)
	})
}

// ReturnDevInfo makes enumeration fill the caller's array with ids (up to
// the fixed capacity) and report how many were written.
func (f *Fake) ReturnDevInfo(ids []DeviceID) {
	f.Handle(ProcGetDevInfo, func(args []uintptr) uint32 {
		arr := unsafe.Slice((*uint32)(unsafe.Pointer(args[0])), MaxNumDevices)
		n := 0
		for _, id := range ids {
			if n == MaxNumDevices {
				break
			}
			arr[n] = uint32(id)
			n++
		}
		return uint32(n)
	})
}

// Calls returns a copy of every dispatched call, in order.
func (f *Fake) Calls() []FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeCall(nil), f.calls...)
}

func (f *Fake) call(p Proc, args ...uintptr) (uint32, error) {
	f.mu.Lock()
	f.calls = append(f.calls, FakeCall{Proc: p, Args: append([]uintptr(nil), args...)})
	fn := f.handlers[p]
	f.mu.Unlock()

	if fn == nil {
		return StatusOK, nil
	}
	return fn(args), nil
}

func (f *Fake) path() string { return "fake" }
