//go:build windows

package bindings

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

// DefaultDLLName is the file name the vendor SDK ships under.
const DefaultDLLName = "vnx_fsynth.dll"

type dllCaller struct {
	dll   *windows.DLL
	procs [numProcs]*windows.Proc
	name  string
}

var (
	loadMu sync.Mutex
	loaded = map[string]*dllCaller{}
)

// openDLL loads the vendor DLL at most once per path and resolves the whole
// declaration table up front. Two Opens of the same path share one loaded
// handle; no unload path is modeled, the DLL lives as long as the process.
func openDLL(path string) (rawCaller, error) {
	if path == "" {
		path = DefaultDLLName
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if c, ok := loaded[path]; ok {
		return c, nil
	}

	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, fmt.Errorf("bindings: load %s: %w", path, err)
	}

	c := &dllCaller{dll: dll, name: path}
	for p := Proc(0); p < numProcs; p++ {
		proc, err := dll.FindProc(procTable[p].symbol)
		if err != nil {
			dll.Release()
			return nil, fmt.Errorf("bindings: %s has no symbol %s: %w", path, procTable[p].symbol, err)
		}
		c.procs[p] = proc
	}

	loaded[path] = c
	return c, nil
}

func (c *dllCaller) call(p Proc, args ...uintptr) (uint32, error) {
	// Proc.Call always populates its error result with the last errno; the
	// vendor API reports everything through the return value, so only r1
	// matters here.
	r1, _, _ := c.procs[p].Call(args...)
	return uint32(r1), nil
}

func (c *dllCaller) path() string { return c.name }
