package lsg

import (
	"strings"

	"github.com/labbrick/lsg-go/internal/bindings"
)

// Status is one immutable reading of a device's 32-bit status word. Every
// predicate is a pure bit test against the stored word; observing a state
// change requires a fresh GetDeviceStatus.
type Status uint32

// Raw returns the underlying status word.
func (s Status) Raw() uint32 { return uint32(s) }

// Invalid reports whether the device id was not valid when the status was
// read. This shares bit 31 with the call-failure convention, which is why
// status reads are never error-checked.
func (s Status) Invalid() bool { return uint32(s)&bindings.StatusInvalidDevID != 0 }

// Connected reports whether the device is attached.
func (s Status) Connected() bool { return uint32(s)&bindings.StatusConnected != 0 }

// Open reports whether the device has been opened with InitDevice.
func (s Status) Open() bool { return uint32(s)&bindings.StatusOpened != 0 }

// Sweeping reports whether a frequency sweep is active.
func (s Status) Sweeping() bool { return uint32(s)&bindings.StatusSweepActive != 0 }

// SweepingUp reports whether the active sweep runs upward in frequency.
func (s Status) SweepingUp() bool { return uint32(s)&bindings.StatusSweepUp != 0 }

// RepeatingSweep reports whether the device is in continuous sweep mode.
func (s Status) RepeatingSweep() bool { return uint32(s)&bindings.StatusSweepRepeat != 0 }

// SweepingBidirectional reports whether the sweep runs both directions.
func (s Status) SweepingBidirectional() bool { return uint32(s)&bindings.StatusSweepBidirection != 0 }

// PLLLocked reports whether both PLLs report lock.
func (s Status) PLLLocked() bool { return uint32(s)&bindings.StatusPLLLocked != 0 }

var statusFlags = []struct {
	name string
	test func(Status) bool
}{
	{"invalid", Status.Invalid},
	{"connected", Status.Connected},
	{"open", Status.Open},
	{"sweeping", Status.Sweeping},
	{"sweeping_up", Status.SweepingUp},
	{"repeating_sweep", Status.RepeatingSweep},
	{"sweeping_bidirectional", Status.SweepingBidirectional},
	{"pll_locked", Status.PLLLocked},
}

// Snapshot returns every predicate by name.
func (s Status) Snapshot() map[string]bool {
	out := make(map[string]bool, len(statusFlags))
	for _, f := range statusFlags {
		out[f.name] = f.test(s)
	}
	return out
}

// String lists only the predicates currently true, or "idle" for none.
func (s Status) String() string {
	var set []string
	for _, f := range statusFlags {
		if f.test(s) {
			set = append(set, f.name)
		}
	}
	if len(set) == 0 {
		return "idle"
	}
	return strings.Join(set, "|")
}
