// Command lsg-smoketest exercises every getter/setter pair against live
// hardware (or the DLL's test mode) and reports whether writes read back.
//
// The parameter list is an explicit compile-time table, not runtime
// discovery: each entry names its getter, its setter and its value domain,
// so the harness and the binding surface can only drift apart loudly.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/labbrick/lsg-go/pkg/lsg"
)

type numericParam struct {
	name string
	get  func(*lsg.Library, lsg.DeviceID) (int32, error)
	set  func(*lsg.Library, lsg.DeviceID, int32) error
	// min/max are the device-reported bound getters; nil means the vendor
	// API reports no bounds for this parameter.
	min func(*lsg.Library, lsg.DeviceID) (int32, error)
	max func(*lsg.Library, lsg.DeviceID) (int32, error)
}

type boolParam struct {
	name string
	get  func(*lsg.Library, lsg.DeviceID) (bool, error)
	set  func(*lsg.Library, lsg.DeviceID, bool) error
}

// The sweep bounds apply to start/end frequency as well; dwell time and step
// have no reported bounds. Power readback goes through the Abs variant
// because of the known GetPowerLevel scale quirk.
var numericParams = []numericParam{
	{"frequency", (*lsg.Library).GetFrequency, (*lsg.Library).SetFrequency, (*lsg.Library).GetMinFreq, (*lsg.Library).GetMaxFreq},
	{"start_frequency", (*lsg.Library).GetStartFrequency, (*lsg.Library).SetStartFrequency, (*lsg.Library).GetMinFreq, (*lsg.Library).GetMaxFreq},
	{"end_frequency", (*lsg.Library).GetEndFrequency, (*lsg.Library).SetEndFrequency, (*lsg.Library).GetMinFreq, (*lsg.Library).GetMaxFreq},
	{"frequency_step", (*lsg.Library).GetFrequencyStep, (*lsg.Library).SetFrequencyStep, nil, nil},
	{"dwell_time", (*lsg.Library).GetDwellTime, (*lsg.Library).SetDwellTime, nil, nil},
	{"power_level", (*lsg.Library).GetPowerLevelAbs, (*lsg.Library).SetPowerLevel, (*lsg.Library).GetMinPwr, (*lsg.Library).GetMaxPwr},
}

var boolParams = []boolParam{
	{"rf_on", (*lsg.Library).GetRFOn, (*lsg.Library).SetRFOn},
	{"use_internal_ref", (*lsg.Library).GetUseInternalRef, (*lsg.Library).SetUseInternalRef},
}

func main() {
	var (
		dll      = flag.String("dll", "", "path to vnx_fsynth.dll (default: loader search order)")
		legacy   = flag.Bool("legacy-policy", false, "use the old threshold failure convention")
		testMode = flag.Bool("testmode", false, "switch the DLL into simulated-hardware mode")
		devIndex = flag.Int("device", 0, "index into the enumerated device list")
	)
	flag.Parse()

	cfg := lsg.Config{Path: *dll}
	if *legacy {
		cfg.Policy = lsg.PolicyThreshold
	}

	lib, err := lsg.Open(cfg)
	if err != nil {
		log.Fatalf("open library: %v", err)
	}
	if v, err := lib.GetDLLVersion(); err == nil {
		log.Printf("dll version %d, policy %s", v, lib.Policy())
	}

	if *testMode {
		if err := lib.SetTestMode(true); err != nil {
			log.Fatalf("test mode: %v", err)
		}
		log.Printf("test mode on")
	}

	ids, err := lib.GetDevInfo()
	if err != nil {
		log.Fatalf("enumerate: %v", err)
	}
	if len(ids) == 0 {
		log.Fatal("no devices found")
	}
	if *devIndex < 0 || *devIndex >= len(ids) {
		log.Fatalf("device index %d out of range (have %d)", *devIndex, len(ids))
	}
	id := ids[*devIndex]

	if err := lib.InitDevice(id); err != nil {
		log.Fatalf("init device %d: %v", id, err)
	}
	defer func() {
		if err := lib.CloseDevice(id); err != nil {
			log.Printf("close device: %v", err)
		}
	}()

	model, _ := lib.GetModelName(id)
	serial, _ := lib.GetSerialNumber(id)
	status, _ := lib.GetDeviceStatus(id)
	log.Printf("device %d: model=%q serial=%d status=%s", id, model, serial, status)

	failures := 0
	for _, p := range numericParams {
		if !checkNumeric(lib, id, p) {
			failures++
		}
	}
	for _, p := range boolParams {
		if !checkBool(lib, id, p) {
			failures++
		}
	}

	if failures > 0 {
		log.Fatalf("%d parameter(s) failed round-trip", failures)
	}
	log.Printf("all parameters round-tripped")
}

func checkNumeric(lib *lsg.Library, id lsg.DeviceID, p numericParam) bool {
	orig, err := p.get(lib, id)
	if err != nil {
		log.Printf("FAIL %s: read: %v", p.name, err)
		return false
	}

	candidate := orig + 1
	if p.min != nil {
		lo, err1 := p.min(lib, id)
		hi, err2 := p.max(lib, id)
		if err1 != nil || err2 != nil {
			log.Printf("FAIL %s: bounds: %v %v", p.name, err1, err2)
			return false
		}
		log.Printf("%s: current=%d bounds=[%d,%d]", p.name, orig, lo, hi)

		// Deliberate out-of-range write: the DLL must reject it with a
		// bad-parameter code, not clamp it.
		if err := p.set(lib, id, hi+1); err == nil {
			log.Printf("WARN %s: out-of-range write %d was accepted", p.name, hi+1)
		} else {
			var ce *lsg.CallError
			if errors.As(err, &ce) && ce.Category() == lsg.BadParameter {
				log.Printf("%s: out-of-range write rejected as expected", p.name)
			} else {
				log.Printf("WARN %s: out-of-range write failed oddly: %v", p.name, err)
			}
		}

		if candidate > hi {
			candidate = orig - 1
		}
		if candidate < lo {
			candidate = lo
		}
	} else {
		log.Printf("%s: current=%d (no reported bounds)", p.name, orig)
	}

	if err := p.set(lib, id, candidate); err != nil {
		log.Printf("FAIL %s: write %d: %v", p.name, candidate, err)
		return false
	}
	got, err := p.get(lib, id)
	if err != nil {
		log.Printf("FAIL %s: readback: %v", p.name, err)
		return false
	}
	ok := got == candidate
	if ok {
		log.Printf("%s: %d -> %d ok", p.name, orig, got)
	} else {
		log.Printf("FAIL %s: wrote %d, read back %d", p.name, candidate, got)
	}

	if err := p.set(lib, id, orig); err != nil {
		log.Printf("WARN %s: restore %d: %v", p.name, orig, err)
	}
	return ok
}

func checkBool(lib *lsg.Library, id lsg.DeviceID, p boolParam) bool {
	orig, err := p.get(lib, id)
	if err != nil {
		log.Printf("FAIL %s: read: %v", p.name, err)
		return false
	}

	if err := p.set(lib, id, !orig); err != nil {
		log.Printf("FAIL %s: write %v: %v", p.name, !orig, err)
		return false
	}
	got, err := p.get(lib, id)
	if err != nil {
		log.Printf("FAIL %s: readback: %v", p.name, err)
		return false
	}
	ok := got == !orig
	if ok {
		log.Printf("%s: %v -> %v ok", p.name, orig, got)
	} else {
		log.Printf("FAIL %s: wrote %v, read back %v", p.name, !orig, got)
	}

	if err := p.set(lib, id, orig); err != nil {
		log.Printf("WARN %s: restore %v: %v", p.name, orig, err)
	}
	return ok
}
