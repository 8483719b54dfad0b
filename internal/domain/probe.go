package domain

import "time"

// ProbeValidator inspects a model response and decides whether it shows the
// evidence the probe asked for. The string explains the first check that
// failed, or why the probe passed.
type ProbeValidator func(response string) (bool, string)

// Probe is one smoke-test case: a fixed prompt plus its validator. Quick
// probes also run in reduced mode.
type Probe struct {
	Name     string
	Prompt   string
	Quick    bool
	Validate ProbeValidator
}

// ProbeResult captures one probe's outcome. Response keeps the raw model
// output for inspection; it is not rendered in the table.
type ProbeResult struct {
	Name     string
	Passed   bool
	Duration time.Duration
	Details  string
	Response string
}

// ProbeReport aggregates one model's probe results.
type ProbeReport struct {
	Model   string
	Host    string
	Results []ProbeResult
}

// Passed counts passing probes.
func (r ProbeReport) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Total returns the number of probes that ran.
func (r ProbeReport) Total() int {
	return len(r.Results)
}

// TotalDuration sums the wall-clock time spent generating.
func (r ProbeReport) TotalDuration() time.Duration {
	var total time.Duration
	for _, res := range r.Results {
		total += res.Duration
	}
	return total
}

// PassRate returns the pass percentage, 0 for an empty report.
func (r ProbeReport) PassRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(r.Total()) * 100
}

// AllPassed reports whether every probe passed.
func (r ProbeReport) AllPassed() bool {
	return r.Passed() == r.Total()
}
