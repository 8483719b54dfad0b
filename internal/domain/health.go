package domain

// HealthStatus grades a single infrastructure check.
type HealthStatus string

const (
	StatusOK   HealthStatus = "OK"
	StatusWarn HealthStatus = "WARN"
	StatusFail HealthStatus = "FAIL"
)

// HealthResult captures one check's outcome. It is constructed once by a
// check and never mutated afterwards.
type HealthResult struct {
	Component string
	Status    HealthStatus
	Details   string
}

// OverallHealth summarizes a whole report.
type OverallHealth string

const (
	OverallHealthy   OverallHealth = "HEALTHY"
	OverallDegraded  OverallHealth = "DEGRADED"
	OverallUnhealthy OverallHealth = "UNHEALTHY"
)

// HealthReport aggregates check results in the order they ran.
type HealthReport struct {
	Results []HealthResult
}

// Fails counts FAIL results.
func (r HealthReport) Fails() int {
	return r.count(StatusFail)
}

// Warns counts WARN results.
func (r HealthReport) Warns() int {
	return r.count(StatusWarn)
}

func (r HealthReport) count(status HealthStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Overall rolls the report up: UNHEALTHY if anything failed, DEGRADED if
// anything warned, HEALTHY otherwise.
func (r HealthReport) Overall() OverallHealth {
	switch {
	case r.Fails() > 0:
		return OverallUnhealthy
	case r.Warns() > 0:
		return OverallDegraded
	default:
		return OverallHealthy
	}
}

// Healthy reports whether the run counts as a success for exit-code
// purposes. Warnings do not fail a run.
func (r HealthReport) Healthy() bool {
	return r.Fails() == 0
}
