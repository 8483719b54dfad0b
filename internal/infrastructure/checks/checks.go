// Package checks implements the health checks run by kb-status. Every check
// performs one external interaction under its own timeout and folds all
// failure modes into a HealthResult; nothing escapes to the runner.
package checks

import "github.com/kagebunshin/kbdiag/internal/domain"

func ok(component, details string) domain.HealthResult {
	return domain.HealthResult{Component: component, Status: domain.StatusOK, Details: details}
}

func warn(component, details string) domain.HealthResult {
	return domain.HealthResult{Component: component, Status: domain.StatusWarn, Details: details}
}

func fail(component, details string) domain.HealthResult {
	return domain.HealthResult{Component: component, Status: domain.StatusFail, Details: details}
}

// truncate limits diagnostic strings to n runes so one noisy error cannot
// wreck the report layout.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
