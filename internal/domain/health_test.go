package domain_test

import (
	"testing"

	"github.com/kagebunshin/kbdiag/internal/domain"
)

func TestHealthReport_Overall(t *testing.T) {
	tests := []struct {
		name     string
		statuses []domain.HealthStatus
		want     domain.OverallHealth
		healthy  bool
	}{
		{
			name:     "all ok is healthy",
			statuses: []domain.HealthStatus{domain.StatusOK, domain.StatusOK},
			want:     domain.OverallHealthy,
			healthy:  true,
		},
		{
			name:     "empty report is healthy",
			statuses: nil,
			want:     domain.OverallHealthy,
			healthy:  true,
		},
		{
			name:     "warn without fail is degraded",
			statuses: []domain.HealthStatus{domain.StatusOK, domain.StatusWarn},
			want:     domain.OverallDegraded,
			healthy:  true,
		},
		{
			name:     "any fail is unhealthy",
			statuses: []domain.HealthStatus{domain.StatusOK, domain.StatusWarn, domain.StatusFail},
			want:     domain.OverallUnhealthy,
			healthy:  false,
		},
		{
			name:     "fail outranks warn",
			statuses: []domain.HealthStatus{domain.StatusFail, domain.StatusWarn},
			want:     domain.OverallUnhealthy,
			healthy:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := domain.HealthReport{}
			for _, status := range tt.statuses {
				report.Results = append(report.Results, domain.HealthResult{
					Component: "x",
					Status:    status,
				})
			}
			if got := report.Overall(); got != tt.want {
				t.Errorf("Overall() = %v, want %v", got, tt.want)
			}
			if got := report.Healthy(); got != tt.healthy {
				t.Errorf("Healthy() = %v, want %v", got, tt.healthy)
			}
		})
	}
}

func TestHealthReport_Counts(t *testing.T) {
	report := domain.HealthReport{Results: []domain.HealthResult{
		{Status: domain.StatusOK},
		{Status: domain.StatusWarn},
		{Status: domain.StatusWarn},
		{Status: domain.StatusFail},
	}}

	if got := report.Fails(); got != 1 {
		t.Errorf("Fails() = %d, want 1", got)
	}
	if got := report.Warns(); got != 2 {
		t.Errorf("Warns() = %d, want 2", got)
	}
}
