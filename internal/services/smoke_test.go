package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/pkg/logger"
)

type stubModelClient struct {
	responses map[string]string
	err       error
	models    []domain.ModelInfo
	listErr   error
	calls     int
}

func (s *stubModelClient) ListModels(context.Context) ([]domain.ModelInfo, error) {
	return s.models, s.listErr
}

func (s *stubModelClient) Generate(_ context.Context, _, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.responses[prompt], nil
}

func passIfContains(substr, reason string) domain.ProbeValidator {
	return func(response string) (bool, string) {
		if strings.Contains(response, substr) {
			return true, reason
		}
		return false, "missing " + substr
	}
}

func testProbes() []domain.Probe {
	return []domain.Probe{
		{Name: "first", Prompt: "p1", Quick: true, Validate: passIfContains("def", "has def")},
		{Name: "second", Prompt: "p2", Quick: true, Validate: passIfContains("return", "has return")},
		{Name: "third", Prompt: "p3", Validate: passIfContains("%", "has modulo")},
	}
}

func TestSmokeServiceValidatesResponses(t *testing.T) {
	client := &stubModelClient{responses: map[string]string{
		"p1": "def fibonacci(n): ...",
		"p2": "no keyword here",
		"p3": "if n % 3 == 0",
	}}

	svc := &SmokeService{
		Client:  client,
		Probes:  testProbes(),
		Host:    "http://localhost:11434",
		Timeout: time.Second,
		Logger:  logger.New(false),
	}

	report := svc.RunProbes(context.Background(), "test-model", false)

	if report.Total() != 3 {
		t.Fatalf("got %d results, want 3", report.Total())
	}
	if report.Passed() != 2 {
		t.Errorf("Passed() = %d, want 2", report.Passed())
	}
	if report.Model != "test-model" {
		t.Errorf("Model = %q, want test-model", report.Model)
	}
	if !report.Results[0].Passed || report.Results[0].Details != "has def" {
		t.Errorf("first probe = %+v, want pass with 'has def'", report.Results[0])
	}
	if report.Results[1].Passed {
		t.Errorf("second probe passed, want fail")
	}
	if report.Results[0].Response == "" {
		t.Error("raw response not kept on the result")
	}
}

func TestSmokeServiceQuickModeFiltersProbes(t *testing.T) {
	client := &stubModelClient{responses: map[string]string{}}
	svc := &SmokeService{
		Client:  client,
		Probes:  testProbes(),
		Timeout: time.Second,
		Logger:  logger.New(false),
	}

	report := svc.RunProbes(context.Background(), "test-model", true)

	if report.Total() != 2 {
		t.Fatalf("quick mode ran %d probes, want 2", report.Total())
	}
	if report.Results[0].Name != "first" || report.Results[1].Name != "second" {
		t.Errorf("quick mode ran %q, %q; want first, second", report.Results[0].Name, report.Results[1].Name)
	}
}

func TestSmokeServiceConvertsGenerateErrorToResult(t *testing.T) {
	client := &stubModelClient{err: errors.New("connection refused")}
	svc := &SmokeService{
		Client:  client,
		Probes:  testProbes()[:1],
		Timeout: time.Second,
		Logger:  logger.New(false),
	}

	report := svc.RunProbes(context.Background(), "test-model", false)

	if report.Total() != 1 {
		t.Fatalf("got %d results, want 1", report.Total())
	}
	res := report.Results[0]
	if res.Passed {
		t.Error("probe passed despite generation error")
	}
	if !strings.HasPrefix(res.Details, "Error: ") {
		t.Errorf("Details = %q, want Error: prefix", res.Details)
	}
	if res.Duration < 0 {
		t.Errorf("Duration = %v, want non-negative", res.Duration)
	}
}

func TestSmokeServiceTruncatesLongErrors(t *testing.T) {
	client := &stubModelClient{err: errors.New(strings.Repeat("x", 100))}
	svc := &SmokeService{
		Client:  client,
		Probes:  testProbes()[:1],
		Timeout: time.Second,
		Logger:  logger.New(false),
	}

	report := svc.RunProbes(context.Background(), "test-model", false)

	details := report.Results[0].Details
	if len(details) != len("Error: ")+40 {
		t.Errorf("Details length = %d, want %d", len(details), len("Error: ")+40)
	}
}

type recordingProgress struct {
	events []string
}

func (r *recordingProgress) ProbeStarted(name string) {
	r.events = append(r.events, "start:"+name)
}

func (r *recordingProgress) ProbeFinished(res domain.ProbeResult) {
	r.events = append(r.events, "finish:"+res.Name)
}

func TestSmokeServiceNotifiesProgress(t *testing.T) {
	progress := &recordingProgress{}
	svc := &SmokeService{
		Client:   &stubModelClient{responses: map[string]string{"p1": "def"}},
		Probes:   testProbes()[:1],
		Timeout:  time.Second,
		Logger:   logger.New(false),
		Progress: progress,
	}

	svc.RunProbes(context.Background(), "test-model", false)

	want := []string{"start:first", "finish:first"}
	if len(progress.events) != 2 || progress.events[0] != want[0] || progress.events[1] != want[1] {
		t.Errorf("progress events = %v, want %v", progress.events, want)
	}
}
