package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kagebunshin/kbdiag/internal/domain"
)

func TestClientListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %q, want /api/tags", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"models":[{"name":"deepseek-coder:33b","size":19000000000},{"name":"llama3:8b","size":4700000000}]}`))
	}))
	defer server.Close()

	client := New(server.URL)
	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}

	want := []domain.ModelInfo{
		{Name: "deepseek-coder:33b", Size: 19000000000},
		{Name: "llama3:8b", Size: 4700000000},
	}
	if diff := cmp.Diff(want, models); diff != "" {
		t.Errorf("ListModels() mismatch (-want +got):\n%s", diff)
	}
}

func TestClientGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q, want /api/generate", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}

		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "deepseek-coder:33b" {
			t.Errorf("model = %q, want deepseek-coder:33b", req.Model)
		}
		if req.Stream {
			t.Error("stream = true, want false")
		}

		w.Write([]byte(`{"response":"def fibonacci(n):\n    return n"}`))
	}))
	defer server.Close()

	client := New(server.URL + "/")
	response, err := client.Generate(context.Background(), "deepseek-coder:33b", "write fibonacci")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(response, "def fibonacci") {
		t.Errorf("response = %q, want generated code", response)
	}
}

func TestClientGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(server.URL).Generate(context.Background(), "missing", "prompt")
	if err == nil {
		t.Fatal("Generate() error = nil, want ollama status error")
	}
	if !strings.Contains(err.Error(), "ollama:") {
		t.Errorf("error = %v, want ollama: prefix", err)
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	client := New("http://localhost:11434/")
	if got := client.Host(); got != "http://localhost:11434" {
		t.Errorf("Host() = %q, want trimmed URL", got)
	}
}
