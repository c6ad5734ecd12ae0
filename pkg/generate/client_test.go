package generate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/netweave/netweave/pkg/inventory"
)

func TestGenerate(t *testing.T) {
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("request path = %q, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(generateResponse{Response: "interface Gi0/1\nno shutdown"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "testmodel")
	out, err := c.Generate(context.Background(), "bring up Gi0/1")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if out != "interface Gi0/1\nno shutdown" {
		t.Errorf("Generate() = %q", out)
	}
	if gotReq.Model != "testmodel" {
		t.Errorf("request model = %q, want testmodel", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("request asked for streaming")
	}
	if gotReq.System == "" {
		t.Error("request missing system instruction")
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Generate(context.Background(), "anything")
	if err == nil {
		t.Fatal("Generate() succeeded, want error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Errorf("error type = %T, want *GenerationError", err)
	}
}

func TestGenerateUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "")
	c.HTTPClient = &http.Client{Timeout: time.Second}
	_, err := c.Generate(context.Background(), "anything")
	if err == nil {
		t.Fatal("Generate() succeeded against closed port")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Errorf("error type = %T, want *GenerationError", err)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Generate(context.Background(), "anything"); err == nil {
		t.Fatal("Generate() succeeded on empty response, want error")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "")
	if c.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL, DefaultBaseURL)
	}
	if c.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", c.Model, DefaultModel)
	}
}

func TestBuildPrompt(t *testing.T) {
	dev := inventory.Device{
		Name:        "R1-Core",
		MgmtIP:      "10.0.0.1",
		Description: "core router",
	}
	prompt := BuildPrompt(dev, "enable OSPF on all interfaces")

	for _, want := range []string{"R1-Core", "10.0.0.1", "core router", "enable OSPF on all interfaces"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
