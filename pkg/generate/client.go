// Package generate turns natural-language configuration requirements into
// device CLI command lists via a text-generation backend.
//
// The backend speaks the Ollama generate API. Its output is untrusted: prose,
// markdown, comments, and simulated prompts are all expected, and Sanitize
// reduces it to a deployable command list.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/netweave/netweave/pkg/inventory"
)

// Defaults for the backend endpoint and model. Both are override points, not
// hidden constants: flags and settings feed the Client fields.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "codellama:7b"
	DefaultTimeout = 60 * time.Second
)

// systemInstruction pins the output format so the sanitizer has less to strip.
const systemInstruction = "You are a network automation assistant. Generate only valid Cisco IOS XE CLI commands. " +
	"Ensure the output is a full multi-line CLI configuration without explanations, comments, " +
	"Markdown formatting, or any extra text. Only return raw Cisco IOS commands."

// GenerationError reports a failed backend call. The run continues past it;
// only the affected device is skipped.
type GenerationError struct {
	URL string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation backend %s: %v", e.URL, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Client calls the text-generation backend.
type Client struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewClient returns a client for the given endpoint and model. Empty values
// fall back to the package defaults.
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Model:      model,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends prompt to the backend and returns the generated text.
// The call blocks up to the client timeout; a timeout is a hard failure,
// not a retryable condition.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	url := c.BaseURL + "/api/generate"

	body, err := json.Marshal(generateRequest{
		Model:  c.Model,
		Prompt: prompt,
		System: systemInstruction,
		Stream: false,
	})
	if err != nil {
		return "", &GenerationError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", &GenerationError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &GenerationError{
			URL: url,
			Err: fmt.Errorf("status %s: %s", resp.Status, strings.TrimSpace(string(msg))),
		}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &GenerationError{URL: url, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if out.Response == "" {
		return "", &GenerationError{URL: url, Err: fmt.Errorf("empty response")}
	}
	return out.Response, nil
}

// BuildPrompt embeds the device's identity into the requirement so the
// backend generates configuration in the context of that device.
func BuildPrompt(dev inventory.Device, requirements string) string {
	return fmt.Sprintf(`Generate a Cisco IOS XE configuration for the following device and requirements:

Device Information:
- Name: %s
- Type: Router
- Management IP: %s
- Location: %s

Requirements:
%s

Please provide only the Cisco IOS XE configuration commands, without explanations or comments.
Start with the interface configuration and include all necessary commands.
`, dev.Name, dev.MgmtIP, dev.Description, requirements)
}
