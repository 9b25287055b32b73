package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeExecutionService(t *testing.T, output string) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"run": map[string]any{"output": output},
		})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestRunCodeRequiresAuth(t *testing.T) {
	ts := startTestServer(t, "")

	resp := authedPost(t, ts, "", "/api/code/run", RunRequest{Code: "1+1", Language: "python"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRunCodeReturnsOutput(t *testing.T) {
	exec := fakeExecutionService(t, "42\n")
	ts := startTestServer(t, exec.URL)
	token := registerAndGetToken(t, ts, "runner@example.com")

	resp := authedPost(t, ts, token, "/api/code/run", RunRequest{Code: "print(42)", Language: "python"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var run RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		t.Fatalf("decode run response: %v", err)
	}
	if run.Output != "42\n" {
		t.Fatalf("unexpected output: %q", run.Output)
	}
}

func TestRunCodeUnsupportedLanguage(t *testing.T) {
	// No fake service: an unsupported tag must fail before any call.
	ts := startTestServer(t, "http://127.0.0.1:0")
	token := registerAndGetToken(t, ts, "ruby@example.com")

	resp := authedPost(t, ts, token, "/api/code/run", RunRequest{Code: "puts :hi", Language: "ruby"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var run RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		t.Fatalf("decode run response: %v", err)
	}
	if run.Output != "Language not supported for execution" {
		t.Fatalf("unexpected output: %q", run.Output)
	}
}

func TestRunCodeRemoteFailure(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sandbox exploded", http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	ts := startTestServer(t, broken.URL)
	token := registerAndGetToken(t, ts, "boom@example.com")

	resp := authedPost(t, ts, token, "/api/code/run", RunRequest{Code: "x", Language: "javascript"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}

	var run RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		t.Fatalf("decode run response: %v", err)
	}
	if run.Output != "Error executing code" {
		t.Fatalf("unexpected output: %q", run.Output)
	}
}
