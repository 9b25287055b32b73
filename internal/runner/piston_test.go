package runner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunForwardsToExecutionService(t *testing.T) {
	var got executeRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"run": map[string]any{"output": "hello\n"},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, 5*time.Second, nil)
	out, err := c.Run(context.Background(), "print('hello')", "python")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "hello\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	if got.Language != "python" || got.Version != "3.10.0" {
		t.Fatalf("unexpected runtime target: %+v", got)
	}
	if len(got.Files) != 1 || got.Files[0].Content != "print('hello')" {
		t.Fatalf("unexpected files payload: %+v", got.Files)
	}
}

func TestRunMapsEditorLanguageTags(t *testing.T) {
	var got executeRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{"run": map[string]any{"output": ""}})
	}))
	defer ts.Close()

	c := New(ts.URL, 5*time.Second, nil)
	if _, err := c.Run(context.Background(), "int main() {}", "c_cpp"); err != nil {
		t.Fatalf("run: %v", err)
	}

	// The editor tag "c_cpp" maps to the service's "c++" runtime.
	if got.Language != "c++" || got.Version != "10.2.0" {
		t.Fatalf("unexpected runtime target: %+v", got)
	}
}

func TestRunUnsupportedLanguageSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	c := New(ts.URL, 5*time.Second, nil)
	if _, err := c.Run(context.Background(), "puts 'hi'", "ruby"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("unsupported language must fail before contacting the service")
	}
}

func TestRunRemoteFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL, 5*time.Second, nil)
	if _, err := c.Run(context.Background(), "x", "javascript"); err == nil {
		t.Fatalf("expected error for remote failure")
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{"javascript", "python", "java", "c_cpp"} {
		if !Supported(lang) {
			t.Fatalf("expected %s to be supported", lang)
		}
	}
	if Supported("ruby") {
		t.Fatalf("ruby should not be supported")
	}
}
