package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/llm"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

func completionHandler(t *testing.T, content string, seen *map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		if seen != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "test-model",
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}
}

func testClient(endpoint string) llm.LLMClient {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	cfg.Model = "test-model"
	return llm.NewChatClient(cfg, llm.NoopObserver{})
}

// TestPredict_WithHTTPTestServer runs the whole path from request builder
// through the chat client to the decoded Prediction, using a fenced payload.
func TestPredict_WithHTTPTestServer(t *testing.T) {
	var body map[string]any
	srv := newHTTPTestServer(t, completionHandler(t, "```json\n"+validPredictionJSON+"\n```", &body))
	defer srv.Close()

	svc := NewPredictionService(testClient(srv.URL))
	got, err := svc.Predict(context.Background(), testProfile(), domain.TierPremium)
	require.NoError(t, err)

	want := &domain.Prediction{
		Headline:       "Your Career is entering a favourable phase",
		Reassurance:    "You have done the groundwork.",
		Interpretation: "Momentum is building.",
		AstrologyLogic: "Saturn rewards steady effort.",
		ActionsDo:      []string{"Ask for feedback"},
		ActionsAvoid:   []string{"Overcommitting"},
		Timing:         "Next 6 weeks",
		OneSmallStep:   "Update your resume tonight.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("prediction mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "test-model", body["model"])
	assert.InDelta(t, 0.8, body["temperature"], 1e-9)
	assert.InDelta(t, 3000, body["max_tokens"], 1e-9)
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
}

func TestPredict_WithHTTPTestServer_ErrorStatus(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	})
	defer srv.Close()

	svc := NewPredictionService(testClient(srv.URL))
	_, err := svc.Predict(context.Background(), testProfile(), domain.TierBasic)

	var se *llm.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Contains(t, se.Body, "rate limited")
}

func TestSimulate_WithHTTPTestServer_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer srv.Close()
	defer close(release)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Tasks[llm.TaskSimulation] = llm.TaskConfig{Temperature: 0.7, MaxTokens: 2000, TimeoutMs: 50}
	svc := NewSimulationService(llm.NewChatClient(cfg, llm.NoopObserver{}))

	start := time.Now()
	_, err := svc.Simulate(context.Background(), testProfile(), "Should I move cities?")

	assert.ErrorIs(t, err, llm.ErrTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}
