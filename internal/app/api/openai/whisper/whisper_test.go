package whisper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycoach/internal/app/api"
)

func newStubServerClient(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func audioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake audio bytes"), 0o644))
	return path
}

func TestRemoteTranscriber_Transcript(t *testing.T) {
	client := newStubServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"hello from whisper"}`))
	})

	rt := NewRemoteTranscriber(client, "")
	text, err := rt.Transcript(context.Background(), audioFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "hello from whisper", text)
}

func TestRemoteTranscriber_Transcript_AuthFailure(t *testing.T) {
	client := newStubServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	})

	rt := NewRemoteTranscriber(client, "whisper-1")
	_, err := rt.Transcript(context.Background(), audioFixture(t))

	var terr *api.TranscriptionError
	require.Error(t, err)
	assert.ErrorAs(t, err, &terr)
}

func TestRemoteTranscriber_Transcript_MissingFile(t *testing.T) {
	client := newStubServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a missing file")
	})

	rt := NewRemoteTranscriber(client, "whisper-1")
	_, err := rt.Transcript(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))

	var terr *api.TranscriptionError
	require.Error(t, err)
	assert.ErrorAs(t, err, &terr)
}

func TestNewRemoteTranscriber_DefaultModel(t *testing.T) {
	rt := NewRemoteTranscriber(nil, "")
	assert.Equal(t, openai.Whisper1, rt.model)
}
