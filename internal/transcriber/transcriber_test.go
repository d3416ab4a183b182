package transcriber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
)

type stubEngine struct {
	text  string
	err   error
	calls int
}

func (s *stubEngine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	s.calls++
	return s.text, s.err
}

type fakeExecutor struct {
	output string
	err    error
	name   string
	args   []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return f.output, f.err
}

func TestTranscribeRemoteSuccess(t *testing.T) {
	remote := &stubEngine{text: "Patient reports lower back pain."}
	local := &stubEngine{text: "unused"}
	tr := &implTranscriber{remote: remote, local: local, logger: logger.New("error")}

	result, err := tr.Transcribe(context.Background(), "session1.mp3")
	require.NoError(t, err)
	assert.Equal(t, "Patient reports lower back pain.", result.Text)
	assert.Equal(t, EngineRemote, result.Engine)
	assert.Zero(t, local.calls, "local engine should not run when remote succeeds")
}

func TestTranscribeFallsBackToLocal(t *testing.T) {
	remote := &stubEngine{err: errors.New("connection refused")}
	local := &stubEngine{text: "Patient reports lower back pain."}
	tr := &implTranscriber{remote: remote, local: local, logger: logger.New("error")}

	result, err := tr.Transcribe(context.Background(), "session1.mp3")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Text)
	assert.Equal(t, EngineLocal, result.Engine)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 1, local.calls)
}

func TestTranscribeBothPathsFail(t *testing.T) {
	remote := &stubEngine{err: errors.New("connection refused")}
	local := &stubEngine{err: errors.New("binary not found")}
	tr := &implTranscriber{remote: remote, local: local, logger: logger.New("error")}

	_, err := tr.Transcribe(context.Background(), "session1.mp3")
	require.Error(t, err)

	var trErr *Error
	require.ErrorAs(t, err, &trErr)
	assert.ErrorContains(t, trErr.RemoteErr, "connection refused")
	assert.ErrorContains(t, trErr.LocalErr, "binary not found")
}

func TestOpenAIEngineTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"Patient reports lower back pain."}`)
	}))
	defer srv.Close()

	engine := newOpenAIEngine(config.OpenAIConfig{
		APIKey:         "sk-test",
		BaseURL:        srv.URL,
		AudioModel:     "whisper-1",
		TimeoutSeconds: 5,
	})

	audioPath := filepath.Join(t.TempDir(), "session1.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("fake audio"), 0644))

	text, err := engine.Transcribe(context.Background(), audioPath)
	require.NoError(t, err)
	assert.Equal(t, "Patient reports lower back pain.", text)
}

func TestOpenAIEngineMissingFile(t *testing.T) {
	engine := newOpenAIEngine(config.OpenAIConfig{APIKey: "sk-test", AudioModel: "whisper-1"})

	_, err := engine.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
}

func TestWhisperEngineTranscribe(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "ggml-base.en.bin")
	require.NoError(t, os.WriteFile(modelPath, []byte("model"), 0644))

	exec := &fakeExecutor{output: " Patient reports lower back pain.\n"}
	engine := newWhisperEngine(config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  modelPath,
		Language:   "en",
	}, exec, logger.New("error"))

	text, err := engine.Transcribe(context.Background(), "session1.wav")
	require.NoError(t, err)
	assert.Equal(t, "Patient reports lower back pain.", text)
	assert.Equal(t, "whisper-cli", exec.name)
	assert.Contains(t, exec.args, "session1.wav")
	assert.Contains(t, exec.args, modelPath)
}

func TestWhisperEngineEmptyOutput(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "ggml-base.en.bin")
	require.NoError(t, os.WriteFile(modelPath, []byte("model"), 0644))

	engine := newWhisperEngine(config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  modelPath,
		Language:   "en",
	}, &fakeExecutor{output: "  \n"}, logger.New("error"))

	_, err := engine.Transcribe(context.Background(), "session1.wav")
	require.Error(t, err)
}

func TestEnsureModelDownloads(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, "ggml model bytes")
	}))
	defer srv.Close()

	modelPath := filepath.Join(t.TempDir(), "models", "ggml-base.en.bin")
	exec := &fakeExecutor{output: "hello"}
	engine := newWhisperEngine(config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  modelPath,
		ModelURL:   srv.URL,
		Language:   "en",
	}, exec, logger.New("error"))

	// first use downloads the model
	_, err := engine.Transcribe(context.Background(), "a.wav")
	require.NoError(t, err)

	data, err := os.ReadFile(modelPath)
	require.NoError(t, err)
	assert.Equal(t, "ggml model bytes", string(data))

	// second use hits the on-disk cache, not the network
	_, err = engine.Transcribe(context.Background(), "b.wav")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestEnsureModelDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	engine := newWhisperEngine(config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  filepath.Join(t.TempDir(), "ggml-base.en.bin"),
		ModelURL:   srv.URL,
		Language:   "en",
	}, &fakeExecutor{}, logger.New("error"))

	_, err := engine.Transcribe(context.Background(), "a.wav")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unexpected status")
}
