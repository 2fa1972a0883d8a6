package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeTranscript(t *testing.T) {
	t.Run("counts whole words only", func(t *testing.T) {
		report := AnalyzeTranscript("Um, I LIKE, uh, basically think um it's like good. Likely unlikely umbrella.")

		require.Equal(t, "um, i like, uh, basically think um it's like good. likely unlikely umbrella.", report.Transcript)
		require.Equal(t, 6, report.FillerCount)
		require.Equal(t, "um (2x), uh (1x), like (2x), basically (1x)", report.Details)
		require.Equal(t, map[string]int{"um": 2, "uh": 1, "like": 2, "basically": 1}, report.Breakdown)
		require.Equal(t, 82, report.FluencyScore)
	})

	t.Run("accented letters are part of the word", func(t *testing.T) {
		report := AnalyzeTranscript("Ahí está, umé éum. Ah, ¿qué?")
		require.Equal(t, 1, report.FillerCount)
		require.Equal(t, "ah (1x)", report.Details)
	})

	t.Run("underscores and digits join words", func(t *testing.T) {
		report := AnalyzeTranscript("um_1 like2 uh")
		require.Equal(t, 1, report.FillerCount)
		require.Equal(t, "uh (1x)", report.Details)
	})

	t.Run("clean transcript", func(t *testing.T) {
		report := AnalyzeTranscript("A process owns memory while threads share it.")
		require.Zero(t, report.FillerCount)
		require.Empty(t, report.Details)
		require.Equal(t, 100, report.FluencyScore)
	})
}

func TestFluencyScore(t *testing.T) {
	require.Equal(t, 100, FluencyScore(0))
	require.Equal(t, 97, FluencyScore(1))
	require.Equal(t, 1, FluencyScore(33))
	require.Equal(t, 0, FluencyScore(34))
	require.Equal(t, 0, FluencyScore(500))
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func wavBytes() []byte {
	data := []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00")
	return append(data, make([]byte, 64)...)
}

func TestAudioAnalyzer(t *testing.T) {
	t.Run("transcribes and scores", func(t *testing.T) {
		path := writeFile(t, "answer.wav", wavBytes())
		tr := &fakeTranscriber{TranscribeFn: func(ctx context.Context, audio []byte, mimeType string) (string, error) {
			require.Equal(t, "audio/wav", mimeType)
			require.Equal(t, wavBytes(), audio)
			return "Um so basically a thread is like a light process", nil
		}}

		report, err := NewAudioAnalyzer(tr).Analyze(context.Background(), path)
		require.NoError(t, err)
		require.Equal(t, 3, report.FillerCount)
		require.Equal(t, 91, report.FluencyScore)
	})

	t.Run("rejects non audio", func(t *testing.T) {
		path := writeFile(t, "notes.wav", []byte("just some plain text, not audio at all"))
		_, err := NewAudioAnalyzer(&fakeTranscriber{}).Analyze(context.Background(), path)
		require.ErrorIs(t, err, ErrUnsupportedAudio)
	})

	t.Run("transcription error", func(t *testing.T) {
		path := writeFile(t, "answer.wav", wavBytes())
		tr := &fakeTranscriber{TranscribeFn: func(ctx context.Context, audio []byte, mimeType string) (string, error) {
			return "", errors.New("model unavailable")
		}}

		_, err := NewAudioAnalyzer(tr).Analyze(context.Background(), path)
		require.ErrorContains(t, err, "model unavailable")
	})
}
