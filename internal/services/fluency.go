package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

// FillerWords are counted in this order; the order also drives Details.
var FillerWords = []string{"um", "uh", "ah", "like", "basically", "actually"}

var ErrUnsupportedAudio = errors.New("unsupported audio format")

type FluencyReport struct {
	Transcript   string
	FillerCount  int
	Details      string
	Breakdown    map[string]int
	FluencyScore int
}

type AudioAnalyzer interface {
	Analyze(ctx context.Context, filePath string) (*FluencyReport, error)
}

type audioAnalyzer struct {
	transcriber Transcriber
}

func NewAudioAnalyzer(transcriber Transcriber) AudioAnalyzer {
	return &audioAnalyzer{transcriber: transcriber}
}

// Analyze transcribes the audio file and scores the transcript.
func (a *audioAnalyzer) Analyze(ctx context.Context, filePath string) (*FluencyReport, error) {
	mimeType, err := DetectAudioMIME(filePath)
	if err != nil {
		return nil, err
	}

	audio, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}

	transcript, err := a.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}

	report := AnalyzeTranscript(transcript)
	return &report, nil
}

// DetectAudioMIME sniffs the file content. WebM recordings from browsers are
// reported as video/webm and are accepted as audio/webm.
func DetectAudioMIME(filePath string) (string, error) {
	mime, err := mimetype.DetectFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to detect audio type: %w", err)
	}

	switch {
	case mime.Is("video/webm"):
		return "audio/webm", nil
	case strings.HasPrefix(mime.String(), "audio/"):
		return mime.String(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAudio, mime.String())
	}
}

// AnalyzeTranscript counts whole-word filler occurrences in the lower-cased
// transcript. Each filler costs three points from 100, floored at zero.
func AnalyzeTranscript(transcript string) FluencyReport {
	text := strings.ToLower(transcript)

	report := FluencyReport{
		Transcript: text,
		Breakdown:  make(map[string]int),
	}

	tokens := make(map[string]int)
	for _, tok := range strings.FieldsFunc(text, isWordBoundary) {
		tokens[tok]++
	}

	var details []string
	for _, word := range FillerWords {
		count := tokens[word]
		if count == 0 {
			continue
		}
		report.FillerCount += count
		report.Breakdown[word] = count
		details = append(details, fmt.Sprintf("%s (%dx)", word, count))
	}

	report.Details = strings.Join(details, ", ")
	report.FluencyScore = FluencyScore(report.FillerCount)
	return report
}

func FluencyScore(fillerCount int) int {
	score := 100 - 3*fillerCount
	if score < 0 {
		return 0
	}
	return score
}

// isWordBoundary splits on anything that is not a letter, digit or underscore
// in any script, so "ahí" stays one word.
func isWordBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}
