package services

import (
	"fmt"

	"ai-placement-tracker/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildTranscriptionPrompt asks for a verbatim transcript. Hesitations must
// survive because fluency scoring counts them.
func (pb *PromptBuilder) BuildTranscriptionPrompt() string {
	return `Transcribe the spoken audio in this file verbatim.

Rules:
- Write exactly what the speaker says, in the language spoken.
- Keep every hesitation and filler word (um, uh, ah, like, basically, actually). Do not clean up the speech.
- Do not add speaker labels, timestamps, punctuation commentary or any text that was not spoken.
- If the audio contains no speech, return an empty response.

Return ONLY the transcript text.`
}

// BuildSearchQuery turns a free-form topic into the text embedded for question search.
func (pb *PromptBuilder) BuildSearchQuery(kind models.QuestionKind, topic string) string {
	switch kind {
	case models.KindCoding:
		return fmt.Sprintf("Coding interview problem about %s", topic)
	case models.KindTheory:
		return fmt.Sprintf("Technical interview theory question about %s", topic)
	default:
		return topic
	}
}
