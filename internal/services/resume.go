package services

import (
	"strings"
	"unicode/utf8"
)

const maxSuggestions = 5

type skillTopics struct {
	Skill  string
	Topics []string
}

// SkillTopics maps resume keywords to practice topics, checked in order.
var SkillTopics = []skillTopics{
	{Skill: "Python", Topics: []string{"Two Sum", "Factorial", "Data Structures"}},
	{Skill: "SQL", Topics: []string{"ACID Properties", "Joins", "Normalization"}},
	{Skill: "Operating Systems", Topics: []string{"Deadlocks", "Virtual Memory", "Threads"}},
	{Skill: "Machine Learning", Topics: []string{"CNNs", "Transformers", "Backpropagation"}},
}

type ResumeReport struct {
	Text            string
	PageCount       int
	SuggestedTopics []string
}

type ResumeAnalyzer interface {
	Analyze(filePath string) (*ResumeReport, error)
}

type resumeAnalyzer struct {
	pdfParser PDFParserService
}

func NewResumeAnalyzer(pdfParser PDFParserService) ResumeAnalyzer {
	return &resumeAnalyzer{pdfParser: pdfParser}
}

func (r *resumeAnalyzer) Analyze(filePath string) (*ResumeReport, error) {
	content, err := r.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, err
	}

	return &ResumeReport{
		Text:            content.Text,
		PageCount:       content.PageCount,
		SuggestedTopics: SuggestTopics(content.Text),
	}, nil
}

// SuggestTopics returns up to five unique topics for the skills mentioned in
// the resume, in skill order.
func SuggestTopics(resumeText string) []string {
	text := strings.ToLower(resumeText)
	seen := make(map[string]struct{})
	suggestions := []string{}

	for _, st := range SkillTopics {
		if !strings.Contains(text, strings.ToLower(st.Skill)) {
			continue
		}
		for _, topic := range st.Topics {
			if _, ok := seen[topic]; ok {
				continue
			}
			seen[topic] = struct{}{}
			suggestions = append(suggestions, topic)
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}
