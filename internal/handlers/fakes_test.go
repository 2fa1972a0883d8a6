package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/services"
)

type fakeUserRepo struct {
	CreateFn      func(user *models.User) error
	FindByIDFn    func(id uint) (*models.User, error)
	FindByEmailFn func(email string) (*models.User, error)
	ExistsFn      func(id uint) (bool, error)
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.CreateFn != nil {
		return f.CreateFn(user)
	}
	panic("unexpected Create")
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(id)
	}
	panic("unexpected FindByID")
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(email)
	}
	panic("unexpected FindByEmail")
}

func (f *fakeUserRepo) Exists(id uint) (bool, error) {
	if f.ExistsFn != nil {
		return f.ExistsFn(id)
	}
	panic("unexpected Exists")
}

type fakeApplicationRepo struct {
	CreateFn       func(app *models.Application) error
	FindByUserIDFn func(userID uint) ([]models.Application, error)
}

func (f *fakeApplicationRepo) Create(app *models.Application) error {
	if f.CreateFn != nil {
		return f.CreateFn(app)
	}
	panic("unexpected Create")
}

func (f *fakeApplicationRepo) FindByUserID(userID uint) ([]models.Application, error) {
	if f.FindByUserIDFn != nil {
		return f.FindByUserIDFn(userID)
	}
	panic("unexpected FindByUserID")
}

type fakeInterviewRepo struct {
	RecordFn                 func(interview *models.MockInterview, attempt *models.Attempt) error
	FindInterviewsByUserIDFn func(userID uint) ([]models.MockInterview, error)
	FindAttemptsByUserIDFn   func(userID uint) ([]models.Attempt, error)
}

func (f *fakeInterviewRepo) Record(interview *models.MockInterview, attempt *models.Attempt) error {
	if f.RecordFn != nil {
		return f.RecordFn(interview, attempt)
	}
	panic("unexpected Record")
}

func (f *fakeInterviewRepo) FindInterviewsByUserID(userID uint) ([]models.MockInterview, error) {
	if f.FindInterviewsByUserIDFn != nil {
		return f.FindInterviewsByUserIDFn(userID)
	}
	panic("unexpected FindInterviewsByUserID")
}

func (f *fakeInterviewRepo) FindAttemptsByUserID(userID uint) ([]models.Attempt, error) {
	if f.FindAttemptsByUserIDFn != nil {
		return f.FindAttemptsByUserIDFn(userID)
	}
	panic("unexpected FindAttemptsByUserID")
}

type fakeQuestionRepo struct {
	RandomTheoryFn func(subject string) (*models.TheoryQuestion, error)
	RandomCodingFn func() (*models.CodingQuestion, error)
}

func (f *fakeQuestionRepo) RandomTheory(subject string) (*models.TheoryQuestion, error) {
	if f.RandomTheoryFn != nil {
		return f.RandomTheoryFn(subject)
	}
	panic("unexpected RandomTheory")
}

func (f *fakeQuestionRepo) RandomCoding() (*models.CodingQuestion, error) {
	if f.RandomCodingFn != nil {
		return f.RandomCodingFn()
	}
	panic("unexpected RandomCoding")
}

func (f *fakeQuestionRepo) FindTheoryByID(uint) (*models.TheoryQuestion, error) {
	panic("unexpected FindTheoryByID")
}

func (f *fakeQuestionRepo) FindCodingByID(uint) (*models.CodingQuestion, error) {
	panic("unexpected FindCodingByID")
}

func (f *fakeQuestionRepo) SearchTheory(string) (*models.TheoryQuestion, error) {
	panic("unexpected SearchTheory")
}

func (f *fakeQuestionRepo) SearchCoding(string) (*models.CodingQuestion, error) {
	panic("unexpected SearchCoding")
}

func (f *fakeQuestionRepo) FindUnindexedTheory(int) ([]models.TheoryQuestion, error) {
	panic("unexpected FindUnindexedTheory")
}

func (f *fakeQuestionRepo) FindUnindexedCoding(int) ([]models.CodingQuestion, error) {
	panic("unexpected FindUnindexedCoding")
}

func (f *fakeQuestionRepo) MarkIndexed(models.QuestionKind, uint) error {
	panic("unexpected MarkIndexed")
}

func (f *fakeQuestionRepo) ReplaceAll([]models.TheoryQuestion, []models.CodingQuestion) error {
	panic("unexpected ReplaceAll")
}

type fakeFinder struct {
	FindCodingFn func(ctx context.Context, topic string) (*models.CodingQuestion, error)
	FindTheoryFn func(ctx context.Context, topic string) (*models.TheoryQuestion, error)
}

func (f *fakeFinder) FindCoding(ctx context.Context, topic string) (*models.CodingQuestion, error) {
	if f.FindCodingFn != nil {
		return f.FindCodingFn(ctx, topic)
	}
	panic("unexpected FindCoding")
}

func (f *fakeFinder) FindTheory(ctx context.Context, topic string) (*models.TheoryQuestion, error) {
	if f.FindTheoryFn != nil {
		return f.FindTheoryFn(ctx, topic)
	}
	panic("unexpected FindTheory")
}

type fakeEvaluator struct {
	EvaluateFn func(ctx context.Context, studentAnswer, idealAnswer string) (*services.AnswerScore, error)
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, studentAnswer, idealAnswer string) (*services.AnswerScore, error) {
	if f.EvaluateFn != nil {
		return f.EvaluateFn(ctx, studentAnswer, idealAnswer)
	}
	panic("unexpected Evaluate")
}

type fakeAudioAnalyzer struct {
	AnalyzeFn func(ctx context.Context, filePath string) (*services.FluencyReport, error)
}

func (f *fakeAudioAnalyzer) Analyze(ctx context.Context, filePath string) (*services.FluencyReport, error) {
	if f.AnalyzeFn != nil {
		return f.AnalyzeFn(ctx, filePath)
	}
	panic("unexpected Analyze")
}

type fakeResumeAnalyzer struct {
	AnalyzeFn func(filePath string) (*services.ResumeReport, error)
}

func (f *fakeResumeAnalyzer) Analyze(filePath string) (*services.ResumeReport, error) {
	if f.AnalyzeFn != nil {
		return f.AnalyzeFn(filePath)
	}
	panic("unexpected Analyze")
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

// multipartRequest uploads content as the "file" field plus any extra form values.
func multipartRequest(t *testing.T, target, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func doRaw(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	status, raw := doRaw(t, app, req)

	var body map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return status, body
}
