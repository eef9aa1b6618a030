package services

import (
	"context"
	"testing"

	"eduboard/kvstore"
	"eduboard/models"

	"github.com/stretchr/testify/assert"
)

func newTestDataService(t *testing.T) (*DataService, kvstore.Store) {
	kv := kvstore.NewMemoryStore()
	svc, err := NewDataService(kv)
	if err != nil {
		t.Fatalf("NewDataService() failed: %v", err)
	}
	return svc, kv
}

func contentRequest(title string, level models.ClassLevel) *CreateContentRequest {
	return &CreateContentRequest{
		Title:       title,
		Description: "test content",
		Type:        models.ContentVideo,
		URL:         "https://example.com/" + title + ".mp4",
		ClassLevel:  level,
	}
}

func quizRequest(title string, level models.ClassLevel, correct ...int) *CreateQuizRequest {
	req := &CreateQuizRequest{Title: title, ClassLevel: level}
	for _, c := range correct {
		req.Questions = append(req.Questions, CreateQuestionRequest{
			Question:      "pick one",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: c,
		})
	}
	return req
}

func TestSeedOnFirstLoad(t *testing.T) {
	svc, kv := newTestDataService(t)

	assert.Len(t, svc.Contents(), 2)
	assert.Len(t, svc.Quizzes(), 1)
	assert.Empty(t, svc.Attempts())

	// Seeding is written through immediately
	_, err := kv.Get(context.Background(), contentsKey)
	assert.NoError(t, err)
}

func TestPersistedStateWinsOverSeed(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()
	assert.NoError(t, kv.Set(ctx, contentsKey, `[]`))
	assert.NoError(t, kv.Set(ctx, quizzesKey, `[]`))
	assert.NoError(t, kv.Set(ctx, attemptsKey, `[]`))

	svc, err := NewDataService(kv)
	assert.NoError(t, err)

	// An empty persisted array must not be re-seeded
	assert.Empty(t, svc.Contents())
	assert.Empty(t, svc.Quizzes())
	assert.Empty(t, svc.Attempts())
}

func TestContentRoundTrip(t *testing.T) {
	svc, kv := newTestDataService(t)

	req := contentRequest("fractions", models.Class5th)
	created, err := svc.AddContent(req, "t1")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got := svc.GetContentsByClass(models.Class5th)
	if assert.Len(t, got, 1) {
		assert.Equal(t, *created, got[0])
		assert.Equal(t, req.Title, got[0].Title)
		assert.Equal(t, req.URL, got[0].URL)
		assert.Equal(t, "t1", got[0].CreatedBy)
	}

	// A fresh service over the same store sees the record
	reloaded, err := NewDataService(kv)
	assert.NoError(t, err)
	assert.Len(t, reloaded.GetContentsByClass(models.Class5th), 1)
}

func TestGetContentsByClassFiltersExactly(t *testing.T) {
	svc, _ := newTestDataService(t)

	first, _ := svc.AddContent(contentRequest("one", models.Class8th), "t1")
	_, _ = svc.AddContent(contentRequest("other", models.Class9th), "t1")
	second, _ := svc.AddContent(contentRequest("two", models.Class8th), "t1")

	got := svc.GetContentsByClass(models.Class8th)
	if assert.Len(t, got, 2) {
		// insertion order preserved
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	}
	assert.Empty(t, svc.GetContentsByClass(models.Class10th))
}

func TestAddContentValidation(t *testing.T) {
	svc, _ := newTestDataService(t)

	tests := []struct {
		name string
		req  *CreateContentRequest
	}{
		{"missing title", &CreateContentRequest{Type: models.ContentPDF, URL: "u", ClassLevel: models.Class5th}},
		{"missing url", &CreateContentRequest{Title: "t", Type: models.ContentPDF, ClassLevel: models.Class5th}},
		{"bad type", &CreateContentRequest{Title: "t", Type: "audio", URL: "u", ClassLevel: models.Class5th}},
		{"bad class", &CreateContentRequest{Title: "t", Type: models.ContentPDF, URL: "u", ClassLevel: "12th"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddContent(tt.req, "t1")
			assert.Error(t, err)
		})
	}
}

func TestAddQuizValidation(t *testing.T) {
	svc, _ := newTestDataService(t)

	tests := []struct {
		name      string
		questions []CreateQuestionRequest
	}{
		{"no questions", nil},
		{"too few options", []CreateQuestionRequest{{Question: "q", Options: []string{"a"}, CorrectOption: 0}}},
		{"too many options", []CreateQuestionRequest{{Question: "q", Options: []string{"a", "b", "c", "d", "e", "f", "g"}, CorrectOption: 0}}},
		{"correct option too big", []CreateQuestionRequest{{Question: "q", Options: []string{"a", "b"}, CorrectOption: 2}}},
		{"correct option negative", []CreateQuestionRequest{{Question: "q", Options: []string{"a", "b"}, CorrectOption: -1}}},
		{"empty question text", []CreateQuestionRequest{{Options: []string{"a", "b"}, CorrectOption: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddQuiz(&CreateQuizRequest{
				Title:      "broken",
				ClassLevel: models.Class6th,
				Questions:  tt.questions,
			}, "t1")
			assert.Error(t, err)
		})
	}
}

func TestSubmitAttemptScoring(t *testing.T) {
	svc, _ := newTestDataService(t)

	quiz, err := svc.AddQuiz(quizRequest("scoring", models.Class7th, 1, 2), "t1")
	assert.NoError(t, err)

	answers := []models.AttemptAnswer{
		{QuestionID: quiz.Questions[0].ID, SelectedOption: 1},
		{QuestionID: quiz.Questions[1].ID, SelectedOption: 0},
	}
	attempt, err := svc.SubmitAttempt(quiz.ID, "s1", "Jane", answers)
	assert.NoError(t, err)

	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.TotalQuestions)
	assert.Equal(t, "s1", attempt.StudentID)
	assert.False(t, attempt.SubmittedAt.IsZero())

	byQuiz := svc.GetAttemptsByQuiz(quiz.ID)
	if assert.Len(t, byQuiz, 1) {
		assert.Equal(t, attempt.ID, byQuiz[0].ID)
	}
	assert.Len(t, svc.GetAttemptsByStudent("s1"), 1)
}

func TestSubmitAttemptUnknownQuiz(t *testing.T) {
	svc, _ := newTestDataService(t)

	_, err := svc.SubmitAttempt("nope", "s1", "Jane", nil)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestAddQuizAttemptBounds(t *testing.T) {
	svc, _ := newTestDataService(t)

	_, err := svc.AddQuizAttempt(&AddAttemptRequest{
		QuizID: "q1", StudentID: "s1", StudentName: "Jane",
		Score: 3, TotalQuestions: 2,
	})
	assert.Error(t, err)

	_, err = svc.AddQuizAttempt(&AddAttemptRequest{
		QuizID: "q1", StudentID: "s1", StudentName: "Jane",
		Score: 1, TotalQuestions: 2,
		Answers: []models.AttemptAnswer{{QuestionID: "q1_1", SelectedOption: -1}},
	})
	assert.Error(t, err)
}

func TestDeleteQuizCascadesToAttempts(t *testing.T) {
	svc, kv := newTestDataService(t)

	target, _ := svc.AddQuiz(quizRequest("target", models.Class6th, 0, 1), "t1")
	other, _ := svc.AddQuiz(quizRequest("other", models.Class6th, 0), "t1")

	_, err := svc.SubmitAttempt(target.ID, "s1", "Jane", nil)
	assert.NoError(t, err)
	_, err = svc.SubmitAttempt(target.ID, "s2", "Ann", nil)
	assert.NoError(t, err)
	_, err = svc.SubmitAttempt(other.ID, "s1", "Jane", nil)
	assert.NoError(t, err)

	svc.DeleteQuiz(target.ID)

	_, err = svc.GetQuizByID(target.ID)
	assert.ErrorIs(t, err, ErrQuizNotFound)
	assert.Empty(t, svc.GetAttemptsByQuiz(target.ID))
	assert.Len(t, svc.GetAttemptsByQuiz(other.ID), 1)

	// Cascade holds across a reload too
	reloaded, err := NewDataService(kv)
	assert.NoError(t, err)
	assert.Empty(t, reloaded.GetAttemptsByQuiz(target.ID))
}

func TestDeleteContentIdempotent(t *testing.T) {
	svc, _ := newTestDataService(t)

	content, _ := svc.AddContent(contentRequest("gone", models.Class6th), "t1")
	before := len(svc.Contents())

	svc.DeleteContent(content.ID)
	assert.Len(t, svc.Contents(), before-1)

	// Second delete is a no-op
	svc.DeleteContent(content.ID)
	assert.Len(t, svc.Contents(), before-1)
}

func TestGetQuizByIDNotFound(t *testing.T) {
	svc, _ := newTestDataService(t)

	quiz, err := svc.GetQuizByID("does-not-exist")
	assert.Nil(t, quiz)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}
