package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"eduboard/kvstore"
	"eduboard/models"

	"github.com/google/uuid"
)

const (
	contentsKey = "eduContents"
	quizzesKey  = "eduQuizzes"
	attemptsKey = "eduAttempts"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
)

// DataService is the single source of truth for lesson contents, quizzes
// and quiz attempts. Collections live in memory and are re-serialized to
// the persistence port on every mutation.
type DataService struct {
	kv kvstore.Store

	mu       sync.RWMutex
	contents []models.Content
	quizzes  []models.Quiz
	attempts []models.QuizAttempt
}

// NewDataService loads the three collections from the store. A collection
// key that has never been written is seeded with sample data; any persisted
// value, including an empty array, is used verbatim.
func NewDataService(kv kvstore.Store) (*DataService, error) {
	s := &DataService{kv: kv}

	seeded := false
	if err := s.loadCollection(contentsKey, &s.contents); err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			return nil, err
		}
		s.contents = seedContents()
		seeded = true
	}
	if err := s.loadCollection(quizzesKey, &s.quizzes); err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			return nil, err
		}
		s.quizzes = seedQuizzes()
		seeded = true
	}
	if err := s.loadCollection(attemptsKey, &s.attempts); err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			return nil, err
		}
		s.attempts = []models.QuizAttempt{}
		seeded = true
	}

	if seeded {
		s.persist()
	}
	return s, nil
}

func (s *DataService) loadCollection(key string, dst interface{}) error {
	data, err := s.kv.Get(context.Background(), key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("corrupt collection %q: %w", key, err)
	}
	return nil
}

// persist re-serializes all three collections. A write failure is logged
// and leaves the in-memory state ahead of the store until the next
// successful write; it never fails the mutation that triggered it.
func (s *DataService) persist() {
	for key, collection := range map[string]interface{}{
		contentsKey: s.contents,
		quizzesKey:  s.quizzes,
		attemptsKey: s.attempts,
	} {
		data, err := json.Marshal(collection)
		if err != nil {
			log.Printf("Failed to serialize %s: %v", key, err)
			continue
		}
		if err := s.kv.Set(context.Background(), key, string(data)); err != nil {
			log.Printf("Failed to persist %s: %v", key, err)
		}
	}
}

type CreateContentRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Type        models.ContentType `json:"type" binding:"required"`
	URL         string             `json:"url" binding:"required"`
	ClassLevel  models.ClassLevel  `json:"classLevel" binding:"required"`
}

type CreateQuizRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	ClassLevel  models.ClassLevel       `json:"classLevel" binding:"required"`
	Questions   []CreateQuestionRequest `json:"questions" binding:"required,min=1"`
}

type CreateQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,max=6"`
	CorrectOption int      `json:"correctOption"`
}

type AddAttemptRequest struct {
	QuizID         string                 `json:"quizId" binding:"required"`
	StudentID      string                 `json:"studentId" binding:"required"`
	StudentName    string                 `json:"studentName" binding:"required"`
	Score          int                    `json:"score"`
	TotalQuestions int                    `json:"totalQuestions" binding:"required"`
	Answers        []models.AttemptAnswer `json:"answers" binding:"required"`
}

// AddContent validates and appends a new lesson content record.
func (s *DataService) AddContent(req *CreateContentRequest, createdBy string) (*models.Content, error) {
	if req.Title == "" || req.URL == "" {
		return nil, errors.New("title and url are required")
	}
	if !req.Type.Valid() {
		return nil, errors.New("content type must be video or pdf")
	}
	if !req.ClassLevel.Valid() {
		return nil, fmt.Errorf("invalid class level %q", req.ClassLevel)
	}

	content := models.Content{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		URL:         req.URL,
		ClassLevel:  req.ClassLevel,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   createdBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents = append(s.contents, content)
	s.persist()
	return &content, nil
}

// AddQuiz validates and appends a new quiz. Every question must have 2 to 6
// options and a correct-option index inside that range.
func (s *DataService) AddQuiz(req *CreateQuizRequest, createdBy string) (*models.Quiz, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}
	if !req.ClassLevel.Valid() {
		return nil, fmt.Errorf("invalid class level %q", req.ClassLevel)
	}
	if len(req.Questions) == 0 {
		return nil, errors.New("quiz must have at least one question")
	}

	quiz := models.Quiz{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ClassLevel:  req.ClassLevel,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   createdBy,
	}

	for i, q := range req.Questions {
		if q.Question == "" {
			return nil, fmt.Errorf("question %d: text is required", i+1)
		}
		if len(q.Options) < 2 || len(q.Options) > 6 {
			return nil, fmt.Errorf("question %d: must have 2 to 6 options", i+1)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct option %d out of range", i+1, q.CorrectOption)
		}
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			ID:            fmt.Sprintf("%s_%d", quiz.ID, i+1),
			Question:      q.Question,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes = append(s.quizzes, quiz)
	s.persist()
	return &quiz, nil
}

// AddQuizAttempt appends an attempt record as given. The quiz reference is
// deliberately not checked here; SubmitAttempt is the graded entry point.
func (s *DataService) AddQuizAttempt(req *AddAttemptRequest) (*models.QuizAttempt, error) {
	if req.QuizID == "" || req.StudentID == "" {
		return nil, errors.New("quizId and studentId are required")
	}
	if req.Score < 0 || req.Score > req.TotalQuestions {
		return nil, fmt.Errorf("score %d out of range 0..%d", req.Score, req.TotalQuestions)
	}
	for i, a := range req.Answers {
		if a.SelectedOption < 0 {
			return nil, fmt.Errorf("answer %d: selected option must not be negative", i+1)
		}
	}

	attempt := models.QuizAttempt{
		ID:             uuid.NewString(),
		QuizID:         req.QuizID,
		StudentID:      req.StudentID,
		StudentName:    req.StudentName,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		SubmittedAt:    time.Now().UTC(),
		Answers:        req.Answers,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
	s.persist()
	return &attempt, nil
}

// SubmitAttempt grades the given answers against the quiz and records the
// attempt. An answer counts as correct when its selected option equals the
// question's correct-option index; unanswered questions count as wrong.
func (s *DataService) SubmitAttempt(quizID, studentID, studentName string, answers []models.AttemptAnswer) (*models.QuizAttempt, error) {
	quiz, err := s.GetQuizByID(quizID)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOption
	}

	score := 0
	for _, q := range quiz.Questions {
		if option, ok := selected[q.ID]; ok && option == q.CorrectOption {
			score++
		}
	}

	return s.AddQuizAttempt(&AddAttemptRequest{
		QuizID:         quizID,
		StudentID:      studentID,
		StudentName:    studentName,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Answers:        answers,
	})
}

// DeleteContent removes the content with the given id. Unknown ids are a
// no-op.
func (s *DataService) DeleteContent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.contents[:0]
	for _, c := range s.contents {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.contents = kept
	s.persist()
}

// DeleteQuiz removes the quiz and every attempt that references it.
// Both collections are updated before anything is written out.
func (s *DataService) DeleteQuiz(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keptQuizzes := s.quizzes[:0]
	for _, q := range s.quizzes {
		if q.ID != id {
			keptQuizzes = append(keptQuizzes, q)
		}
	}
	s.quizzes = keptQuizzes

	keptAttempts := s.attempts[:0]
	for _, a := range s.attempts {
		if a.QuizID != id {
			keptAttempts = append(keptAttempts, a)
		}
	}
	s.attempts = keptAttempts

	s.persist()
}

// GetContentsByClass returns contents for the given class level in
// insertion order.
func (s *DataService) GetContentsByClass(level models.ClassLevel) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Content{}
	for _, c := range s.contents {
		if c.ClassLevel == level {
			result = append(result, c)
		}
	}
	return result
}

// GetQuizzesByClass returns quizzes for the given class level in
// insertion order.
func (s *DataService) GetQuizzesByClass(level models.ClassLevel) []models.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Quiz{}
	for _, q := range s.quizzes {
		if q.ClassLevel == level {
			result = append(result, q)
		}
	}
	return result
}

func (s *DataService) GetAttemptsByQuiz(quizID string) []models.QuizAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.QuizAttempt{}
	for _, a := range s.attempts {
		if a.QuizID == quizID {
			result = append(result, a)
		}
	}
	return result
}

func (s *DataService) GetAttemptsByStudent(studentID string) []models.QuizAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.QuizAttempt{}
	for _, a := range s.attempts {
		if a.StudentID == studentID {
			result = append(result, a)
		}
	}
	return result
}

func (s *DataService) GetQuizByID(id string) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.quizzes {
		if q.ID == id {
			quiz := q
			return &quiz, nil
		}
	}
	return nil, ErrQuizNotFound
}

// Contents returns a copy of the content collection in insertion order.
func (s *DataService) Contents() []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Content{}, s.contents...)
}

// Quizzes returns a copy of the quiz collection in insertion order.
func (s *DataService) Quizzes() []models.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Quiz{}, s.quizzes...)
}

// Attempts returns a copy of the attempt collection in insertion order.
func (s *DataService) Attempts() []models.QuizAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.QuizAttempt{}, s.attempts...)
}
