package models

import "time"

// AttemptAnswer records the option a student picked for one question.
type AttemptAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption int    `json:"selectedOption"`
}

// QuizAttempt is one student's single submission of answers to a quiz.
// Created exactly once per submission and never mutated; removed only
// when its quiz is deleted.
type QuizAttempt struct {
	ID             string          `json:"id"`
	QuizID         string          `json:"quizId"`
	StudentID      string          `json:"studentId"`
	StudentName    string          `json:"studentName"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	SubmittedAt    time.Time       `json:"submittedAt"`
	Answers        []AttemptAnswer `json:"answers"`
}
