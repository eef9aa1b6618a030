package models

import "errors"

type UserRole string

const (
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

var ErrInvalidRole = errors.New("role must be teacher or student")

// ClassLevel is the grade-level tag used to partition content, quizzes
// and the student body.
type ClassLevel string

const (
	Class5th  ClassLevel = "5th"
	Class6th  ClassLevel = "6th"
	Class7th  ClassLevel = "7th"
	Class8th  ClassLevel = "8th"
	Class9th  ClassLevel = "9th"
	Class10th ClassLevel = "10th"
)

// ClassLevels lists all valid levels in ascending order.
var ClassLevels = []ClassLevel{Class5th, Class6th, Class7th, Class8th, Class9th, Class10th}

func (c ClassLevel) Valid() bool {
	for _, level := range ClassLevels {
		if c == level {
			return true
		}
	}
	return false
}

func (r UserRole) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// User is the current signed-in account. Exactly one user is persisted
// at a time; login and signup replace it wholesale.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	Class        ClassLevel `json:"class,omitempty"` // students only
	PasswordHash string     `json:"password_hash,omitempty"`
}
