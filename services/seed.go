package services

import (
	"time"

	"eduboard/models"
)

// Sample records used the first time the store comes up with no
// persisted collections. Once anything has been written, persisted
// state always wins over these.

func seedContents() []models.Content {
	now := time.Now().UTC()
	return []models.Content{
		{
			ID:          "c1",
			Title:       "Introduction to Algebra",
			Description: "Basic concepts of algebra for beginners",
			Type:        models.ContentVideo,
			URL:         "https://example.com/algebra-intro.mp4",
			ClassLevel:  models.Class6th,
			CreatedAt:   now,
			CreatedBy:   "teacher1",
		},
		{
			ID:          "c2",
			Title:       "Photosynthesis Explained",
			Description: "How plants make their own food",
			Type:        models.ContentPDF,
			URL:         "https://example.com/photosynthesis.pdf",
			ClassLevel:  models.Class7th,
			CreatedAt:   now,
			CreatedBy:   "teacher1",
		},
	}
}

func seedQuizzes() []models.Quiz {
	return []models.Quiz{
		{
			ID:          "q1",
			Title:       "Algebra Basics Quiz",
			Description: "Test your understanding of basic algebraic concepts",
			ClassLevel:  models.Class6th,
			Questions: []models.QuizQuestion{
				{
					ID:            "q1_1",
					Question:      "What is the value of x in 2x + 5 = 15?",
					Options:       []string{"3", "5", "7", "10"},
					CorrectOption: 1,
				},
				{
					ID:            "q1_2",
					Question:      "Simplify: 3(x + 2) - 4",
					Options:       []string{"3x + 2", "3x + 6 - 4", "3x + 6", "3x + 2 - 4"},
					CorrectOption: 2,
				},
			},
			CreatedAt: time.Now().UTC(),
			CreatedBy: "teacher1",
		},
	}
}
