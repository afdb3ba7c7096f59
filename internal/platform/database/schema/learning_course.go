// Copyright (c) 2026 Code2Lead. All rights reserved.

package schema

import "strings"

// LearningCourseTable represents the 'learning.course' table
type LearningCourseTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	CoverURL    string
	Tags        string
	TrainerID   string
	CreatedAt   string
	UpdatedAt   string

	SlugKey string
}

// LearningCourse is the schema definition for learning.course
var LearningCourse = LearningCourseTable{
	Table:       "learning.course",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	CoverURL:    "coverurl",
	Tags:        "tags",
	TrainerID:   "trainerid",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",

	SlugKey: "course_slug_key",
}

// Columns returns all standard column names
func (t LearningCourseTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.CoverURL, t.Tags,
		t.TrainerID, t.CreatedAt, t.UpdatedAt,
	}
}

// SelectList returns the standard columns joined for a SELECT or RETURNING clause.
func (t LearningCourseTable) SelectList() string {
	return strings.Join(t.Columns(), ", ")
}

// LearningChapterTable represents the 'learning.chapter' table
type LearningChapterTable struct {
	Table       string
	ID          string
	CourseID    string
	Title       string
	Description string
	Position    string
	CreatedAt   string
}

// LearningChapter is the schema definition for learning.chapter
var LearningChapter = LearningChapterTable{
	Table:       "learning.chapter",
	ID:          "id",
	CourseID:    "courseid",
	Title:       "title",
	Description: "description",
	Position:    "position",
	CreatedAt:   "createdat",
}

// LearningLessonTable represents the 'learning.lesson' table
type LearningLessonTable struct {
	Table       string
	ID          string
	ChapterID   string
	Name        string
	Description string
	Example     string
	Position    string
	CreatedAt   string
}

// LearningLesson is the schema definition for learning.lesson
var LearningLesson = LearningLessonTable{
	Table:       "learning.lesson",
	ID:          "id",
	ChapterID:   "chapterid",
	Name:        "name",
	Description: "description",
	Example:     "example",
	Position:    "position",
	CreatedAt:   "createdat",
}
