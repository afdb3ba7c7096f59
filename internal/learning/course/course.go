// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package course implements the learning catalogue: courses, their chapters and
the lessons inside each chapter.

# Architecture

  - Entities: Course (aggregate root), Chapter and Lesson, plus the list and
    lesson-detail projections served to clients.
  - Ordering: chapters and lessons carry a 1-based order assigned at creation.
  - Ownership: every course belongs to the trainer (or admin) who created it.
*/
package course

import (
	"time"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
)

// # Domain Entities

// Course is a published learning path.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CoverURL    string    `json:"coverUrl"`
	Tags        []string  `json:"tags"`
	TrainerID   string    `json:"trainerId"`
	Chapters    []Chapter `json:"chapters"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Chapter groups ordered lessons inside a course.
type Chapter struct {
	ID          string   `json:"id"`
	CourseID    string   `json:"-"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Order       int      `json:"order"`
	Lessons     []Lesson `json:"lessons"`
}

// Lesson is one unit of content with an optional worked example.
type Lesson struct {
	ID          string `json:"id"`
	ChapterID   string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
	Order       int    `json:"order"`
}

// # Projections

// Summary is the catalogue list item.
type Summary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	CoverURL string   `json:"coverUrl"`
	Tags     []string `json:"tags"`
}

// LessonDetail is the lesson page payload, flattened with its chapter.
type LessonDetail struct {
	Chapter           string `json:"chapter"`
	Order             int    `json:"order"`
	ChapterTitle      string `json:"chapterTitle"`
	LessonName        string `json:"lessonName"`
	LessonDescription string `json:"lessonDescription"`
	Example           string `json:"example"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCoverURL    = "coverUrl"
	FieldTags        = "tags"
	FieldChapters    = "chapters"
	FieldLessons     = "lessons"
	FieldName        = "name"
	FieldExample     = "example"
)

// # Constraints

const (
	TitleMinLength       = 3
	TitleMaxLength       = 200
	DescriptionMaxLength = 5000
	ExampleMaxLength     = 20000
	MaxTags              = 20
	TagMaxLength         = 50

	// slugAttempts bounds the suffix retries when a slug is already taken.
	slugAttempts = 3
)

// MessageCourseCreated is returned alongside a newly created course.
const MessageCourseCreated = "Course created successfully"

// # Domain Errors

var (
	ErrCourseNotFound  = apperr.NotFound("COURSE_NOT_FOUND", "Course not found")
	ErrChapterNotFound = apperr.NotFound("CHAPTER_NOT_FOUND", "Chapter not found")
	ErrLessonNotFound  = apperr.NotFound("LESSON_NOT_FOUND", "Lesson not found")
	ErrSlugExists      = apperr.Conflict("SLUG_EXISTS", "A course with this slug already exists")
	ErrNotCourseAuthor = apperr.Forbidden(apperr.CodeInsufficientPermission, "Only trainers and admins can create courses")
)
