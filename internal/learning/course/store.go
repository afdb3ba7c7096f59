// Copyright (c) 2026 Code2Lead. All rights reserved.

package course

import (
	"context"

	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/pagination"
)

// Filter narrows a catalogue listing.
type Filter struct {
	// TrainerID limits the listing to one author when non-empty.
	TrainerID string
	pagination.Params
}

// Repository defines the data access contract for the catalogue.
type Repository interface {

	// List returns one page of summaries, newest first, and the total match count.
	List(context context.Context, filter Filter) ([]Summary, int, error)

	/*
		FindByID loads a course with its chapters and lessons in order.

		Returns:
		  - *Course: Hydrated aggregate
		  - error: ErrCourseNotFound or database failures
	*/
	FindByID(context context.Context, id string) (*Course, error)

	/*
		FindLesson resolves a lesson through its course and chapter.

		Returns:
		  - *LessonDetail: Flattened lesson payload
		  - error: ErrCourseNotFound, ErrChapterNotFound, ErrLessonNotFound or database failures
	*/
	FindLesson(context context.Context, courseID, chapterID, lessonID string) (*LessonDetail, error)

	/*
		Create persists the course and every nested chapter and lesson atomically.

		Returns:
		  - error: ErrSlugExists or persistence failures
	*/
	Create(context context.Context, course *Course) error
}
