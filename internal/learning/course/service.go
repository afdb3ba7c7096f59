// Copyright (c) 2026 Code2Lead. All rights reserved.

package course

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/ctxutil"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/validate"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/pagination"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/slug"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/uuid"
)

// Service implements the catalogue use cases.
type Service struct {
	courseRepository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{courseRepository: repository}
}

// # Reads

// ListInput holds the listing query.
type ListInput struct {
	Page  int
	Limit int
	// Mine restricts the listing to the caller's own courses. It only applies
	// to an authenticated trainer and is ignored otherwise.
	Mine bool
}

/*
List returns one page of the catalogue.

Parameters:
  - context: context.Context
  - caller: *sec.Identity (nil for anonymous requests)
  - input: ListInput

Returns:
  - []Summary: The requested page
  - int: Total number of matching courses
  - error: Storage failures
*/
func (service *Service) List(context context.Context, caller *sec.Identity, input ListInput) ([]Summary, int, error) {
	filter := Filter{Params: pagination.Params{Page: input.Page, Limit: input.Limit}.Normalize()}
	if input.Mine && caller != nil && caller.Role == sec.RoleTrainer {
		filter.TrainerID = caller.ID
	}

	summaries, total, err := service.courseRepository.List(context, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("course_service_list_failed: %w", err)
	}
	return summaries, total, nil
}

// Get returns a course with its ordered chapters and lessons.
func (service *Service) Get(context context.Context, courseID string) (*Course, error) {
	if !uuid.Valid(courseID) {
		return nil, ErrCourseNotFound
	}

	course, err := service.courseRepository.FindByID(context, courseID)
	if err != nil {
		return nil, fmt.Errorf("course_service_get_failed: %w", err)
	}
	return course, nil
}

/*
GetLesson resolves a lesson inside a chapter of a course.

Description: Each path segment is checked in turn, so a malformed chapter id
reports CHAPTER_NOT_FOUND rather than a storage error.

Returns:
  - *LessonDetail: Flattened lesson payload
  - error: ErrCourseNotFound, ErrChapterNotFound, ErrLessonNotFound or storage failures
*/
func (service *Service) GetLesson(context context.Context, courseID, chapterID, lessonID string) (*LessonDetail, error) {
	switch {
	case !uuid.Valid(courseID):
		return nil, ErrCourseNotFound
	case !uuid.Valid(chapterID):
		return nil, ErrChapterNotFound
	case !uuid.Valid(lessonID):
		return nil, ErrLessonNotFound
	}

	detail, err := service.courseRepository.FindLesson(context, courseID, chapterID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("course_service_get_lesson_failed: %w", err)
	}
	return detail, nil
}

// # Authoring

// LessonInput is one lesson of a new course.
type LessonInput struct {
	Name        string
	Description string
	Example     string
}

// ChapterInput is one chapter of a new course with its lessons in order.
type ChapterInput struct {
	Title       string
	Description string
	Lessons     []LessonInput
}

// CreateInput holds a complete course outline.
type CreateInput struct {
	Title       string
	Description string
	CoverURL    string
	Tags        []string
	Chapters    []ChapterInput
}

/*
Create validates and persists a new course authored by caller.

Description: The slug is derived from the title. When it is already taken a
short random suffix is appended and the insert retried a bounded number of times.

Parameters:
  - context: context.Context
  - caller: sec.Identity (must be a trainer or an admin)
  - input: CreateInput

Returns:
  - *Course: The created aggregate
  - error: Forbidden, Validation, ErrSlugExists or storage errors
*/
func (service *Service) Create(context context.Context, caller sec.Identity, input CreateInput) (*Course, error) {
	if !caller.Role.In(sec.RoleTrainer, sec.RoleAdmin) {
		return nil, ErrNotCourseAuthor
	}

	course, err := input.build(caller.ID)
	if err != nil {
		return nil, err
	}

	base := course.Slug
	for attempt := 1; ; attempt++ {
		err = service.courseRepository.Create(context, course)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrSlugExists) || attempt == slugAttempts {
			return nil, fmt.Errorf("course_service_create_failed: %w", err)
		}
		course.Slug = base + "-" + slugSuffix()
	}

	ctxutil.GetLogger(context).InfoContext(context, "course_created",
		slog.String("course_id", course.ID),
		slog.String("slug", course.Slug),
		slog.String("trainer_id", caller.ID),
	)

	return course, nil
}

// build validates the input and assembles the aggregate with fresh ids and 1-based orders.
func (input CreateInput) build(trainerID string) (*Course, error) {
	validator := &validate.Validator{}

	course := &Course{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		CoverURL:    strings.TrimSpace(input.CoverURL),
		Tags:        normalizeTags(input.Tags),
		TrainerID:   trainerID,
		Chapters:    make([]Chapter, 0, len(input.Chapters)),
	}
	course.Slug = slug.From(course.Title)

	validator.Required(FieldTitle, course.Title).
		MinLen(FieldTitle, course.Title, TitleMinLength).
		MaxLen(FieldTitle, course.Title, TitleMaxLength).
		Custom(FieldTitle, course.Title != "" && course.Slug == "", "Title must contain letters or digits").
		Required(FieldDescription, course.Description).
		MaxLen(FieldDescription, course.Description, DescriptionMaxLength).
		Custom(FieldTags, len(course.Tags) > MaxTags, fmt.Sprintf("At most %d tags", MaxTags))

	if course.CoverURL != "" {
		validator.URL(FieldCoverURL, course.CoverURL)
	}
	for i, tag := range course.Tags {
		validator.MaxLen(fmt.Sprintf("%s[%d]", FieldTags, i), tag, TagMaxLength)
	}

	for i, chapterInput := range input.Chapters {
		chapter := Chapter{
			ID:          uuid.New(),
			CourseID:    course.ID,
			Title:       strings.TrimSpace(chapterInput.Title),
			Description: strings.TrimSpace(chapterInput.Description),
			Order:       i + 1,
			Lessons:     make([]Lesson, 0, len(chapterInput.Lessons)),
		}

		prefix := fmt.Sprintf("%s[%d].", FieldChapters, i)
		validator.Required(prefix+FieldTitle, chapter.Title).
			MaxLen(prefix+FieldTitle, chapter.Title, TitleMaxLength).
			MaxLen(prefix+FieldDescription, chapter.Description, DescriptionMaxLength)

		for j, lessonInput := range chapterInput.Lessons {
			lesson := Lesson{
				ID:          uuid.New(),
				ChapterID:   chapter.ID,
				Name:        strings.TrimSpace(lessonInput.Name),
				Description: strings.TrimSpace(lessonInput.Description),
				Example:     strings.TrimSpace(lessonInput.Example),
				Order:       j + 1,
			}

			lessonPrefix := fmt.Sprintf("%s%s[%d].", prefix, FieldLessons, j)
			validator.Required(lessonPrefix+FieldName, lesson.Name).
				MaxLen(lessonPrefix+FieldName, lesson.Name, TitleMaxLength).
				Required(lessonPrefix+FieldDescription, lesson.Description).
				MaxLen(lessonPrefix+FieldDescription, lesson.Description, DescriptionMaxLength).
				MaxLen(lessonPrefix+FieldExample, lesson.Example, ExampleMaxLength)

			chapter.Lessons = append(chapter.Lessons, lesson)
		}

		course.Chapters = append(course.Chapters, chapter)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return course, nil
}

// slugSuffix returns six random hex characters taken from the tail of a UUIDv7.
func slugSuffix() string {
	id := uuid.New()
	return id[len(id)-6:]
}

// normalizeTags trims, lower-cases and de-duplicates tags, keeping first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
