// Copyright (c) 2026 Code2Lead. All rights reserved.

package course

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/database/schema"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/dberr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/postgres"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/pointer"
)

// courseErrors translates storage failures on the learning schema into domain errors.
var courseErrors = dberr.Mapping{
	NotFound: ErrCourseNotFound,
	Conflicts: map[string]*apperr.AppError{
		schema.LearningCourse.SlugKey: ErrSlugExists,
	},
}

func wrap(err error, action string) error {
	return dberr.WrapWith(err, action, courseErrors)
}

// PostgresRepository implements [Repository] on the learning schema.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Reads

/*
List returns one page of course summaries ordered by creation time, newest first.

Parameters:
  - context: context.Context
  - filter: Filter (optional trainer, page and limit)

Returns:
  - []Summary: The requested page
  - int: Total number of matching courses
  - error: Database errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]Summary, int, error) {
	table := schema.LearningCourse
	filter.Params = filter.Params.Normalize()

	// An empty trainer disables the filter
	where := fmt.Sprintf(`WHERE ($1 = '' OR %s::text = $1)`, table.TrainerID)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)
	if err := repository.db.QueryRow(context, countQuery, filter.TrainerID).Scan(&total); err != nil {
		return nil, 0, wrap(err, "postgres_course_repo_count_failed")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s %s
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		table.ID, table.Title, table.Slug, table.CoverURL, table.Tags,
		table.Table, where,
		table.CreatedAt, table.ID,
	)

	rows, err := repository.db.Query(context, query, filter.TrainerID, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, wrap(err, "postgres_course_repo_list_failed")
	}
	defer rows.Close()

	summaries := make([]Summary, 0, filter.Limit)
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(&summary.ID, &summary.Title, &summary.Slug, &summary.CoverURL, &summary.Tags); err != nil {
			return nil, 0, wrap(err, "postgres_course_repo_list_scan_failed")
		}
		if summary.Tags == nil {
			summary.Tags = []string{}
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, wrap(err, "postgres_course_repo_list_failed")
	}

	return summaries, total, nil
}

/*
FindByID loads the course row, then its chapters and lessons with one joined query.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Course: Course with ordered chapters and lessons
  - error: ErrCourseNotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Course, error) {
	table := schema.LearningCourse
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.SelectList(), table.Table, table.ID)

	course := &Course{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Slug,
		&course.Description,
		&course.CoverURL,
		&course.Tags,
		&course.TrainerID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, wrap(err, "postgres_course_repo_find_by_id_failed")
	}
	if course.Tags == nil {
		course.Tags = []string{}
	}

	chapters, err := repository.outline(context, id)
	if err != nil {
		return nil, err
	}
	course.Chapters = chapters

	return course, nil
}

// outline loads the ordered chapters of a course with their ordered lessons.
func (repository *PostgresRepository) outline(context context.Context, courseID string) ([]Chapter, error) {
	chapter, lesson := schema.LearningChapter, schema.LearningLesson
	query := fmt.Sprintf(`
		SELECT ch.%s, ch.%s, ch.%s, ch.%s,
		       l.%s, l.%s, l.%s, l.%s, l.%s
		FROM %s ch
		LEFT JOIN %s l ON l.%s = ch.%s
		WHERE ch.%s = $1
		ORDER BY ch.%s, l.%s`,
		chapter.ID, chapter.Title, chapter.Description, chapter.Position,
		lesson.ID, lesson.Name, lesson.Description, lesson.Example, lesson.Position,
		chapter.Table,
		lesson.Table, lesson.ChapterID, chapter.ID,
		chapter.CourseID,
		chapter.Position, lesson.Position,
	)

	rows, err := repository.db.Query(context, query, courseID)
	if err != nil {
		return nil, wrap(err, "postgres_course_repo_outline_failed")
	}
	defer rows.Close()

	chapters := make([]Chapter, 0)
	for rows.Next() {
		var (
			current                                         Chapter
			lessonID, lessonName, lessonDesc, lessonExample *string
			lessonOrder                                     *int
		)
		if err := rows.Scan(
			&current.ID, &current.Title, &current.Description, &current.Order,
			&lessonID, &lessonName, &lessonDesc, &lessonExample, &lessonOrder,
		); err != nil {
			return nil, wrap(err, "postgres_course_repo_outline_scan_failed")
		}

		// Rows arrive grouped by chapter
		if len(chapters) == 0 || chapters[len(chapters)-1].ID != current.ID {
			current.CourseID = courseID
			current.Lessons = []Lesson{}
			chapters = append(chapters, current)
		}

		if lessonID == nil {
			continue
		}
		last := &chapters[len(chapters)-1]
		last.Lessons = append(last.Lessons, Lesson{
			ID:          *lessonID,
			ChapterID:   current.ID,
			Name:        pointer.Val(lessonName),
			Description: pointer.Val(lessonDesc),
			Example:     pointer.Val(lessonExample),
			Order:       pointer.Val(lessonOrder),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, wrap(err, "postgres_course_repo_outline_failed")
	}
	return chapters, nil
}

/*
FindLesson resolves a lesson and tells apart which level of the path is missing.

Description: The course row drives the query; chapter and lesson are LEFT JOINed
on the requested ids, so a NULL column pinpoints the missing level.
*/
func (repository *PostgresRepository) FindLesson(context context.Context, courseID, chapterID, lessonID string) (*LessonDetail, error) {
	course, chapter, lesson := schema.LearningCourse, schema.LearningChapter, schema.LearningLesson
	query := fmt.Sprintf(`
		SELECT ch.%s, ch.%s, l.%s, l.%s, l.%s, l.%s, l.%s
		FROM %s c
		LEFT JOIN %s ch ON ch.%s = c.%s AND ch.%s = $2
		LEFT JOIN %s l ON l.%s = ch.%s AND l.%s = $3
		WHERE c.%s = $1`,
		chapter.ID, chapter.Title, lesson.ID, lesson.Position, lesson.Name, lesson.Description, lesson.Example,
		course.Table,
		chapter.Table, chapter.CourseID, course.ID, chapter.ID,
		lesson.Table, lesson.ChapterID, chapter.ID, lesson.ID,
		course.ID,
	)

	var (
		foundChapter, chapterTitle, foundLesson *string
		order                                   *int
		name, description, example              *string
	)
	err := repository.db.QueryRow(context, query, courseID, chapterID, lessonID).Scan(
		&foundChapter, &chapterTitle, &foundLesson, &order, &name, &description, &example,
	)
	if err != nil {
		return nil, wrap(err, "postgres_course_repo_find_lesson_failed")
	}

	switch {
	case foundChapter == nil:
		return nil, ErrChapterNotFound
	case foundLesson == nil:
		return nil, ErrLessonNotFound
	}

	return &LessonDetail{
		Chapter:           *foundChapter,
		Order:             pointer.Val(order),
		ChapterTitle:      pointer.Val(chapterTitle),
		LessonName:        pointer.Val(name),
		LessonDescription: pointer.Val(description),
		Example:           pointer.Val(example),
	}, nil
}

// # Writes

/*
Create inserts the course, its chapters and their lessons in one transaction.

Description: The slug unique constraint is the only duplicate check; a
violation rolls the whole aggregate back and surfaces as ErrSlugExists.

Parameters:
  - context: context.Context
  - course: *Course (ids and orders already assigned)

Returns:
  - error: ErrSlugExists or database errors
*/
func (repository *PostgresRepository) Create(context context.Context, course *Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	// Establish Transactional Boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return wrap(err, "postgres_course_repo_begin_failed")
	}
	defer transaction.Rollback(context)

	// Step 1: Course row
	table := schema.LearningCourse
	courseQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		table.Table, table.SelectList(),
	)
	_, err = transaction.Exec(context, courseQuery,
		course.ID, course.Title, course.Slug, course.Description, course.CoverURL,
		course.Tags, course.TrainerID, course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		return wrap(err, "postgres_course_repo_insert_course_failed")
	}

	// Step 2: Outline, batched so the whole tree costs one round trip
	batch := &pgx.Batch{}
	chapter, lesson := schema.LearningChapter, schema.LearningLesson
	chapterQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		chapter.Table, chapter.ID, chapter.CourseID, chapter.Title, chapter.Description, chapter.Position, chapter.CreatedAt)
	lessonQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lesson.Table, lesson.ID, lesson.ChapterID, lesson.Name, lesson.Description, lesson.Example, lesson.Position, lesson.CreatedAt)

	for _, ch := range course.Chapters {
		batch.Queue(chapterQuery, ch.ID, course.ID, ch.Title, ch.Description, ch.Order, now)
		for _, l := range ch.Lessons {
			batch.Queue(lessonQuery, l.ID, ch.ID, l.Name, l.Description, l.Example, l.Order, now)
		}
	}

	if batch.Len() > 0 {
		if err := transaction.SendBatch(context, batch).Close(); err != nil {
			return wrap(err, "postgres_course_repo_insert_outline_failed")
		}
	}

	// Persist Atomic Changeset
	if err := transaction.Commit(context); err != nil {
		return wrap(err, "postgres_course_repo_commit_failed")
	}
	return nil
}
