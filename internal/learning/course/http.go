// Copyright (c) 2026 Code2Lead. All rights reserved.

package course

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/middleware"
	requestutil "github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/request"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/respond"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/convert"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/pagination"
)

// Handler implements the HTTP layer for the course catalogue.
type Handler struct {
	courseService *Service
}

// NewHandler constructs a new course [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{courseService: service}
}

// Routes returns a [chi.Router] configured with the catalogue endpoints.
//
// # Endpoints
//   - GET  /                                      : Lists courses (optional auth, ?mine=true).
//   - POST /                                      : Creates a course (trainer, admin).
//   - GET  /{courseID}                            : Course outline.
//   - GET  /{courseID}/{chapterID}/lessons/{lessonID}: Lesson detail.
func (handler *Handler) Routes(authenticate, optionalAuthenticate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.With(optionalAuthenticate).Get("/", handler.list)
	router.With(authenticate, middleware.RequireRole(sec.RoleTrainer, sec.RoleAdmin)).Post("/", handler.create)

	router.Get("/{courseID}", handler.get)
	router.Get("/{courseID}/{chapterID}/lessons/{lessonID}", handler.getLesson)

	return router
}

// # Catalogue Endpoints

// list serves GET /api/courses. Query: page, limit, mine.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	summaries, total, err := handler.courseService.List(request.Context(), requestutil.Identity(request), ListInput{
		Page:  params.Page,
		Limit: params.Limit,
		Mine:  convert.ToBool(request.URL.Query().Get("mine")),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("X-Total-Count", strconv.Itoa(total))
	respond.Paginated(writer, summaries, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/courses/{courseID}.

Response:
  - 200: Course with ordered chapters and lessons
  - 404: COURSE_NOT_FOUND
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	course, err := handler.courseService.Get(request.Context(), requestutil.Param(request, "courseID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", course)
}

/*
GET /api/courses/{courseID}/{chapterID}/lessons/{lessonID}.

Response:
  - 200: LessonDetail
  - 404: COURSE_NOT_FOUND / CHAPTER_NOT_FOUND / LESSON_NOT_FOUND
*/
func (handler *Handler) getLesson(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.courseService.GetLesson(request.Context(),
		requestutil.Param(request, "courseID"),
		requestutil.Param(request, "chapterID"),
		requestutil.Param(request, "lessonID"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", detail)
}

// # Authoring Endpoints

type lessonRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type chapterRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Lessons     []lessonRequest `json:"lessons"`
}

type createRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CoverURL    string           `json:"coverUrl"`
	Tags        []string         `json:"tags"`
	Chapters    []chapterRequest `json:"chapters"`
}

func (input createRequest) toInput() CreateInput {
	result := CreateInput{
		Title:       input.Title,
		Description: input.Description,
		CoverURL:    input.CoverURL,
		Tags:        input.Tags,
		Chapters:    make([]ChapterInput, 0, len(input.Chapters)),
	}

	for _, chapter := range input.Chapters {
		lessons := make([]LessonInput, 0, len(chapter.Lessons))
		for _, lesson := range chapter.Lessons {
			lessons = append(lessons, LessonInput(lesson))
		}
		result.Chapters = append(result.Chapters, ChapterInput{
			Title:       chapter.Title,
			Description: chapter.Description,
			Lessons:     lessons,
		})
	}
	return result
}

/*
POST /api/courses.

Request:
  - body: createRequest (course with nested chapters and lessons)

Response:
  - 201: Course
  - 400: VALIDATION_ERROR
  - 401/403: Not a trainer or admin
  - 409: SLUG_EXISTS
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.courseService.Create(request.Context(), *identity, input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MessageCourseCreated, course)
}
