// Copyright (c) 2026 Code2Lead. All rights reserved.

package auth

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/middleware"
	requestutil "github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/request"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/respond"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/session"
	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements the authentication and admin account endpoints.
//
// The handler is a thin mediation layer: it decodes JSON, calls [Service], sets or
// clears the session cookie and writes the envelope. Validation lives in the service.
type Handler struct {
	authService *Service
	cookie      *session.Cookie
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, cookie *session.Cookie) *Handler {
	return &Handler{authService: service, cookie: cookie}
}

// RegisterRoutes adds the authentication routes to router.
//
// # Endpoints
//   - POST /admin                    : Creates an administrator (public bootstrap).
//   - POST /login                    : Authenticates and sets the session cookie.
//   - POST /logout                   : Clears the session cookie.
//   - POST /users                    : Admin creates a user or trainer.
//   - GET  /users                    : Admin lists accounts.
//   - PUT  /users/{userID}/deactivate: Admin blocks logins.
//   - PUT  /users/{userID}/activate  : Admin re-enables logins.
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	// Public endpoints
	router.Post("/admin", handler.registerAdmin)
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/logout", handler.logout)

		r.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireRole(sec.RoleAdmin))
			admin.Post("/users", handler.createUser)
			admin.Get("/users", handler.listUsers)
			admin.Put("/users/{userID}/deactivate", handler.deactivateUser)
			admin.Put("/users/{userID}/activate", handler.activateUser)
		})
	})
}

// # Request Payloads

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserRequest struct {
	registerRequest
	Role string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (input registerRequest) toInput() RegisterInput {
	return RegisterInput{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
}

// # Handlers

/*
registerAdmin handles the creation of an administrator account.

POST /api/auth/admin

Response:
  - 201: SafeUser
  - 400: VALIDATION_ERROR
  - 409: EMAIL_EXISTS / USERNAME_EXISTS
*/
func (handler *Handler) registerAdmin(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.RegisterAdmin(request.Context(), input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MessageAdminCreated, user.Safe())
}

/*
login authenticates the caller and sets the session cookie.

POST /api/auth/login

Response:
  - 200: {user, token} and Set-Cookie
  - 401: INVALID_CREDENTIALS
  - 403: ACCOUNT_DEACTIVATED
  - 423: ACCOUNT_LOCKED
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.cookie.Set(writer, result.Token)

	respond.OK(writer, MessageLoginSuccessful, map[string]any{
		FieldUser:  result.User.Safe(),
		FieldToken: result.Token,
	})
}

// logout clears the session cookie. The token itself stays valid until it expires.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.cookie.Clear(writer)
	respond.Message(writer, MessageLoggedOut)
}

/*
createUser lets an admin create a user or trainer.

POST /api/auth/users

Response:
  - 201: SafeUser
  - 400: VALIDATION_ERROR (including role admin)
  - 409: EMAIL_EXISTS / USERNAME_EXISTS
*/
func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input createUserRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.CreateUser(request.Context(), CreateUserInput{
		RegisterInput: input.toInput(),
		Role:          input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MessageUserCreated, user.Safe())
}

// listUsers returns one page of accounts. Query: page, limit, role.
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.authService.ListUsers(request.Context(), ListUsersInput{
		Page:  params.Page,
		Limit: params.Limit,
		Role:  request.URL.Query().Get(FieldRole),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("X-Total-Count", strconv.Itoa(total))
	respond.Paginated(writer, SafeUsers(users), pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) deactivateUser(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.authService.DeactivateUser(request.Context(), requestutil.Param(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, MessageUserDeactivated, user.Safe())
}

func (handler *Handler) activateUser(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.authService.ActivateUser(request.Context(), requestutil.Param(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, MessageUserActivated, user.Safe())
}
