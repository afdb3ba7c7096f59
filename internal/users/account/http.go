// Copyright (c) 2026 Code2Lead. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/request"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/respond"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

// Handler implements the HTTP layer for profile management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// RegisterRoutes adds the profile routes to router. They share the /api/auth
// prefix with the authentication handler.
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	// Public Profile discovery
	router.Get("/profile/{username}", handler.getPublicProfile)

	// Account Management
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/me", handler.getMe)
		r.Put("/profile", handler.updateProfile)
	})
}

// # User Profile Endpoints

/*
GET /api/auth/me.

Description: Retrieves the full private profile of the authenticated user.

Response:
  - 200: SafeUser
  - 401: Authentication required
  - 404: USER_NOT_FOUND (account removed after the token was issued)
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetMe(request.Context(), identity.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "", user.Safe())
}

// updateProfileRequest is the allow-listed JSON payload for profile updates.
// Any other property in the body is ignored by the decoder.
type updateProfileRequest struct {
	Name          *string        `json:"name"`
	Bio           *string        `json:"bio"`
	Avatar        *string        `json:"avatar"`
	PublicProfile *bool          `json:"publicProfile"`
	Social        *auth.Social   `json:"social"`
	Studies       []studyRequest `json:"studies"`
}

type studyRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

func (input updateProfileRequest) toInput() UpdateProfileInput {
	result := UpdateProfileInput{
		Name:          input.Name,
		Bio:           input.Bio,
		Avatar:        input.Avatar,
		PublicProfile: input.PublicProfile,
		Social:        input.Social,
	}

	if input.Studies != nil {
		result.Studies = make([]StudyInput, 0, len(input.Studies))
		for _, study := range input.Studies {
			result.Studies = append(result.Studies, StudyInput(study))
		}
	}
	return result
}

/*
PUT /api/auth/profile.

Description: Applies a partial update to the caller's profile.

Request:
  - body: updateProfileRequest

Response:
  - 200: SafeUser
  - 400: VALIDATION_ERROR
  - 401: Authentication required
  - 404: USER_NOT_FOUND
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), identity.ID, input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MessageProfileUpdated, user.Safe())
}

// getPublicProfile serves GET /api/auth/profile/{username}. Private profiles answer 404.
func (handler *Handler) getPublicProfile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.accountService.GetPublicProfile(request.Context(), requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "", profile)
}
