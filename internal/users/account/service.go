// Copyright (c) 2026 Code2Lead. All rights reserved.

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/ctxutil"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/validate"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

// # Validation Rules

const (
	BioMaxLength        = 1000
	StudyFieldMaxLength = 200
	StudyDescriptionMax = 500
)

// MessageProfileUpdated is returned alongside the updated profile.
const MessageProfileUpdated = "Profile updated successfully"

var (
	nameRegex        = regexp.MustCompile(`^[a-zA-Z ]+$`)
	avatarRegex      = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)
	githubRegex      = regexp.MustCompile(`^https?://(www\.)?github\.com/[a-zA-Z0-9_-]+$`)
	linkedinRegex    = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+$`)
	facebookRegex    = regexp.MustCompile(`^https?://(www\.)?facebook\.com/[a-zA-Z0-9_.]+$`)
	instagramRegex   = regexp.MustCompile(`^https?://(www\.)?instagram\.com/[a-zA-Z0-9_.]+$`)
	socialFieldRules = []struct {
		field   string
		pattern *regexp.Regexp
		message string
		value   func(auth.Social) string
	}{
		{"github", githubRegex, "GitHub must be a valid GitHub profile URL", func(s auth.Social) string { return s.Github }},
		{"linkedin", linkedinRegex, "LinkedIn must be a valid LinkedIn profile URL", func(s auth.Social) string { return s.Linkedin }},
		{"facebook", facebookRegex, "Facebook must be a valid Facebook profile URL", func(s auth.Social) string { return s.Facebook }},
		{"instagram", instagramRegex, "Instagram must be a valid Instagram profile URL", func(s auth.Social) string { return s.Instagram }},
	}
)

// # Service Layer

// Service orchestrates the profile use cases of a user account.
type Service struct {
	profileRepository ProfileRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(profileRepo ProfileRepository) *Service {
	return &Service{profileRepository: profileRepo}
}

// # Profile Management

/*
GetMe retrieves the full private profile of the caller.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: auth.ErrUserNotFound or execution failures
*/
func (service *Service) GetMe(context context.Context, userID string) (*auth.User, error) {
	user, err := service.profileRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_me_failed: %w", err)
	}
	return user, nil
}

/*
GetPublicProfile resolves the public view of an account by username.

Description: A private profile is reported exactly like a missing user, so the
endpoint cannot be used to probe which usernames exist.

Parameters:
  - context: context.Context
  - username: string (normalized before lookup)

Returns:
  - auth.PublicProfile: The public projection
  - error: auth.ErrUserNotFound or execution failures
*/
func (service *Service) GetPublicProfile(context context.Context, username string) (auth.PublicProfile, error) {
	user, err := service.profileRepository.FindByUsername(context, auth.NormalizeUsername(username))
	if errors.Is(err, auth.ErrUserNotFound) {
		return auth.PublicProfile{}, auth.ErrUserNotFound
	}
	if err != nil {
		return auth.PublicProfile{}, fmt.Errorf("account_service_get_public_profile_failed: %w", err)
	}

	if !user.PublicProfile {
		return auth.PublicProfile{}, auth.ErrUserNotFound
	}

	return user.Public(), nil
}

// StudyInput is one education entry as submitted by the client. Dates are ISO 8601.
type StudyInput struct {
	Institution string
	Degree      string
	StartDate   string
	EndDate     string
	Description string
}

// UpdateProfileInput defines the mutable subset of the profile.
// Nil fields are left untouched; Studies replaces the whole list when non-nil.
type UpdateProfileInput struct {
	Name          *string
	Bio           *string
	Avatar        *string
	PublicProfile *bool
	Social        *auth.Social
	Studies       []StudyInput
}

/*
UpdateProfile validates and applies a partial profile update.

Description: Only name, bio, avatar, publicProfile, social and studies can change.
The write is a single statement, so a failed update leaves the profile untouched.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated profile
  - error: Validation, auth.ErrUserNotFound or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	changes, err := input.toChanges()
	if err != nil {
		return nil, err
	}

	// Nothing to write: answer with the current state
	if changes.Empty() {
		return service.GetMe(context, userID)
	}

	user, err := service.profileRepository.UpdateProfile(context, userID, changes)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_profile_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

// toChanges trims, validates and converts the input into a [ProfileChanges].
func (input UpdateProfileInput) toChanges() (ProfileChanges, error) {
	validator := &validate.Validator{}
	changes := ProfileChanges{PublicProfile: input.PublicProfile}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		validator.MinLen(auth.FieldName, name, auth.NameMinLength).
			MaxLen(auth.FieldName, name, auth.NameMaxLength).
			Match(auth.FieldName, name, nameRegex, "Name can only contain letters and spaces")
		changes.Name = &name
	}

	if input.Bio != nil {
		bio := strings.TrimSpace(*input.Bio)
		validator.MaxLen(auth.FieldBio, bio, BioMaxLength)
		changes.Bio = &bio
	}

	// An empty avatar clears the picture
	if input.Avatar != nil {
		avatar := strings.TrimSpace(*input.Avatar)
		if avatar != "" {
			validator.URL(auth.FieldAvatar, avatar).
				Match(auth.FieldAvatar, avatar, avatarRegex, "Avatar must be a valid image URL")
		}
		changes.Avatar = &avatar
	}

	if input.Social != nil {
		social := auth.Social{
			Github:    strings.TrimSpace(input.Social.Github),
			Linkedin:  strings.TrimSpace(input.Social.Linkedin),
			Facebook:  strings.TrimSpace(input.Social.Facebook),
			Instagram: strings.TrimSpace(input.Social.Instagram),
		}
		for _, rule := range socialFieldRules {
			if value := rule.value(social); value != "" {
				validator.Match(auth.FieldSocial+"."+rule.field, value, rule.pattern, rule.message)
			}
		}
		changes.Social = &social
	}

	if input.Studies != nil {
		changes.Studies = make([]auth.Study, 0, len(input.Studies))
		for i, entry := range input.Studies {
			study, nested := entry.toStudy()
			validator.Prefixed(fmt.Sprintf("%s[%d].", auth.FieldStudies, i), nested)
			changes.Studies = append(changes.Studies, study)
		}
	}

	if err := validator.Err(); err != nil {
		return ProfileChanges{}, err
	}
	return changes, nil
}

// toStudy converts one entry, collecting its failures in a dedicated validator.
func (entry StudyInput) toStudy() (auth.Study, *validate.Validator) {
	validator := &validate.Validator{}
	study := auth.Study{
		Institution: strings.TrimSpace(entry.Institution),
		Degree:      strings.TrimSpace(entry.Degree),
		Description: strings.TrimSpace(entry.Description),
	}

	validator.Required("institution", study.Institution).
		MaxLen("institution", study.Institution, StudyFieldMaxLength).
		Required("degree", study.Degree).
		MaxLen("degree", study.Degree, StudyFieldMaxLength).
		MaxLen("description", study.Description, StudyDescriptionMax)

	start, err := validate.ParseDate(entry.StartDate)
	if err != nil {
		validator.Custom("startDate", true, "Start date must be a valid date")
	}
	study.StartDate = start

	if entry.EndDate != "" {
		end, err := validate.ParseDate(entry.EndDate)
		switch {
		case err != nil:
			validator.Custom("endDate", true, "End date must be a valid date")
		case !start.IsZero() && end.Before(start):
			validator.Custom("endDate", true, "End date cannot be before start date")
		default:
			study.EndDate = &end
		}
	}

	return study, validator
}
