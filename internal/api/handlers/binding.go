package handlers

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]{2,50}$`)

// validationMessages maps struct field + failed rule to the message the API
// contract promises for it.
var validationMessages = map[string]map[string]string{
	"Email": {
		"required": "Email is required",
		"email":    "A valid email is required",
	},
	"Password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters long",
		"max":      "Password cannot exceed 100 characters",
	},
	"Role": {
		"oneof": "Role must be one of: admin, member",
	},
	"Title": {
		"required": "Title is required",
		"min":      "Title is required",
		"max":      "Title cannot exceed 200 characters",
	},
	"Content": {
		"required": "Content is required",
		"min":      "Content is required",
		"max":      "Content cannot exceed 10000 characters",
	},
	"Tags": {
		"max": "Tags cannot exceed 10 items of 50 characters each",
	},
	"Priority": {
		"oneof": "Priority must be one of: low, medium, high",
	},
	"Category": {
		"max": "Category cannot exceed 100 characters",
	},
	"FirstName": {
		"max": "First name cannot exceed 50 characters",
	},
	"LastName": {
		"max": "Last name cannot exceed 50 characters",
	},
	"CurrentPassword": {
		"required": "Current password is required",
	},
	"NewPassword": {
		"required": "New password is required",
		"min":      "New password must be at least 6 characters long",
		"max":      "New password cannot exceed 100 characters",
	},
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	// Collection elements report as e.g. Tags[2]
	if i := strings.IndexByte(field, '['); i > 0 {
		field = field[:i]
	}
	if m, ok := validationMessages[field][fe.Tag()]; ok {
		return m
	}
	return field + " is invalid"
}

const unknownFieldPrefix = `json: unknown field `

// decodeErrorMessage maps a JSON decode failure to the message reported to
// the caller, naming the offending field when one is known.
func decodeErrorMessage(err error) string {
	if msg := err.Error(); strings.HasPrefix(msg, unknownFieldPrefix) {
		return "Unknown field: " + strings.Trim(strings.TrimPrefix(msg, unknownFieldPrefix), `"`)
	}
	return "Invalid request body"
}

// bindAndValidate decodes the JSON body into dst and validates it, writing
// the validation error envelope itself when the input is rejected. Decoding
// is strict: bodies carrying fields outside the request schema are rejected.
func bindAndValidate(c *gin.Context, v *validator.Validate, dst interface{}) bool {
	if c.Request.Body == nil {
		respondValidationErrors(c, []string{"Invalid request body"})
		return false
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondValidationErrors(c, []string{decodeErrorMessage(err)})
		return false
	}

	if err := v.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, messageFor(fe))
			}
			respondValidationErrors(c, msgs)
		} else {
			respondValidationErrors(c, []string{"Invalid request body"})
		}
		return false
	}
	return true
}

// parseIDParam parses the :id path parameter, writing the validation error
// envelope when the value is not a uuid.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondValidationErrors(c, []string{"A valid id is required"})
		return uuid.Nil, false
	}
	return id, true
}

// parseSlugParam validates the :slug path parameter against the tenant slug
// pattern.
func parseSlugParam(c *gin.Context) (string, bool) {
	slug := c.Param("slug")
	if !slugPattern.MatchString(slug) {
		respondValidationErrors(c, []string{"A valid tenant slug is required"})
		return "", false
	}
	return slug, true
}
