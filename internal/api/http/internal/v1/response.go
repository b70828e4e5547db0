package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func validationErrorResponse(c *gin.Context, status int, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			ErrorCode:    6000,
			ErrorMessage: "Validation error",
		}
		response.Errors = out
		c.AbortWithStatusJSON(status, response)
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": "malformed request body"})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "uuid":
		return "Value must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum number of items is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v characters", value)
	case "refname":
		return "Name must not be blank"
	}
	return tag
}
