package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/pkg/response"
	"github.com/linskybing/project-review/pkg/utils"
)

func statusForKind(kind string) int {
	switch kind {
	case "NotFound":
		return http.StatusNotFound
	case "Forbidden":
		return http.StatusForbidden
	case "Conflict":
		return http.StatusConflict
	case "Unprocessable":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a service error to its HTTP status. Internal details are
// kept in the gin error list for the request log and not sent to the client.
func writeError(c *gin.Context, err error) {
	kind := application.Kind(err)
	msg := err.Error()
	if kind == "Internal" {
		_ = c.Error(err)
		msg = "internal error"
	}
	c.JSON(statusForKind(kind), response.ErrorResponse{Error: msg, Kind: kind})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: validationMessage(err), Kind: "Unprocessable"})
}

// validationMessage turns validator errors into one readable line.
func validationMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeMessage(typeErr)
	}
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "uuid":
			msgs = append(msgs, fmt.Sprintf("%s must be a uuid", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

var dateType = reflect.TypeOf(project.Date{})

func typeMessage(err *json.UnmarshalTypeError) string {
	field := err.Field
	if field == "" {
		field = "value"
	}
	if err.Type == dateType {
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", field)
	}
	return fmt.Sprintf("%s must be of type %s", field, err.Type)
}

func callerFromContext(c *gin.Context) (application.Caller, bool) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized: " + err.Error()})
		return application.Caller{}, false
	}
	return application.Caller{UserID: claims.UserID, Role: claims.Role}, true
}

func projectUUID(c *gin.Context) (string, bool) {
	id, err := utils.ParseUUIDParam(c, "uuid")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project uuid"})
		return "", false
	}
	return id, true
}
