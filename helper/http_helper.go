package helper

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode"
	"unicode/utf8"

	"mindwrite-api/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper bundles request validation and response writing shared by all
// handlers.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		slog.Warn("could not register validator translations", "error", err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

// ValidateStruct runs the struct's validate tags and, on failure, writes the
// 400 response itself. Returns true when the request may proceed.
func (u *HTTPHelper) ValidateStruct(c *gin.Context, s interface{}) bool {
	err := u.Validate.Struct(s)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		u.SendValidationError(c, verrs)
	} else {
		u.SendBadRequest(c, err.Error())
	}
	return false
}

func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	fields := map[string][]string{}
	translations := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		key := LowerCamel(err.StructField())
		fields[key] = append(fields[key], translations[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"error": message})
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

func (u *HTTPHelper) SendConflictError(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"error": message})
}

func (u *HTTPHelper) SendInternalError(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// SendServiceError translates the service error taxonomy into status codes.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		u.SendNotFoundError(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		u.SendConflictError(c, err.Error())
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrSelfAction):
		u.SendForbiddenError(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		u.SendUnauthorizedError(c, err.Error())
	case errors.Is(err, services.ErrInvalidRole):
		u.SendBadRequest(c, err.Error())
	default:
		u.SendInternalError(c, err)
	}
}

// LowerCamel turns a struct field name like FirstName into the wire name
// firstName.
func LowerCamel(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
