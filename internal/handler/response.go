package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"food-ordering-backend/internal/apperror"
	"food-ordering-backend/internal/model"
	"food-ordering-backend/internal/model/requestresponse"
	"food-ordering-backend/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// strongpassword : те же правила, что и в security.ValidatePassword
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return security.ValidatePassword(fl.Field().String()) == nil
	})
	// имена полей в ошибках берём из json тегов
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON : разбирает тело и прогоняет validate теги.
// При ошибке сам пишет 400 и возвращает false.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := render.DecodeJSON(r.Body, target); err != nil {
		logrus.WithError(err).Debug("некорректное тело запроса")
		handleServiceError(w, r, apperror.Validation("invalid request body", nil))
		return false
	}

	if err := validate.Struct(target); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			handleServiceError(w, r, err)
			return false
		}
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fieldPath(fe)] = fe.Tag()
		}
		handleServiceError(w, r, apperror.Validation("invalid request", fields))
		return false
	}

	return true
}

// fieldPath : путь поля без имени корневой структуры, например items[0].quantity
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

// handleServiceError : переводит ошибку сервиса в HTTP ответ.
// Текст внутренних ошибок наружу не отдаётся.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperror.KindOf(err)
	status := kind.HTTPStatus()

	detail := requestresponse.ErrorDetail{Code: status, Text: "internal server error"}
	if kind != apperror.KindInternal {
		if appErr, ok := apperror.As(err); ok {
			detail.Text = appErr.Message
			detail.Fields = appErr.Fields
		}
	} else {
		logrus.WithError(err).
			WithField("request_id", middleware.GetReqID(r.Context())).
			WithField("path", r.URL.Path).
			Error("внутренняя ошибка при обработке запроса")
	}

	writeJSON(w, r, status, requestresponse.ErrorResponse{Error: detail})
}

// parseID : числовой параметр пути
func parseID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.Validation("invalid request", map[string]string{name: "id"})
	}
	return id, nil
}

// pageParams : page и pageSize из query; нормализация в сервисе
func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	return page, pageSize
}

// currentUser : пользователь, которого положил JWTMiddleware
func currentUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return nil, false
	}
	return user, true
}
