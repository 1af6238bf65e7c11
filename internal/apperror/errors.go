// Package apperror описывает типизированные ошибки, которые сервисы возвращают
// наружу, а HTTP слой переводит в коды ответа.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindValidation
	KindConflict
	KindUnavailable
)

// HTTPStatus : код ответа для вида ошибки
func (k Kind) HTTPStatus() int {
	switch k {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error : ошибка с видом и безопасным для клиента сообщением
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is : две ошибки равны, если совпадают вид и сообщение.
// Так errors.Is(wrapped, ErrInvalidToken) работает и для копий с причиной.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Wrap : копия ошибки с причиной
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

func Authentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }
func Authorization(msg string) *Error  { return &Error{Kind: KindAuthorization, Message: msg} }
func NotFound(msg string) *Error       { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error       { return &Error{Kind: KindConflict, Message: msg} }
func Unavailable(msg string) *Error    { return &Error{Kind: KindUnavailable, Message: msg} }

func Validation(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// KindOf : вид ошибки; всё, что не *Error, считается внутренней ошибкой
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As : достаёт *Error из цепочки
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

var (
	ErrInvalidCredentials = Authentication("invalid credentials")
	ErrMissingToken       = Authentication("missing bearer token")
	ErrInvalidToken       = Authentication("invalid token")
	ErrTokenExpired       = Authentication("token expired")
	ErrTokenUserMismatch  = Authentication("token user mismatch")

	ErrForbidden = Authorization("forbidden")

	ErrUserNotFound         = NotFound("user not found")
	ErrOrderNotFound        = NotFound("order not found")
	ErrItemNotFound         = NotFound("item not found")
	ErrCategoryNotFound     = NotFound("category not found")
	ErrAddressNotFound      = NotFound("address not found")
	ErrNotificationNotFound = NotFound("notification not found")

	ErrEmailInUse        = Conflict("email already in use")
	ErrCategoryNameInUse = Conflict("category with this name already exists")
	ErrItemNameInUse     = Conflict("item with this name already exists")

	ErrInvalidImageKey      = Validation("invalid image key", nil)
	ErrImageNotUploaded     = Validation("image was not uploaded", nil)
	ErrUnsupportedImageType = Validation("unsupported image content type", nil)

	ErrStorageDisabled = Unavailable("image storage is not configured")
)
