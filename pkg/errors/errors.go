package errors

import (
	"fmt"
	"sort"
	"strings"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenIsNotRefresh    = fmt.Errorf("токен не является refresh-токеном")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")

	// Контекст
	ErrEmployeeIDNotFoundInContext = fmt.Errorf("EmployeeID не найден в контексте запроса")
	ErrInvalidEmployeeID           = fmt.Errorf("недопустимый EmployeeID")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrConflict   = fmt.Errorf("запись с такими данными уже существует")
	ErrInUse      = fmt.Errorf("запись используется и не может быть удалена")

	// Ссылочные данные (статус, сотрудник, компания и т.д.)
	ErrReferenceNotFound = fmt.Errorf("справочное значение не найдено")
)

// HttpError - ошибка с заранее известным HTTP-статусом и сообщением для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) error {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// InvalidInputError - ошибка бизнес-валидации входных данных.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// StaleSelectionError - массовая операция сорвалась: часть выбранных единиц
// оборудования уже не удовлетворяет предусловию (кто-то изменил их параллельно).
// Никакие строки не изменяются.
type StaleSelectionError struct {
	MissingIDs []uint64
}

func (e *StaleSelectionError) Error() string {
	ids := make([]uint64, len(e.MissingIDs))
	copy(ids, e.MissingIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("выбор устарел: оборудование [%s] уже изменено другим пользователем, повторите выбор", strings.Join(parts, ", "))
}

func NewStaleSelectionError(missingIDs []uint64) error {
	return &StaleSelectionError{MissingIDs: missingIDs}
}
