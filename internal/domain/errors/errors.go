package errors

import (
	"fmt"
)

type ErrOwnerNotFound struct {
	OwnerID int64
}

func (e *ErrOwnerNotFound) Error() string {
	return fmt.Sprintf("конфигурация владельца не найдена: %d", e.OwnerID)
}

func (e *ErrOwnerNotFound) Is(target error) bool {
	_, ok := target.(*ErrOwnerNotFound)
	return ok
}

type ErrBotNotFound struct {
	SessionPath string
	BotID       int64
}

func (e *ErrBotNotFound) Error() string {
	if e.SessionPath != "" {
		return "бот не найден для сессии: " + e.SessionPath
	}

	return fmt.Sprintf("бот не найден: %d", e.BotID)
}

func (e *ErrBotNotFound) Is(target error) bool {
	_, ok := target.(*ErrBotNotFound)
	return ok
}

type ErrChannelNotFound struct {
	ChannelRef string
}

func (e *ErrChannelNotFound) Error() string {
	return "канал не найден: " + e.ChannelRef
}

func (e *ErrChannelNotFound) Is(target error) bool {
	_, ok := target.(*ErrChannelNotFound)
	return ok
}

type ErrCandidateExists struct {
	ExternalUserID string
}

func (e *ErrCandidateExists) Error() string {
	return "кандидат уже существует: " + e.ExternalUserID
}

func (e *ErrCandidateExists) Is(target error) bool {
	_, ok := target.(*ErrCandidateExists)
	return ok
}

type ErrJobNotFound struct {
	JobID int64
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("задача не найдена: %d", e.JobID)
}

func (e *ErrJobNotFound) Is(target error) bool {
	_, ok := target.(*ErrJobNotFound)
	return ok
}

type ErrUnknownJobKind struct {
	Kind string
}

func (e *ErrUnknownJobKind) Error() string {
	return "неизвестный тип задачи: " + e.Kind
}

func (e *ErrUnknownJobKind) Is(target error) bool {
	_, ok := target.(*ErrUnknownJobKind)
	return ok
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}

type ErrInvalidArgument struct {
	Message string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("некорректный аргумент: %s", e.Message)
}

func (e *ErrInvalidArgument) Is(target error) bool {
	_, ok := target.(*ErrInvalidArgument)
	return ok
}

type ErrMissingRequiredField struct {
	FieldName string
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("отсутствует обязательное поле: %s", e.FieldName)
}

type ErrUnknownFilterMode struct {
	Mode string
}

func (e *ErrUnknownFilterMode) Error() string {
	return "неизвестный режим фильтрации: " + e.Mode
}

type ErrUnknownAlertTransport struct {
	Transport string
}

func (e *ErrUnknownAlertTransport) Error() string {
	return "неизвестный транспорт уведомлений: " + e.Transport
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrSQLScan struct {
	Entity string
	Cause  error
}

func (e *ErrSQLScan) Error() string {
	return fmt.Sprintf("ошибка при сканировании %s: %v", e.Entity, e.Cause)
}

func (e *ErrSQLScan) Unwrap() error {
	return e.Cause
}

type ErrCache struct {
	Operation string
	Key       string
	Cause     error
}

func (e *ErrCache) Error() string {
	return fmt.Sprintf("ошибка кэша при %s (%s): %v", e.Operation, e.Key, e.Cause)
}

func (e *ErrCache) Unwrap() error {
	return e.Cause
}

// HTTPError описывает неуспешный ответ шлюза платформы.
type HTTPError struct {
	StatusCode int
	Code       string
	RetryAfter int
}

func (e *HTTPError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("HTTP error: %d (%s)", e.StatusCode, e.Code)
	}

	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}
