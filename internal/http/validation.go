package http

import (
	"activity-signup-service/internal/service"
	"regexp"
)

// Регулярка для грубой проверки корректности email участника
var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateSignupParams проверяет параметры /activities/{activityName}/signup
// и /activities/{activityName}/unregister: имя активности из пути и email из query.
func ValidateSignupParams(activityName, email string) error {
	if activityName == "" {
		return service.ErrBadRequest("activity name is required")
	}
	if email == "" {
		return service.ErrBadRequest("email is required")
	}
	if !reEmail.MatchString(email) {
		return service.ErrBadRequest("email must be a valid email address")
	}
	return nil
}
