// Package service содержит бизнес-логику записи участников на активности.
package service

import (
	"context"
	"errors"
	"fmt"

	"activity-signup-service/internal/model"
	"activity-signup-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ActivityRepository описывает контракт репозитория активностей для бизнес-слоя.
type ActivityRepository interface {
	ListActivities(ctx context.Context) (model.ActivityList, error)
	GetActivityForUpdate(ctx context.Context, name string) (int64, model.Activity, error)
	AddParticipant(ctx context.Context, activityID int64, email string) error
	RemoveParticipant(ctx context.Context, activityID int64, email string) error
}

// ActivityService инкапсулирует бизнес-логику каталога активностей:
// выдачу списка, запись участников с проверкой вместимости и дублей,
// снятие участников с активности.
type ActivityService struct {
	repo      ActivityRepository
	txManager TransactionManager
}

// NewActivityService создаёт новый сервис для операций над активностями.
func NewActivityService(repo ActivityRepository, txManager TransactionManager) *ActivityService {
	return &ActivityService{
		repo:      repo,
		txManager: txManager,
	}
}

// ListActivities возвращает каталог активностей в порядке создания.
func (s *ActivityService) ListActivities(ctx context.Context) (model.ActivityList, error) {
	list, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list activities",
			Status:  500,
			Err:     err,
		}
	}
	return list, nil
}

// Signup записывает участника на активность и возвращает сообщение для клиента.
// Проверка вместимости и вставка записи выполняются в одной транзакции
// с блокировкой строки активности, чтобы исключить гонку за последнее место.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" || email == "" {
		return "", ErrBadRequest("activity name and email are required")
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		activityID, act, errTx := s.repo.GetActivityForUpdate(ctx, activityName)
		if errTx != nil {
			return errTx
		}
		if len(act.Participants) >= act.MaxParticipants {
			return ErrDomain("ACTIVITY_FULL", "Activity is full")
		}
		return s.repo.AddParticipant(ctx, activityID, email)
	})
	if err != nil {
		return "", s.mapSignupError(err)
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister снимает участника с активности и возвращает сообщение для клиента.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if activityName == "" || email == "" {
		return "", ErrBadRequest("activity name and email are required")
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		activityID, _, errTx := s.repo.GetActivityForUpdate(ctx, activityName)
		if errTx != nil {
			return errTx
		}
		return s.repo.RemoveParticipant(ctx, activityID, email)
	})
	if err != nil {
		return "", s.mapSignupError(err)
	}

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// mapSignupError переводит ошибки репозитория в AppError с подходящим статусом.
// Уже готовые AppError (например, ACTIVITY_FULL) проходят без изменений.
func (s *ActivityService) mapSignupError(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return ErrNotFound("Activity not found")
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return ErrDomain("ALREADY_SIGNED_UP", "Student already signed up for this activity")
	case errors.Is(err, repository.ErrNotSignedUp):
		return ErrDomain("NOT_SIGNED_UP", "Student is not registered for this activity")
	}

	return &AppError{
		Code:    "INTERNAL",
		Message: "failed to update signups",
		Status:  500,
		Err:     err,
	}
}
