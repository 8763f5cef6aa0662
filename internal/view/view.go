// Package view реализует слой отображения страницы записи на активности:
// загрузку каталога, отрисовку карточек, наполнение списка выбора
// и обработку отправки формы записи.
package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"activity-signup-service/internal/client"
	"activity-signup-service/internal/model"
)

// Тексты сообщений пользователю.
const (
	loadErrorText      = "Failed to load activities. Please try again later."
	selectRequiredText = "Please select an activity"
	signupSuccessText  = "Signed up successfully."
	signupFailedText   = "Sign up failed"
	networkErrorText   = "An error occurred. Please try again."
)

// ActivityAPI описывает контракт клиента API для View (мокается в тестах).
type ActivityAPI interface {
	FetchActivities(ctx context.Context) (model.ActivityList, error)
	Signup(ctx context.Context, activityName, email string) (string, error)
}

// View управляет виджетами страницы записи. Повторные вызовы LoadActivities
// полностью заменяют отрисованное содержимое; HandleSubmit пропускает
// не более одной записи в полёте.
type View struct {
	api     ActivityAPI
	widgets Widgets
	log     *slog.Logger

	// гейт отправки: повторный сабмит при запросе в полёте игнорируется
	submitMu sync.Mutex
}

// NewView создаёт View поверх клиента API и переданных виджетов.
func NewView(api ActivityAPI, widgets Widgets, log *slog.Logger) *View {
	return &View{
		api:     api,
		widgets: widgets,
		log:     log,
	}
}

// LoadActivities запрашивает каталог и перерисовывает список и варианты выбора.
// При ошибке загрузки список показывает фиксированный текст ошибки,
// а варианты выбора и область сообщений не трогаются.
func (v *View) LoadActivities(ctx context.Context) {
	list, err := v.api.FetchActivities(ctx)
	if err != nil {
		v.log.Error("load activities", slog.Any("err", err))
		v.widgets.List.ShowError(loadErrorText)
		return
	}

	v.widgets.List.ShowCards(Cards(list))
	v.widgets.Select.SetOptions(Options(list))
}

// HandleSubmit обрабатывает отправку формы записи:
// валидация выбора, запрос к API, сообщение о результате
// и перезагрузка каталога при успехе.
func (v *View) HandleSubmit(ctx context.Context) {
	email, activity := v.widgets.Form.Values()
	if activity == "" {
		v.widgets.Message.ShowError(selectRequiredText)
		return
	}

	if !v.submitMu.TryLock() {
		// запись уже в полёте
		return
	}
	defer v.submitMu.Unlock()

	msg, err := v.api.Signup(ctx, activity, email)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Detail != "" {
				v.widgets.Message.ShowError(apiErr.Detail)
			} else {
				v.widgets.Message.ShowError(signupFailedText)
			}
			return
		}
		v.log.Error("signup", slog.String("activity", activity), slog.Any("err", err))
		v.widgets.Message.ShowError(networkErrorText)
		return
	}

	if msg == "" {
		msg = signupSuccessText
	}
	v.widgets.Message.ShowSuccess(msg)
	v.widgets.Form.Reset()
	v.LoadActivities(ctx)
}
