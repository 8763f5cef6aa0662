package view

import (
	"fmt"

	"activity-signup-service/internal/model"
)

// NoParticipantsPlaceholder показывается вместо пустого списка участников.
const NoParticipantsPlaceholder = "No participants yet"

// Card — готовые к отображению данные одной активности.
// Поля — обычный текст; экранирование (если виджет рисует разметку)
// остаётся на стороне реализации виджета.
type Card struct {
	Name        string
	Description string
	Schedule    string

	// Capacity — строка вида "<записано>/<вместимость>", без нормализации:
	// перебор участников сверх вместимости отображается как есть.
	Capacity string

	// Participants — email'ы в порядке записи; ровно один элемент-заглушка,
	// если записавшихся нет.
	Participants []string
}

// Cards — чистое преобразование каталога в карточки.
// Порядок карточек повторяет порядок каталога, сортировки нет.
func Cards(list model.ActivityList) []Card {
	cards := make([]Card, 0, len(list))
	for _, entry := range list {
		act := entry.Activity

		participants := act.Participants
		if len(participants) == 0 {
			participants = []string{NoParticipantsPlaceholder}
		}

		cards = append(cards, Card{
			Name:         entry.Name,
			Description:  act.Description,
			Schedule:     act.Schedule,
			Capacity:     fmt.Sprintf("%d/%d", len(act.Participants), act.MaxParticipants),
			Participants: participants,
		})
	}
	return cards
}

// Options возвращает имена активностей для наполнения SelectView, в порядке каталога.
func Options(list model.ActivityList) []string {
	options := make([]string, 0, len(list))
	for _, entry := range list {
		options = append(options, entry.Name)
	}
	return options
}
