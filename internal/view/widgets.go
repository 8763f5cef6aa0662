package view

// Виджеты страницы записи. View получает их снаружи (dependency injection),
// чтобы слой можно было тестировать без реального UI.

// ListView отображает карточки активностей или текст ошибки загрузки.
type ListView interface {
	ShowCards(cards []Card)
	ShowError(text string)
}

// SelectView хранит варианты выбора активности.
// SetOptions полностью заменяет набор вариантов: повторные вызовы
// идемпотентны и не накапливают дубликаты.
type SelectView interface {
	SetOptions(options []string)
}

// MessageView показывает пользователю текст результата операции.
type MessageView interface {
	ShowSuccess(text string)
	ShowError(text string)
}

// FormView — форма записи: введённый email и выбранная активность.
type FormView interface {
	Values() (email, activity string)
	Reset()
}

// Widgets объединяет элементы страницы, которыми управляет View.
type Widgets struct {
	List    ListView
	Select  SelectView
	Message MessageView
	Form    FormView
}
