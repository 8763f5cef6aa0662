// Package model содержит доменные структуры активностей и записей участников.
package model

import (
	"bytes"
	"encoding/json"
)

// Activity описывает активность: описание, расписание, вместимость
// и список email'ов записавшихся участников в порядке записи.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NamedActivity связывает активность с её уникальным именем.
type NamedActivity struct {
	Name     string
	Activity Activity
}

// ActivityList — упорядоченная коллекция активностей.
// Порядок элементов значим: он соответствует порядку ключей JSON-объекта
// на проводе (порядок создания активностей на сервере).
type ActivityList []NamedActivity

// MarshalJSON сериализует коллекцию как JSON-объект имя → активность,
// сохраняя порядок элементов. Сериализация через map отсортировала бы
// ключи по алфавиту и сломала бы порядок отображения.
func (l ActivityList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		activity, err := json.Marshal(entry.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(activity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
