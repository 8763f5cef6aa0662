package client

import (
	"encoding/json"
	"fmt"
	"io"

	"activity-signup-service/internal/model"
)

// decodeActivities разбирает JSON-объект имя → активность, сохраняя порядок
// ключей. Записи, значение которых не является объектом или в которых нет
// поля description, считаются битыми и молча пропускаются — это единственная
// проверка данных на стороне клиента.
func decodeActivities(r io.Reader) (model.ActivityList, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	list := make(model.ActivityList, 0)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		act, ok := decodeActivity(raw)
		if !ok {
			continue
		}
		list = append(list, model.NamedActivity{Name: name, Activity: act})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return list, nil
}

// decodeActivity пытается разобрать одну запись каталога.
// Возвращает ok=false для битых записей (не объект, нет description).
func decodeActivity(raw json.RawMessage) (model.Activity, bool) {
	// различаем отсутствующее поле description и пустую строку
	var probe struct {
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Description == nil {
		return model.Activity{}, false
	}

	var act model.Activity
	if err := json.Unmarshal(raw, &act); err != nil {
		return model.Activity{}, false
	}
	if act.Participants == nil {
		act.Participants = make([]string, 0)
	}
	return act, true
}
