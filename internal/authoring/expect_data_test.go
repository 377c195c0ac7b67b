package authoring

import (
	"encoding/json"
	"testing"
)

func TestExpectDataMissingField(t *testing.T) {
	handler := ExpectData([]string{"column"}, func(player *Player, data map[string]json.RawMessage) (interface{}, error) {
		return "ok", nil
	})

	_, err := handler(nil, json.RawMessage(`{}`))
	gameErr, ok := err.(*GameError)
	if !ok || gameErr.Code != -50102 {
		t.Fatalf("expected IncorrectActionData for missing field, got %v", err)
	}
}

func TestExpectDataUnexpectedField(t *testing.T) {
	handler := ExpectData([]string{"column"}, func(player *Player, data map[string]json.RawMessage) (interface{}, error) {
		return "ok", nil
	})

	_, err := handler(nil, json.RawMessage(`{"column": 3, "extra": true}`))
	if _, ok := err.(*GameError); !ok {
		t.Fatalf("expected IncorrectActionData for unexpected field, got %v", err)
	}
}

func TestExpectDataOK(t *testing.T) {
	handler := ExpectData([]string{"column"}, func(player *Player, data map[string]json.RawMessage) (interface{}, error) {
		var column int
		if err := json.Unmarshal(data["column"], &column); err != nil {
			return nil, err
		}
		return column, nil
	})

	result, err := handler(nil, json.RawMessage(`{"column": 3}`))
	if err != nil || result != 3 {
		t.Fatalf("unexpected result: %v %v", result, err)
	}
}

func TestExpectDataEmptyFieldsAllowsNoData(t *testing.T) {
	handler := ExpectData(nil, func(player *Player, data map[string]json.RawMessage) (interface{}, error) {
		return "ok", nil
	})

	result, err := handler(nil, nil)
	if err != nil || result != "ok" {
		t.Fatalf("unexpected result: %v %v", result, err)
	}
}
