package authoring

import "encoding/json"

// TypedHandler is an action handler whose data has already been decoded
// into a field map, exactly as required by ExpectData.
type TypedHandler func(player *Player, data map[string]json.RawMessage) (interface{}, error)

// ExpectData wraps a TypedHandler so it first decodes the raw action data
// and rejects it with ErrIncorrectActionData if any field in fields is
// missing, or if any field not in fields is present. Mirrors the
// original's @expect_data decorator.
func ExpectData(fields []string, handler TypedHandler) ActionHandler {
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}

	return func(player *Player, raw json.RawMessage) (interface{}, error) {
		var data map[string]json.RawMessage
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &data); err != nil {
				return nil, ErrIncorrectActionData("Action data must be a JSON object")
			}
		}
		if data == nil {
			data = map[string]json.RawMessage{}
		}

		for _, field := range fields {
			if _, ok := data[field]; !ok {
				return nil, ErrIncorrectActionData("Missing data field: " + field)
			}
		}
		for field := range data {
			if !allowed[field] {
				return nil, ErrIncorrectActionData("Unexpected data field: " + field)
			}
		}

		return handler(player, data)
	}
}
