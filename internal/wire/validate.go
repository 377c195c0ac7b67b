package wire

import "encoding/json"

// ValidateEnvelope decodes and validates a raw inbound message, following
// the exact check order and short-circuit behavior of the dispatcher's
// envelope validation: JSON parse, "type" present, type == "request", "id"
// present, "operation" present, operation known. Any failure returns a
// ready-to-send error Response instead of a Request.
func ValidateEnvelope(raw []byte, isKnownOperation func(string) bool) (*Request, *Response) {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, NewErrorResponse(nil, NewError(ParseError, "Incorrect JSON"))
	}

	typeRaw, ok := generic["type"]
	if !ok {
		return nil, NewErrorResponse(nil, NewError(IncorrectRequest, "Message has no 'type' member"))
	}
	var msgType string
	if err := json.Unmarshal(typeRaw, &msgType); err != nil {
		return nil, NewErrorResponse(nil, NewError(IncorrectRequest, "Message has no 'type' member"))
	}
	if msgType != "request" {
		return nil, NewErrorResponse(nil, NewError(IncorrectRequest, "Incorrect message type: "+msgType))
	}

	idRaw, ok := generic["id"]
	if !ok {
		return nil, NewErrorResponse(nil, NewError(IncorrectRequest, "No id specified"))
	}
	var id interface{}
	if err := json.Unmarshal(idRaw, &id); err != nil {
		return nil, NewErrorResponse(nil, NewError(IncorrectRequest, "No id specified"))
	}
	if id == nil {
		return nil, NewErrorResponse(nil, NewError(IncorrectRequest, "No id specified"))
	}

	opRaw, ok := generic["operation"]
	if !ok {
		return nil, NewErrorResponse(id, NewError(IncorrectRequest, "No operation specified"))
	}
	var operation string
	if err := json.Unmarshal(opRaw, &operation); err != nil {
		return nil, NewErrorResponse(id, NewError(IncorrectRequest, "No operation specified"))
	}

	if isKnownOperation != nil && !isKnownOperation(operation) {
		return nil, NewErrorResponse(id, NewError(NoSuchOperation, ""))
	}

	req := &Request{
		Type:      msgType,
		ID:        id,
		Operation: operation,
		Params:    generic["params"],
	}
	return req, nil
}

// RequireParams decodes req.Params into a map and checks that every name in
// required is present, mirroring the dispatcher's `_validate_params`. On
// success it returns the decoded param map.
func RequireParams(req *Request, required []string) (map[string]json.RawMessage, *Response) {
	var params map[string]json.RawMessage
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			params = nil
		}
	}
	if params == nil {
		params = map[string]json.RawMessage{}
	}

	for _, name := range required {
		if _, ok := params[name]; !ok {
			return nil, NewErrorResponse(req.ID, NewError(IncorrectParams, "Missing '"+name+"' parameter"))
		}
	}

	return params, nil
}

// DecodeParam unmarshals a single decoded param field into dst.
func DecodeParam(params map[string]json.RawMessage, name string, dst interface{}) error {
	raw, ok := params[name]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
