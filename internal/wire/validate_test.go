package wire

import "testing"

func knownOps(op string) bool {
	return op == "list-games"
}

func TestValidateEnvelopeParseError(t *testing.T) {
	_, resp := ValidateEnvelope([]byte("not json"), knownOps)
	if resp == nil || resp.Error == nil || resp.Error.Code != ParseError {
		t.Fatalf("expected ParseError, got %+v", resp)
	}
	if resp.ID != nil {
		t.Fatalf("expected nil id on parse error, got %v", resp.ID)
	}
}

func TestValidateEnvelopeMissingType(t *testing.T) {
	_, resp := ValidateEnvelope([]byte(`{"id": "1"}`), knownOps)
	if resp == nil || resp.Error.Code != IncorrectRequest {
		t.Fatalf("expected IncorrectRequest, got %+v", resp)
	}
}

func TestValidateEnvelopeWrongType(t *testing.T) {
	_, resp := ValidateEnvelope([]byte(`{"type":"response","id":"1"}`), knownOps)
	if resp == nil || resp.Error.Code != IncorrectRequest {
		t.Fatalf("expected IncorrectRequest, got %+v", resp)
	}
}

func TestValidateEnvelopeMissingID(t *testing.T) {
	_, resp := ValidateEnvelope([]byte(`{"type":"request","operation":"list-games"}`), knownOps)
	if resp == nil || resp.Error.Code != IncorrectRequest {
		t.Fatalf("expected IncorrectRequest, got %+v", resp)
	}
}

func TestValidateEnvelopeNullID(t *testing.T) {
	_, resp := ValidateEnvelope([]byte(`{"type":"request","id":null,"operation":"list-games"}`), knownOps)
	if resp == nil || resp.Error.Code != IncorrectRequest {
		t.Fatalf("expected IncorrectRequest for a null id, got %+v", resp)
	}
	if resp.ID != nil {
		t.Fatalf("expected nil id echoed back, got %v", resp.ID)
	}
}

func TestValidateEnvelopeMissingOperation(t *testing.T) {
	_, resp := ValidateEnvelope([]byte(`{"type":"request","id":"1"}`), knownOps)
	if resp == nil || resp.Error.Code != IncorrectRequest || resp.ID != "1" {
		t.Fatalf("expected IncorrectRequest with id echoed, got %+v", resp)
	}
}

func TestValidateEnvelopeUnknownOperation(t *testing.T) {
	_, resp := ValidateEnvelope([]byte(`{"type":"request","id":"1","operation":"bogus"}`), knownOps)
	if resp == nil || resp.Error.Code != NoSuchOperation {
		t.Fatalf("expected NoSuchOperation, got %+v", resp)
	}
}

func TestValidateEnvelopeValid(t *testing.T) {
	req, resp := ValidateEnvelope([]byte(`{"type":"request","id":"1","operation":"list-games"}`), knownOps)
	if resp != nil {
		t.Fatalf("expected no error response, got %+v", resp)
	}
	if req.ID != "1" || req.Operation != "list-games" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestRequireParamsMissing(t *testing.T) {
	req := &Request{ID: "1", Params: []byte(`{"game":"connectm"}`)}
	_, resp := RequireParams(req, []string{"game", "player-name"})
	if resp == nil || resp.Error.Code != IncorrectParams {
		t.Fatalf("expected IncorrectParams, got %+v", resp)
	}
}

func TestRequireParamsOK(t *testing.T) {
	req := &Request{ID: "1", Params: []byte(`{"game":"connectm","player-name":"alice"}`)}
	params, resp := RequireParams(req, []string{"game", "player-name"})
	if resp != nil {
		t.Fatalf("unexpected error response: %+v", resp)
	}
	var name string
	if err := DecodeParam(params, "player-name", &name); err != nil || name != "alice" {
		t.Fatalf("unexpected player-name decode: %v %q", err, name)
	}
}
