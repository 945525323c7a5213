package jsonrpc2

import (
	"encoding/json"
	"testing"
)

func singleResult(id, result string) *Envelope {
	return &Envelope{Single: &Message{
		ID:       json.RawMessage(id),
		Version:  Version,
		Response: &Response{Result: json.RawMessage(result)},
	}}
}

func batchMember(id, result string) Message {
	return Message{
		ID:       json.RawMessage(id),
		Version:  Version,
		Response: &Response{Result: json.RawMessage(result)},
	}
}

func TestValidateSingle(t *testing.T) {
	got, err := validateSingle(singleResult("3", `"ok"`), 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := `"ok"`; string(got) != want {
		t.Errorf("got: %q; want: %q", got, want)
	}
}

func TestValidateSingleStringID(t *testing.T) {
	_, err := validateSingle(singleResult(`"3"`, `"ok"`), 3)
	if _, ok := err.(InvalidIDError); !ok {
		t.Errorf("got: %v; want InvalidIDError", err)
	}
}

func TestValidateSingleMissingID(t *testing.T) {
	env := &Envelope{Single: &Message{
		Version:  Version,
		Response: &Response{Result: json.RawMessage(`"ok"`)},
	}}
	_, err := validateSingle(env, 0)
	if _, ok := err.(InvalidIDError); !ok {
		t.Errorf("got: %v; want InvalidIDError", err)
	}
}

func TestValidateBatchMembership(t *testing.T) {
	env := &Envelope{Batch: Batch{
		batchMember("2", `"second"`),
		batchMember("1", `"first"`),
	}}
	results, err := validateBatch(env, map[uint64]bool{1: true, 2: true})
	if err != nil {
		t.Fatal(err)
	}
	assertEqualJSON(t, results, []string{"second", "first"}, "batch results")
}

func TestValidateBatchDuplicateID(t *testing.T) {
	env := &Envelope{Batch: Batch{
		batchMember("1", `"a"`),
		batchMember("1", `"b"`),
	}}
	_, err := validateBatch(env, map[uint64]bool{1: true, 2: true})
	if _, ok := err.(InvalidIDError); !ok {
		t.Errorf("got: %v; want InvalidIDError", err)
	}
}

func TestValidateBatchUnknownID(t *testing.T) {
	env := &Envelope{Batch: Batch{
		batchMember("9", `"a"`),
	}}
	_, err := validateBatch(env, map[uint64]bool{1: true})
	if _, ok := err.(InvalidIDError); !ok {
		t.Errorf("got: %v; want InvalidIDError", err)
	}
}

func TestValidateBatchNonNumericID(t *testing.T) {
	env := &Envelope{Batch: Batch{
		batchMember(`"abc"`, `"a"`),
	}}
	_, err := validateBatch(env, map[uint64]bool{1: true})
	if _, ok := err.(InvalidIDError); !ok {
		t.Errorf("got: %v; want InvalidIDError", err)
	}
}

func TestValidateBatchMalformedMember(t *testing.T) {
	env := &Envelope{Batch: Batch{
		batchMember("1", `"a"`),
		Message{ID: json.RawMessage("2"), Version: Version},
	}}
	_, err := validateBatch(env, map[uint64]bool{1: true, 2: true})
	if _, ok := err.(ProtocolError); !ok {
		t.Errorf("got: %v; want ProtocolError", err)
	}
}

func TestValidateBatchShortResponse(t *testing.T) {
	// Fewer members than sent is accepted as-is.
	env := &Envelope{Batch: Batch{
		batchMember("1", `"a"`),
	}}
	results, err := validateBatch(env, map[uint64]bool{1: true, 2: true})
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 1, len(results); got != want {
		t.Errorf("got: %d results; want: %d", got, want)
	}
}

func TestValidateBatchSingleShape(t *testing.T) {
	_, err := validateBatch(singleResult("1", `"a"`), map[uint64]bool{1: true})
	shapeErr, ok := err.(ShapeMismatchError)
	if !ok {
		t.Fatalf("got: %v; want ShapeMismatchError", err)
	}
	if want, got := "single", shapeErr.Got; got != want {
		t.Errorf("got: %q; want: %q", got, want)
	}
}

func TestValidateBatchEmptyResponse(t *testing.T) {
	_, err := validateBatch(&Envelope{}, map[uint64]bool{1: true})
	if _, ok := err.(ShapeMismatchError); !ok {
		t.Errorf("got: %v; want ShapeMismatchError", err)
	}
}
