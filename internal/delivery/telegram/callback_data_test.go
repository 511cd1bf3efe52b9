package telegram

import (
	"errors"
	"testing"
)

func TestAnswerCallbackRoundTrip(t *testing.T) {
	data := buildAnswerCallback("3f1c9d2e-8a7b-4c6d-9e0f-112233445566", 2, 1)

	if len(data) > 64 {
		t.Fatalf("callback data exceeds telegram limit: %d bytes", len(data))
	}

	cd := decodeCallback(data)
	if cd.Action != actionAnswer {
		t.Errorf("expected answer action, got %q", cd.Action)
	}

	sid, err := cd.sessionID()
	if err != nil || sid != "3f1c9d2e-8a7b-4c6d-9e0f-112233445566" {
		t.Errorf("unexpected session id %q, %v", sid, err)
	}

	q, opt, err := cd.answerParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != 2 || opt != 1 {
		t.Errorf("expected question 2 option 1, got %d %d", q, opt)
	}
}

func TestDecodeCallback_Malformed(t *testing.T) {
	tests := []string{"", "a", "a:sid", "a:sid:x:1", "a:sid:1:y", "a:sid:1:2:3"}

	for _, raw := range tests {
		cd := decodeCallback(raw)
		if _, _, err := cd.answerParams(); !errors.Is(err, errMalformedCallback) {
			t.Errorf("%q: expected malformed error, got %v", raw, err)
		}
	}

	if _, err := decodeCallback("s").sessionID(); !errors.Is(err, errMalformedCallback) {
		t.Errorf("expected malformed error for missing session, got %v", err)
	}
}

func TestIncompleteText(t *testing.T) {
	if got := incompleteText([]int{1}); got != "Please answer all questions before submitting!\n\nIt looks like you haven't answered question 2 yet." {
		t.Errorf("unexpected text: %q", got)
	}
	if got := incompleteText([]int{0, 2}); got != "Please answer all questions before submitting!\n\nIt looks like you haven't answered questions 1, 3 yet." {
		t.Errorf("unexpected text: %q", got)
	}
}
