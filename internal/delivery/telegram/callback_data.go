package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionAnswer = "a"
	actionSubmit = "s"
	actionReset  = "r"
	actionRetry  = "t"
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// sessionID returns the session the callback belongs to.
func (cd callbackData) sessionID() (string, error) {
	if len(cd.Params) == 0 || cd.Params[0] == "" {
		return "", errMalformedCallback
	}
	return cd.Params[0], nil
}

// answerParams returns the question and option indices of an answer callback.
func (cd callbackData) answerParams() (question, option int, err error) {
	if len(cd.Params) != 3 {
		return 0, 0, errMalformedCallback
	}

	question, err = strconv.Atoi(cd.Params[1])
	if err != nil {
		return 0, 0, errMalformedCallback
	}
	option, err = strconv.Atoi(cd.Params[2])
	if err != nil {
		return 0, 0, errMalformedCallback
	}

	return question, option, nil
}

// buildAnswerCallback builds callback data for picking an option of a question.
func buildAnswerCallback(sessionID string, questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{
			sessionID,
			strconv.Itoa(questionIndex),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

func buildSubmitCallback(sessionID string) string {
	return callbackData{Action: actionSubmit, Params: []string{sessionID}}.encode()
}

func buildResetCallback(sessionID string) string {
	return callbackData{Action: actionReset, Params: []string{sessionID}}.encode()
}

func buildRetryCallback(sessionID string) string {
	return callbackData{Action: actionRetry, Params: []string{sessionID}}.encode()
}
