// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const msgWelcome = "Welcome to the <b>Animal Quiz</b>!\n\n" +
	"Look at each picture, pick the animal you see and press <b>Submit Answers</b> when you are done."

const msgHelp = "/quiz - show the current quiz\n" +
	"/new - start a new quiz\n" +
	"/help - show this help"

const (
	msgQuestion        = "%d. What animal is this?"
	msgControls        = "Answer all questions, then submit."
	msgIncompleteHint  = "Please answer all questions before submitting!\n\nIt looks like you haven't answered %s yet."
	msgScore           = "You got <b>%d</b> out of <b>%d</b> correct!\n\nWould you like to retry the current quiz or start a new quiz?"
	msgSelected        = "Selected: %s"
	msgRetry           = "Quiz reopened. Change your answers and submit again."
	msgAlreadyDone     = "This quiz is already submitted. Retry it or start a new one."
	msgStaleQuiz       = "This quiz is no longer active. Use /quiz to see the current one."
	msgQuizUnavailable = "Could not create a quiz, please try again later."
	msgInternalError   = "Something went wrong. Please try again later."
	msgUnknownCommand  = "Unknown command.\n\n" + msgHelp
)

const (
	btnSubmit  = "Submit Answers"
	btnReset   = "Reset Quiz"
	btnRetry   = "Retry Quiz"
	btnNewQuiz = "New Quiz"
	markPicked = "✅ "
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func questionCaption(index int) string {
	return fmt.Sprintf(msgQuestion, index+1)
}

// maxListedQuestions keeps incompleteText within the 200 character limit of callback alerts.
const maxListedQuestions = 10

// incompleteText lists unanswered questions with 1-based numbers.
func incompleteText(unanswered []int) string {
	listed := unanswered
	if len(listed) > maxListedQuestions {
		listed = listed[:maxListedQuestions]
	}

	nums := make([]string, 0, len(listed))
	for _, i := range listed {
		nums = append(nums, strconv.Itoa(i+1))
	}

	noun := "question "
	if len(unanswered) > 1 {
		noun = "questions "
	}

	list := noun + strings.Join(nums, ", ")
	if rest := len(unanswered) - len(listed); rest > 0 {
		list += fmt.Sprintf(" and %d more", rest)
	}

	return fmt.Sprintf(msgIncompleteHint, list)
}

func scoreText(correct, total int) string {
	return fmt.Sprintf(msgScore, correct, total)
}
