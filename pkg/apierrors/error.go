package apierrors

import (
	"fmt"

	"github.com/jongwon/todo-app/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the error body returned by every endpoint: {"error": "..."}.
type JsonErr struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// JsonMessage is the body of successful calls that only report an outcome.
type JsonMessage struct {
	Message string `json:"message"`
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Code: code, Message: GetTransErrorMsg(msgKey, lang)}
}

// CreateMessage generates a JsonMessage with a translated message.
func CreateMessage(msgKey string, lang string) JsonMessage {
	return JsonMessage{Message: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated message, falling back to the key.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
