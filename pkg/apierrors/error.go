package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/SNcodeur2001/projet-final-todo/pkg/translator"
)

// ErrorResponse is the failure envelope returned by every route.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface for ErrorResponse.
func (e ErrorResponse) Error() string {
	return fmt.Sprintf("Status: %s, Message: %s", e.Status, e.Message)
}

// CreateError generates an ErrorResponse with a translated message.
func CreateError(msgKey string, lang string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "fr")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
