package apierrors

import (
	"fmt"
	"net/http"

	"github.com/Timomoulin/Todo0/pkg/translator"
)

// JsonErr is the error payload of the JSON endpoints and of the error pages.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError builds a JsonErr whose message is msgKey translated to lang.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// GetTransErrorMsg falls back to msgKey when no translation exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(lang, msgKey, nil)
}

type statusMessages struct {
	title  string
	detail string
}

var pageMessages = map[int]statusMessages{
	http.StatusBadRequest:          {title: MsgBadRequest, detail: MsgBadRequestDetail},
	http.StatusForbidden:           {title: MsgForbidden, detail: MsgForbiddenDetail},
	http.StatusNotFound:            {title: MsgNotFound, detail: MsgNotFoundDetail},
	http.StatusInternalServerError: {title: MsgInternalError, detail: MsgInternalErrorDetail},
}

// Page describes a rendered error page. TitleKey is left untranslated for
// the layout; Error and Detail are already in the requested language.
type Page struct {
	Status   int
	TitleKey string
	Error    JsonErr
	Detail   string
}

// NewPage builds the error page for status. msgKey names the specific
// problem; unknown statuses are rendered as internal errors.
func NewPage(status int, msgKey string, lang string) Page {
	messages, ok := pageMessages[status]
	if !ok {
		status = http.StatusInternalServerError
		messages = pageMessages[status]
	}
	if msgKey == "" {
		msgKey = messages.title
	}

	return Page{
		Status:   status,
		TitleKey: messages.title,
		Error:    CreateError(status, msgKey, lang),
		Detail:   GetTransErrorMsg(messages.detail, lang),
	}
}
