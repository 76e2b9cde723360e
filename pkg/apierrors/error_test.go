package apierrors_test

import (
	"net/http"
	"os"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/Timomoulin/Todo0/pkg/apierrors"
	"github.com/Timomoulin/Todo0/pkg/translator"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.French)
	messages := map[language.Tag][]*i18n.Message{
		language.English: {
			{ID: apierrors.MsgNotFound, Other: "Page not found"},
			{ID: apierrors.MsgNotFoundDetail, Other: "Nothing here."},
			{ID: apierrors.MsgTodoNotFound, Other: "Todo not found"},
		},
		language.French: {
			{ID: apierrors.MsgNotFound, Other: "Page introuvable"},
			{ID: apierrors.MsgNotFoundDetail, Other: "Rien ici."},
			{ID: apierrors.MsgInternalError, Other: "Erreur interne"},
		},
	}
	for tag, list := range messages {
		if err := translator.Translator.AddMessages(tag, list...); err != nil {
			os.Exit(1)
		}
	}
	os.Exit(m.Run())
}

func TestCreateError_TranslatesMessage(t *testing.T) {
	err := apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, "en")

	assert.Equal(t, http.StatusNotFound, err.ErrDetails.Code)
	assert.Equal(t, "Todo not found", err.ErrDetails.Message)
	assert.Equal(t, "Code: 404, Message: Todo not found", err.Error())
}

func TestGetTransErrorMsg(t *testing.T) {
	assert.Equal(t, "Page not found", apierrors.GetTransErrorMsg(apierrors.MsgNotFound, "en"))
	assert.Equal(t, "Page introuvable", apierrors.GetTransErrorMsg(apierrors.MsgNotFound, "fr"))
	// English falls back to the French bundle, then to the id.
	assert.Equal(t, "Erreur interne", apierrors.GetTransErrorMsg(apierrors.MsgInternalError, "en"))
	assert.Equal(t, "unknown_key", apierrors.GetTransErrorMsg("unknown_key", "en"))
}

func TestNewPage(t *testing.T) {
	page := apierrors.NewPage(http.StatusNotFound, apierrors.MsgTodoNotFound, "en")

	assert.Equal(t, http.StatusNotFound, page.Status)
	assert.Equal(t, apierrors.MsgNotFound, page.TitleKey)
	assert.Equal(t, "Todo not found", page.Error.ErrDetails.Message)
	assert.Equal(t, "Nothing here.", page.Detail)
}

func TestNewPage_DefaultsMessageToTitle(t *testing.T) {
	page := apierrors.NewPage(http.StatusNotFound, "", "fr")

	assert.Equal(t, "Page introuvable", page.Error.ErrDetails.Message)
}

func TestNewPage_UnknownStatusIsInternalError(t *testing.T) {
	page := apierrors.NewPage(http.StatusTeapot, "", "fr")

	assert.Equal(t, http.StatusInternalServerError, page.Status)
	assert.Equal(t, apierrors.MsgInternalError, page.TitleKey)
	assert.Equal(t, "Erreur interne", page.Error.ErrDetails.Message)
}
