package apierrors_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jongwon/todo-app/pkg/apierrors"
	"github.com/jongwon/todo-app/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	if err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	}); err != nil {
		os.Exit(1)
	}
	if err := translator.Translator.AddMessages(language.Korean, &i18n.Message{
		ID:    "test_key",
		Other: "테스트 메시지",
	}); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "Test message", err.Message)
}

func TestCreateError_SerializesAsErrorField(t *testing.T) {
	body, err := json.Marshal(apierrors.CreateError(404, "test_key", "en"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Test message"}`, string(body))
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	assert.Equal(t, "Test message", apierrors.GetTransErrorMsg("test_key", "en"))
	assert.Equal(t, "테스트 메시지", apierrors.GetTransErrorMsg("test_key", "ko"))
}

func TestGetTransErrorMsg_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Test message", apierrors.GetTransErrorMsg("test_key", "fr"))
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	assert.Equal(t, "unknown_key", apierrors.GetTransErrorMsg("unknown_key", "en"))
}

func TestCreateMessage_SerializesAsMessageField(t *testing.T) {
	body, err := json.Marshal(apierrors.CreateMessage("test_key", "en"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Test message"}`, string(body))
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}
