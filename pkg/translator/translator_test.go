package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jongwon/todo-app/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"en.toml": `
projectNotFound = "Project not found"
hello = "Hello english"
`,
		"ko.toml": `
hello = "안녕하세요"
`,
		"README.md": "not a translation",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageKo},
	})

	cases := []struct {
		lang string
		want string
	}{
		{translator.LanguageEn, "Hello english"},
		{translator.LanguageKo, "안녕하세요"},
	}
	for _, tc := range cases {
		localizer := i18n.NewLocalizer(translator.Translator, tc.lang)
		msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"})
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.lang, err)
		}
		if msg != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.lang, tc.want, msg)
		}
	}
}

func TestInitTranslator_ShippedBundlesShareKeys(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageKo},
	})

	for _, id := range []string{"unauthenticated", "projectNotFound", "taskNotFound", "titleRequired", "invalidStatus"} {
		for _, lang := range []string{translator.LanguageEn, translator.LanguageKo} {
			localizer := i18n.NewLocalizer(translator.Translator, lang)
			if _, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id}); err != nil {
				t.Errorf("%s/%s: %v", lang, id, err)
			}
		}
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	if translator.Translator == nil {
		t.Fatal("expected an empty bundle")
	}
}

func TestMatchLanguage(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  t.TempDir(),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageKo},
	})

	cases := map[string]string{
		"":                          translator.LanguageEn,
		"ko-KR,ko;q=0.9,en;q=0.8":   translator.LanguageKo,
		"en-US,en;q=0.9":            translator.LanguageEn,
		"fr-FR":                     translator.LanguageEn,
		"not a header;;;":           translator.LanguageEn,
	}
	for header, want := range cases {
		if got := translator.MatchLanguage(header); got != want {
			t.Errorf("MatchLanguage(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestTranslatorConstants(t *testing.T) {
	if translator.LanguageEn != "en" {
		t.Errorf("expected LanguageEn to be 'en'")
	}
	if translator.LanguageKo != "ko" {
		t.Errorf("expected LanguageKo to be 'ko'")
	}
}
