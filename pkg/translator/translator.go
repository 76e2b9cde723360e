package translator

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

//go:embed translation/*.toml
var embeddedTranslations embed.FS

type Config struct {
	// TranslationFolder overrides the embedded message files when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
	// DefaultLanguage is used when the client sends no usable Accept-Language.
	DefaultLanguage = LanguageFr
)

var matcher = language.NewMatcher([]language.Tag{language.French, language.English})

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.French)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if cfg.TranslationFolder == "" {
		loadMessageFiles(embeddedTranslations, "translation")
		return
	}

	if _, err := os.Stat(cfg.TranslationFolder); err != nil {
		zap.L().Warn("translation folder unavailable, using embedded messages", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		loadMessageFiles(embeddedTranslations, "translation")
		return
	}

	loadMessageFiles(os.DirFS(cfg.TranslationFolder), ".")
}

func loadMessageFiles(fsys fs.FS, dir string) {
	// List files in the translation folder
	lstFiles, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", dir), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		path := f.Name()
		if dir != "." {
			path = fmt.Sprintf("%s/%s", dir, f.Name())
		}

		// Load the message file into the Translator bundle
		if _, err := Translator.LoadMessageFileFS(fsys, path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Localize translates messageID, falling back to the default language and
// then to the id itself.
func Localize(lang, messageID string, data map[string]any) string {
	if Translator == nil {
		return messageID
	}

	localizer := i18n.NewLocalizer(Translator, lang, DefaultLanguage)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Debug("translation not found", zap.String("lang", lang), zap.String("message_id", messageID))
		return messageID
	}
	return msg
}

// NegotiateLanguage picks the supported language closest to an
// Accept-Language header value.
func NegotiateLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLanguage
	}
	if index == 1 {
		return LanguageEn
	}
	return LanguageFr
}
