package i18n

import (
	"embed"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"gaasbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var fallbackTag = language.MustParse("zh-TW")

var _ output.Translator = (*Translator)(nil)

// Translator renders bot messages in the locale Discord reports for the user.
type Translator struct {
	bundle     *i18n.Bundle
	defaultTag language.Tag
	logger     *slog.Logger

	mu         sync.Mutex
	localizers map[string]*i18n.Localizer
}

// NewTranslator loads every embedded active.*.toml file. Messages missing in
// the requested locale come from defaultLocale, or zh-TW when defaultLocale
// does not parse.
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		logger.Warn("i18n: invalid default locale", "locale", defaultLocale, "fallback", fallbackTag.String())
		tag = fallbackTag
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: failed to load locale file", "file", file, "err", err)
		}
	}

	return &Translator{
		bundle:     bundle,
		defaultTag: tag,
		logger:     logger,
		localizers: make(map[string]*i18n.Localizer),
	}
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.localizers[locale]; ok {
		return l
	}
	l := i18n.NewLocalizer(t.bundle, locale, t.defaultTag.String())
	t.localizers[locale] = l
	return l
}

// T returns key unchanged when no locale has a message for it.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n: message not found", "key", key, "locale", locale, "err", err)
		return key
	}
	return msg
}
