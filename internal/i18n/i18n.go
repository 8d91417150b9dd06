// Package i18n provides the translation catalogs used for every user-facing
// label in request tables. Catalogs are nested YAML documents whose top-level
// keys are namespaces, addressed as "namespace:path.to.key". Values may
// reference parameters as {{name}}.
package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is used when no catalog matches the requested language.
const DefaultLang = "en"

var (
	// SupportedLanguages lists the languages with a catalog in LocaleFS.
	SupportedLanguages = []language.Tag{
		language.English,
		language.Spanish,
	}

	matcher = language.NewMatcher(SupportedLanguages)
)

// Translator resolves translation keys for a single language.
type Translator interface {
	T(key string, params map[string]string) string
	Lang() string
}

// Bundle stores flattened catalogs for all loaded languages.
type Bundle struct {
	mu       sync.RWMutex
	catalogs map[string]map[string]string // lang -> key -> message
	log      *slog.Logger
}

// NewBundle creates an empty Bundle.
func NewBundle(log *slog.Logger) *Bundle {
	return &Bundle{
		catalogs: make(map[string]map[string]string),
		log:      log,
	}
}

// LoadMessages parses a YAML catalog and registers it under lang,
// replacing any catalog previously loaded for that language.
func (b *Bundle) LoadMessages(lang string, data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("i18n: parse catalog %s: %w", lang, err)
	}

	messages := make(map[string]string)
	for ns, v := range doc {
		if err := flatten(messages, ns+":", v); err != nil {
			return fmt.Errorf("i18n: catalog %s: %w", lang, err)
		}
	}

	b.mu.Lock()
	b.catalogs[lang] = messages
	b.mu.Unlock()

	if b.log != nil {
		b.log.Debug("i18n catalog loaded",
			slog.String("lang", lang),
			slog.Int("keys", len(messages)),
		)
	}
	return nil
}

func flatten(out map[string]string, prefix string, v any) error {
	switch node := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := prefix + k
			if !strings.HasSuffix(prefix, ":") {
				p = prefix + "." + k
			}
			if err := flatten(out, p, node[k]); err != nil {
				return err
			}
		}
	case string:
		out[prefix] = node
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(node)
	}
	return nil
}

// Languages returns the loaded language codes in sorted order.
func (b *Bundle) Languages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]string, 0, len(b.catalogs))
	for l := range b.catalogs {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Translate resolves key for lang, falling back to English and then to the key itself.
func (b *Bundle) Translate(lang, key string, params map[string]string) string {
	b.mu.RLock()
	msg, ok := b.catalogs[lang][key]
	if !ok && lang != DefaultLang {
		msg, ok = b.catalogs[DefaultLang][key]
	}
	b.mu.RUnlock()

	if !ok {
		return key
	}
	return interpolate(msg, params)
}

// For returns a Translator bound to lang.
func (b *Bundle) For(lang string) Translator {
	return &Localizer{bundle: b, lang: lang}
}

// Localizer is a Bundle bound to one language.
type Localizer struct {
	bundle *Bundle
	lang   string
}

func (l *Localizer) T(key string, params map[string]string) string {
	return l.bundle.Translate(l.lang, key, params)
}

func (l *Localizer) Lang() string { return l.lang }

// interpolate replaces {{name}} placeholders. Unknown placeholders are left as-is.
func interpolate(msg string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(msg, "{{") {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

type contextKey string

const langKey contextKey = "i18n_lang"

// WithLang stores the request language in the context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey, lang)
}

// LangFromContext returns the request language, DefaultLang if absent.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// MatchLanguage picks the best supported language for an Accept-Language header.
func MatchLanguage(acceptLanguage string) string {
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == "es" {
		return "es"
	}
	return DefaultLang
}
