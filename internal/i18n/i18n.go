package i18n

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported content language.
type Lang string

const (
	AZ Lang = "az"
	EN Lang = "en"
	RU Lang = "ru"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "greenify_lang"
)

var supported = []Lang{AZ, EN, RU}

// Supported returns the content languages in display order.
func Supported() []Lang {
	out := make([]Lang, len(supported))
	copy(out, supported)
	return out
}

// Parse returns the supported language for s.
func Parse(s string) (Lang, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range supported {
		if base.String() == string(l) {
			return l, true
		}
	}
	return "", false
}

// Text is a string in every supported language.
type Text struct {
	AZ string `json:"az"`
	EN string `json:"en"`
	RU string `json:"ru"`
}

// In returns the text for l, falling back to Azerbaijani.
func (t Text) In(l Lang) string {
	switch l {
	case EN:
		return t.EN
	case RU:
		return t.RU
	}
	return t.AZ
}

// Missing lists the languages with no text.
func (t Text) Missing() []Lang {
	var missing []Lang
	for _, l := range supported {
		if strings.TrimSpace(t.In(l)) == "" {
			missing = append(missing, l)
		}
	}
	return missing
}

// Check returns an error naming what is missing.
func (t Text) Check(what string) error {
	if m := t.Missing(); len(m) > 0 {
		return fmt.Errorf("%s: missing %v", what, m)
	}
	return nil
}

// Resolver picks a request language, preferring an explicit choice over the browser's.
type Resolver struct {
	fallback Lang
	langs    []Lang
	matcher  language.Matcher
}

// NewResolver creates a resolver whose default is fallback
func NewResolver(fallback Lang) *Resolver {
	// The matcher falls back to its first tag.
	langs := []Lang{fallback}
	for _, l := range supported {
		if l != fallback {
			langs = append(langs, l)
		}
	}
	tags := make([]language.Tag, len(langs))
	for i, l := range langs {
		tags[i] = language.MustParse(string(l))
	}
	return &Resolver{
		fallback: fallback,
		langs:    langs,
		matcher:  language.NewMatcher(tags),
	}
}

// Default returns the fallback language.
func (r *Resolver) Default() Lang {
	return r.fallback
}

// Resolve determines the language for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func (r *Resolver) Resolve(req *http.Request) (Lang, bool) {
	if req == nil {
		return r.fallback, false
	}

	if v := strings.TrimSpace(req.URL.Query().Get(LangParam)); v != "" {
		if l, ok := Parse(v); ok {
			return l, true
		}
	}

	if cookie, err := req.Cookie(LangCookieName); err == nil {
		if l, ok := Parse(cookie.Value); ok {
			return l, false
		}
	}

	if accept := strings.TrimSpace(req.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := r.matcher.Match(tags...)
			if conf != language.No {
				return r.langs[idx], false
			}
		}
	}

	return r.fallback, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, l Lang) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(l),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

type contextKey struct{}

// WithLang stores l on ctx.
func WithLang(ctx context.Context, l Lang) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request language, or Azerbaijani when none was set.
func FromContext(ctx context.Context) Lang {
	if l, ok := ctx.Value(contextKey{}).(Lang); ok {
		return l
	}
	return AZ
}
