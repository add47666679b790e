package middleware

import (
	"greenify/internal/i18n"
	"net/http"
)

// Language resolves the response language and remembers an explicit ?lang choice in a cookie.
func Language(resolver *i18n.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, persist := resolver.Resolve(r)
			if persist {
				i18n.SetLanguageCookie(w, lang)
			}
			w.Header().Set("Content-Language", string(lang))
			next.ServeHTTP(w, r.WithContext(i18n.WithLang(r.Context(), lang)))
		})
	}
}
