package i18n

import "net/http"

// LangCookieName is the cookie holding an explicit language choice.
const LangCookieName = "lang"

// Middleware detects the request language and stores it in the context.
// Priority: "lang" cookie, then Accept-Language, then DefaultLang.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithLang(r.Context(), detectLanguage(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func detectLanguage(r *http.Request) string {
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		switch cookie.Value {
		case "en", "es":
			return cookie.Value
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return MatchLanguage(accept)
	}
	return DefaultLang
}
