package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey carries the negotiated locale through the request context.
var LocaleKey = localeContextKey{}

var supportedLocales = language.NewMatcher([]language.Tag{
	language.English, // default
	language.French,
	language.Swahili,
	language.Portuguese,
})

// Locale negotiates the response locale from the X-Locale header, falling
// back to Accept-Language, and stores it in the request context.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, _ := language.MatchStrings(supportedLocales, r.Header.Get("X-Locale"), r.Header.Get("Accept-Language"))
		base, _ := tag.Base()
		ctx := context.WithValue(r.Context(), LocaleKey, base.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext returns the negotiated locale, defaulting to English.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "en"
}
