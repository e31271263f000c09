package middleware

import (
	"context"
	"net/http"
)

// headerCompanyCode заголовок, которым клиенты выбирают компанию
const headerCompanyCode = "X-Company-Code"

type companyCodeKey struct{}

// CompanyCode извлекает код компании запроса из контекста
func CompanyCode(r *http.Request) string {
	code, _ := r.Context().Value(companyCodeKey{}).(string)
	return code
}

// WithCompanyCode middleware, определяющий компанию запроса.
// Код берётся из заголовка X-Company-Code; без заголовка используется
// компания по умолчанию из конфигурации сервиса.
func WithCompanyCode(defaultCode string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.Header.Get(headerCompanyCode)
			if code == "" {
				code = defaultCode
			}

			ctx := context.WithValue(r.Context(), companyCodeKey{}, code)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
