package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"comitefd/internal/service"
)

type contextKey string

const (
	AdminIDKey    contextKey = "adminID"
	AdminEmailKey contextKey = "adminEmail"
)

type Middleware func(http.Handler) http.Handler

// AdminFromContext reports the authenticated admin, if any.
func AdminFromContext(ctx context.Context) (string, string, bool) {
	adminID, ok1 := ctx.Value(AdminIDKey).(string)
	email, ok2 := ctx.Value(AdminEmailKey).(string)
	return adminID, email, ok1 && ok2 && adminID != ""
}

// AuthContext parses the session token when one is present and adds the
// admin to the request context. It never rejects: reads are public and
// each mutating handler checks the context itself.
func AuthContext(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			admin, err := authService.ParseToken(tokenString)
			if err != nil {
				// expired or forged token: treat as anonymous
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, admin.AdminID)
			ctx = context.WithValue(ctx, AdminEmailKey, admin.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken reads the session from the Authorization header, falling
// back to the session cookie used by the admin pages.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := r.Cookie("session")
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AdminPageGuard redirects unauthenticated requests for admin pages to
// the login page, carrying the requested path as callbackUrl. The login
// page itself stays reachable.
func AdminPageGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/admin") || r.URL.Path == "/admin/login" {
			next.ServeHTTP(w, r)
			return
		}

		if _, _, ok := AdminFromContext(r.Context()); !ok {
			login := "/admin/login?callbackUrl=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, login, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
