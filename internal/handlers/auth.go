package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/render"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/session"
)

// Users is the account lookup the login form needs.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
}

// Sessions creates and destroys login sessions. *session.Store satisfies it.
type Sessions interface {
	Create(ctx context.Context, w http.ResponseWriter, data *session.Data) (string, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Auth groups the login and logout handlers.
type Auth struct {
	renderer *render.Renderer
	sessions Sessions
	users    Users
}

// NewAuth creates the Auth handler group.
func NewAuth(renderer *render.Renderer, sessions Sessions, users Users) *Auth {
	return &Auth{renderer: renderer, sessions: sessions, users: users}
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return next
}

func (a *Auth) loginForm(w http.ResponseWriter, r *http.Request, code int, email, next, msg string) {
	a.renderer.Status(w, r, code, "login", &render.PageData{
		Title: "Giriş Yap",
		Data:  map[string]any{"Error": msg, "Email": email, "Next": next},
	})
}

// LoginPage renders GET /giris. Signed-in users go straight to next.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	a.loginForm(w, r, http.StatusOK, "", next, "")
}

// LoginSubmit handles POST /giris.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")
	next := safeNext(r.FormValue("next"))

	if email == "" || password == "" {
		a.loginForm(w, r, http.StatusBadRequest, email, next, "E-posta ve şifre gerekli.")
		return
	}

	user, err := a.users.FindByEmail(r.Context(), email)
	if err != nil {
		slog.ErrorContext(r.Context(), "login lookup failed", "error", err)
		a.loginForm(w, r, http.StatusInternalServerError, email, next, "Beklenmeyen bir hata oluştu.")
		return
	}
	if user == nil || !a.users.CheckPassword(user, password) {
		a.loginForm(w, r, http.StatusUnauthorized, email, next, "E-posta veya şifre hatalı.")
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.Name(),
		Role:        string(user.Role),
		CreatedAt:   time.Now(),
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "session create failed", "error", err)
		a.loginForm(w, r, http.StatusInternalServerError, email, next, "Beklenmeyen bir hata oluştu.")
		return
	}
	slog.InfoContext(r.Context(), "user signed in", "user_id", user.ID)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout handles POST /cikis.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.WarnContext(r.Context(), "session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// buyer returns the signed-in user's identity from the session.
func buyer(r *http.Request) (uuid.UUID, string, string, bool) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return uuid.Nil, "", "", false
	}
	return sess.UserID, sess.Email, sess.DisplayName, true
}
