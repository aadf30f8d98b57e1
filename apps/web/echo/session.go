package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartschool/connect/core/session"
)

var contextSessionKey = "session"

// cookieStore is the session.Store of a single request: the role flag lives in
// a signed cookie on the browser. A cookie that cannot be verified reads as absent.
type cookieStore struct {
	ctx    echo.Context
	codec  *session.Codec
	maxAge time.Duration
	secure bool
}

var _ session.Store = (*cookieStore)(nil)

func (s *Server) sessionStore(ctx echo.Context) session.Store {
	return &cookieStore{
		ctx:    ctx,
		codec:  s.codec,
		maxAge: s.deps.Conf.Server.CookieMaxAge,
		secure: s.deps.Conf.Server.SecureCookies,
	}
}

// contextSession returns the session of the request, read once per request.
func (s *Server) contextSession(ctx echo.Context) session.Session {
	return session.Load(s.sessionStore(ctx))
}

func (st *cookieStore) Set(role session.Role) error {
	token, err := st.codec.Encode(role)
	if err != nil {
		return err
	}
	st.ctx.SetCookie(st.cookie(token, int(st.maxAge.Seconds())))
	st.ctx.Set(contextSessionKey, session.Session{Role: role})
	return nil
}

func (st *cookieStore) Get() (session.Role, bool) {
	if sess, ok := st.ctx.Get(contextSessionKey).(session.Session); ok {
		return sess.Role, sess.Present()
	}

	var sess session.Session
	if c, err := st.ctx.Cookie(session.StorageKey); err == nil && c.Value != "" {
		if role, err := st.codec.Decode(c.Value); err == nil {
			sess.Role = role
		}
	}
	st.ctx.Set(contextSessionKey, sess)
	return sess.Role, sess.Present()
}

func (st *cookieStore) Clear() error {
	st.ctx.SetCookie(st.cookie("", -1))
	st.ctx.Set(contextSessionKey, session.Session{})
	return nil
}

func (st *cookieStore) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.StorageKey,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   st.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
