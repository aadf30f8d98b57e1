package session

// Outcome is the decision of the route guard.
type Outcome int

const (
	RedirectLogin Outcome = iota
	Allow
)

func (o Outcome) String() string {
	if o == Allow {
		return "allow"
	}
	return "redirect-login"
}

// Check decides whether a view scoped to the requested role may render for sess.
// It only allows when the session holds exactly the requested role; the session
// itself is left untouched and navigation is up to the caller.
func Check(requested string, sess Session) Outcome {
	if !sess.Present() {
		return RedirectLogin
	}
	if string(sess.Role) != requested {
		return RedirectLogin
	}
	return Allow
}
