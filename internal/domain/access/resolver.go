package access

import "github.com/crediario/crediario-api/internal/domain/user"

// State is the outcome of resolving a session against a route.
//
// Resolution walks Loading -> {Unauthenticated, Authenticated}; within
// Authenticated a route resolves to Granted or Denied. Granted, Denied and
// Unauthenticated are terminal for that resolution. While the session is
// still loading every route resolves to Loading so protected content is
// never rendered, even transiently.
type State string

const (
	StateLoading         State = "loading"
	StateUnauthenticated State = "unauthenticated"
	StateGranted         State = "granted"
	StateDenied          State = "denied"
)

// Session is the actor-resolution input: Resolved is false while the
// actor lookup is still in flight; Actor is nil when nobody is signed in.
type Session struct {
	Resolved bool
	Actor    *user.User
}

// Resolution is the terminal decision for one route render
type Resolution struct {
	State State
	// Route the caller should land on: the requested route when granted,
	// the login route when unauthenticated, empty otherwise.
	Route Route
}

// Resolve decides whether the session may render the given route.
func Resolve(sess Session, route Route) Resolution {
	if !sess.Resolved {
		return Resolution{State: StateLoading}
	}
	if sess.Actor == nil {
		return Resolution{State: StateUnauthenticated, Route: RouteLogin}
	}

	spec, ok := Routes[route]
	if !ok || !spec.Allows(sess.Actor.Role) {
		return Resolution{State: StateDenied}
	}
	return Resolution{State: StateGranted, Route: route}
}

// ResolveDashboard resolves the session against the actor's own dashboard,
// the default landing decision after login.
func ResolveDashboard(sess Session) Resolution {
	if !sess.Resolved {
		return Resolution{State: StateLoading}
	}
	if sess.Actor == nil {
		return Resolution{State: StateUnauthenticated, Route: RouteLogin}
	}
	return Resolve(sess, DashboardFor(sess.Actor.Role))
}
