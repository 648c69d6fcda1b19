package access

import "github.com/crediario/crediario-api/internal/domain/user"

// Route identifies a dashboard route of the UI shell
type Route string

const (
	RouteLogin             Route = "/login"
	RouteAdminDashboard    Route = "/admin"
	RouteMerchantDashboard Route = "/merchant"
	RouteCashierDashboard  Route = "/cashier"
)

// RouteSpec declares which roles may render a route
type RouteSpec struct {
	Route        Route
	AllowedRoles []user.Role
}

// Routes is the closed table of protected dashboard routes
var Routes = map[Route]RouteSpec{
	RouteAdminDashboard:    {Route: RouteAdminDashboard, AllowedRoles: []user.Role{user.RoleSuperAdmin}},
	RouteMerchantDashboard: {Route: RouteMerchantDashboard, AllowedRoles: []user.Role{user.RoleMerchant}},
	RouteCashierDashboard:  {Route: RouteCashierDashboard, AllowedRoles: []user.Role{user.RoleCashier}},
}

// DashboardFor maps a role to its dashboard route
func DashboardFor(role user.Role) Route {
	switch role {
	case user.RoleSuperAdmin:
		return RouteAdminDashboard
	case user.RoleMerchant:
		return RouteMerchantDashboard
	case user.RoleCashier:
		return RouteCashierDashboard
	default:
		return RouteLogin
	}
}

// Allows reports whether the spec permits the given role
func (s RouteSpec) Allows(role user.Role) bool {
	for _, r := range s.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
