package access

import "github.com/crediario/crediario-api/internal/domain/user"

// Permission represents an operation an actor may invoke
type Permission string

const (
	// Merchant management (super-admin scope)
	PermViewMerchants   Permission = "merchants.view"
	PermManageMerchants Permission = "merchants.manage"
	PermDeleteMerchants Permission = "merchants.delete"

	// Client directory (merchant scope)
	PermViewClients   Permission = "clients.view"
	PermManageClients Permission = "clients.manage"
	PermRemindClients Permission = "clients.remind"

	// Ledger (point-of-sale scope)
	PermLookupClients  Permission = "clients.lookup"
	PermRecordPayments Permission = "payments.record"
	PermGrantCredits   Permission = "credits.grant"
	PermViewLedger     Permission = "ledger.view"

	// Dashboards
	PermViewAdminDashboard    Permission = "dashboard.admin"
	PermViewMerchantDashboard Permission = "dashboard.merchant"
	PermViewCashierDashboard  Permission = "dashboard.cashier"
)

// RolePermissions maps roles to their permitted operations
var RolePermissions = map[user.Role][]Permission{
	user.RoleSuperAdmin: {
		PermViewMerchants, PermManageMerchants, PermDeleteMerchants,
		PermViewAdminDashboard,
	},
	user.RoleMerchant: {
		PermViewClients, PermManageClients, PermRemindClients,
		PermViewLedger,
		PermViewMerchantDashboard,
	},
	user.RoleCashier: {
		PermLookupClients, PermRecordPayments, PermGrantCredits, PermViewLedger,
		PermViewCashierDashboard,
	},
}

// HasPermission checks whether role may invoke the given operation
func HasPermission(role user.Role, perm Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
