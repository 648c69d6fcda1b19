package user

import (
	"time"

	"github.com/google/uuid"
)

// Role represents an actor role in the system
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleMerchant   Role = "comerciante"
	RoleCashier    Role = "caixa"
)

// User represents an operator account. Merchant-scoped roles (comerciante,
// caixa) carry the merchant they act for; the super-admin does not.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	MerchantID   *uuid.UUID
	CreatedAt    time.Time
}
