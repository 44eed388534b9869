package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleBodega  = "bodega"
	RoleVentas  = "ventas"
	RoleCompras = "compras"
)

// User representa un usuario del sistema. Su identidad acompaña cada
// movimiento de stock como autor del registro.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Name         string
	Role         string // admin, bodega, ventas, compras
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
