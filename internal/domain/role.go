package domain

// Roles carried in the auth service's JWT claims.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
