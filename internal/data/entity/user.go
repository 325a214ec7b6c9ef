package entity

type UserRole string

const (
	RoleMember UserRole = "MEMBER"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	Base
	Name         string   `db:"name"`
	LastName     *string  `db:"last_name"`
	Phone        *string  `db:"phone"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
