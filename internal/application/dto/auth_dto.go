package dto

// LoginRequest entrada para login contra la colección de personal.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el perfil del empleado autenticado.
type LoginResponse struct {
	Token string         `json:"token"`
	User  StaffMemberDTO `json:"user"`
}

// StaffMemberDTO perfil del empleado sin el hash de contraseña.
type StaffMemberDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
