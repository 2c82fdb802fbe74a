package entity

// Customer cliente registrado (solo se usa para conteos del dashboard).
type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// StaffMember empleado. PasswordHash (bcrypt) viene del servicio de registros
// y se usa únicamente para verificar el login; nunca se expone en respuestas.
type StaffMember struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"` // "admin" | "staff"
	Status       string `json:"status"`
}

// Alert aviso operativo mostrado en la vista de personal.
type Alert struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
