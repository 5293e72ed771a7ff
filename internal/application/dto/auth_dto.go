package dto

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminResponse datos públicos del administrador (nunca incluye el hash).
type AdminResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse token emitido más el administrador autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
