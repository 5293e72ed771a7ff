package entity

import "time"

// Admin es la credencial compartida del negocio. PasswordHash (bcrypt) nunca
// sale de la capa de persistencia hacia respuestas HTTP.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
