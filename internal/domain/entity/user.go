package entity

// User is an account that can authenticate against the service.
// Only the salted password hash is ever held; the plaintext password
// exists nowhere beyond the registration and login requests.
type User struct {
	ID           string
	Name         string
	PasswordHash string
}
