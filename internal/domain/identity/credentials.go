package identity

// PasswordHasher hashes and verifies password credentials. The produced hash
// is stored on the User but otherwise opaque to the domain.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer issues session tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *User) (string, error)
}
