package usecase

// TokenProvider issues and verifies bearer tokens and owns password
// hashing. Implemented by the auth infrastructure.
type TokenProvider interface {
	GenerateAccessToken(userID, role string) (string, error)
	GenerateRefreshToken(userID, role string) (string, error)
	VerifyRefresh(tokenString string) (userID, role string, err error)
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}
