package credentials

import "golang.org/x/crypto/bcrypt"

// HashPassword digests a plaintext password with bcrypt. The digest is
// salted and adaptive; comparing two digests of the same password will
// not produce equal strings, so verification must go through
// VerifyPassword.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored digest.
func VerifyPassword(digest string, password string) error {
	return bcrypt.CompareHashAndPassword(
		[]byte(digest),
		[]byte(password),
	)
}
