// Package password provides one-way password hashing and verification
// backed by bcrypt. Each Hash call salts independently, so hashing the
// same plaintext twice yields different digests.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted bcrypt digest of plain.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether digest was produced from plain. The comparison is
// constant-time; a malformed digest simply reports false.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
