package utils

import "os"

// JWTSecret returns the HS256 signing key. Controllers and middleware must
// agree on it, so both go through here.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // Replace with secure key in production
	}
	return secret
}
