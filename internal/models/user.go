package models

// User is a registered account. PasswordHash is the lowercase hex SHA-256
// digest of the password; the credential file stores no salt and offers no
// update or delete path, so a user lives as long as the file does.
type User struct {
	Name         string
	PasswordHash string
}
