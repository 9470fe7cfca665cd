package auth

// Mailer delivers the password-reset token to the user out of band.
// The token must never travel back over the API response channel.
type Mailer interface {
	SendPasswordReset(toEmail, token string) error
}
