package user

// InvalidCredentialsError signals a failed password check without saying
// which half was wrong.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid email or password"
}
