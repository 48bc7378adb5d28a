package auth

// Identity is the authenticated principal attached to a request after
// the session gate resolves it. It carries facts only; the password
// digest never leaves the credentials package.
type Identity struct {
	ID       string `json:"id"`       // references users.id
	Username string `json:"username"` // display name for views
}
