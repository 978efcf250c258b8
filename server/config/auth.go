package config

// Auth defines the basic-auth configuration for the API subtree.
// Credentials map usernames to plaintext passwords; secrets should
// come in through environment interpolation, not committed files
type Auth struct {
	Realm string            `toml:"realm"`
	Users map[string]string `toml:"users"`
}

// Enabled reports whether basic auth should be enforced
func (a *Auth) Enabled() bool {
	return a != nil && len(a.Users) > 0
}
