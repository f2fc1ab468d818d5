package domain

// Value ranges accepted by the config commands.
const (
	MinMaxResults = 1
	MaxMaxResults = 50

	MinRequestInterval = 1
	MaxRequestInterval = 60
)

// Config is the mutable bot configuration document, persisted as a JSON
// file. It is loaded once at startup and rewritten after every accepted
// config command.
type Config struct {
	Token           string   `json:"token"`
	MaxResults      int      `json:"max_results"`
	RequestInterval int      `json:"request_interval"`
	EnabledGroups   []string `json:"enabled_groups"`
	AdminUsers      []string `json:"admin_users"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Token:           "",
		MaxResults:      10,
		RequestInterval: 3,
		EnabledGroups:   []string{},
		AdminUsers:      []string{},
	}
}

// Clone returns a deep copy, safe to read after the original mutates.
func (c *Config) Clone() *Config {
	out := *c
	out.EnabledGroups = append([]string(nil), c.EnabledGroups...)
	out.AdminUsers = append([]string(nil), c.AdminUsers...)
	return &out
}

// HasGroup reports whether id is in the enabled group list.
func (c *Config) HasGroup(id string) bool {
	for _, g := range c.EnabledGroups {
		if g == id {
			return true
		}
	}
	return false
}

// HasAdmin reports whether id is in the admin list.
func (c *Config) HasAdmin(id string) bool {
	for _, a := range c.AdminUsers {
		if a == id {
			return true
		}
	}
	return false
}
