// Package config provides configuration loading and defaults for tweetscore.
package config

// DefaultConfigDir is the default location for tweetscore configuration.
const DefaultConfigDir = "~/.config/tweetscore"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "tweetscore.db"

// DefaultSessionFile is the filename holding the active session token.
const DefaultSessionFile = "session"

// DefaultFreeDailyLimit is the number of analyses a free account may run
// per rolling day.
const DefaultFreeDailyLimit = 5

// DefaultPackCredits is the opening balance for new pack accounts.
const DefaultPackCredits = 50

// DefaultSessionTTLDays is how long a login stays valid.
const DefaultSessionTTLDays = 30

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
