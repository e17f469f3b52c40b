package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 60 * time.Second // a cold search fans out several upstream calls
	idleTimeout  = 60 * time.Second

	defaultRosterLoadTimeout   = 30 * time.Second
	defaultRosterRetryInterval = 15 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
