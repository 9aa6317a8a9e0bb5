// Package logging builds the zap logger shared by the command line tools.
package logging
