/*
Package log implements the logging framework of the Mute base64 tools.

See https://github.com/cihub/seelog/wiki/Log-levels for an introduction to the
different logging levels.

Logging is disabled until a binary calls Init, so library packages like
encode/base64 stay silent when they are imported elsewhere.

Error conditions are logged exactly once, as early as possible: errors
returned by external packages are wrapped in a log.Error() call and errors
we create ourselves are created with log.Error[f](). log.Error() returns a
single error argument unchanged, so callers can still inspect its type with
errors.Is and errors.As. If we call panic() we create the error for that with
log.Critical[f]().
*/
package log
