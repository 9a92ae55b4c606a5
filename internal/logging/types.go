package logging

// Logger is the keyvals logging interface used throughout the system. The
// shape comes from Tendermint's logger; the implementation is zerolog.
type Logger interface {
	Debug(msg string, keyVals ...interface{})
	Info(msg string, keyVals ...interface{})
	Error(msg string, keyVals ...interface{})
	With(keyVals ...interface{}) Logger
}
