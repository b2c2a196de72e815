package framer

const (
	// DefaultMaxHeaderBytes default value for Parser.MaxHeaderBytes parameter
	DefaultMaxHeaderBytes = 1 << 20 // 1 mb

	// DefaultMaxDecodedBytes default limit for Message.DecodeBody
	DefaultMaxDecodedBytes int64 = 5 << 20 // 5 mb
)

// DefaultParser is used by the package level parse functions.
var DefaultParser = &Parser{}
