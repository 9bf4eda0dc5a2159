package badger

import "fmt"

// Key prefixes for different data types
const (
	promptRecordPrefix = "prompt"
	promptActiveKey    = "promptactive"
)

// makePromptKey generates a key for a prompt record by version.
func makePromptKey(version int64) []byte {
	return []byte(fmt.Sprintf("%s:%d", promptRecordPrefix, version))
}

// makePromptActiveKey generates the key holding the active prompt version.
func makePromptActiveKey() []byte {
	return []byte(promptActiveKey)
}
