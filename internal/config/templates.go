package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes a starter device config to path. It refuses to
// overwrite an existing file unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(deviceTemplate), 0o600)
}

const deviceTemplate = `protocol_version = 1
board_id = 16
device_n = 4
packet_size = 32
word_size = 4
fcs_policy = "crc32"
`
