package fcs

import (
	"fmt"
	"strings"
)

// Policy selects the integrity codec stamped into a framed packet's fcs
// field. The zero value, None, contributes zero bytes to the wire image.
type Policy uint8

const (
	None Policy = iota
	Sum8
	Sum16
	Sum32
	CRC8
	CRC16
	CRC32
	CRC64
	Fletcher16
	Fletcher32
	Adler32
	Internet16
)

func (p Policy) String() string {
	switch p {
	case None:
		return "none"
	case Sum8:
		return "sum8"
	case Sum16:
		return "sum16"
	case Sum32:
		return "sum32"
	case CRC8:
		return "crc8"
	case CRC16:
		return "crc16"
	case CRC32:
		return "crc32"
	case CRC64:
		return "crc64"
	case Fletcher16:
		return "fletcher16"
	case Fletcher32:
		return "fletcher32"
	case Adler32:
		return "adler32"
	case Internet16:
		return "internet16"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy maps a policy's String() name back to its value, for
// reading a policy tag out of configuration. It is case-insensitive.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return None, nil
	case "sum8":
		return Sum8, nil
	case "sum16":
		return Sum16, nil
	case "sum32":
		return Sum32, nil
	case "crc8":
		return CRC8, nil
	case "crc16":
		return CRC16, nil
	case "crc32":
		return CRC32, nil
	case "crc64":
		return CRC64, nil
	case "fletcher16":
		return Fletcher16, nil
	case "fletcher32":
		return Fletcher32, nil
	case "adler32":
		return Adler32, nil
	case "internet16":
		return Internet16, nil
	default:
		return None, fmt.Errorf("fcs: unknown policy %q", name)
	}
}

// Size returns the number of bytes this policy contributes to the wire
// image. None contributes zero.
func (p Policy) Size() int {
	switch p {
	case None:
		return 0
	case Sum8, CRC8:
		return 1
	case Sum16, CRC16, Fletcher16, Internet16:
		return 2
	case Sum32, CRC32, Fletcher32, Adler32:
		return 4
	case CRC64:
		return 8
	default:
		return 0
	}
}
