// Package config owns the on-disk device configuration surface:
// PROTOCOL_VERSION, BOARD_ID, DEVICE_N, the deployment's packet size S,
// and the fcs policy every packet on this device is sealed/validated
// under.
//
// Ownership boundary:
// - loading and validating a Config from a toml file (github.com/BurntSushi/toml)
// - writing a starter template for a new deployment
//
// Load/Validate stay split so callers can validate a Config built some
// other way (e.g. in tests) without round-tripping through a file.
// WriteTemplate emits a starter document as an embedded string constant.
package config
