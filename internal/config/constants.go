package config

// Base application details
const AppName = "keel"
const ConfigDirName = "keel"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "keel.log"

// MaxPasteBytes is the hard cap on clipboard paste size: a paste helper
// producing more than this aborts the paste. 512 MiB.
const MaxPasteBytes int64 = 512 << 20
