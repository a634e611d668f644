package config

// DefaultValues is the built-in configuration merged underneath whatever
// config files the caller supplies, following the teacher's pattern of a
// TOML string embedded directly in the binary.
const DefaultValues = `
[Log]
Environment = "development"
Level = "info"
Outputs = ["stderr"]
`
