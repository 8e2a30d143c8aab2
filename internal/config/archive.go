package config

// ArchiveConfig holds settings for the on-disk game archive.
type ArchiveConfig struct {
	// Dir is the badger directory; empty disables archiving
	Dir string

	// InMemory keeps the archive in memory, for tests and dry runs
	InMemory bool
}

// NewArchiveConfig creates an ArchiveConfig with archiving disabled.
func NewArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{}
}

// Enabled reports whether finished games should be archived.
func (a *ArchiveConfig) Enabled() bool {
	return a.Dir != "" || a.InMemory
}
