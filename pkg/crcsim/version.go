package crcsim

// Version information for the simulation module.
const (
	// Version is the current version of the simulation module.
	Version = "1.0.0"
)
