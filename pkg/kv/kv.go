package kv

// Store is the persistence substrate: a string key-value store holding one JSON
// document per key. Implementations must never leave a key holding a partial
// write; a failed Set leaves the previous value in place.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
