package types

import "errors"

// Config holds the parameters for opening the persistence store.
type Config struct {
	// DataDir is the directory holding the database file and prefs.json.
	// Empty means the current working directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// SeedDemo seeds demonstration data into an empty database after
	// migration. Bound to the ZELOPET_SEED_DEMO environment variable by
	// the CLI.
	SeedDemo bool `json:"seed_demo" yaml:"seed_demo"`
}

// ErrDataDirIsFile is returned by Open when DataDir exists but is not a
// directory.
var ErrDataDirIsFile = errors.New("data dir is not a directory")
