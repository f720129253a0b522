package config

// Explorerfile represents the structure of the explorer.yaml configuration file.
type Explorerfile struct {
	Version string   `yaml:"version"`
	API     APIDTO   `yaml:"api"`
	Cache   CacheDTO `yaml:"cache"`
	View    ViewDTO  `yaml:"view"`
	State   StateDTO `yaml:"state"`
	Log     LogDTO   `yaml:"log"`
}

// APIDTO configures the chain API client.
type APIDTO struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// CacheDTO configures the fetch cache.
type CacheDTO struct {
	Size *int `yaml:"size"`
}

// ViewDTO configures view rendering.
type ViewDTO struct {
	PageSize *int `yaml:"pageSize"`
}

// StateDTO configures the store snapshot.
type StateDTO struct {
	Path string `yaml:"path"`
}

// LogDTO configures logging.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
