package config

// Provfile represents the structure of the provenv.yaml configuration file.
type Provfile struct {
	Version       string              `yaml:"version"`
	CacheRoot     string              `yaml:"cacheRoot"`
	Environment   string              `yaml:"environment"`
	Requirements  string              `yaml:"requirements"`
	Bootstrap     string              `yaml:"bootstrap"`
	Target        string              `yaml:"target"`
	PatchActivate bool                `yaml:"patchActivate"`
	NativeDeps    map[string][]string `yaml:"nativeDeps"`
}
