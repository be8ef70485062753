package config

// Configfile represents the structure of the refract.yaml configuration file.
type Configfile struct {
	Version      string   `yaml:"version"`
	Main         string   `yaml:"main"`
	Components   string   `yaml:"components"`
	Preprocessor string   `yaml:"preprocessor"`
	RuntimeTasks []string `yaml:"runtime_tasks"`
}
