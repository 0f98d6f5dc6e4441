package config

// Retrofile represents the structure of the retro.yaml (or retro.toml) configuration file.
type Retrofile struct {
	Skip              bool              `yaml:"skip" toml:"skip"`
	Target            string            `yaml:"target" toml:"target"`
	DefaultMethods    bool              `yaml:"defaultMethods" toml:"defaultMethods"`
	JavacHacks        bool              `yaml:"javacHacks" toml:"javacHacks"`
	Quiet             bool              `yaml:"quiet" toml:"quiet"`
	Fork              bool              `yaml:"fork" toml:"fork"`
	FixJava8Classpath bool              `yaml:"fixJava8Classpath" toml:"fixJava8Classpath"`
	Java8Home         string            `yaml:"java8home" toml:"java8home"`
	Toolchains        string            `yaml:"toolchains" toml:"toolchains"`
	Toolchain         map[string]string `yaml:"toolchain" toml:"toolchain"`
	Repository        RepositoryDTO     `yaml:"repository" toml:"repository"`
	Project           ProjectDTO        `yaml:"project" toml:"project"`
}

// RepositoryDTO locates the artifact repositories.
// A nil Remote selects the default remote repository; an empty one disables remote lookups.
type RepositoryDTO struct {
	Local  string  `yaml:"local" toml:"local"`
	Remote *string `yaml:"remote" toml:"remote"`
}

// ProjectDTO describes the build layout.
type ProjectDTO struct {
	BuildDir string       `yaml:"buildDir" toml:"buildDir"`
	Main     SourceSetDTO `yaml:"main" toml:"main"`
	Test     SourceSetDTO `yaml:"test" toml:"test"`
}

// SourceSetDTO describes the classes processed by one goal.
type SourceSetDTO struct {
	InputDir  string   `yaml:"inputDir" toml:"inputDir"`
	OutputDir string   `yaml:"outputDir" toml:"outputDir"`
	Classpath []string `yaml:"classpath" toml:"classpath"`
}
