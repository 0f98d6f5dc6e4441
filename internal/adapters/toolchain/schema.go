package toolchain

// registryFile represents the structure of the toolchains registry.
type registryFile struct {
	Toolchains []toolchainDTO `yaml:"toolchains"`
}

type toolchainDTO struct {
	Type          string            `yaml:"type"`
	Provides      map[string]string `yaml:"provides"`
	Configuration configurationDTO  `yaml:"configuration"`
}

type configurationDTO struct {
	JDKHome string `yaml:"jdkHome"`
}
