package payxgo

type Config struct {
	Engine struct {
		Workers    int `yaml:"workers"`
		QueueDepth int `yaml:"queue_depth"`
	} `yaml:"engine"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Report struct {
		Format string `yaml:"format"`
	} `yaml:"report"`
}
