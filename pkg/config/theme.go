package config

// ThemeHex is a color theme as stored in the config file. Colors are hex
// strings ("#8888ff") or color names understood by tcell; "#0" is the
// terminal default color.
type ThemeHex struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Empty      string `yaml:"empty"`
	Stack      string `yaml:"stack"`
	Moving     string `yaml:"moving"`
	Major      string `yaml:"major"`
	Minor      string `yaml:"minor"`
	Banner     string `yaml:"banner"`
	Win        string `yaml:"win"`
	Lose       string `yaml:"lose"`
	Text       string `yaml:"text"`
}
