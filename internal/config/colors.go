package config

// ColorScheme holds the hex colors used by the menu and CLI output
type ColorScheme struct {
	Title   string `yaml:"title"`
	Accent  string `yaml:"accent"`
	Subtle  string `yaml:"subtle"`
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Title:   "#7D56F4",
		Accent:  "#AD8CFF",
		Subtle:  "#6C6C6C",
		Success: "#04B575",
		Error:   "#FF5F87",
	}
}

// ApplyDefaults fills any empty color from the default scheme
func (c *ColorScheme) ApplyDefaults() {
	d := DefaultColorScheme()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Accent == "" {
		c.Accent = d.Accent
	}
	if c.Subtle == "" {
		c.Subtle = d.Subtle
	}
	if c.Success == "" {
		c.Success = d.Success
	}
	if c.Error == "" {
		c.Error = d.Error
	}
}
