package config

import "flag"

type flagValues struct {
	config     string
	filter     string
	theme      string
	logLevel   string
	color      string
	firstID    int
	normalized bool
	group      bool
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	v := &flagValues{}
	fs.StringVar(&v.config, "config", "", "path to a TOML config file")
	fs.StringVar(&v.filter, "filter", "", "visibility filter: all, open or done")
	fs.StringVar(&v.theme, "theme", "", "output theme: classic, neon or mono")
	fs.StringVar(&v.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&v.color, "color", "", "color output: auto, always or never")
	fs.IntVar(&v.firstID, "first-id", 0, "first id handed to new todos")
	fs.BoolVar(&v.normalized, "normalized", false, "keep todos in normalized {byId, allIds} state")
	fs.BoolVar(&v.group, "group", false, "group output by open/done")
	return v
}

// apply copies flags the user actually set onto cfg.
func (v *flagValues) apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "filter":
			cfg.Filter = v.filter
		case "theme":
			cfg.Theme = v.theme
		case "log-level":
			cfg.LogLevel = v.logLevel
		case "color":
			cfg.Color = v.color
		case "first-id":
			cfg.FirstID = v.firstID
		case "normalized":
			cfg.Normalized = v.normalized
		case "group":
			cfg.Group = v.group
		}
	})
}
