package registry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the layout of a registry configuration file:
//
//	searchpaths: [skins/shared, vendor]
//	devpaths: [work/skins]
//	skinsfolder: skins
//	appresources: app
//	fwresources: framework
//	schemes:
//	  theme: themes/default
//	overlays:
//	  main: ["@debug"]
type Config struct {
	SearchPaths  []string            `yaml:"searchpaths"`
	DevPaths     []string            `yaml:"devpaths"`
	SkinsFolder  string              `yaml:"skinsfolder"`
	AppResources string              `yaml:"appresources"`
	FwResources  string              `yaml:"fwresources"`
	Schemes      map[string]string   `yaml:"schemes"`
	Overlays     map[string][]string `yaml:"overlays"`
}

// LoadConfig reads a YAML configuration file and applies it.
func (r *Registry) LoadConfig(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.ReadConfig(f)
}

// ReadConfig decodes a YAML configuration and applies it.
func (r *Registry) ReadConfig(in io.Reader) error {
	dec := yaml.NewDecoder(in)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return fmt.Errorf("registry config: %w", err)
	}
	r.Apply(&cfg)
	return nil
}

// Apply adds the locations, schemes and overlays of cfg.
func (r *Registry) Apply(cfg *Config) {
	for _, dir := range cfg.DevPaths {
		r.AddDevLocation(dir)
	}
	for _, dir := range cfg.SearchPaths {
		r.AddSearchLocation(dir)
	}
	if cfg.SkinsFolder != "" {
		r.SetSkinsFolder(cfg.SkinsFolder)
	}
	if cfg.AppResources != "" {
		r.SetAppResources(cfg.AppResources)
	}
	if cfg.FwResources != "" {
		r.SetFrameworkResources(cfg.FwResources)
	}
	for scheme, root := range cfg.Schemes {
		r.MapScheme(scheme, root)
	}
	for id, urls := range cfg.Overlays {
		for _, u := range urls {
			r.AddOverlay(id, u)
		}
	}
	tracer().Infof("registry configured: %d search paths", len(r.SearchPaths("")))
}
