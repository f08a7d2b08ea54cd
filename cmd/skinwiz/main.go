/*
Command skinwiz loads a skin package and prints its element tree or the
view tree of a form or window class.

Usage:

    skinwiz -skin <dir> [-form Main | -window MainWindow] [-controller data.json] [-registry skins.yaml]
            [-warnings] [-dot out.dot] [-logrus] [-trace Debug]

The controller is built from a JSON document: objects become controller
nodes, other values become parameters.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/registry"
	"github.com/npillmayer/skinwiz/skindbg"
	"github.com/npillmayer/skinwiz/view"
	"github.com/npillmayer/skinwiz/wizard"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	skin       string
	form       string
	window     string
	controller string
	registry   string
	dot        string
	trace      string
	warnings   bool
	logrus     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("skinwiz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opt options
	fs.StringVar(&opt.skin, "skin", "", "skin package folder")
	fs.StringVar(&opt.form, "form", "", "form to instantiate")
	fs.StringVar(&opt.window, "window", "", "window class to instantiate")
	fs.StringVar(&opt.controller, "controller", "", "JSON file describing the controller")
	fs.StringVar(&opt.registry, "registry", "", "YAML file configuring the skin registry")
	fs.StringVar(&opt.dot, "dot", "", "write the element tree in DOT format to file")
	fs.StringVar(&opt.trace, "trace", "Error", "trace level")
	fs.BoolVar(&opt.warnings, "warnings", true, "report skin warnings")
	fs.BoolVar(&opt.logrus, "logrus", false, "log with logrus")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opt.skin == "" {
		fmt.Fprintln(stderr, "error: -skin is required")
		fs.Usage()
		return 2
	}
	conf := configure(opt)
	if err := setupTracing(conf, stderr); err != nil {
		fmt.Fprintf(stderr, "error configuring tracing: %v\n", err)
		return 1
	}
	defer trace2go.Teardown()
	if err := execute(opt, conf, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// tracers of the module, selected as "skinwiz.<package>"
var tracedPackages = []string{
	"attrs", "diag", "expr", "object", "registry", "skin",
	"style", "tree", "trigger", "vars", "view", "wizard",
}

// configure collects the settings from the command line into a koanf
// configuration.
func configure(opt options) *koanfadapter.KConf {
	adapter := "go"
	if opt.logrus {
		adapter = "logrus"
	}
	settings := map[string]interface{}{
		"tracing.adapter": adapter,
		"trace.root":      opt.trace,
		"skin.warnings":   opt.warnings,
	}
	for _, pkg := range tracedPackages {
		settings["trace.skinwiz."+pkg] = opt.trace
	}
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(settings, "."), nil)
	return koanfadapter.New(k, "", nil)
}

func setupTracing(conf schuko.Configuration, out io.Writer) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	trace2go.Root().SetOutput(out)
	return nil
}

func execute(opt options, conf schuko.Configuration, stdout, stderr io.Writer) error {
	dir, err := filepath.Abs(opt.skin)
	if err != nil {
		return err
	}
	reg := registry.New()
	if opt.registry != "" {
		if err := reg.LoadConfig(opt.registry); err != nil {
			return err
		}
	}
	w := wizard.New(os.DirFS(filepath.Dir(dir)),
		wizard.WithRegistry(reg),
		wizard.WithSink(warningSink(opt.logrus, stderr)),
		wizard.WithConfiguration(conf),
	)
	if err := w.LoadSkin(filepath.Base(dir), false, true); err != nil {
		return err
	}
	if opt.dot != "" {
		if err := writeDot(opt.dot, w); err != nil {
			return err
		}
	}
	if opt.form == "" && opt.window == "" {
		fmt.Fprint(stdout, skindbg.ElementTree(w.Model()))
		return nil
	}
	var controller object.Object
	if opt.controller != "" {
		data, err := os.ReadFile(opt.controller)
		if err != nil {
			return err
		}
		node, err := object.FromJSON("controller", data)
		if err != nil {
			return err
		}
		controller = node
	}
	var v *view.View
	if opt.window != "" {
		v, err = w.CreateWindow(opt.window, controller)
	} else {
		v, err = w.CreateView(opt.form, controller)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, skindbg.ViewTree(v))
	if n := w.Sink().Count(); n > 0 {
		fmt.Fprintf(stderr, "%d skin warnings\n", n)
	}
	return nil
}

// warningSink reports skin warnings on out, either as plain lines or as
// logrus entries carrying the origin as fields.
func warningSink(useLogrus bool, out io.Writer) *diag.Sink {
	sink := diag.NewSink()
	if !useLogrus {
		sink.Handler = func(w diag.Warning) {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return sink
	}
	log := logrus.New()
	log.SetOutput(out)
	sink.Handler = func(w diag.Warning) {
		log.WithFields(logrus.Fields{
			"file": w.Origin.File,
			"line": w.Origin.Line,
		}).Warn(w.Message)
	}
	return sink
}

func writeDot(path string, w *wizard.Wizard) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := skindbg.ToGraphViz(w.Model(), f, true); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
