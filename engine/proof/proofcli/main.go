package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/typeproof/typeproof/backend/textsurface"
	"github.com/typeproof/typeproof/core"
	"github.com/typeproof/typeproof/core/variation"
	"github.com/typeproof/typeproof/engine/proof"
)

// tracer traces with key 'typeproof.proof'
func tracer() tracing.Trace {
	return tracing.Select("typeproof.proof")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fonts := flag.String("fonts", "", "Comma-separated font files or installed font names")
	proofs := flag.String("proofs", "", "Comma-separated proof types; empty selects all")
	axes := flag.String("axes", "", "Axis overrides, e.g. 'wght=400,700;wdth=100'")
	settings := flag.String("set", "", "Proof settings, e.g. 'spacing_proof.font_size=18'")
	output := flag.String("o", "", "Output file; empty writes to stdout")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.typeproof.charset": *tlevel,
		"trace.typeproof.fonts":   *tlevel,
		"trace.typeproof.words":   *tlevel,
		"trace.typeproof.proof":   *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	pterm.Info.Println("Welcome to the type proofing CLI")
	if *fonts == "" {
		pterm.Error.Println("no fonts given, use -fonts")
		os.Exit(2)
	}

	session := proof.NewSession()
	for _, name := range strings.Split(*fonts, ",") {
		path, err := resolveFont(strings.TrimSpace(name))
		if err != nil {
			pterm.Error.Printfln("font %s: %s", name, core.UserMessage(err))
			os.Exit(3)
		}
		if err := session.AddFont(path); err != nil {
			pterm.Error.Printfln("font %s: %s", name, core.UserMessage(err))
			os.Exit(3)
		}
		tracer().Infof("proofing font %s", path)
	}

	overrides, err := variation.ParseOverrides(*axes)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(4)
	}
	session.SetAxisOverrides(overrides)

	if err := applySettings(session, *settings); err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(5)
	}

	kinds, err := selectProofs(*proofs)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(6)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			pterm.Error.Printfln("cannot create %s: %s", *output, err)
			os.Exit(7)
		}
		defer f.Close()
		out = f
	}

	surface := textsurface.New(out)
	if err := session.Run(surface, kinds); err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(8)
	}
	pterm.Info.Println("Done")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// resolveFont accepts a path to a font file or the name of an installed
// font, located through the system font directories.
func resolveFont(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "font %q neither a file nor installed", name)
	}
	return path, nil
}

// selectProofs parses the -proofs flag. An empty flag selects every
// proof type; Arabic ones are skipped per font as needed.
func selectProofs(list string) ([]proof.Kind, error) {
	if strings.TrimSpace(list) == "" {
		return proof.AllKinds(true), nil
	}
	var kinds []proof.Kind
	for _, name := range strings.Split(list, ",") {
		kind := proof.Kind(strings.TrimSpace(name))
		if _, ok := proof.Lookup(kind); !ok {
			return nil, core.Error(core.EINVALID, "unknown proof type %q", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// applySettings parses the -set flag, semicolon-separated clauses of the
// form prooftype.key=value.
func applySettings(session *proof.Session, clauses string) error {
	clauses = strings.TrimSpace(clauses)
	if clauses == "" {
		return nil
	}
	for _, clause := range strings.Split(clauses, ";") {
		target, value, ok := strings.Cut(clause, "=")
		if !ok {
			return core.Error(core.EINVALID, "setting %q not of form proof.key=value", clause)
		}
		kind, key, ok := strings.Cut(target, ".")
		if !ok {
			return core.Error(core.EINVALID, "setting %q not of form proof.key=value", clause)
		}
		if err := session.Settings().Set(proof.Kind(kind), key, value); err != nil {
			return err
		}
	}
	return nil
}
