package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/reoring/formstate/formyaml"
	"github.com/reoring/formstate/jsonschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "lint":
		lintCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	case "schema":
		schemaCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "formstate CLI\n\nUsage:\n  formstate lint -f form.yaml\n  formstate inspect -f form.yaml\n  formstate schema -f form.yaml\n\nlint validates a YAML form definition; inspect prints the addressable\npaths and the snapshot of a freshly built form as JSON; schema prints a\nJSON Schema for the model the form submits.")
}

func lintCmd(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "form definition file")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	if _, err := loadDefinition(file); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("%s: ok\n", file)
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "form definition file")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	def, err := loadDefinition(file)
	if err != nil {
		fatalf("%v", err)
	}
	form, err := formyaml.Build(def)
	if err != nil {
		fatalf("build: %v", err)
	}
	report := struct {
		Paths    []string `json:"paths"`
		Snapshot any      `json:"snapshot"`
	}{
		Paths:    def.Paths(),
		Snapshot: form.Snapshot(),
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fatalf("encode: %v", err)
	}
	fmt.Println(string(out))
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "form definition file")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	def, err := loadDefinition(file)
	if err != nil {
		fatalf("%v", err)
	}
	out, err := jsonschema.Encode(jsonschema.FromDefinition(def))
	if err != nil {
		fatalf("encode: %v", err)
	}
	fmt.Println(string(out))
}

func loadDefinition(file string) (formyaml.Definition, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return formyaml.Definition{}, err
	}
	def, err := formyaml.Parse(data)
	if err != nil {
		return formyaml.Definition{}, err
	}
	if _, err := formyaml.Build(def); err != nil {
		return formyaml.Definition{}, err
	}
	return def, nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
