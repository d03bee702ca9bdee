package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/printfmt"
)

// charTag marks a scalar that should be passed as a printfmt.Char.
const charTag = "!char"

// parseArgs types each command-line argument as a YAML scalar. Arguments that
// do not read as a single scalar are passed through as strings.
func parseArgs(raw []string, asStrings bool) ([]any, error) {
	args := make([]any, len(raw))
	for i, s := range raw {
		if asStrings {
			args[i] = s
			continue
		}
		v, err := parseArg(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = v
	}
	return args, nil
}

func parseArg(s string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil || len(doc.Content) != 1 {
		return s, nil
	}
	n := doc.Content[0]
	if n.Kind != yaml.ScalarNode {
		return s, nil
	}
	return scalarValue(n)
}

// readArgsFile loads a YAML sequence of arguments.
func readArgsFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("parse %s: line %d: expected a sequence of arguments", path, seq.Line)
	}
	args := make([]any, 0, len(seq.Content))
	for _, n := range seq.Content {
		v, err := nodeValue(n)
		if err != nil {
			return nil, fmt.Errorf("parse %s: line %d: %w", path, n.Line, err)
		}
		args = append(args, v)
	}
	return args, nil
}

func nodeValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.ScalarNode {
		return scalarValue(n)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func scalarValue(n *yaml.Node) (any, error) {
	if n.Tag == charTag {
		r, size := utf8.DecodeRuneInString(n.Value)
		if size == 0 || size != len(n.Value) {
			return nil, fmt.Errorf("%s needs exactly one character, got %q", charTag, n.Value)
		}
		return printfmt.Char(r), nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
