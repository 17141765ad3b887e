package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/go-hel/pkg/hel"
)

// buildFacts merges --fact key=value pairs and an optional --facts-file JSON
// document into a single FactsContext. Flag facts are applied after the
// file, so they can override individual keys.
func buildFacts(factFlags []string, factsFile string) (*hel.FactsContext, error) {
	facts := hel.NewFactsContext()

	if factsFile != "" {
		content, err := os.ReadFile(factsFile)
		if err != nil {
			return nil, fmt.Errorf("reading facts file: %w", err)
		}
		var raw map[string]any
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parsing facts file: %w", err)
		}
		for key, v := range raw {
			facts.AddFact(key, jsonToValue(v))
		}
	}

	for _, kv := range factFlags {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --fact %q: expected key=value", kv)
		}
		facts.AddFact(key, inferValue(val))
	}

	return facts, nil
}

// jsonToValue converts a decoded JSON value (from encoding/json, so numbers
// arrive as float64) into a hel.Value.
func jsonToValue(v any) hel.Value {
	switch x := v.(type) {
	case nil:
		return hel.Null
	case bool:
		return hel.BoolValue(x)
	case float64:
		return hel.NumberValue(x)
	case string:
		return hel.StringValue(x)
	case []any:
		elems := make([]hel.Value, len(x))
		for i, e := range x {
			elems[i] = jsonToValue(e)
		}
		return hel.ListValue(elems...)
	case map[string]any:
		entries := make(map[string]hel.Value, len(x))
		for k, e := range x {
			entries[k] = jsonToValue(e)
		}
		return hel.MapValue(entries)
	default:
		return hel.StringValue(fmt.Sprintf("%v", x))
	}
}

// inferValue guesses a scalar Value's kind from a command-line string:
// true/false become Bool, a parseable float becomes Number, anything else
// is String.
func inferValue(s string) hel.Value {
	if s == "true" {
		return hel.BoolValue(true)
	}
	if s == "false" {
		return hel.BoolValue(false)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return hel.NumberValue(n)
	}
	return hel.StringValue(s)
}
