package snapshot

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// JSONEncoder writes the canonical snapshot shape. Pretty output is used for
// exports offered to the user, compact output for the persisted blob.
type JSONEncoder struct {
	Pretty bool
}

func (e JSONEncoder) Encode(s Snapshot) ([]byte, error) {
	w := toWire(s)
	if e.Pretty {
		return json.MarshalIndent(w, "", "  ")
	}
	return json.Marshal(w)
}

func (JSONEncoder) Ext() string { return "json" }

// YAMLEncoder is an export-only alternative encoding. Import accepts JSON
// only, so there is no YAML decoder.
type YAMLEncoder struct{}

// yamlNumber emits an amount as a plain scalar. Marshaling the wire form's
// json.Number directly would quote it, since its underlying kind is string.
type yamlNumber json.Number

func (n yamlNumber) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(n)}, nil
}

type yamlMovement struct {
	ID      string     `yaml:"id"`
	Date    string     `yaml:"date"`
	Subject string     `yaml:"subject"`
	Kind    string     `yaml:"kind"`
	Amount  yamlNumber `yaml:"amount"`
}

type yamlBalances struct {
	Bank  yamlNumber `yaml:"bank"`
	Cash  yamlNumber `yaml:"cash"`
	Total yamlNumber `yaml:"total"`
}

type yamlSnapshot struct {
	Movements []yamlMovement `yaml:"movements"`
	Balances  yamlBalances   `yaml:"balances"`
}

func toYAML(w snapshotWire) yamlSnapshot {
	y := yamlSnapshot{
		Movements: make([]yamlMovement, 0, len(w.Movements)),
		Balances: yamlBalances{
			Bank:  yamlNumber(w.Balances.Bank),
			Cash:  yamlNumber(w.Balances.Cash),
			Total: yamlNumber(w.Balances.Total),
		},
	}
	for _, m := range w.Movements {
		y.Movements = append(y.Movements, yamlMovement{
			ID:      m.ID,
			Date:    m.Date,
			Subject: m.Subject,
			Kind:    m.Kind,
			Amount:  yamlNumber(m.Amount),
		})
	}
	return y
}

func (YAMLEncoder) Encode(s Snapshot) ([]byte, error) {
	b, err := yaml.Marshal(toYAML(toWire(s)))
	if err != nil {
		return nil, fmt.Errorf("encode yaml snapshot: %w", err)
	}
	return b, nil
}

func (YAMLEncoder) Ext() string { return "yaml" }

// EncoderFor maps a user-supplied format name to an encoder. JSON is the
// default for the empty string.
func EncoderFor(format string) (Encoder, error) {
	switch format {
	case "", "json":
		return JSONEncoder{Pretty: true}, nil
	case "yaml", "yml":
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
