package jobs

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/timzifer/wellcad/config"
	"github.com/timzifer/wellcad/params"
)

// processConfig returns the configuration payload of a step: the rendered
// params mapping, or the config string when no params are given.
func processConfig(step config.StepConfig) (string, error) {
	if step.Params.Kind == 0 {
		return step.Config, nil
	}
	if step.Config != "" {
		return "", fmt.Errorf("config and params are mutually exclusive")
	}
	return renderParams(&step.Params)
}

// renderParams renders a YAML mapping as an inline parameter string, keeping
// the key order of the document. Numbers keep the precision they were
// written with.
func renderParams(node *yaml.Node) (string, error) {
	if node.Kind != yaml.MappingNode {
		return "", fmt.Errorf("params must be a mapping")
	}
	b := params.New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]
		switch value.Kind {
		case yaml.ScalarNode:
			if err := setScalar(b, key, value); err != nil {
				return "", fmt.Errorf("param %s: %w", key, err)
			}
		case yaml.SequenceNode:
			items := make([]string, 0, len(value.Content))
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode {
					return "", fmt.Errorf("param %s: list items must be scalars", key)
				}
				items = append(items, item.Value)
			}
			b.List(key, items...)
		default:
			return "", fmt.Errorf("param %s: unsupported value", key)
		}
	}
	if err := b.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func setScalar(b *params.Builder, key string, value *yaml.Node) error {
	switch value.ShortTag() {
	case "!!int", "!!float":
		d, err := decimal.NewFromString(value.Value)
		if err != nil {
			return err
		}
		b.Decimal(key, d)
	case "!!bool":
		var v bool
		if err := value.Decode(&v); err != nil {
			return err
		}
		b.Bool(key, v)
	case "!!null":
		b.Set(key, "")
	default:
		b.Set(key, value.Value)
	}
	return nil
}
