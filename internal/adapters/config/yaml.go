package config

import (
	"gopkg.in/yaml.v3"
)

// parseYAML walks the top-level mapping in document order.
func parseYAML(data []byte) (document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return document{}, err
	}

	var doc document
	if len(root.Content) == 0 {
		return doc, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return doc, nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		value := mapping.Content[i+1]
		if value.Kind != yaml.MappingNode {
			continue
		}

		switch {
		case name == reservedSettingsKey:
			if err := value.Decode(&doc.settings); err != nil {
				return document{}, err
			}
		case !hasKey(value, "packages"):
			doc.ignored = append(doc.ignored, name)
		default:
			var section packageSection
			if err := value.Decode(&section); err != nil {
				return document{}, err
			}
			if name == flatKey {
				flat := section
				doc.flat = &flat
				continue
			}
			doc.sections = append(doc.sections, namedSection{name: name, section: section})
		}
	}

	return doc, nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}
