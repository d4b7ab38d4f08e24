package config

import (
	"github.com/BurntSushi/toml"
)

// parseTOML walks the top-level tables in document order.
func parseTOML(data []byte) (document, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return document{}, err
	}

	var doc document
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		if md.Type(name) != "Hash" {
			continue
		}

		switch {
		case name == reservedSettingsKey:
			if err := md.PrimitiveDecode(raw[name], &doc.settings); err != nil {
				return document{}, err
			}
		case !md.IsDefined(name, "packages"):
			doc.ignored = append(doc.ignored, name)
		default:
			var section packageSection
			if err := md.PrimitiveDecode(raw[name], &section); err != nil {
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
