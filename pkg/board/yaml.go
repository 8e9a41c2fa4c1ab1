package board

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// statsNode renders an attribute register as a mapping of its raw word
// followed by each named range in bit order.
func statsNode(word uint16, fields []NamedRange) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, v uint16) {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(v), 10)},
		)
	}
	add("raw", word)
	for _, f := range fields {
		add(f.Name, f.Range.Extract(word))
	}
	return n
}

// MarshalYAML implements yaml.Marshaler.
func (s SectorStats) MarshalYAML() (interface{}, error) {
	return statsNode(uint16(s), SectorStatsFields), nil
}

// MarshalYAML implements yaml.Marshaler.
func (w WallStats) MarshalYAML() (interface{}, error) {
	return statsNode(uint16(w), WallStatsFields), nil
}

// MarshalYAML implements yaml.Marshaler.
func (s SpriteStats) MarshalYAML() (interface{}, error) {
	return statsNode(uint16(s), SpriteStatsFields), nil
}
