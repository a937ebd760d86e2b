package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AddDNSRecord appends a DNS record to a domain in the config file.
// It edits the YAML node tree directly so existing structure and comments
// survive the write. An identical record is not added twice.
func AddDNSRecord(configPath, domainName string, rec DNSRecord) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse as yaml.Node to preserve structure
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	domainsNode := findMapValue(docNode, "domains")
	if domainsNode == nil {
		return fmt.Errorf("'domains' key not found in config")
	}

	domainNode := findMapValue(domainsNode, domainName)
	if domainNode == nil {
		return fmt.Errorf("domain '%s' not found in config", domainName)
	}

	// Find or create the records sequence
	recordsNode := findMapValue(domainNode, "records")
	if recordsNode == nil {
		recordsNode = &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: []*yaml.Node{},
		}
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: "records",
		}
		domainNode.Content = append(domainNode.Content, keyNode, recordsNode)
	}

	// Skip when an identical record already exists
	for _, item := range recordsNode.Content {
		existing := DNSRecord{
			Type:  scalarValue(findMapValue(item, "type")),
			Name:  scalarValue(findMapValue(item, "name")),
			Value: scalarValue(findMapValue(item, "value")),
		}
		if existing == rec {
			return nil
		}
	}

	recordNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}
	appendScalarPair(recordNode, "type", rec.Type)
	if rec.Name != "" {
		appendScalarPair(recordNode, "name", rec.Name)
	}
	appendScalarPair(recordNode, "value", rec.Value)
	recordsNode.Content = append(recordsNode.Content, recordNode)

	// Write back to file
	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}

// scalarValue returns a scalar node's value, or "" for nil or non-scalars.
func scalarValue(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}

// appendScalarPair appends a string key-value pair to a mapping node.
func appendScalarPair(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}
