// Package docs embeds the user manual of cgt, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// readme is the topic shown by default. It lists the other topics.
const readme = "readme"

// GetTopic returns the markdown of a documentation topic. The "*" topic is
// every topic but the readme.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}
	b, err := fs.ReadFile(docs, topic+".md")
	if err != nil {
		topics, _ := GetAllTopics()
		return "", fmt.Errorf("unknown topic %q, available topics are %s: %w", topic, strings.Join(topics, ", "), err)
	}
	return string(b), nil
}

// GetTopics returns the markdown of several topics, one after the other.
func GetTopics(topics ...string) (string, error) {
	parts := make([]string, 0, len(topics))
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimRight(content, "\n")+"\n")
	}
	return strings.Join(parts, "\n"), nil
}

// GetAllTopics returns the sorted names of the documentation topics, readme excluded.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != readme {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

// Title returns the first heading of a topic.
func Title(topic string) (string, error) {
	content, err := GetTopic(topic)
	if err != nil {
		return "", err
	}
	first, _, _ := strings.Cut(content, "\n")
	return strings.TrimSpace(strings.TrimLeft(first, "#")), nil
}
