// Package docs holds the markdown help topics shipped with the binary.
package docs

import (
	"embed"
	"io/fs"
	"slices"
	"strings"
)

//go:embed content/*.md
var content embed.FS

var topicsFS = mustSub(content, "content")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Topics lists topic names (file names without ".md"), sorted.
func Topics() []string {
	names, _ := fs.Glob(topicsFS, "*.md")
	topics := make([]string, 0, len(names))
	for _, n := range names {
		if t := strings.TrimSuffix(n, ".md"); t != "" {
			topics = append(topics, t)
		}
	}
	slices.Sort(topics)
	return topics
}

// Get looks a topic up case-insensitively.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, `/\`) {
		return "", false
	}
	b, err := fs.ReadFile(topicsFS, topic+".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}

// MustGet is Get for topics that ship with the binary.
func MustGet(topic string) string {
	body, ok := Get(topic)
	if !ok {
		panic("docs: missing topic " + topic)
	}
	return body
}
