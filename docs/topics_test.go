package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded with GetTopic.
	// 2. Every .md file in this directory (readme.md excluded) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range topicsInReadme {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("expected at least one topic")
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("readme must not be listed as a topic")
		}
	}
	// sorted output keeps `topic '*'` deterministic
	for i := 1; i < len(topics); i++ {
		if topics[i-1] > topics[i] {
			t.Errorf("topics not sorted: %q before %q", topics[i-1], topics[i])
		}
	}
}

func TestTopicsAreWellFormed(t *testing.T) {
	// Every topic must parse as markdown and start with a level-1 heading,
	// the glamour renderer relies on it for the title.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("%s does not start with a heading", file)
			}
			if heading.Level != 1 {
				t.Errorf("%s starts with a level-%d heading, want level 1", file, heading.Level)
			}
		})
	}
}
