package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"
)

// readmeTopics extracts the topic list from readme.md, which is the page
// users discover topics from.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics_ReadmeIsInSync(t *testing.T) {
	// Every topic the readme advertises must load, and every embedded topic
	// must be advertised.
	inReadme := readmeTopics(t)

	for _, topic := range inReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics failed: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(inReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopics_Star(t *testing.T) {
	all, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) failed: %v", err)
	}
	for _, topic := range []string{"# Recording", "# Reporting", "# Insight"} {
		if !strings.Contains(all, topic) {
			t.Errorf("Topics(*) does not contain %q", topic)
		}
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Errorf("Topic on an unknown name succeeded, want error")
	}
}
