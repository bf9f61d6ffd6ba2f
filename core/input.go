package core

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/huangsam/repochurn/schema"
)

// defaultHost is prepended to "owner/repo" shorthand arguments.
const defaultHost = "https://github.com/"

var shorthandPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// BuildDescriptors turns positional arguments and an optional JSON input file
// into descriptors. File entries come first and keep their order.
func BuildDescriptors(args []string, inputFile string) ([]schema.RepoDescriptor, error) {
	var repos []schema.RepoDescriptor
	if inputFile != "" {
		fromFile, err := LoadDescriptors(inputFile)
		if err != nil {
			return nil, err
		}
		repos = append(repos, fromFile...)
	}
	for _, arg := range args {
		repos = append(repos, DescriptorFromArg(arg))
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("no repositories given: pass owner/repo arguments or --input")
	}
	return repos, nil
}

// LoadDescriptors reads a JSON array of {"url", "name"} objects.
func LoadDescriptors(path string) ([]schema.RepoDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var repos []schema.RepoDescriptor
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return repos, nil
}

// DescriptorFromArg builds a descriptor from "owner/repo" shorthand, a URL or
// a local path. The name is the last path segment without ".git".
func DescriptorFromArg(arg string) schema.RepoDescriptor {
	arg = strings.TrimSpace(arg)
	url := strings.TrimRight(arg, "/")
	if shorthandPattern.MatchString(url) && !strings.HasPrefix(url, ".") {
		url = defaultHost + url
	}
	name := url
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		name = url[idx+1:]
	}
	return schema.RepoDescriptor{
		Name: strings.TrimSuffix(name, ".git"),
		URL:  url,
	}
}
