package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"src.gdvar.dev/pkg/errutil"
)

// Parse parses a suite. The name is used for error messages, and as the suite
// name if the YAML doesn't have one.
func Parse(data []byte, name string) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	for i, c := range suite.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: case %d has no name", name, i)
		}
		if err := c.checkSkip(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return &suite, nil
}

// Load loads a suite from a file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	suite, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	suite.File = path
	return suite, nil
}

// LoadDir loads all the .yaml files in a directory, sorted by file name.
// Files that fail to load don't stop the others from loading; their errors
// are combined in the returned error.
func LoadDir(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".yaml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var suites []*Suite
	var errs []error
	for _, name := range names {
		suite, err := Load(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		suites = append(suites, suite)
	}
	return suites, errutil.Multi(errs...)
}

// LoadPaths loads suites from a mix of files and directories.
func LoadPaths(paths []string) ([]*Suite, error) {
	var suites []*Suite
	var errs []error
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if info.IsDir() {
			s, err := LoadDir(path)
			suites = append(suites, s...)
			errs = append(errs, err)
		} else {
			s, err := Load(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			suites = append(suites, s)
		}
	}
	return suites, errutil.Multi(errs...)
}
