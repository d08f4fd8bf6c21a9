// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the Go sources. Keys used
// through i18n.T that the primary locale lacks, and keys of the primary
// locale that another locale lacks, fail the run. Orphaned keys and
// literals that look like user-facing text are reported as warnings.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("key") and i18n.T("prefix."+id)
	callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// key-like literals, e.g. in tables of ids
	literalRe = regexp.MustCompile(`"([a-z_]+\.[a-z0-9\._]+)"`)
)

// report is the outcome of one lint run.
type report struct {
	Primary map[string]struct{}
	// Used holds literal keys passed to i18n.T. Keys ending in "." are
	// prefixes completed at runtime.
	Used map[string]struct{}
	// Mentioned holds every key-like literal, used for orphan detection.
	Mentioned map[string]struct{}

	Undefined    []string
	Missing      map[string][]string
	Orphaned     []string
	Untranslated map[string][]Location
}

// Failed reports whether the run found errors rather than warnings.
func (r *report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d translation keys used in source code.\n", len(r.Used))
	fmt.Printf("✅ Loaded %d keys from primary locale (%s).\n\n", len(r.Primary), primaryLocale)

	section("Undefined Keys (used in code but not in primary locale)", r.Undefined, "Undefined")
	section("Orphaned Keys (in primary locale but not used in code)", r.Orphaned, "Orphaned")

	fmt.Println("--- Checking for Missing Keys (in primary locale but not in others) ---")
	for _, file := range sortedKeys(r.Missing) {
		fmt.Printf("Checking %s:\n", file)
		if len(r.Missing[file]) == 0 {
			fmt.Println("  ✨ All keys present.")
			continue
		}
		for _, key := range r.Missing[file] {
			fmt.Printf("  - Missing: %s\n", key)
		}
	}

	fmt.Println("\n--- Checking for Potentially Untranslated Strings ---")
	if len(r.Untranslated) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, literal := range sortedKeys(r.Untranslated) {
		loc := r.Untranslated[literal][0]
		fmt.Printf("  - Potential: %q (found in %s:%d)\n", literal, loc.Filepath, loc.Line)
	}

	fmt.Println("\n--- Linter Finished ---")
	switch {
	case r.Failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(r.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func section(title string, keys []string, label string) {
	fmt.Printf("--- Checking for %s ---\n", title)
	if len(keys) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, key := range keys {
		fmt.Printf("  - %s: %s\n", label, key)
	}
	fmt.Println()
}

// lint compares the sources below root with the locale files in locales.
func lint(root, locales, primary string) (*report, error) {
	used, mentioned, err := findUsedKeys(root)
	if err != nil {
		return nil, fmt.Errorf("error finding used keys: %w", err)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(root, locales, primary))
	if err != nil {
		return nil, fmt.Errorf("error loading primary locale %q: %w", primary, err)
	}

	r := &report{
		Primary:   primaryKeys,
		Used:      used,
		Mentioned: mentioned,
		Missing:   make(map[string][]string),
	}

	for key := range used {
		if isPrefix(key) {
			if !hasPrefix(primaryKeys, key) {
				r.Undefined = append(r.Undefined, key+"*")
			}
			continue
		}
		if _, ok := primaryKeys[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	sort.Strings(r.Undefined)

	for key := range primaryKeys {
		if !isMentioned(key, used, mentioned) {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(root, locales, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("error finding locale files: %w", err)
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
		missing := []string{}
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		r.Missing[filepath.Base(file)] = missing
	}

	r.Untranslated, err = findUntranslatedStrings(root, primaryKeys)
	if err != nil {
		return nil, fmt.Errorf("error finding untranslated strings: %w", err)
	}
	return r, nil
}

func isPrefix(key string) bool {
	return strings.HasSuffix(key, ".")
}

func hasPrefix(keys map[string]struct{}, prefix string) bool {
	for key := range keys {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// isMentioned accepts exact literals and keys completed from a runtime
// prefix.
func isMentioned(key string, used, mentioned map[string]struct{}) bool {
	if _, ok := used[key]; ok {
		return true
	}
	if _, ok := mentioned[key]; ok {
		return true
	}
	for k := range used {
		if isPrefix(k) && strings.HasPrefix(key, k) {
			return true
		}
	}
	return false
}

// skipDir leaves out tools and directories the go tool ignores.
func skipDir(name string) bool {
	return name == "tools" || name == "testdata" ||
		(len(name) > 1 && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")))
}

// walkGoFiles calls fn for every non-test .go file below root.
func walkGoFiles(root string, fn func(path string, content string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, string(content))
	})
}

// findUsedKeys scans all .go files for i18n.T("key") calls and key-like
// literals.
func findUsedKeys(root string) (used, mentioned map[string]struct{}, err error) {
	used = make(map[string]struct{})
	mentioned = make(map[string]struct{})
	err = walkGoFiles(root, func(_ string, content string) error {
		for _, match := range callRe.FindAllStringSubmatch(content, -1) {
			used[match[1]] = struct{}{}
		}
		for _, match := range literalRe.FindAllStringSubmatch(content, -1) {
			mentioned[match[1]] = struct{}{}
		}
		return nil
	})
	return used, mentioned, err
}

// findUntranslatedStrings scans for hardcoded strings that might need translation.
func findUntranslatedStrings(root string, allKeys map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)
	// string literals passed to a function
	re := regexp.MustCompile(`([a-zA-Z0-9_]+\.)?([a-zA-Z0-9_]+)\("([^"]+)"`)
	// Output, logging and error plumbing is not user-facing text.
	blacklist := map[string]struct{}{
		"T": {}, "Print": {}, "Println": {}, "Printf": {}, "Fprintf": {}, "Fprintln": {},
		"Sprintf": {}, "Errorf": {}, "New": {}, "Fatal": {}, "Fatalf": {},
		"Debugf": {}, "Infof": {}, "Warnf": {}, "WriteString": {},
		"NewStyle": {}, "Color": {}, "WithKeys": {}, "MustCompile": {},
	}
	keyRe := regexp.MustCompile(`^[a-z_]+\.[a-z0-9\._]+$`)
	reAllCaps := regexp.MustCompile(`^[A-Z_]+$`)
	reFormatString := regexp.MustCompile(`^[\s%.,:;()#\d\w-]*%[\s\w-]*$`)

	err := walkGoFiles(root, func(path string, content string) error {
		for i, line := range strings.Split(content, "\n") {
			for _, match := range re.FindAllStringSubmatch(line, -1) {
				funcName, literal := match[2], match[3]

				if _, ok := blacklist[funcName]; ok {
					continue
				}
				if _, ok := allKeys[literal]; ok {
					continue
				}
				switch {
				case keyRe.MatchString(literal),
					len(literal) < 4,
					strings.HasPrefix(literal, "http"),
					strings.HasPrefix(literal, "#"),
					strings.HasPrefix(literal, "2006-"),
					reAllCaps.MatchString(literal),
					reFormatString.MatchString(literal) && !strings.Contains(literal, " "):
					continue
				}
				untranslated[literal] = append(untranslated[literal], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return untranslated, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated
// keys. The locales are flat already; nesting is accepted all the same.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
