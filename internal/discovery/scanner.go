package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner locates test modules, source files and result documents
type Scanner struct {
	skipDirs     map[string]bool
	moduleSuffix string
	sourceExt    string
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string, moduleSuffix, sourceExt string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{
		skipDirs:     skipMap,
		moduleSuffix: moduleSuffix,
		sourceExt:    sourceExt,
	}
}

// Modules returns all test module directories directly under root, sorted by
// name. A test module is a directory whose name ends with the module suffix.
func (s *Scanner) Modules(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("modules root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("modules root is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var modules []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), s.moduleSuffix) {
			modules = append(modules, filepath.Join(root, entry.Name()))
		}
	}
	sort.Strings(modules)

	return modules, nil
}

// Sources returns all source files under a module's src directory. A module
// without a src directory contributes no files.
func (s *Scanner) Sources(moduleDir string) ([]string, error) {
	srcDir := filepath.Join(moduleDir, "src")
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), s.sourceExt) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// Reports returns all XML result documents under root, in discovery order
func (s *Scanner) Reports(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("results path does not exist: %s", root)
	}
	if !info.IsDir() {
		// A single result file is accepted directly
		if strings.HasSuffix(root, ".xml") {
			return []string{root}, nil
		}
		return nil, fmt.Errorf("results path is not a directory: %s", root)
	}

	var reports []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), ".xml") {
			reports = append(reports, path)
		}
		return nil
	})

	return reports, err
}
