package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FileInfo holds metadata about a single file discovered during traversal.
type FileInfo struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root directory.
	Size        int64  // File size in bytes.
	ContentHash string // SHA-256 hex digest of the file content.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir string   // Root directory to walk.
	Include []string // Glob patterns; only matching files are included.
	Exclude []string // Glob patterns; matching files are excluded.
}

// Walk traverses the directory tree rooted at config.RootDir and returns
// metadata for every regular file that passes filtering, sorted by RelPath.
// Hidden files are skipped.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("walker: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("walker: %s is not a directory", root)
	}

	var files []FileInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		name := d.Name()

		// Skip default-excluded directories.
		if d.IsDir() {
			if path != root && (shouldExcludeDir(name) || name[0] == '.') {
				return filepath.SkipDir
			}
			return nil
		}

		// Only process regular, visible files.
		if !d.Type().IsRegular() || name[0] == '.' {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		// Apply include/exclude filters.
		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		hash, err := hashFile(path)
		if err != nil {
			return nil
		}

		files = append(files, FileInfo{
			Path:        path,
			RelPath:     filepath.ToSlash(relPath),
			Size:        info.Size(),
			ContentHash: hash,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// Report is the result of comparing a content tree against the assets the
// catalogs reference.
type Report struct {
	// Missing lists expected paths with no file on disk.
	Missing []string
	// Empty lists expected paths whose file has zero bytes; the loader
	// treats those as unavailable.
	Empty []string
	// Orphans lists files matching the patterns that no entry references.
	Orphans []string
	// Found is every expected file that exists.
	Found []FileInfo
}

// OK reports whether every expected asset is present and non-empty.
func (r Report) OK() bool { return len(r.Missing) == 0 && len(r.Empty) == 0 }

// Check walks root for files matching patterns (DefaultPatterns when empty)
// and compares them with the expected slash-separated paths.
func Check(root string, expected, patterns []string) (Report, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	files, err := Walk(WalkerConfig{RootDir: root})
	if err != nil {
		return Report{}, err
	}

	onDisk := make(map[string]FileInfo, len(files))
	for _, f := range files {
		onDisk[f.RelPath] = f
	}

	var r Report
	want := make(map[string]bool, len(expected))
	for _, p := range expected {
		p = filepath.ToSlash(p)
		if want[p] {
			continue
		}
		want[p] = true
		f, ok := onDisk[p]
		switch {
		case !ok:
			r.Missing = append(r.Missing, p)
		case f.Size == 0:
			r.Empty = append(r.Empty, p)
		default:
			r.Found = append(r.Found, f)
		}
	}
	for _, f := range files {
		if !want[f.RelPath] && MatchesInclude(f.RelPath, patterns) {
			r.Orphans = append(r.Orphans, f.RelPath)
		}
	}

	sort.Strings(r.Missing)
	sort.Strings(r.Empty)
	sort.Slice(r.Found, func(i, j int) bool { return r.Found[i].RelPath < r.Found[j].RelPath })
	return r, nil
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
