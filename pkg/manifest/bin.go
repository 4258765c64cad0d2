package manifest

import (
	"path"
	"strings"
)

// ListDirectory lists the file entries of a directory relative to the
// package root, used to resolve the legacy "directories.bin" fallback.
type ListDirectory func(dir string) ([]string, error)

// BinEntries is the normalized bin map: name -> package-relative path.
type BinEntries struct {
	Entries map[string]string
	// Order lists entry names for "no name requested" lookups. For a string
	// bin or a directories.bin listing it is definition order; for an object
	// bin it is Go map iteration order, not the order of the manifest's keys.
	Order []string
}

// ParseBin normalizes the "bin" field. A string value is keyed by the
// package's unscoped local name; an object value is preserved as given
// (each path validated and normalized). When bin is absent, dirBin (from
// "directories.bin") is consulted via list.
func ParseBin(packageName string, bin any, dirBin string, list ListDirectory) (BinEntries, []Diagnostic) {
	out := BinEntries{Entries: map[string]string{}}

	switch v := bin.(type) {
	case string:
		name := unscopedName(packageName)
		normalized, errs := normalizeBinPath(name, v)
		if len(errs) > 0 {
			return out, errs
		}
		out.Entries[name] = normalized
		out.Order = []string{name}
		return out, nil

	case map[string]any:
		var errs []Diagnostic
		for name, raw := range v {
			s, ok := raw.(string)
			if !ok {
				continue
			}
			if !validBinName(name) {
				errs = append(errs, errDiag("bin."+name, CodeInvalidBinName, "invalid bin entry name", name))
				continue
			}
			normalized, pathErrs := normalizeBinPath(name, s)
			if len(pathErrs) > 0 {
				errs = append(errs, pathErrs...)
				continue
			}
			out.Entries[name] = normalized
			out.Order = append(out.Order, name)
		}
		return out, errs

	case nil:
		if dirBin == "" || list == nil {
			return out, nil
		}
		entries, err := list(dirBin)
		if err != nil {
			return out, nil
		}
		for _, entry := range entries {
			name := strings.TrimSuffix(path.Base(entry), path.Ext(entry))
			normalized, errs := normalizeBinPath(name, path.Join(dirBin, entry))
			if len(errs) > 0 {
				continue
			}
			out.Entries[name] = normalized
			out.Order = append(out.Order, name)
		}
		return out, nil

	default:
		return out, nil
	}
}

func unscopedName(name string) string {
	if idx := strings.Index(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

func validBinName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

// normalizeBinPath rejects absolute paths, parent-directory traversal, and
// URI-scheme paths, then ensures a "./" prefix.
func normalizeBinPath(name, p string) (string, []Diagnostic) {
	if p == "" {
		return "", []Diagnostic{errDiag("bin."+name, CodeInvalidBinName, "bin path must not be empty", p)}
	}
	if strings.Contains(p, "://") {
		return "", []Diagnostic{errDiag("bin."+name, CodeInvalidBinName, "bin path must not be a URI", p)}
	}
	if path.IsAbs(p) {
		return "", []Diagnostic{errDiag("bin."+name, CodeInvalidBinName, "bin path must not be absolute", p)}
	}
	cleaned := path.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", []Diagnostic{errDiag("bin."+name, CodeInvalidBinName, "bin path must not escape the package", p)}
	}
	if !strings.HasPrefix(cleaned, "./") {
		cleaned = "./" + cleaned
	}
	return cleaned, nil
}

// BinLookup is the outcome of resolving a single bin name request.
type BinLookup struct {
	Found      bool
	Path       string
	KnownNames []string
}

// ResolveBin finds the entry matching name; an empty name returns the entry
// named first in Order. For an object bin with several entries, which entry
// that is is not defined.
func ResolveBin(entries BinEntries, name string) BinLookup {
	if name == "" {
		if len(entries.Order) == 0 {
			return BinLookup{Found: false, KnownNames: entries.Order}
		}
		first := entries.Order[0]
		return BinLookup{Found: true, Path: entries.Entries[first]}
	}
	if p, ok := entries.Entries[name]; ok {
		return BinLookup{Found: true, Path: p}
	}
	return BinLookup{Found: false, KnownNames: entries.Order}
}
