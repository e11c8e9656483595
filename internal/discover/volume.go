package discover

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// fragment is one volume of a split set, carrying its parsed numeric index.
type fragment struct {
	path  string
	index int
}

// volumeGroups accumulates files seen during a walk and collapses split sets
// once the walk is complete. Grouping keys are exact suffix-stripped paths, so
// archives that merely share a textual prefix are never conflated.
type volumeGroups struct {
	plain []string
	// sevenZip groups *.7z.NNN fragments by their "base.7z" path.
	sevenZip map[string][]fragment
	// zipFragments groups *.zNN fragments by their extension-stripped path.
	zipFragments map[string][]fragment
	// zipFiles holds every *.zip by stripped path so standalone archives can
	// be told apart from split-set terminals after the walk.
	zipFiles map[string]string
}

func newVolumeGroups() *volumeGroups {
	return &volumeGroups{
		sevenZip:     make(map[string][]fragment),
		zipFragments: make(map[string][]fragment),
		zipFiles:     make(map[string]string),
	}
}

// add routes a walked file into its group. Matching is case-insensitive on
// the file name; 7z-family patterns win over ZIP-family ones. Files matching
// no pattern are ignored.
func (g *volumeGroups) add(path string) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case sevenZipExt(name):
		g.plain = append(g.plain, path)
	case isSevenZipVolume(name):
		base := path[:len(path)-len(name)+strings.LastIndexByte(name, '.')]
		g.sevenZip[base] = append(g.sevenZip[base], fragment{path: path, index: volumeIndex(name)})
	case zipExt(name):
		g.zipFiles[path[:len(path)-len(".zip")]] = path
	case isZipVolume(name):
		base := path[:len(path)-len(".z01")]
		g.zipFragments[base] = append(g.zipFragments[base], fragment{path: path, index: volumeIndex(name)})
	}
}

// representatives returns the final path set, one per logical archive,
// sorted. The result depends only on the accumulated membership, never on
// the order files were added.
func (g *volumeGroups) representatives() []string {
	paths := make([]string, 0, len(g.plain)+len(g.sevenZip)+len(g.zipFragments)+len(g.zipFiles))
	paths = append(paths, g.plain...)
	for _, frags := range g.sevenZip {
		paths = append(paths, firstVolume(frags))
	}
	for base, frags := range g.zipFragments {
		// The central directory lives in the terminal .zip, so it represents
		// the set whenever it was seen; otherwise fall back to the first
		// fragment and let verification report the set as incomplete.
		if terminal, ok := g.zipFiles[base]; ok {
			paths = append(paths, terminal)
			continue
		}
		paths = append(paths, firstVolume(frags))
	}
	for base, path := range g.zipFiles {
		if _, split := g.zipFragments[base]; split {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// firstVolume picks the fragment with the lowest numeric index, breaking ties
// by path so the choice is stable.
func firstVolume(frags []fragment) string {
	best := frags[0]
	for _, f := range frags[1:] {
		if f.index < best.index || (f.index == best.index && f.path < best.path) {
			best = f
		}
	}
	return best.path
}

// sevenZipExt reports whether the lower-cased name is a self-contained 7z
// archive.
func sevenZipExt(name string) bool {
	return strings.HasSuffix(name, ".7z")
}

// isSevenZipVolume reports whether the lower-cased name matches base.7z.NNN
// with a purely numeric volume suffix.
func isSevenZipVolume(name string) bool {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return false
	}
	if !allDigits(name[dot+1:]) {
		return false
	}
	return strings.HasSuffix(name[:dot], ".7z")
}

// zipExt reports whether the lower-cased name is a .zip file, standalone or
// the terminal volume of a split set.
func zipExt(name string) bool {
	return strings.HasSuffix(name, ".zip")
}

// isZipVolume reports whether the lower-cased name matches base.zNN.
func isZipVolume(name string) bool {
	if len(name) < len(".z01")+1 {
		return false
	}
	tail := name[len(name)-len(".z01"):]
	return tail[0] == '.' && tail[1] == 'z' && allDigits(tail[2:])
}

// volumeIndex parses the trailing numeric suffix of a volume name. It assumes
// the name already matched one of the volume patterns.
func volumeIndex(name string) int {
	dot := strings.LastIndexByte(name, '.')
	suffix := name[dot+1:]
	if suffix[0] == 'z' {
		suffix = suffix[1:]
	}
	index, _ := strconv.Atoi(suffix)
	return index
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
