package patch

import (
	"path"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// node is one directory of the rendered tree.
type node struct {
	name  string
	dirs  map[string]*node
	files map[string]bool
}

func newNode(name string) *node {
	return &node{name: name, dirs: map[string]*node{}, files: map[string]bool{}}
}

// dir returns the directory at the slash-separated rel, creating it and its
// parents as needed.
func (n *node) dir(rel string) *node {
	cur := n
	if rel == "." || rel == "" {
		return cur
	}
	for _, part := range strings.Split(rel, "/") {
		child, ok := cur.dirs[part]
		if !ok {
			child = newNode(part)
			cur.dirs[part] = child
		}
		cur = child
	}
	return cur
}

// TreeInput lists what RenderTree draws.
type TreeInput struct {
	// Label is the first line of the tree, usually the project name and "/".
	Label string

	// Files are slash-separated paths relative to the root. Their parent
	// directories are drawn too.
	Files []string

	// RootDocument is listed under the root after every other root file.
	// Empty omits it.
	RootDocument string
}

// RenderTree draws files as a "├──"/"└──" tree. Directories come before
// files and each group is sorted case-insensitively.
func RenderTree(in TreeInput) []string {
	root := newNode("")
	for _, f := range in.Files {
		f = path.Clean(f)
		dir, file := path.Split(f)
		root.dir(strings.TrimSuffix(dir, "/")).files[file] = true
	}

	fold := cases.Fold()
	lines := []string{in.Label}
	var walk func(n *node, prefix string, extra string)
	walk = func(n *node, prefix string, extra string) {
		dirs := sortedKeys(fold, n.dirs)
		files := sortedKeys(fold, n.files)
		if extra != "" && !n.files[extra] {
			files = append(files, extra)
		}

		for i, name := range dirs {
			last := i == len(dirs)-1 && len(files) == 0
			connector, childPrefix := "├──", prefix+"│   "
			if last {
				connector, childPrefix = "└──", prefix+"    "
			}
			lines = append(lines, prefix+connector+" "+name+"/")
			walk(n.dirs[name], childPrefix, "")
		}
		for i, name := range files {
			connector := "├──"
			if i == len(files)-1 {
				connector = "└──"
			}
			lines = append(lines, prefix+connector+" "+name)
		}
	}
	walk(root, "", in.RootDocument)
	return lines
}

func sortedKeys[V any](fold cases.Caser, m map[string]V) []string {
	keys := make([]string, 0, len(m))
	folded := make(map[string]string, len(m))
	for k := range m {
		keys = append(keys, k)
		folded[k] = fold.String(k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if folded[keys[i]] != folded[keys[j]] {
			return folded[keys[i]] < folded[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
