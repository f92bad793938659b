// Package tree builds the hierarchical directory listing for discovered files
// and renders it as an indented box-drawing diagram.
package tree

import (
	"sort"
	"strings"

	"github.com/temirov/code2md/internal/utils"
)

const (
	branchConnector     = "├── "
	lastBranchConnector = "└── "
	continuationIndent  = "│   "
	lastBranchIndent    = "    "
	directorySuffix     = "/"
)

// treeNode is a single directory or file entry. Nodes own their children
// exclusively; the structure is a strict tree built from path segments.
type treeNode struct {
	name        string
	isDirectory bool
	children    []*treeNode
}

// addPath inserts one slash-separated path, segment by segment, reusing an
// existing child at each level. The final segment becomes a file node, every
// intermediate segment a directory node.
func (node *treeNode) addPath(segments []string) {
	if len(segments) == 0 {
		return
	}
	segmentName := segments[0]
	remainingSegments := segments[1:]
	childIsDirectory := len(remainingSegments) > 0

	for _, existingChild := range node.children {
		if existingChild.name == segmentName {
			if childIsDirectory {
				existingChild.isDirectory = true
			}
			existingChild.addPath(remainingSegments)
			return
		}
	}

	newChild := &treeNode{name: segmentName, isDirectory: childIsDirectory}
	newChild.addPath(remainingSegments)
	node.children = append(node.children, newChild)
}

// sortChildren orders every level with directories before files and
// case-insensitive alphabetical order within each kind.
func (node *treeNode) sortChildren() {
	sort.SliceStable(node.children, func(firstIndex, secondIndex int) bool {
		firstChild := node.children[firstIndex]
		secondChild := node.children[secondIndex]
		if firstChild.isDirectory != secondChild.isDirectory {
			return firstChild.isDirectory
		}
		firstName := strings.ToLower(firstChild.name)
		secondName := strings.ToLower(secondChild.name)
		if firstName == secondName {
			return firstChild.name < secondChild.name
		}
		return firstName < secondName
	})
	for _, child := range node.children {
		child.sortChildren()
	}
}

// appendLines renders the children of node beneath the accumulated prefix.
func (node *treeNode) appendLines(prefix string, lines *[]string) {
	childCount := len(node.children)
	for childIndex, child := range node.children {
		isLastChild := childIndex == childCount-1
		connector := branchConnector
		childPrefix := prefix + continuationIndent
		if isLastChild {
			connector = lastBranchConnector
			childPrefix = prefix + lastBranchIndent
		}
		suffix := ""
		if child.isDirectory {
			suffix = directorySuffix
		}
		*lines = append(*lines, prefix+connector+child.name+suffix)
		if child.isDirectory {
			child.appendLines(childPrefix, lines)
		}
	}
}

// RenderTree builds the directory tree for the discovered files relative to
// basePath and renders it as lines. The synthetic root is emitted as a single
// header line "<projectLabel>/"; an empty file list yields just that header.
// Rendering is purely structural and never touches file contents.
func RenderTree(filePaths []string, basePath string, projectLabel string) []string {
	rootNode := &treeNode{name: projectLabel, isDirectory: true}

	for _, filePath := range filePaths {
		relativePath := utils.RelativePathOrSelf(filePath, basePath)
		if relativePath == "." || relativePath == "" {
			continue
		}
		rootNode.addPath(strings.Split(relativePath, "/"))
	}

	rootNode.sortChildren()

	lines := []string{projectLabel + directorySuffix}
	rootNode.appendLines("", &lines)
	return lines
}
