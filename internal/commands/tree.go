// Package commands contains the data collection logic behind the structure document.
package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/temirov/mdstructure/internal/types"
)

const (
	// warningSkipSubdirMessage is logged when a subdirectory cannot be read.
	warningSkipSubdirMessage = "skipping unreadable subdirectory"
	// debugSymlinkMessage is logged when a symbolic link to a directory is not followed.
	debugSymlinkMessage = "not following directory symlink"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"

	// errorBuildTreeFormat is used when building the tree fails.
	errorBuildTreeFormat = "building tree for %s: %w"

	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// GetTreeData walks rootDirectoryPath and returns its root node at depth zero.
// Excluded directories are pruned before descending. Unreadable subdirectories
// are kept as empty nodes and logged; an unreadable root is an error.
func (treeBuilder *TreeBuilder) GetTreeData(rootDirectoryPath string) (*types.TreeOutputNode, error) {
	absoluteRootDirPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}

	rootNode := &types.TreeOutputNode{
		Path:  absoluteRootDirPath,
		Name:  filepath.Base(absoluteRootDirPath),
		Type:  types.NodeTypeDirectory,
		Depth: 0,
	}
	if buildError := treeBuilder.populateDirectory(rootNode); buildError != nil {
		return nil, fmt.Errorf(errorBuildTreeFormat, rootDirectoryPath, buildError)
	}
	return rootNode, nil
}

// populateDirectory fills the files and subdirectories of directoryNode, recursing depth-first.
func (treeBuilder *TreeBuilder) populateDirectory(directoryNode *types.TreeOutputNode) error {
	directoryEntries, readDirectoryError := os.ReadDir(directoryNode.Path)
	if readDirectoryError != nil {
		return fmt.Errorf(errorReadDirectoryFormat, directoryNode.Path, readDirectoryError)
	}

	var fileNames []string
	var subdirectoryNodes []*types.TreeOutputNode
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		childPath := filepath.Join(directoryNode.Path, entryName)
		if directoryEntry.IsDir() {
			if treeBuilder.Policy.ShouldSkipDirectory(entryName) {
				continue
			}
			subdirectoryNodes = append(subdirectoryNodes, &types.TreeOutputNode{
				Path:  childPath,
				Name:  entryName,
				Type:  types.NodeTypeDirectory,
				Depth: directoryNode.Depth + 1,
			})
			continue
		}
		if directoryEntry.Type()&fs.ModeSymlink != 0 && isDirectoryTarget(childPath) {
			treeBuilder.Logger.Debug(debugSymlinkMessage, zap.String("path", childPath))
			continue
		}
		if treeBuilder.Policy.ShouldSkipFile(entryName) {
			continue
		}
		fileNames = append(fileNames, entryName)
	}

	sort.Strings(fileNames)
	for _, fileName := range fileNames {
		directoryNode.Files = append(directoryNode.Files, treeBuilder.buildFileNode(directoryNode, fileName))
	}

	for _, subdirectoryNode := range subdirectoryNodes {
		if buildError := treeBuilder.populateDirectory(subdirectoryNode); buildError != nil {
			treeBuilder.Logger.Warn(warningSkipSubdirMessage, zap.String("path", subdirectoryNode.Path), zap.Error(buildError))
			subdirectoryNode.Files = nil
			subdirectoryNode.Directories = nil
		}
		directoryNode.Directories = append(directoryNode.Directories, subdirectoryNode)
	}
	return nil
}

// buildFileNode creates the node for one retained file, summarizing recognized sources.
func (treeBuilder *TreeBuilder) buildFileNode(directoryNode *types.TreeOutputNode, fileName string) *types.TreeOutputNode {
	fileNode := &types.TreeOutputNode{
		Path:  filepath.Join(directoryNode.Path, fileName),
		Name:  fileName,
		Type:  types.NodeTypeFile,
		Depth: directoryNode.Depth + 1,
	}
	if treeBuilder.Summarizer != nil && treeBuilder.isSourceFile(fileName) {
		summary := treeBuilder.Summarizer.Summarize(fileNode.Path)
		fileNode.Summary = &summary
	}
	return fileNode
}

// isDirectoryTarget reports whether the symbolic link at linkPath resolves to a directory.
func isDirectoryTarget(linkPath string) bool {
	targetInfo, statError := os.Stat(linkPath)
	return statError == nil && targetInfo.IsDir()
}
