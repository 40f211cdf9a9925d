package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/softrast/engine/assets/loaders"
	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/scene"
)

var ErrManagerClosed = errors.New("asset manager already closed")

type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	AssetTypeScene
)

type AssetInfo struct {
	Path       string
	Type       AssetType
	LastLoaded time.Time
}

// Loader turns a file into meshes.
type Loader interface {
	Load(path string) ([]*scene.Mesh, error)
}

/**
 * @brief Indexes scene files under an assets directory and watches the
 * ones the game loaded. Changes are never applied directly: a
 * EVENT_CODE_SCENE_CHANGED event is posted so the frame thread can reload
 * between frames.
 */
type AssetManager struct {
	assets  map[string]AssetInfo
	watched map[string]struct{}
	loaders map[AssetType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	started  bool
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	am := &AssetManager{
		assets:   make(map[string]AssetInfo),
		watched:  make(map[string]struct{}),
		loaders:  make(map[AssetType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	am.registerLoader(AssetTypeScene, &loaders.MeshLoader{})
	return am, nil
}

// Initialize starts the watcher goroutine and indexes assetsDir, if given.
func (am *AssetManager) Initialize(assetsDir string) error {
	if am.isClosed {
		return ErrManagerClosed
	}
	if !am.started {
		am.started = true
		go am.start()
	}

	if assetsDir == "" {
		return nil
	}
	return am.indexRecursive(assetsDir)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType AssetType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadMeshes loads every mesh of the scene file at path.
func (am *AssetManager) LoadMeshes(path string) ([]*scene.Mesh, error) {
	assetType := determineAssetType(path)
	loader, exists := am.loaders[assetType]
	if !exists {
		return nil, fmt.Errorf("no loader registered for %s", path)
	}

	meshes, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	am.handleFileEvent(path)
	return meshes, nil
}

// Watch reports later changes of the file at path through the event queue.
// The parent directory is watched so editors that replace files on save are
// still picked up.
func (am *AssetManager) Watch(path string) error {
	if am.isClosed {
		return ErrManagerClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := am.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	am.mutex.Lock()
	am.watched[abs] = struct{}{}
	am.mutex.Unlock()
	core.LogDebug("watching %s", abs)
	return nil
}

// Assets returns a copy of the current index.
func (am *AssetManager) Assets() []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	infos := make([]AssetInfo, 0, len(am.assets))
	for _, info := range am.assets {
		infos = append(infos, info)
	}
	return infos
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	if !am.started {
		return am.fsnotify.Close()
	}
	close(am.done)
	<-am.stopped
	return nil
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
				if am.isWatched(e.Name) {
					core.EventPost(core.EventContext{
						Type: core.EVENT_CODE_SCENE_CHANGED,
						Data: &core.FileEvent{Path: e.Name},
					})
				}
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) isWatched(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	_, ok := am.watched[abs]
	return ok
}

// indexRecursive records every scene file below root.
func (am *AssetManager) indexRecursive(root string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	wd = wd + string(filepath.Separator)
	return filepath.Walk(root, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			am.handleFileEvent(strings.TrimPrefix(walkPath, wd))
		}
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) {
	assetType := determineAssetType(path)
	if assetType == AssetTypeNone {
		return
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) AssetType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".babylon", ".json":
		return AssetTypeScene
	default:
		return AssetTypeNone
	}
}
