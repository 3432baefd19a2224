package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/wireframe/engine/core"
)

type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	AssetTypeConfig
)

func (t AssetType) String() string {
	switch t {
	case AssetTypeConfig:
		return "config"
	}
	return "none"
}

type AssetInfo struct {
	Path       string
	Type       AssetType
	LastLoaded time.Time
}

// ChangeHandler is called from the watcher goroutine for every created or
// modified asset.
type ChangeHandler func(info AssetInfo)

// AssetManager indexes asset files on disk and reports changes to them.
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[AssetType]Loader
	// Directories watched only for the files pinned by Watch.
	pinnedDirs map[string]bool
	pinned     map[string]bool
	onChange   ChangeHandler

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

	return &AssetManager{
		assets:     make(map[string]AssetInfo),
		loaders:    make(map[AssetType]Loader),
		pinnedDirs: make(map[string]bool),
		pinned:     make(map[string]bool),
		fsnotify:   fsWatch,
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}, nil
}

// Initialize indexes every asset under assetsDir and watches the tree.
func (am *AssetManager) Initialize(assetsDir string) error {
	am.ensureStarted()
	return am.addRecursive(assetsDir)
}

/**
 * @brief Watches a single file. The parent directory is watched so editors
 * that replace the file on save are still seen; other files of that
 * directory are ignored.
 */
func (am *AssetManager) Watch(file string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	path, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if determineAssetType(path) == AssetTypeNone {
		return fmt.Errorf("%s is not a known asset type", file)
	}
	am.ensureStarted()

	dir := filepath.Dir(path)
	am.mutex.Lock()
	am.pinned[path] = true
	am.pinnedDirs[dir] = true
	am.mutex.Unlock()

	if err := am.fsnotify.Add(dir); err != nil {
		return err
	}
	am.handleFileEvent(path)
	core.LogDebug("watching %s", path)
	return nil
}

func (am *AssetManager) OnChange(fn ChangeHandler) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.onChange = fn
}

// Register loaders for each asset type
func (am *AssetManager) RegisterLoader(assetType AssetType, loader Loader) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.loaders[assetType] = loader
}

// Asset returns the index entry of a file.
func (am *AssetManager) Asset(path string) (AssetInfo, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return AssetInfo{}, false
	}
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[abs]
	return info, ok
}

// Load an asset using the appropriate loader
func (am *AssetManager) LoadAsset(path string) (interface{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	asset, exists := am.assets[abs]
	if !exists {
		asset = AssetInfo{Path: abs, Type: determineAssetType(abs)}
	}
	loader, loaderExists := am.loaders[asset.Type]
	if loaderExists {
		// Load or reload asset from disk if necessary
		asset.LastLoaded = time.Now()
		am.assets[abs] = asset // Update the loaded time
	}
	am.mutex.Unlock()

	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	return loader.Load(abs)
}

// Shutdown stops the watcher goroutine and releases the fsnotify handle.
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

func (am *AssetManager) ensureStarted() {
	if am.started {
		return
	}
	am.started = true
	go am.start()
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	return am.watchRecursive(abs)
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 && !am.isPinnedDir(filepath.Dir(e.Name)) {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogWarn("unable to watch %s: %s", e.Name, err)
					}
				}
				continue
			}
			if !am.accepts(e.Name) {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if info, ok := am.handleFileEvent(e.Name); ok {
					am.notify(info)
				}
			}
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
			}

		case e, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) isPinnedDir(dir string) bool {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return am.pinnedDirs[dir]
}

func (am *AssetManager) accepts(path string) bool {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	if am.pinnedDirs[filepath.Dir(path)] {
		return am.pinned[path]
	}
	return true
}

func (am *AssetManager) notify(info AssetInfo) {
	am.mutex.RLock()
	fn := am.onChange
	am.mutex.RUnlock()
	if fn != nil {
		fn(info)
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) (AssetInfo, bool) {
	assetType := determineAssetType(path)
	if assetType == AssetTypeNone {
		return AssetInfo{}, false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	info := AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: am.assets[path].LastLoaded,
	}
	am.assets[path] = info
	return info, true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) AssetType {
	switch filepath.Ext(path) {
	case ".toml":
		return AssetTypeConfig
	default:
		return AssetTypeNone
	}
}
