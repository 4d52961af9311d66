package resource

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/plus3/we/engine"
)

// ShaderWatcher recompiles a shader when its source files change on disk.
//
// File events arrive on the fsnotify goroutine and are only recorded there;
// the recompile happens in Poll, which must be called from the thread that
// owns the rendering context, typically as a game loop action.
type ShaderWatcher struct {
	watcher  *fsnotify.Watcher
	shader   engine.Shader
	vertPath string
	fragPath string
	changed  chan struct{}
	errs     chan error
	done     chan struct{}
}

// WatchShader starts watching the directories containing vertPath and fragPath.
func WatchShader(shader engine.Shader, vertPath, fragPath string) (*ShaderWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create shader watcher: %w", err)
	}

	w := &ShaderWatcher{
		watcher:  watcher,
		shader:   shader,
		vertPath: filepath.Clean(vertPath),
		fragPath: filepath.Clean(fragPath),
		changed:  make(chan struct{}, 1),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}

	// Editors often replace files on save, so watch the parent directories.
	dirs := map[string]bool{filepath.Dir(w.vertPath): true, filepath.Dir(w.fragPath): true}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

func (w *ShaderWatcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if name != w.vertPath && name != w.fragPath {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// Poll recompiles the shader if a source file changed since the last call.
// It reports whether a reload was attempted. Compile failures are logged and
// returned; the previously compiled program stays in use.
func (w *ShaderWatcher) Poll() (bool, error) {
	select {
	case err := <-w.errs:
		engine.Logger().Error("shader watcher failed", "error", err)
	default:
	}

	select {
	case <-w.changed:
	default:
		return false, nil
	}

	code, err := LoadShaderCode(w.vertPath, w.fragPath)
	if err == nil {
		err = w.shader.Compile(code)
	}
	if err != nil {
		engine.Logger().Error("shader reload failed", "vert", w.vertPath, "frag", w.fragPath, "error", err)
		return true, err
	}

	engine.Logger().Info("shader reloaded", "vert", w.vertPath, "frag", w.fragPath)
	return true, nil
}

// Close stops watching.
func (w *ShaderWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
