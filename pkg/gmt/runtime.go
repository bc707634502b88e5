package gmt

import (
	"context"
	"errors"
	"sync"

	"github.com/genericmappingtools/gmt-go/pkg/gmt/logging"
)

// Runtime owns the library handle and the modern-mode session a process keeps
// open for its whole lifetime. Create it once at startup with Begin and defer
// Close; Close tears everything down exactly once.
type Runtime struct {
	lib  *Library
	sess *Session
	log  logging.Logger

	once sync.Once
	err  error
}

// Begin loads libgmt as described by cfg, creates a session and starts a
// modern-mode session by running the "begin" module.
func Begin(ctx context.Context, cfg Config) (*Runtime, error) {
	path, err := cfg.LibraryPath()
	if err != nil {
		return nil, err
	}
	lib, err := Load(path)
	if err != nil {
		return nil, err
	}
	rt, err := start(ctx, cfg, lib)
	if err != nil {
		_ = lib.Close()
		return nil, err
	}
	return rt, nil
}

func start(ctx context.Context, cfg Config, lib *Library) (*Runtime, error) {
	log := cfg.logger().With("library", lib.Path())
	log.Debug(ctx, "library loaded")

	sess, err := NewSession(lib, cfg.sessionName())
	if err != nil {
		return nil, err
	}
	log = log.With("session", sess.Name())
	log.Debug(ctx, "session created")

	prefix := cfg.sessionPrefix()
	if err := sess.CallModule("begin", prefix); err != nil {
		_ = sess.Close()
		return nil, err
	}
	log.Debug(ctx, "modern mode started", "prefix", prefix)

	return &Runtime{lib: lib, sess: sess, log: log}, nil
}

// Session returns the runtime's session.
func (r *Runtime) Session() *Session {
	return r.sess
}

// Library returns the runtime's library handle.
func (r *Runtime) Library() *Library {
	return r.lib
}

// Close ends the modern-mode session, destroys the GMT session and releases
// the library. Only the first call does any work; every call returns the
// same result.
func (r *Runtime) Close() error {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		ctx := context.Background()
		var errs []error
		if err := r.sess.CallModule("end", ""); err != nil {
			errs = append(errs, err)
		}
		if err := r.sess.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := r.lib.Close(); err != nil {
			errs = append(errs, err)
		}
		r.err = errors.Join(errs...)
		if r.err != nil {
			r.log.Warn(ctx, "shutdown finished with errors", "error", r.err)
			return
		}
		r.log.Debug(ctx, "shutdown complete")
	})
	return r.err
}
