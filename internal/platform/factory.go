package platform

import (
	"github.com/aretw0/quill/pkg/core"
	"github.com/aretw0/quill/pkg/store"
)

// New wires a core.Service over a filesystem store rooted at root.
//
// Workflow:
//  1. Parse the functional options.
//  2. Load root/.quill.yaml if present and merge it into the config.
//  3. Build the filesystem store (unless one was injected).
//  4. Wrap it in the domain service.
func New(root string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return core.NewService(o.store), nil
	}

	cfg := store.Config{
		Root:                root,
		KeyFile:             o.keyFile,
		Passphrase:          o.passphrase,
		PreferredLineEnding: o.preferredLineEnding,
		AutoGuessEncoding:   o.autoGuessEncoding,
		AssetSuffix:         o.assetSuffix,
		MaxFileSize:         o.maxFileSize,
		ReadOnly:            o.readOnly,
		Logger:              o.logger,
	}

	if !o.skipFileConfig && root != "" {
		fc, err := store.LoadFileConfig(root)
		if err != nil {
			return nil, err
		}
		fc.Apply(&cfg)
	}

	st, err := store.New(cfg)
	if err != nil {
		return nil, err
	}

	return core.NewService(st), nil
}
