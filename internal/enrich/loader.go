package enrich

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// loadConcurrency bounds the parallel file parses in LoadBundle.
const loadConcurrency = 8

// LoadBundle reads every .json/.yaml/.yml file in dir into a Bundle.
// The file stem is the facility id; the content is a map from source
// type to attribute tree. A file that fails to parse is skipped with a
// warning so one bad source dump cannot sink the whole request.
func LoadBundle(ctx context.Context, dir string) (Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "enrich: read dir %s", dir)
	}

	var mu sync.Mutex
	bundle := make(Bundle)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, name)
		facilityID := strings.TrimSuffix(name, filepath.Ext(name))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			set, err := loadSourceSet(path, ext)
			if err != nil {
				zap.L().Warn("enrich: skipping unreadable source dump",
					zap.String("path", path),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			bundle[facilityID] = set
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "enrich: load bundle")
	}

	zap.L().Debug("enrich: bundle loaded",
		zap.String("dir", dir),
		zap.Int("facilities", len(bundle)),
	)
	return bundle, nil
}

func loadSourceSet(path, ext string) (SourceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "read file")
	}

	raw := make(map[string]map[string]any)
	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, eris.Wrap(err, "parse json")
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, eris.Wrap(err, "parse yaml")
		}
	}

	set := make(SourceSet, len(raw))
	for st, tree := range raw {
		set[SourceType(st)] = Tree(tree)
	}
	return set, nil
}
