// Package generate drives a single documentation build: load localization and
// book data, render the body, splice it into the page template and write the
// result out.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"pbc/book"
	"pbc/config"
	"pbc/lang"
	"pbc/render"
	"pbc/state"
)

// bookLocalizer resolves authored text through the language table and derives
// readable names for tag references ("#namespace:path") that have no
// localization of their own.
type bookLocalizer struct {
	i18n *lang.I18n
}

func (l bookLocalizer) Localize(key string) (string, error) {
	if tag, ok := strings.CutPrefix(key, "#"); ok {
		if v, found := l.i18n.Lookup[key]; found {
			return v, nil
		}
		loc, err := book.ParseResourceLocation(tag)
		if err != nil {
			return "", fmt.Errorf("tag reference %q: %w", key, err)
		}
		return l.i18n.FallbackTagName(loc), nil
	}
	return l.i18n.Localize(key)
}

// loadLocalization builds the book localizer from configuration. With no
// language file configured every key resolves to itself.
func loadLocalization(env *state.LocalEnv, log *zap.Logger) (book.Localizer, error) {
	path := env.Cfg.Document.LanguageFilePath
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read language file: %w", err)
	}
	lookup := make(map[string]string)
	if err := yaml.Unmarshal(data, &lookup); err != nil {
		return nil, fmt.Errorf("unable to parse language file %q: %w", path, err)
	}
	log.Debug("Localization loaded",
		zap.String("language", env.Cfg.Document.Language), zap.String("file", path), zap.Int("keys", len(lookup)))

	// book sources mix localization keys with literal text, missing keys
	// must pass through untouched
	return bookLocalizer{i18n: lang.New(env.Cfg.Document.Language, lookup, true)}, nil
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no book source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	tpl := cmd.Args().Get(1)
	if len(tpl) == 0 {
		return errors.New("no page template has been specified")
	}
	if tpl, err = filepath.Abs(tpl); err != nil {
		return err
	}

	dst := cmd.Args().Get(2)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 3 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	env.Verify = !cmd.Bool("no-verify")

	log.Info("Generation starting", zap.String("source", src), zap.String("template", tpl), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Generation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, tpl, dst, log)
}

func process(ctx context.Context, src, tpl, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	loc, err := loadLocalization(env, log)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read book source: %w", err)
	}
	b, err := book.Load(bytes.NewReader(data), loc)
	if err != nil {
		return fmt.Errorf("unable to load book source (%s): %w", src, err)
	}

	outputName := buildOutputName(b, src, dst, env, log)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	tf, err := os.Open(tpl)
	if err != nil {
		return fmt.Errorf("unable to open page template: %w", err)
	}
	defer tf.Close()

	out, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}

	r := render.NewRenderer(env.Cfg.Document.Assets)
	r.Reveal = env.Cfg.Document.RevealSpoilers

	body, err := render.Splice(out, tf, b, r)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outputName)
		return fmt.Errorf("unable to generate documentation: %w", err)
	}

	if env.Verify {
		if err := render.Verify(body); err != nil {
			return err
		}
		log.Debug("Rendered body verified", zap.Int("size", len(body)))
	}

	// Store generation inputs and result for debugging
	if env.Rpt != nil {
		env.Rpt.StoreData("source"+filepath.Ext(src), data)
		env.Rpt.StoreData(fmt.Sprintf("body-%s.html", env.RunID), body)
		env.Rpt.Store("result"+filepath.Ext(outputName), outputName)
	}

	log.Info("Documentation written", zap.String("to", outputName), zap.Int("body_size", len(body)))
	return nil
}

// buildOutputName returns constructed output file path/name. It uses either
// the book title based default or a user-defined template.
func buildOutputName(b *book.Book, src, dst string, env *state.LocalEnv, log *zap.Logger) string {
	base := b.Name.PlainText()
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	}
	defaultFile := config.CleanFileName(slug.Make(base)) + ".html"

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(dst, defaultFile)
	}

	expanded, err := expandTemplate(b, config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, env.Cfg.Document.Language, src)
	if err != nil || expanded == "" {
		// fallback to default name if template expansion failed
		log.Warn("Unable to prepare output filename", zap.Error(err))
		return filepath.Join(dst, defaultFile)
	}
	return filepath.Join(dst, config.CleanFileName(expanded)+".html")
}
