package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/finch-gen/finch/internal/config"
	"github.com/finch-gen/finch/internal/ui"
	"github.com/finch-gen/finch/internal/write"
)

// Options contains optional flags for the compilation process.
type Options struct {
	// Quiet suppresses terminal status output. Useful in tests.
	Quiet bool
}

// Generate compiles the asset directory at dir into a C header (and, in
// split mode, a companion .c file) according to cfg. The pipeline is
// strictly sequential: build the tree, allocate identifiers, plan struct
// types, emit text, then write artifacts. Nothing is written unless every
// earlier phase succeeded.
func Generate(cfg *config.Config, dir string, opts Options) error {
	runID := uuid.NewString()
	logger := log.With().Str("run", runID).Logger()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", dir, err)
	}

	base := cfg.Output
	if base == "" {
		base = outputBase(absDir)
	}

	rootName, err := rootBinding(cfg.Prefix, base)
	if err != nil {
		return err
	}

	logger.Debug().Str("dir", absDir).Str("output", base).
		Str("root", rootName).Bool("split", cfg.CFile).Msg("starting compilation")

	treeOpts := TreeOptions{
		Strict:   cfg.Strict,
		TextExts: extSet(cfg.TextExtensions),
	}

	var root *DirNode
	err = withSpinner(opts, "Reading "+absDir, func() error {
		root, err = BuildTree(absDir, treeOpts)
		return err
	})
	if err != nil {
		return err
	}

	if err := allocIdents(root); err != nil {
		return err
	}

	plan, err := PlanTypes(root, rootName)
	if err != nil {
		return err
	}
	logger.Debug().Int("types", len(plan.Types)).Msg("planned struct types")

	header, source, err := Emit(plan, root, EmitOptions{BaseName: base, Split: cfg.CFile})
	if err != nil {
		return err
	}

	writer := write.NewWriter()
	wopts := write.Options{Atomic: true, CreateDirs: true}

	if err := writeArtifact(writer, base+".h", header, wopts, opts); err != nil {
		return err
	}
	if cfg.CFile {
		if err := writeArtifact(writer, base+".c", source, wopts, opts); err != nil {
			return err
		}
	}

	logger.Info().Int("header_bytes", len(header)).Int("source_bytes", len(source)).
		Msg("compilation finished")
	return nil
}

// writeArtifact writes one output file, skipping the write when the
// on-disk content already matches.
func writeArtifact(w *write.Writer, path string, content []byte, wopts write.Options, opts Options) error {
	needed, err := w.NeedsWrite(path, content)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !needed {
		if !opts.Quiet {
			ui.PrintSuccess("unchanged", path)
		}
		return nil
	}
	if err := w.Write(path, content, wopts); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if !opts.Quiet {
		ui.PrintSuccess("wrote", path)
	}
	return nil
}

// rootBinding resolves the root value's identifier. A supplied prefix is
// taken verbatim and must already be valid; otherwise the output base name
// is sanitized.
func rootBinding(prefix, base string) (string, error) {
	if prefix != "" {
		if !ValidIdent(prefix) {
			return "", fmt.Errorf("%w: prefix %q is not a valid C identifier", ErrInvalidName, prefix)
		}
		return prefix, nil
	}
	return Sanitize(base)
}

// outputBase derives the default output base name from the directory name,
// dropping any trailing extension.
func outputBase(dir string) string {
	base := filepath.Base(dir)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func extSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		return nil
	}
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		set[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	return set
}

func withSpinner(opts Options, msg string, action func() error) error {
	if opts.Quiet {
		return action()
	}
	return ui.RunSpinner(msg, action)
}
