// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/gbrandomizer/internal/loader"
	"github.com/retroenv/gbrandomizer/internal/options"
	"github.com/retroenv/gbrandomizer/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

const outputSuffix = ".randomized"

// ProcessFile handles the complete file processing workflow. The output file
// is only written after the randomization and its verification succeeded.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, cfg options.Randomization) (pipeline.Result, error) {
	pipe := pipeline.New(logger)
	result, err := pipe.Execute(ctx, opts, cfg)
	if err != nil {
		return pipeline.Result{}, err
	}

	output, err := loader.ExpandPath(opts.Output)
	if err != nil {
		return pipeline.Result{}, err
	}
	if err := writeFile(output, result.Image); err != nil {
		return pipeline.Result{}, fmt.Errorf("writing output: %w", err)
	}

	logger.Info(result.Summary())
	logger.Debug("Output written", log.String("file", output))
	return result, nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		pattern, err := loader.ExpandPath(opts.Batch)
		if err != nil {
			return nil, err
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}

		files := make([]string, 0, len(matches))
		for _, match := range matches {
			if !isOutputFilename(match) {
				files = append(files, match)
			}
		}
		return files, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + outputSuffix + ext
}

// isOutputFilename returns whether the file name was generated by
// GenerateOutputFilename.
func isOutputFilename(name string) bool {
	ext := filepath.Ext(name)
	return ext == outputSuffix || strings.HasSuffix(name[:len(name)-len(ext)], outputSuffix)
}

// writeFile writes the data to a temporary file next to the destination and
// renames it, so that an existing destination is never left truncated.
func writeFile(name string, data []byte) error {
	dir := filepath.Dir(name)
	file, err := os.CreateTemp(dir, filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := file.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing file %s: %w", tmpName, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, name); err != nil {
		return fmt.Errorf("renaming file %s: %w", tmpName, err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("gbrandomizer", log.String("version", buildinfo.Version(version, commit, date)))
}
