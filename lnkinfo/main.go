package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	goerrors "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/andrewstucki/lnkinfo"
)

type file struct {
	Name string `json:"name"`
	*lnkinfo.File
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lnkinfo [filename|directory]",
		Short:         "Decode Windows shortcut files.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			r := &runner{config: cfg, stderr: cmd.ErrOrStderr()}
			if err != nil {
				r.report("Unable to load configuration", err)
				return err
			}
			if err := r.run(cmd.OutOrStdout(), args[0]); err != nil {
				r.report(fmt.Sprintf("Unable to decode '%s'", args[0]), err)
				return err
			}
			return nil
		},
	}
	registerFlags(cmd)
	return cmd
}

type runner struct {
	config config
	stderr io.Writer
	mutex  sync.Mutex
}

func (r *runner) run(out io.Writer, filename string) error {
	fileinfo, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file '%s' not found", filename)
		}
		return err
	}

	var files []file
	if fileinfo.IsDir() {
		files, err = r.inspectDirectory(filename)
	} else {
		files, err = r.inspectFile(filename)
	}
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	if r.config.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(files)
}

func (r *runner) inspect(path string) (*lnkinfo.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lnkinfo.Inspect(f)
}

func (r *runner) inspectDirectory(dir string) ([]file, error) {
	files := []file{}

	pool := newPool(r.config.Workers)
	defer pool.Release()
	if err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		isSymlink := info.Mode()&os.ModeSymlink > 0
		isEmpty := info.Size() == 0
		if info.IsDir() || isSymlink || isEmpty {
			return nil
		}
		pool.Enqueue(func() {
			inspected, err := r.inspect(path)
			if err != nil {
				if !errors.Is(err, lnkinfo.ErrNotShortcut) {
					r.report(fmt.Sprintf("Unable to decode '%s'", path), err)
					return
				}
				if !r.config.All {
					return
				}
			}
			r.mutex.Lock()
			files = append(files, file{Name: path, File: inspected})
			r.mutex.Unlock()
		})
		return nil
	}); err != nil {
		return nil, err
	}
	pool.Wait()

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func (r *runner) inspectFile(path string) ([]file, error) {
	inspected, err := r.inspect(path)
	if err != nil && !(r.config.All && errors.Is(err, lnkinfo.ErrNotShortcut)) {
		return nil, err
	}
	return []file{
		{Name: path, File: inspected},
	}, nil
}

func (r *runner) report(message string, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var stack *goerrors.Error
	if r.config.Verbose && errors.As(err, &stack) {
		fmt.Fprintf(r.stderr, "%s: %s\n", message, stack.ErrorStack())
		return
	}
	fmt.Fprintf(r.stderr, "%s: %v\n", message, err)
}
