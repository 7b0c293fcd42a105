package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/SAM0619TJ/Tiny-rasterizer/utility/kar"
	"github.com/spf13/cobra"
)

var (
	packOutput  string
	packAuthor  string
	packVersion int64
	packForce   bool
)

var packCmd = &cobra.Command{
	Use:   "pack <dir>",
	Short: "Bundle a directory of shaders into a kar pack",
	Long: `Bundle every file below dir into a kar pack. Entries are named by their
slash separated path relative to dir, a config refers to them as
"<pack>.kar:<entry>".`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := packShaders(args[0], packOutput, packForce)
		if err != nil {
			return err
		}
		logger.WithField("path", packOutput).WithField("entries", n).Info("pack written")
		return nil
	},
}

func init() {
	flags := packCmd.Flags()
	flags.StringVarP(&packOutput, "output", "o", "out.kar", "destination file")
	flags.StringVar(&packAuthor, "author", currentUserName(), "author stored in the pack header")
	flags.Int64Var(&packVersion, "version", 1, "version stored in the pack header")
	flags.BoolVarP(&packForce, "force", "f", false, "overwrite the destination file")
}

func currentUserName() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

// packShaders writes all regular files below dir to dst
// and returns the number of entries
func packShaders(dir, dst string, force bool) (int, error) {
	if _, err := os.Stat(dst); err == nil && !force {
		return 0, errors.New("destination file exists, will not overwrite")
	}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no files found in %s", dir)
	}

	builder, err := kar.NewBuilder(kar.Header{
		Author:      packAuthor,
		DateCreated: time.Now().Unix(),
		Version:     packVersion,
	})
	if err != nil {
		return 0, err
	}
	defer builder.Close()

	for _, path := range files {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return 0, err
		}
		if err := addFile(builder, filepath.ToSlash(rel), path); err != nil {
			return 0, err
		}
		logger.WithField("entry", filepath.ToSlash(rel)).Debug("packed shader")
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	if _, err := builder.WriteTo(out); err != nil {
		out.Close()
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, err
	}
	return builder.Len(), nil
}

func addFile(builder *kar.Builder, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return builder.Add(name, f)
}
