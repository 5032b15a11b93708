package unpack

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/mholt/archiver/v4"
)

var archiveExts = map[string]bool{
	".zip": true,
	".rar": true,
	".7z":  true,
	".tar": true,
	".gz":  true,
	".tgz": true,
	".bz2": true,
	".xz":  true,
}

// IsArchive reports whether the path looks like a lyrics archive.
func IsArchive(path string) bool {
	return archiveExts[strings.ToLower(filepath.Ext(path))]
}

func lyricsEntry(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".lrc" || ext == ".txt"
}

// WalkLyrics calls hook for every .lrc/.txt entry inside an archive.
// Archives archiver cannot identify go through sevenzip; if that fails
// too the path is treated as a plain lyrics file.
func WalkLyrics(packed string, hook func(io.Reader, fs.FileInfo)) error {
	file, err := os.Open(packed)
	if err != nil {
		return err
	}
	defer file.Close()
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("walkLyrics: catch panic: %v\n", r)
		}
	}()
	format, input, err := archiver.Identify("", file)
	if err == archiver.ErrNoMatch {
		r, err := sevenzip.OpenReader(packed)
		if err == nil {
			for _, f := range r.File {
				if f.FileInfo().IsDir() || !lyricsEntry(f.Name) {
					continue
				}
				rc, err := f.Open()
				if err != nil {
					continue
				}
				hook(rc, f.FileInfo())
				rc.Close()
			}
			r.Close()
		} else {
			file.Seek(0, 0)
			fl, err := os.Lstat(packed)
			if err != nil {
				return err
			}
			hook(file, fl)
		}
	} else if ex, ok := format.(archiver.Extractor); ok {
		ex.Extract(context.Background(), input, nil, func(_ context.Context, f archiver.File) error {
			if f.IsDir() || !lyricsEntry(f.Name()) {
				return nil
			}
			rc, err := f.Open()
			if err != nil {
				return nil
			}
			hook(rc, f.FileInfo)
			rc.Close()
			return nil
		})
	}
	return nil
}
