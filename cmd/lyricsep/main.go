package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/atotto/clipboard"

	"github.com/yahayao/lyrics-separate/pkg/charset"
	"github.com/yahayao/lyrics-separate/pkg/config"
	"github.com/yahayao/lyrics-separate/pkg/export"
	"github.com/yahayao/lyrics-separate/pkg/lyrics"
	"github.com/yahayao/lyrics-separate/pkg/tagio"
	"github.com/yahayao/lyrics-separate/pkg/unpack"
)

type stats struct {
	processed   int
	changed     int
	unchanged   int
	noLyrics    int
	unsupported int
	failed      int
}

func (s *stats) print() {
	fmt.Printf("\n处理完成!\n")
	fmt.Printf("总文件数: %d\n", s.processed)
	fmt.Printf("已分离: %d\n", s.changed)
	fmt.Printf("无需处理: %d\n", s.unchanged)
	fmt.Printf("无歌词文件: %d\n", s.noLyrics)
	fmt.Printf("不支持格式: %d\n", s.unsupported)
	fmt.Printf("处理失败: %d\n", s.failed)
}

var (
	flagConfig      = flag.String("config", "", "YAML config path")
	flagPreview     = flag.Bool("preview", false, "print the result, write nothing")
	flagNoBackup    = flag.Bool("no-backup", false, "skip the backup copy before writing")
	flagNoRecursive = flag.Bool("no-recursive", false, "do not descend into subdirectories")
	flagClipboard   = flag.Bool("clipboard", false, "process the clipboard text instead of a path")
	flagNormalize   = flag.Bool("normalize", false, "rewrite LRC timestamps to [mm:ss.xx] first")
	flagExport      = flag.String("export", "", "also export processed lyrics as srt or ass")
	flagLang        = flag.Bool("lang", false, "report the detected language of each file's lyrics")
)

var jianfan = charset.NewJianfan()

func main() {
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *flagNoBackup {
		cfg.Backup = false
	}
	if *flagNoRecursive {
		cfg.Recursive = false
	}
	if *flagNormalize {
		cfg.Normalize = true
	}
	if *flagExport != "" {
		cfg.Export = *flagExport
		if cfg.Export != "srt" && cfg.Export != "ass" {
			log.Fatalf("unknown export format %q", cfg.Export)
		}
	}

	if *flagClipboard {
		if err := processClipboard(cfg); err != nil {
			log.Fatalf("clipboard: %v", err)
		}
		return
	}

	path := flag.Arg(0)
	if path == "" {
		log.Fatalf("usage: lyricsep [flags] <file|directory|archive>")
	}
	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("路径不存在: %v", err)
	}

	st := &stats{}
	switch {
	case info.IsDir():
		processDirectory(cfg, path, st)
		st.print()
	case unpack.IsArchive(path):
		processArchive(cfg, path, st)
		st.print()
	default:
		processSingleFile(cfg, path)
	}
}

// processText runs the separation pipeline on one lyrics blob.
func processText(cfg *config.Config, blob string) string {
	if cfg.Normalize {
		blob = lyrics.NormalizeTimestamps(blob)
	}
	return lyrics.Process(blob)
}

// readBlob pulls the lyrics text out of a file, from the audio tag or
// the file body depending on the extension.
func readBlob(path string) (string, error) {
	if tagio.Supported(path) {
		return tagio.ReadLyrics(path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".lrc" || ext == ".txt" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(charset.AnyToUTF8(data)), nil
	}
	return "", tagio.ErrUnsupported
}

func writeBlob(path, blob string) error {
	if tagio.Supported(path) {
		return tagio.WriteLyrics(path, blob)
	}
	return os.WriteFile(path, []byte(blob), 0644)
}

func backup(path, suffix string) error {
	backupPath := path + suffix
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return os.WriteFile(backupPath, data, 0644)
}

func reportLang(blob string) {
	info := whatlanggo.Detect(blob)
	fmt.Printf("检测语言: %v\n", info.Lang.String())
}

// 判断整体是繁体还是简体
func chtLabel(blob string) string {
	chars := len([]rune(blob))
	if chars > 0 && chars/10 <= jianfan.CountCht(blob) {
		return "繁"
	}
	return "简"
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) > 200 {
		return string(runes[:200]) + "..."
	}
	return s
}

// 预览模式打印完整歌词，其余情况只打印开头
func display(s string, preview bool) string {
	if preview {
		return s
	}
	return snippet(s)
}

func processSingleFile(cfg *config.Config, path string) {
	fmt.Printf("处理文件: %v\n", filepath.Base(path))

	blob, err := readBlob(path)
	if err != nil {
		if errors.Is(err, tagio.ErrNoLyrics) {
			fmt.Printf("未找到歌词标签\n")
			return
		}
		fmt.Printf("读取失败: %v\n", err)
		return
	}
	if *flagLang {
		reportLang(blob)
	}

	processed := processText(cfg, blob)
	if processed == blob {
		fmt.Printf("歌词无需处理\n")
		return
	}

	fmt.Printf("原始歌词:\n%v\n", display(blob, *flagPreview))
	fmt.Printf("\n处理后歌词 (%v):\n%v\n", chtLabel(processed), display(processed, *flagPreview))

	if *flagPreview {
		return
	}
	if cfg.Backup {
		if err := backup(path, cfg.BackupSuffix); err != nil {
			fmt.Printf("创建备份失败: %v\n", err)
			return
		}
	}
	if err := writeBlob(path, processed); err != nil {
		fmt.Printf("写入失败: %v\n", err)
		return
	}
	fmt.Printf("歌词处理完成\n")
	exportProcessed(cfg, path, processed)
}

func processDirectory(cfg *config.Config, dir string, st *stats) {
	var files []string
	if cfg.Recursive {
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if cfg.HasExtension(path) {
				files = append(files, path)
			}
			return nil
		})
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			fmt.Printf("读取目录失败: %v\n", err)
			return
		}
		for _, e := range entries {
			if !e.IsDir() && cfg.HasExtension(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	fmt.Printf("找到 %d 个文件\n", len(files))
	for i, path := range files {
		fmt.Printf("[%d/%d] %v: ", i+1, len(files), filepath.Base(path))
		processBatchFile(cfg, path, st)
	}
}

func processBatchFile(cfg *config.Config, path string, st *stats) {
	st.processed++

	blob, err := readBlob(path)
	switch {
	case errors.Is(err, tagio.ErrNoLyrics):
		st.noLyrics++
		fmt.Printf("未找到歌词\n")
		return
	case errors.Is(err, tagio.ErrUnsupported):
		st.unsupported++
		fmt.Printf("不支持的格式\n")
		return
	case err != nil:
		st.failed++
		fmt.Printf("读取失败: %v\n", err)
		return
	}
	if *flagLang {
		reportLang(blob)
	}

	processed := processText(cfg, blob)
	if processed == blob {
		st.unchanged++
		fmt.Printf("无需处理\n")
		return
	}
	if *flagPreview {
		st.changed++
		fmt.Printf("可分离 (%v)\n", chtLabel(processed))
		return
	}
	if cfg.Backup {
		if err := backup(path, cfg.BackupSuffix); err != nil {
			st.failed++
			fmt.Printf("创建备份失败: %v\n", err)
			return
		}
	}
	if err := writeBlob(path, processed); err != nil {
		st.failed++
		fmt.Printf("写入失败: %v\n", err)
		return
	}
	st.changed++
	fmt.Printf("已分离 (%v)\n", chtLabel(processed))
	exportProcessed(cfg, path, processed)
}

// processArchive rewrites every lyrics entry of an archive into a
// sibling directory; the archive itself is never touched.
func processArchive(cfg *config.Config, path string, st *stats) {
	outDir := strings.TrimSuffix(path, filepath.Ext(path)) + "_lyrics"
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Printf("创建输出目录失败: %v\n", err)
		return
	}
	err := unpack.WalkLyrics(path, func(reader io.Reader, info fs.FileInfo) {
		st.processed++
		data, err := io.ReadAll(reader)
		if err != nil {
			st.failed++
			fmt.Printf("读取 %v 失败: %v\n", info.Name(), err)
			return
		}
		blob := string(charset.AnyToUTF8(data))
		processed := processText(cfg, blob)
		if processed == blob {
			st.unchanged++
			return
		}
		out := filepath.Join(outDir, filepath.Base(info.Name()))
		if err := os.WriteFile(out, []byte(processed), 0644); err != nil {
			st.failed++
			fmt.Printf("写入 %v 失败: %v\n", out, err)
			return
		}
		st.changed++
		fmt.Printf("已分离 %v\n", out)
	})
	if err != nil {
		fmt.Printf("打开压缩包失败: %v\n", err)
	}
}

func processClipboard(cfg *config.Config) error {
	blob, err := clipboard.ReadAll()
	if err != nil {
		return err
	}
	processed := processText(cfg, blob)
	fmt.Printf("%v\n", processed)
	if processed == blob || *flagPreview {
		return nil
	}
	return clipboard.WriteAll(processed)
}

func exportProcessed(cfg *config.Config, path, processed string) {
	var err error
	switch cfg.Export {
	case "srt":
		err = export.WriteSRT(processed, path)
	case "ass":
		err = export.WriteASS(processed, path)
	default:
		return
	}
	if err != nil {
		fmt.Printf("导出失败: %v\n", err)
	}
}
