package files

import (
	"fmt"
	"mime"
	"path/filepath"
	"strconv"
	"strings"
)

// modifiedLayout is the timestamp format shown in listings.
const modifiedLayout = "2006-01-02 15:04:05"

// extraTypes backs up the platform MIME table so sniffing stays
// deterministic across hosts. mime.TypeByExtension consults /etc/mime.types
// on some systems and ships a rather small builtin table.
var extraTypes = map[string]string{
	".txt":   "text/plain",
	".md":    "text/markdown",
	".csv":   "text/csv",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".mkv":   "video/x-matroska",
	".avi":   "video/x-msvideo",
	".mov":   "video/quicktime",
	".wmv":   "video/x-ms-wmv",
	".flv":   "video/x-flv",
	".mp3":   "audio/mpeg",
	".wav":   "audio/wav",
	".ogg":   "audio/ogg",
	".flac":  "audio/flac",
	".aac":   "audio/aac",
	".zip":   "application/zip",
	".tar":   "application/x-tar",
	".gz":    "application/gzip",
	".rar":   "application/x-rar-compressed",
	".7z":    "application/x-7z-compressed",
	".doc":   "application/msword",
	".docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":   "application/vnd.ms-excel",
	".xlsx":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":   "application/vnd.ms-powerpoint",
	".pptx":  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// MimeByPath returns the MIME type sniffed from the path's extension, or an
// empty string when the extension is unknown. Parameters TypeByExtension
// tacks on ("; charset=utf-8") are stripped.
func MimeByPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt := mime.TypeByExtension(ext); mt != "" {
		mt, _, _ = strings.Cut(mt, ";")
		return strings.TrimSpace(mt)
	}
	return extraTypes[ext]
}

// Extract turns a raw traversal entry into the normalized record handed to
// templates. A metadata read failure aborts the run.
func Extract(entry Entry, human bool, iconset string, catalog IconCatalog) (FileItem, error) {
	info, err := entry.Info()
	if err != nil {
		return FileItem{}, fmt.Errorf("stat %s: %w", entry.Path, err)
	}

	mimeType := MimeByPath(entry.Path)
	isDir := entry.IsDir()

	size := strconv.FormatInt(info.Size(), 10)
	if human {
		size = FormatSize(uint64(info.Size()))
	}

	return FileItem{
		Path:     entry.Path,
		Name:     entry.Name(),
		Size:     size,
		Modified: info.ModTime().Local().Format(modifiedLayout),
		Mime:     mimeType,
		IsDir:    isDir,
		Icon:     ResolveIcon(catalog, mimeType, isDir, iconset),
	}, nil
}
