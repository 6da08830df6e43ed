// Package lnkinfo inspects Windows shortcut files without a Windows shell.
package lnkinfo

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	goerrors "github.com/go-errors/errors"
	"github.com/h2non/filetype"
	sha256 "github.com/minio/sha256-simd"

	"github.com/andrewstucki/lnkinfo/lnk"
)

// MIME is the media type reported for Shell Link files.
const MIME = "application/x-ms-shortcut"

// ErrNotShortcut is returned by Inspect when the data is not a shortcut.
var ErrNotShortcut = errors.New("not a shortcut")

func init() {
	filetype.AddMatcher(filetype.NewType("lnk", MIME), lnkMatcher)
}

func lnkMatcher(buf []byte) bool {
	return len(buf) > 3 && (buf[0] == 0x4C && buf[1] == 0x00 && buf[2] == 0x00 && buf[3] == 0x00)
}

// File contains a shortcut along with identifying information about the
// file it was read from.
type File struct {
	MIME   string    `json:"mime"`
	SHA256 string    `json:"sha256"`
	Size   int       `json:"size"`
	LNK    *lnk.Info `json:"lnk,omitempty"`
}

// IsShortcut reports whether data starts like a Shell Link file.
func IsShortcut(data []byte) bool {
	return filetype.IsMIME(data, MIME)
}

// Inspect reads r to the end, detects its type and decodes it when it is a
// shortcut. Other file types yield a File without LNK and ErrNotShortcut.
func Inspect(r io.Reader) (*File, error) {
	var data bytes.Buffer
	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(&data, hash), r); err != nil {
		return nil, goerrors.Wrap(fmt.Errorf("%w: %w", lnk.ErrIO, err), 1)
	}

	mime := "application/octet-stream"
	kind, err := filetype.Match(data.Bytes())
	if err == nil && kind.MIME.Value != "" {
		mime = kind.MIME.Value
	}
	file := &File{
		MIME:   mime,
		SHA256: hex.EncodeToString(hash.Sum(nil)),
		Size:   data.Len(),
	}
	if mime != MIME {
		return file, goerrors.Wrap(fmt.Errorf("%w: detected %s", ErrNotShortcut, mime), 1)
	}

	info, err := lnk.Decode(data.Bytes())
	if err != nil {
		return file, err
	}
	file.LNK = info
	return file, nil
}
