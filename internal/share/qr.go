package share

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/ospassport/internal/filex"
	"github.com/skip2/go-qrcode"
	"golang.org/x/term"
)

// pngSize is the edge length of written QR images in pixels.
const pngSize = 320

// isTerminal is a seam for terminal detection in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WriteQR renders link as a QR code made of half-block characters. Output
// that is not a terminal only gets the link itself, since the blocks are
// unreadable once redirected.
func WriteQR(w io.Writer, link string) error {
	if !isTerminal(w) {
		_, err := fmt.Fprintln(w, link)
		return err
	}

	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to encode qr code: %w", err)
	}
	if _, err := io.WriteString(w, q.ToSmallString(false)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, link)
	return err
}

// WritePNG writes the QR code of link to dir/name.png and returns the path.
func WritePNG(dir, name, link string) (string, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to prepare qr output: %w", err)
	}

	path := filepath.Join(abs, name+".png")
	if err := qrcode.WriteFile(link, qrcode.Medium, pngSize, path); err != nil {
		return "", fmt.Errorf("failed to write qr code: %w", err)
	}
	return path, nil
}
