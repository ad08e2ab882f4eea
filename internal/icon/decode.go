package icon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/fyne-io/image/ico"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Scaler names accepted in settings.
const (
	ScalerMagick = "magick"
	ScalerNone   = "none"
)

// errNoScaler is returned when neither magick nor convert is installed.
var errNoScaler = errors.New("no external image scaler available")

const scalerTimeout = 15 * time.Second

// decodeFile decodes any raster format registered with the image package.
func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// scale resizes img to w×h with Catmull-Rom resampling.
func scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// lookPath locates the external scaler binaries.
var lookPath = exec.LookPath

// runScaler executes an external scaler command line.
var runScaler = func(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), "MAGICK_CONFIGURE_PATH=")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// magickBinary prefers magick (ImageMagick 7) over convert (ImageMagick 6).
func magickBinary() (string, error) {
	for _, name := range []string{"magick", "convert"} {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errNoScaler
}

// rasterizeExternal converts path to a size×size PNG with ImageMagick and
// decodes the result. Vector input keeps a transparent background.
func rasterizeExternal(path string, size int) (image.Image, error) {
	bin, err := magickBinary()
	if err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp("", "arcmenu-icon-*.png")
	if err != nil {
		return nil, err
	}
	out := tmp.Name()
	tmp.Close()
	defer os.Remove(out)

	dim := strconv.Itoa(size) + "x" + strconv.Itoa(size)
	var argv []string
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		argv = []string{bin, "-background", "none", path, "-resize", dim, "-flatten", out}
	} else {
		argv = []string{bin, path, "-resize", dim, out}
	}

	ctx, cancel := context.WithTimeout(context.Background(), scalerTimeout)
	defer cancel()
	runErr := runScaler(ctx, argv)
	if info, err := os.Stat(out); err == nil && info.Size() > 0 {
		return decodeFile(out)
	}
	if runErr == nil {
		runErr = fmt.Errorf("%s produced no output for %s", filepath.Base(bin), path)
	}
	return nil, runErr
}

// needsExternal reports whether only an external tool can read path.
func needsExternal(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg", ".xpm":
		return true
	}
	return false
}
