package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// WritePNG encodes img to path, creating parent directories. The file is written next to
// path and renamed so a reader never observes a partial checkpoint.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("while creating output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("while encoding %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// AuxiliaryPath derives the path of an auxiliary image, e.g. out.png becomes out_albedo.png
func AuxiliaryPath(output, kind string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_" + kind + ext
}

// WriteOutputs writes the final image and, when the film records them, the albedo and normal images
func (r *Renderer) WriteOutputs(img *image.RGBA) ([]string, error) {
	output := r.config.Output
	written := []string{output}
	if err := WritePNG(output, img); err != nil {
		return nil, err
	}
	if !r.film.UsesVisibleSurface() {
		return written, nil
	}

	auxiliary := map[string]*image.RGBA{
		"albedo": r.film.AlbedoImage(),
		"normal": r.film.NormalImage(),
	}
	for _, kind := range []string{"albedo", "normal"} {
		path := AuxiliaryPath(output, kind)
		if err := WritePNG(path, auxiliary[kind]); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
