package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"hncast/config"
)

// StitchEpisode concatenates the given clips, in order, into a single
// episode file named after the run date. Clips share one sample format
// so the streams are copied without re-encoding.
func (w *Writer) StitchEpisode(clipPaths []string) (string, error) {
	if len(clipPaths) == 0 {
		return "", fmt.Errorf("%w: no clips to stitch", ErrWrite)
	}

	outPath := filepath.Join(w.dir, fmt.Sprintf("episode_%s.wav", time.Now().Format("20060102")))

	// ffmpeg's concat demuxer takes a list file of inputs.
	var list strings.Builder
	for _, p := range clipPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrWrite, err)
		}
		fmt.Fprintf(&list, "file '%s'\n", abs)
	}

	listPath := filepath.Join(os.TempDir(), fmt.Sprintf("hncast_concat_%d.txt", time.Now().UnixNano()))
	if err := os.WriteFile(listPath, []byte(list.String()), config.OutputFilePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer os.Remove(listPath)

	err := ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": "0"}).
		Output(outPath, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", fmt.Errorf("%w: ffmpeg concat: %v", ErrWrite, err)
	}

	return outPath, nil
}
