package outfile

import "os"

// WriteConvertedFile writes src to outPath, always overwriting any existing file.
func WriteConvertedFile(outPath string, src []byte) error {
	return os.WriteFile(outPath, src, 0o644)
}
