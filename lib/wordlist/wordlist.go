// Package wordlist loads ordered word lists for the dictionary method, from a
// local file or a remote URL, with a built-in fallback list when no source is
// available.
package wordlist

import (
	"context"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/duke-git/lancet/v2/cryptor"
	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/hashicorp/go-getter"
	"github.com/pkg/errors"

	"github.com/p1xelfault/guesslab/simstate"
)

const defaultUmask = 0o022 // Default umask for downloaded file permissions

// Fallback is the built-in word list used when no source is configured or the
// configured source is missing. Order matters for attempt-count determinism.
var Fallback = []string{ //nolint:gochecknoglobals // Fixed fallback list
	"password", "123456", "qwerty", "admin", "letmein", "welcome",
}

// Load returns the ordered words from the given source. An empty source, or a
// local path that does not exist, yields the built-in fallback list. A source
// with a URL scheme is fetched into the data directory first.
func Load(source string) ([]string, error) {
	if strutil.IsBlank(source) {
		simstate.Logger.Debug("No word list configured, using built-in fallback")
		return fallbackCopy(), nil
	}

	if isRemote(source) {
		local := path.Join(simstate.State.DataPath, path.Base(source))
		if err := Fetch(context.Background(), source, local, ""); err != nil {
			return nil, err
		}
		source = local
	}

	if !fileutil.IsExist(source) {
		simstate.Logger.Warn("Word list not found, using built-in fallback", "path", source)
		return fallbackCopy(), nil
	}

	lines, err := fileutil.ReadFileByLine(source)
	if err != nil {
		return nil, errors.Wrapf(err, "reading word list %s", source)
	}

	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}

	simstate.Logger.Info("Loaded word list", "path", source, "words", len(words))

	return words, nil
}

// Fetch downloads a word list from a URL to the given path, skipping the
// download when a file with a matching MD5 checksum already exists. An empty
// checksum skips verification.
func Fetch(ctx context.Context, fileURL, filePath, checksum string) error {
	parsedURL, err := url.Parse(fileURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return errors.Errorf("invalid word list URL: %s", fileURL)
	}

	if fileExistsAndValid(filePath, checksum) {
		simstate.Logger.Info("Word list already downloaded", "path", filePath)
		return nil
	}

	client := &getter.Client{
		Ctx:  ctx,
		Dst:  filePath,
		Src:  fileURL,
		Pwd:  simstate.State.DataPath,
		Mode: getter.ClientModeFile,
	}

	_ = client.Configure( //nolint:errcheck // Client configuration errors are not critical
		getter.WithUmask(os.FileMode(defaultUmask)),
	)

	if err := client.Get(); err != nil {
		return errors.Wrapf(err, "downloading word list %s", fileURL)
	}

	if strutil.IsNotBlank(checksum) && !fileExistsAndValid(filePath, checksum) {
		return errors.New("downloaded word list checksum does not match")
	}

	simstate.Logger.Info("Downloaded word list", "url", fileURL, "path", filePath)

	return nil
}

// fileExistsAndValid checks that filePath exists and, when a checksum is
// given, that its MD5 matches. A mismatched file is removed so that a fresh
// download can replace it.
func fileExistsAndValid(filePath, checksum string) bool {
	if !fileutil.IsExist(filePath) {
		return false
	}

	if strutil.IsBlank(checksum) {
		return true
	}

	fileChecksum, err := cryptor.Md5File(filePath)
	if err != nil {
		simstate.Logger.Error("Error calculating word list checksum", "path", filePath, "error", err)
		return false
	}

	if fileChecksum == checksum {
		return true
	}

	simstate.Logger.Warn("Checksums do not match", "path", filePath,
		"expected_checksum", checksum, "file_checksum", fileChecksum)

	if err := os.Remove(filePath); err != nil {
		simstate.Logger.Error("Error removing word list with mismatched checksum", "path", filePath, "error", err)
	}

	return false
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fallbackCopy() []string {
	words := make([]string, len(Fallback))
	copy(words, Fallback)

	return words
}
