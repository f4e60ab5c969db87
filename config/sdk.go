package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	pkgerrors "github.com/pkg/errors"
)

// SDKVariable names the environment variable pointing at the Vulkan SDK.
const SDKVariable = "VULKAN_SDK"

var (
	ErrSDKNotSet          = errors.New(SDKVariable + " not set")
	ErrIncludeDirNotFound = errors.New("vulkan include directory not found")
)

// IncludeDir returns the include directory of the Vulkan SDK. The given
// .env files are loaded first and may define VULKAN_SDK; variables already
// present in the environment take precedence.
func IncludeDir(envFiles ...string) (string, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return "", pkgerrors.Wrap(err, "loading env files")
		}
	}
	envy.Reload()

	sdk, err := envy.MustGet(SDKVariable)
	if err != nil || sdk == "" {
		return "", ErrSDKNotSet
	}

	// The Windows SDK ships Include, the Linux and macOS ones include.
	for _, dir := range []string{"Include", "include"} {
		path := filepath.Join(sdk, dir)
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			return path, nil
		}
	}

	return "", pkgerrors.Wrapf(ErrIncludeDirNotFound, "searched %s", sdk)
}
