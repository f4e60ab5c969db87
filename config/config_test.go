package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ardanlabs/vkenum/config"
)

func TestNewTableDuplicates(t *testing.T) {
	c := qt.New(t)

	log, hook := test.NewNullLogger()

	table := config.NewTable([]config.EnumConfig{
		{Name: "VkFormat", Prefix: "VK_FORMAT_"},
		{Name: "VkBlendOp", Prefix: "VK_BLEND_OP_"},
		{Name: "VkFormat", Prefix: "VK_WRONG_"},
	}, log)

	c.Assert(table.Len(), qt.Equals, 2)

	cfg, ok := table.Lookup("VkFormat")
	c.Assert(ok, qt.IsTrue)
	c.Assert(cfg.Prefix, qt.Equals, "VK_FORMAT_")

	_, ok = table.Lookup("VkImageLayout")
	c.Assert(ok, qt.IsFalse)

	c.Assert(hook.LastEntry(), qt.IsNotNil)
	c.Assert(hook.LastEntry().Level, qt.Equals, logrus.WarnLevel)
	c.Assert(hook.LastEntry().Data["enum"], qt.Equals, "VkFormat")
}

func TestVulkanTable(t *testing.T) {
	c := qt.New(t)

	log, hook := test.NewNullLogger()
	table := config.NewTable(config.Vulkan, log)

	c.Assert(hook.AllEntries(), qt.HasLen, 0)
	c.Assert(table.Len(), qt.Equals, len(config.Vulkan))

	for _, e := range config.Vulkan {
		c.Assert(strings.HasPrefix(e.Name, config.TypePrefix), qt.IsTrue, qt.Commentf("%s", e.Name))
		c.Assert(strings.HasSuffix(e.Prefix, "_"), qt.IsTrue, qt.Commentf("%s", e.Name))
		if e.IsFlags {
			c.Assert(strings.Contains(e.Name, "FlagBits"), qt.IsTrue, qt.Commentf("%s", e.Name))
		}
	}

	// A plain enumeration whose values are consecutive, not bits.
	e, ok := table.Lookup("VkValidationFeatureDisableEXT")
	c.Assert(ok, qt.IsTrue)
	c.Assert(e.IsFlags, qt.IsFalse)
}

func TestIncludeDir(t *testing.T) {
	c := qt.New(t)

	sdk := t.TempDir()
	c.Assert(os.Mkdir(filepath.Join(sdk, "include"), 0755), qt.IsNil)

	t.Setenv(config.SDKVariable, sdk)

	dir, err := config.IncludeDir()
	c.Assert(err, qt.IsNil)
	c.Assert(filepath.Base(dir), qt.Equals, "include")
}

func TestIncludeDirFromEnvFile(t *testing.T) {
	c := qt.New(t)

	sdk := t.TempDir()
	c.Assert(os.Mkdir(filepath.Join(sdk, "Include"), 0755), qt.IsNil)

	envFile := filepath.Join(t.TempDir(), ".env")
	c.Assert(os.WriteFile(envFile, []byte(config.SDKVariable+"="+sdk+"\n"), 0644), qt.IsNil)

	// godotenv does not override variables that are already set.
	t.Setenv(config.SDKVariable, "")
	os.Unsetenv(config.SDKVariable)

	dir, err := config.IncludeDir(envFile)
	c.Assert(err, qt.IsNil)
	c.Assert(dir, qt.Equals, filepath.Join(sdk, "Include"))
}

func TestIncludeDirErrors(t *testing.T) {
	c := qt.New(t)

	t.Setenv(config.SDKVariable, "")
	os.Unsetenv(config.SDKVariable)

	_, err := config.IncludeDir()
	c.Assert(err, qt.ErrorIs, config.ErrSDKNotSet)

	t.Setenv(config.SDKVariable, t.TempDir())

	_, err = config.IncludeDir()
	c.Assert(err, qt.ErrorIs, config.ErrIncludeDirNotFound)
}
