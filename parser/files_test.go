package parser

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus/hooks/test"
)

var includeDir = filepath.Join("..", "testdata", "include")

func TestParseFiles(t *testing.T) {
	c := qt.New(t)

	log, _ := test.NewNullLogger()

	var r recorder
	err := ParseFiles(context.Background(), "vulkan/vulkan.h", Options{
		IncludeDirs: []string{includeDir},
		Log:         log,
	}, r.visit)
	c.Assert(err, qt.IsNil)

	c.Assert(r.byEnum("VkResult"), qt.HasLen, 8)
	c.Assert(r.byEnum("VkResult")[6], qt.Equals, entry{"VkResult", "VK_ERROR_OUT_OF_POOL_MEMORY_KHR", -1000069000})
	c.Assert(r.byEnum("VkVendorId"), qt.DeepEquals, []entry{
		{"VkVendorId", "VK_VENDOR_ID_KHRONOS", 0x10000},
		{"VkVendorId", "VK_VENDOR_ID_VIV", 0x10001},
		{"VkVendorId", "VK_VENDOR_ID_VSI", 0x10002},
		{"VkVendorId", "VK_VENDOR_ID_MAX_ENUM", 0x7FFFFFFF},
	})
	c.Assert(r.byEnum("VkSampleCountFlagBits")[2].Value, qt.Equals, int64(4))

	// Included through the search path.
	c.Assert(r.byEnum("StdVideoH264ChromaFormatIdc"), qt.HasLen, 4)

	// Guarded by macros that are not defined.
	c.Assert(r.byEnum("VkFullScreenExclusiveEXT"), qt.HasLen, 0)
	c.Assert(r.byEnum("VkPresentModeKHR"), qt.HasLen, 5)

	// vk_platform.h is included three times but has no enums; vulkan_core.h
	// is scanned once.
	c.Assert(r.byEnum("VkImageType"), qt.HasLen, 4)
}

func TestParseFilesDefines(t *testing.T) {
	c := qt.New(t)

	log, _ := test.NewNullLogger()

	var r recorder
	err := ParseFiles(context.Background(), "vulkan/vulkan.h", Options{
		IncludeDirs: []string{includeDir},
		Defines:     []string{"VK_USE_PLATFORM_WIN32_KHR", "VK_ENABLE_BETA_EXTENSIONS"},
		AllowFile:   regexp.MustCompile(`vulkan/`),
		Workers:     1,
		Log:         log,
	}, r.visit)
	c.Assert(err, qt.IsNil)

	c.Assert(r.byEnum("VkFullScreenExclusiveEXT"), qt.HasLen, 3)
	c.Assert(r.byEnum("VkPresentModeKHR"), qt.HasLen, 6)

	// vk_video/ does not match the allow list.
	c.Assert(r.byEnum("StdVideoH264ChromaFormatIdc"), qt.HasLen, 0)
}

func TestParseFilesMissingHeader(t *testing.T) {
	c := qt.New(t)

	err := ParseFiles(context.Background(), "vulkan/missing.h", Options{
		IncludeDirs: []string{includeDir},
	}, func(string, string, int64) {})
	c.Assert(err, qt.ErrorIs, ErrHeaderNotFound)
}

func TestParseFilesCanceled(t *testing.T) {
	c := qt.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	log, _ := test.NewNullLogger()

	var r recorder
	err := ParseFiles(ctx, "vulkan/vulkan.h", Options{
		IncludeDirs: []string{includeDir},
		Log:         log,
	}, r.visit)
	c.Assert(err, qt.ErrorIs, context.Canceled)
	c.Assert(r.constants, qt.HasLen, 0)
}
