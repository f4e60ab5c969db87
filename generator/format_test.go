package generator

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ardanlabs/vkenum/config"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		cfg  config.EnumConfig
		want string
	}{
		{config.EnumConfig{Name: "VkFormat"}, "Format"},
		{config.EnumConfig{Name: "ExampleStatus"}, "ExampleStatus"},
		{config.EnumConfig{Name: "ExampleUsageFlagBits", IsFlags: true}, "ExampleUsageFlags"},
		{config.EnumConfig{Name: "VkDeviceGroupPresentModeFlagBitsKHR", IsFlags: true}, "DeviceGroupPresentModeFlagsKHR"},
		{config.EnumConfig{Name: "VkImageUsageFlagBits", IsFlags: true, CustomName: "Usage"}, "Usage"},
		{config.EnumConfig{Name: "VkFlagBitsOdd"}, "FlagBitsOdd"},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.Name, func(t *testing.T) {
			qt.New(t).Assert(TypeName(tt.cfg), qt.Equals, tt.want)
		})
	}
}

func TestVariantName(t *testing.T) {
	tests := []struct {
		prefix  string
		raw     string
		isFlags bool
		want    string
	}{
		{"EXAMPLE_STATUS_", "EXAMPLE_STATUS_OK", false, "OK"},
		{"EXAMPLE_STATUS_", "EXAMPLE_STATUS_2D", false, "_2D"},
		{"EXAMPLE_USAGE_", "EXAMPLE_USAGE_READ_BIT", true, "READ"},
		{"VK_SAMPLE_COUNT_", "VK_SAMPLE_COUNT_1_BIT", true, "_1"},
		{"VK_IMAGE_USAGE_", "VK_IMAGE_USAGE_SHADING_RATE_IMAGE_BIT_NV", true, "SHADING_RATE_IMAGE_NV"},
		{"VK_CULL_MODE_", "VK_CULL_MODE_FRONT_AND_BACK", true, "FRONT_AND_BACK"},
		{"VK_FORMAT_", "VK_FORMAT_R8G8B8A8_UNORM", false, "R8G8B8A8_UNORM"},
		// BIT is only removed from bitmask constants and only as a whole token.
		{"VK_SHADER_", "VK_SHADER_32_BIT_ONLY", false, "_32_BIT_ONLY"},
		{"VK_X_", "VK_X_BITS_BIT", true, "BITS"},
		// Without a trailing delimiter there is nothing to keep.
		{"VK_LEVEL", "VK_LEVEL2", false, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := qt.New(t)
			got, err := VariantName(tt.prefix, tt.raw, tt.isFlags)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, tt.want)
		})
	}
}

func TestVariantNameErrors(t *testing.T) {
	c := qt.New(t)

	_, err := VariantName("VK_FORMAT_", "VK_IMAGE_LAYOUT_UNDEFINED", false)
	c.Assert(err, qt.ErrorIs, ErrPrefixMismatch)

	_, err = VariantName("VK_FORMAT_", "VK_FORMAT_", false)
	c.Assert(err, qt.ErrorIs, ErrEmptyVariant)

	_, err = VariantName("VK_X_", "VK_X_BIT", true)
	c.Assert(err, qt.ErrorIs, ErrEmptyVariant)
}

func TestIsSentinel(t *testing.T) {
	c := qt.New(t)

	c.Assert(IsSentinel("EXAMPLE_STATUS_MAX_ENUM"), qt.IsTrue)
	c.Assert(IsSentinel("VK_PRESENT_MODE_MAX_ENUM_KHR"), qt.IsTrue)
	c.Assert(IsSentinel("VK_IMAGE_USAGE_FLAG_BITS_MAX_ENUM"), qt.IsTrue)
	c.Assert(IsSentinel("VK_BLEND_OP_MAX"), qt.IsFalse)
}

func TestConstName(t *testing.T) {
	tests := []struct {
		typeName string
		variant  string
		want     string
	}{
		{"ExampleStatus", "OK", "ExampleStatusOk"},
		{"ExampleUsageFlags", "READ", "ExampleUsageRead"},
		{"Format", "R8G8B8A8_UNORM", "FormatR8G8B8A8Unorm"},
		{"Format", "ASTC_4x4_SRGB_BLOCK", "FormatAstc4X4SrgbBlock"},
		{"ImageType", "_2D", "ImageType2D"},
		{"SampleCountFlags", "_64", "SampleCount64"},
		{"PresentModeKHR", "FIFO_RELAXED_KHR", "PresentModeFifoRelaxedKHR"},
		{"DeviceGroupPresentModeFlagsKHR", "LOCAL_KHR", "DeviceGroupPresentModeLocalKHR"},
		{"ImageUsageFlags", "SHADING_RATE_IMAGE_NV", "ImageUsageShadingRateImageNV"},
		{"PipelineRobustnessBufferBehaviorEXT", "DEVICE_DEFAULT", "PipelineRobustnessBufferBehaviorDeviceDefault"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			qt.New(t).Assert(ConstName(tt.typeName, tt.variant), qt.Equals, tt.want)
		})
	}
}
