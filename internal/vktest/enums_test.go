package vktest

import (
	"testing"
	"unsafe"

	qt "github.com/frankban/quicktest"
)

func TestEnumRoundTrip(t *testing.T) {
	c := qt.New(t)

	for _, v := range []PresentModeKHR{
		PresentModeImmediateKHR,
		PresentModeMailboxKHR,
		PresentModeFifoKHR,
		PresentModeFifoRelaxedKHR,
	} {
		c.Assert(PresentModeKHRFromRaw(v.Raw()), qt.Equals, v)
	}

	for _, v := range []VendorId{VendorIdKhronos, VendorIdViv, VendorIdVsi} {
		c.Assert(VendorIdFromRaw(v.Raw()), qt.Equals, v)
	}

	c.Assert(ImageType3D.Raw(), qt.Equals, int32(2))
	c.Assert(VendorIdViv.Raw(), qt.Equals, int32(0x10001))
}

func TestEnumString(t *testing.T) {
	c := qt.New(t)

	c.Assert(ImageType2D.String(), qt.Equals, "ImageType2D")
	c.Assert(PipelineCacheHeaderVersionOne.String(), qt.Equals, "PipelineCacheHeaderVersionOne")

	// Values the headers did not enumerate still decode.
	c.Assert(ImageTypeFromRaw(1000).String(), qt.Equals, "ImageType(1000)")
}

func TestFlags(t *testing.T) {
	c := qt.New(t)

	var none ImageUsageFlags
	c.Assert(none.IsEmpty(), qt.IsTrue)

	rw := ImageUsageTransferSrc.Union(ImageUsageTransferDst)
	c.Assert(rw.Raw(), qt.Equals, uint32(3))
	c.Assert(rw.Contains(ImageUsageTransferSrc), qt.IsTrue)
	c.Assert(rw.Contains(ImageUsageSampled), qt.IsFalse)
	c.Assert(rw.Intersect(ImageUsageTransferDst), qt.Equals, ImageUsageTransferDst)
	c.Assert(rw.Difference(ImageUsageTransferSrc), qt.Equals, ImageUsageTransferDst)
	c.Assert(rw.Difference(rw).IsEmpty(), qt.IsTrue)

	c.Assert(CullModeFront.Union(CullModeBack), qt.Equals, CullModeFrontAndBack)
	c.Assert(SampleCountFlagsFromRaw(6), qt.Equals, SampleCount2|SampleCount4)

	// Unknown bits survive a round trip.
	c.Assert(ImageUsageFlagsFromRaw(0x80000001).Raw(), qt.Equals, uint32(0x80000001))
}

func TestSizes(t *testing.T) {
	c := qt.New(t)

	c.Assert(unsafe.Sizeof(ImageType(0)), qt.Equals, uintptr(4))
	c.Assert(unsafe.Sizeof(PresentModeKHR(0)), qt.Equals, uintptr(4))
	c.Assert(unsafe.Sizeof(ImageUsageFlags(0)), qt.Equals, uintptr(4))
	c.Assert(unsafe.Sizeof(SampleCountFlags(0)), qt.Equals, uintptr(4))
}
