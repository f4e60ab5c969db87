package enummap_test

import (
	"fmt"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ardanlabs/vkenum/enummap"
)

func TestAddKeepsFirstNameForValue(t *testing.T) {
	c := qt.New(t)

	m := enummap.New()
	c.Assert(m.Add("VkResult", "VK_SUCCESS", 0), qt.IsTrue)
	c.Assert(m.Add("VkResult", "VK_NOT_READY", 1), qt.IsTrue)
	c.Assert(m.Add("VkResult", "VK_SUCCESS_KHR", 0), qt.IsFalse)

	c.Assert(m.Variants("VkResult"), qt.DeepEquals, []enummap.Variant{
		{Name: "VK_SUCCESS", Value: 0},
		{Name: "VK_NOT_READY", Value: 1},
	})
}

func TestVariantsReturnsCopy(t *testing.T) {
	c := qt.New(t)

	m := enummap.New()
	m.Add("VkFormat", "VK_FORMAT_UNDEFINED", 0)

	v := m.Variants("VkFormat")
	v[0].Name = "changed"

	c.Assert(m.Variants("VkFormat")[0].Name, qt.Equals, "VK_FORMAT_UNDEFINED")
	c.Assert(m.Variants("VkMissing"), qt.HasLen, 0)
}

func TestNamesSorted(t *testing.T) {
	c := qt.New(t)

	m := enummap.New()
	m.Add("VkFormat", "VK_FORMAT_UNDEFINED", 0)
	m.Add("VkBlendOp", "VK_BLEND_OP_ADD", 0)
	m.Add("VkCompareOp", "VK_COMPARE_OP_NEVER", 0)

	c.Assert(m.Names(), qt.DeepEquals, []string{"VkBlendOp", "VkCompareOp", "VkFormat"})
	c.Assert(m.Len(), qt.Equals, 3)
}

func TestConcurrentAdd(t *testing.T) {
	c := qt.New(t)

	m := enummap.New()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m.Add("VkStructureType", fmt.Sprintf("VK_STRUCTURE_TYPE_%d_%d", w, i), int64(i))
			}
		}(w)
	}
	wg.Wait()

	variants := m.Variants("VkStructureType")
	c.Assert(variants, qt.HasLen, 100)

	seen := make(map[int64]bool)
	for _, v := range variants {
		c.Assert(seen[v.Value], qt.IsFalse)
		seen[v.Value] = true
	}
}

func TestCollector(t *testing.T) {
	c := qt.New(t)

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	m := enummap.New()
	col := enummap.NewCollector(m, "Vk", log)

	col.Visit("enum VkImageType", "VK_IMAGE_TYPE_1D", 0)
	col.Visit("VkImageType", "VK_IMAGE_TYPE_2D", 1)
	col.Visit("VkImageType", "VK_IMAGE_TYPE_2D_ALIAS", 1)
	col.Visit("StdVideoH264ProfileIdc", "STD_VIDEO_H264_PROFILE_IDC_BASELINE", 66)
	col.Visit("", "ORPHAN", 3)

	c.Assert(m.Names(), qt.DeepEquals, []string{"VkImageType"})
	c.Assert(m.Variants("VkImageType"), qt.DeepEquals, []enummap.Variant{
		{Name: "VK_IMAGE_TYPE_1D", Value: 0},
		{Name: "VK_IMAGE_TYPE_2D", Value: 1},
	})

	var warnings []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e.Data["variant"].(string))
		}
	}
	c.Assert(warnings, qt.DeepEquals, []string{"ORPHAN"})
}
