package entities

import "fmt"

type Device string

const (
	DevicePhone  Device = "phone"
	DeviceTablet Device = "tablet"
)

// TemplatesPerDevice is the number of screenshots per device.
const TemplatesPerDevice = 3

// Template identifies one screenshot document by device and 1-based index.
type Template struct {
	Device Device
	Index  int
}

// Filename is the document name shared by the source and every locale
// directory: "1.svg" for phones, "ipad-1.svg" for tablets.
func (t Template) Filename() string {
	if t.Device == DeviceTablet {
		return fmt.Sprintf("ipad-%d.svg", t.Index)
	}
	return fmt.Sprintf("%d.svg", t.Index)
}

// Slot maps the template onto a caption slot. The third tablet screenshot
// uses its own slot.
func (t Template) Slot() int {
	if t.Device == DeviceTablet && t.Index == TemplatesPerDevice {
		return TabletSlot
	}
	return t.Index - 1
}

func (t Template) String() string {
	return fmt.Sprintf("%s/%d", t.Device, t.Index)
}

// Templates returns the six screenshot templates, phones first.
func Templates() []Template {
	out := make([]Template, 0, 2*TemplatesPerDevice)
	for _, d := range []Device{DevicePhone, DeviceTablet} {
		for i := 1; i <= TemplatesPerDevice; i++ {
			out = append(out, Template{Device: d, Index: i})
		}
	}
	return out
}
