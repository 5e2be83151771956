package driver

// Type is the backend family a driver belongs to.
type Type int

// Backend families.
const (
	TypeGeneric Type = iota
	TypeOpenGL
	TypeOpenGL1
	TypeOpenGLCore
	TypeVulkan
	TypeMetal
	TypeDirect3D8
	TypeDirect3D9
	TypeDirect3D10
	TypeDirect3D11
	TypeDirect3D12
	TypeVita2D
	TypeCTR
	TypeWiiU
	TypeGDI
	TypeSwitch
	TypeTerminal
)

var typeNames = [...]string{
	TypeGeneric:    "generic",
	TypeOpenGL:     "gl",
	TypeOpenGL1:    "gl1",
	TypeOpenGLCore: "glcore",
	TypeVulkan:     "vulkan",
	TypeMetal:      "metal",
	TypeDirect3D8:  "d3d8",
	TypeDirect3D9:  "d3d9",
	TypeDirect3D10: "d3d10",
	TypeDirect3D11: "d3d11",
	TypeDirect3D12: "d3d12",
	TypeVita2D:     "vita2d",
	TypeCTR:        "ctr",
	TypeWiiU:       "gx2",
	TypeGDI:        "gdi",
	TypeSwitch:     "switch",
	TypeTerminal:   "terminal",
}

// String returns the video driver ident a family is compatible with.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Compatible reports whether a driver of family t may run on top of
// the video driver named videoDriver. Generic drivers run anywhere.
func (t Type) Compatible(videoDriver string) bool {
	if t == TypeGeneric {
		return true
	}
	return equalFold(t.String(), videoDriver)
}
