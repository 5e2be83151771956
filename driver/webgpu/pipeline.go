package webgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/menugfx/driver"
)

//go:embed shaders/common.wgsl
var commonWGSL string

//go:embed shaders/ribbon.wgsl
var ribbonWGSL string

//go:embed shaders/snow.wgsl
var snowWGSL string

//go:embed shaders/bokeh.wgsl
var bokehWGSL string

// Effect shader names.
const (
	EffectRibbon = "ribbon"
	EffectSnow   = "snow"
	EffectBokeh  = "bokeh"
)

var effectSources = map[string]*string{
	EffectRibbon: &ribbonWGSL,
	EffectSnow:   &snowWGSL,
	EffectBokeh:  &bokehWGSL,
}

// Effect returns the shader an effect id is drawn with. The simple
// variants share their full effect's shader.
func Effect(id driver.PipelineID) (string, bool) {
	switch id {
	case driver.PipelineRibbon, driver.PipelineRibbonSimple:
		return EffectRibbon, true
	case driver.PipelineSnow, driver.PipelineSnowSimple, driver.PipelineSnowflake:
		return EffectSnow, true
	case driver.PipelineBokeh:
		return EffectBokeh, true
	}
	return "", false
}

// ShaderSource returns the complete WGSL for an effect.
func ShaderSource(effect string) (string, bool) {
	src, ok := effectSources[effect]
	if !ok {
		return "", false
	}
	return commonWGSL + "\n" + *src, true
}

// CompileShader compiles WGSL source to SPIR-V words.
func CompileShader(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("webgpu: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// halProvider is implemented by device providers that expose their HAL
// device.
type halProvider interface {
	HalDevice() any
}

// shaderDevice is the part of hal.Device the driver uses.
type shaderDevice interface {
	CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error)
	DestroyShaderModule(module hal.ShaderModule)
}

// shaderCache compiles each effect once and, given a device, keeps one
// shader module per effect.
type shaderCache struct {
	device  shaderDevice
	spirv   map[string][]uint32
	modules map[string]hal.ShaderModule
	failed  map[string]error
}

func newShaderCache() *shaderCache {
	return &shaderCache{
		spirv:   make(map[string][]uint32),
		modules: make(map[string]hal.ShaderModule),
		failed:  make(map[string]error),
	}
}

// prepare makes the effect ready to draw. A failure is remembered and
// returned again without retrying.
func (c *shaderCache) prepare(effect string) error {
	if err, ok := c.failed[effect]; ok {
		return err
	}
	if err := c.build(effect); err != nil {
		c.failed[effect] = err
		return err
	}
	return nil
}

func (c *shaderCache) build(effect string) error {
	code, ok := c.spirv[effect]
	if !ok {
		src, ok := ShaderSource(effect)
		if !ok {
			return fmt.Errorf("webgpu: unknown effect %q", effect)
		}
		var err error
		if code, err = CompileShader(src); err != nil {
			return fmt.Errorf("%s: %w", effect, err)
		}
		c.spirv[effect] = code
	}

	if c.device == nil {
		return nil
	}
	if _, ok := c.modules[effect]; ok {
		return nil
	}
	module, err := c.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "menugfx_" + effect,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return fmt.Errorf("webgpu: create %s shader module: %w", effect, err)
	}
	c.modules[effect] = module
	return nil
}

// SPIRV returns the compiled code of an effect, if it was prepared.
func (c *shaderCache) SPIRV(effect string) ([]uint32, bool) {
	code, ok := c.spirv[effect]
	return code, ok
}

func (c *shaderCache) destroy() {
	if c.device != nil {
		for _, m := range c.modules {
			c.device.DestroyShaderModule(m)
		}
	}
	clear(c.modules)
	clear(c.failed)
}
