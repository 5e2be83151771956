// Package webgpu implements the display driver shared by the
// WebGPU-class video drivers: vulkan, metal, d3d12 and glcore.
//
// The driver does not own a device. The host passes a
// gpucontext.DeviceProvider through menugfx.WithDevice; draws are
// encoded into a per-frame Frame of interleaved vertices and state
// batches that the host submits with its own command encoder:
//
//	disp := menugfx.New(
//		menugfx.WithVideoDriver("vulkan"),
//		menugfx.WithDevice(provider),
//	)
//	...
//	frame := disp.Driver().(*webgpu.Driver).EndFrame()
//	for _, b := range frame.Batches {
//		// bind pipeline for b.State, draw b.First..b.First+b.Count
//	}
//
// Pipeline effects (ribbon, snow, bokeh) are WGSL compiled to SPIR-V
// with naga. When the provider also exposes a HAL device the driver
// creates the shader modules itself.
package webgpu
